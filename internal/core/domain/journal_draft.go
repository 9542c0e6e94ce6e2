package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// MinDraftLines is the number of lines a draft never drops below.
const MinDraftLines = 2

// LineField names an editable column of a draft line.
type LineField string

const (
	FieldAccountID    LineField = "accountId"
	FieldDebitAmount  LineField = "debitAmount"
	FieldCreditAmount LineField = "creditAmount"
	FieldDescription  LineField = "description"
)

var (
	// ErrLineIndex is returned for an index outside the draft's lines.
	ErrLineIndex = errors.New("line index out of range")
	// ErrUnknownField is returned for a field name the editor does not know.
	ErrUnknownField = errors.New("unknown line field")
)

// DraftLine is an editable journal line. At most one of Debit and Credit is
// non-empty.
type DraftLine struct {
	ID          string `json:"id,omitempty"`
	AccountID   string `json:"accountId"`
	Debit       Amount `json:"debitAmount"`
	Credit      Amount `json:"creditAmount"`
	Description string `json:"description"`
}

// JournalDraft is the transient state of the create/edit journal form.
// EntryID is empty for a new entry.
type JournalDraft struct {
	ID          string      `json:"id"`
	EntryID     string      `json:"entryId,omitempty"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Lines       []DraftLine `json:"lines"`
}

// NewJournalDraft returns a create-mode draft with the minimum number of empty lines.
func NewJournalDraft(date string) *JournalDraft {
	d := &JournalDraft{ID: uuid.NewString(), Date: date}
	for range MinDraftLines {
		d.AddLine()
	}
	return d
}

// HydrateDraft builds an edit-mode draft from a persisted entry. Zero and null
// amounts become empty fields.
func HydrateDraft(entry JournalEntry) *JournalDraft {
	d := &JournalDraft{
		ID:          uuid.NewString(),
		EntryID:     entry.ID,
		Date:        DateOnly(entry.Date),
		Description: entry.Description,
	}
	for _, l := range entry.Lines {
		d.Lines = append(d.Lines, DraftLine{
			ID:          l.ID,
			AccountID:   l.AccountID,
			Debit:       AmountFrom(l.DebitAmount),
			Credit:      AmountFrom(l.CreditAmount),
			Description: l.Description,
		})
	}
	for len(d.Lines) < MinDraftLines {
		d.AddLine()
	}
	return d
}

// AddLine appends an empty line.
func (d *JournalDraft) AddLine() {
	d.Lines = append(d.Lines, DraftLine{})
}

// RemoveLine deletes the line at index. It is a no-op while the draft has
// MinDraftLines or fewer lines.
func (d *JournalDraft) RemoveLine(index int) error {
	if len(d.Lines) <= MinDraftLines {
		return nil
	}
	if index < 0 || index >= len(d.Lines) {
		return fmt.Errorf("remove line %d: %w", index, ErrLineIndex)
	}
	d.Lines = append(d.Lines[:index:index], d.Lines[index+1:]...)
	return nil
}

// UpdateLine sets one field of the line at index. Entering a non-empty debit
// clears the credit, and the reverse.
func (d *JournalDraft) UpdateLine(index int, field LineField, value string) error {
	if index < 0 || index >= len(d.Lines) {
		return fmt.Errorf("update line %d: %w", index, ErrLineIndex)
	}
	line := &d.Lines[index]
	switch field {
	case FieldAccountID:
		line.AccountID = value
	case FieldDescription:
		line.Description = value
	case FieldDebitAmount:
		if value != "" {
			line.Credit = Amount{}
		}
		line.Debit = ParseAmount(value)
	case FieldCreditAmount:
		if value != "" {
			line.Debit = Amount{}
		}
		line.Credit = ParseAmount(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// DraftOp names an editor operation.
type DraftOp string

const (
	OpAddLine    DraftOp = "add"
	OpRemoveLine DraftOp = "remove"
	OpUpdateLine DraftOp = "update"
	OpSetHeader  DraftOp = "header"
)

// ErrUnknownOperation is returned for an operation the editor does not know.
var ErrUnknownOperation = errors.New("unknown draft operation")

// DraftOperation is one edit applied to a draft. Index is ignored by add and
// header; for header, Field is "date" or "description".
type DraftOperation struct {
	Op    DraftOp
	Index int
	Field LineField
	Value string
}

// ApplyTo runs the operation against d.
func (op DraftOperation) ApplyTo(d *JournalDraft) error {
	switch op.Op {
	case OpAddLine:
		d.AddLine()
		return nil
	case OpRemoveLine:
		return d.RemoveLine(op.Index)
	case OpUpdateLine:
		return d.UpdateLine(op.Index, op.Field, op.Value)
	case OpSetHeader:
		switch op.Field {
		case "date":
			d.Date = op.Value
		case FieldDescription:
			d.Description = op.Value
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, op.Field)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownOperation, op.Op)
}

// Clone returns a deep copy of the draft.
func (d *JournalDraft) Clone() *JournalDraft {
	cp := *d
	cp.Lines = append([]DraftLine(nil), d.Lines...)
	return &cp
}
