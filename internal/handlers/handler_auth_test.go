package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestLogin_SetsSessionCookie() {
	suite.auth.On("Login", mock.Anything, "alice", "s3cret-pass").Return(suite.admin, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"emailOrUsername": "alice",
		"password":        "s3cret-pass",
	})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.Equal(adminSID, body["sessionId"])
	suite.NotContains(w.Body.String(), suite.admin.Token, "API token must not leave the server")

	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal("dash_sid", cookies[0].Name)
	suite.Equal(adminSID, cookies[0].Value)
	suite.True(cookies[0].HttpOnly)
	suite.auth.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestLogin_PassesAPIErrorThrough() {
	suite.auth.On("Login", mock.Anything, "alice", "wrong").
		Return(nil, apperrors.NewAPIError(http.StatusUnauthorized, "Invalid credentials", "Login failed")).Once()

	w := suite.request(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"emailOrUsername": "alice",
		"password":        "wrong",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid credentials", suite.decode(w)["error"])
	suite.Empty(w.Result().Cookies())
}

func (suite *HandlerTestSuite) TestLogin_MissingCredentialsUsesServiceMessage() {
	suite.auth.On("Login", mock.Anything, "", "").
		Return(nil, apperrors.NewValidationError(apperrors.ErrValidation, "Email/username and password are required")).Once()

	w := suite.request(http.MethodPost, "/api/v1/auth/login", "", map[string]string{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Email/username and password are required", suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestLogin_MalformedBody() {
	w := suite.request(http.MethodPost, "/api/v1/auth/login", "", "{not json")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid request format", suite.decode(w)["error"])
	suite.auth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	suite.auth.On("Login", mock.Anything, "alice", "wrong").
		Return(nil, apperrors.NewAPIError(http.StatusUnauthorized, "Invalid credentials", "")).Times(3)

	creds := map[string]string{"emailOrUsername": "alice", "password": "wrong"}
	for i := range 3 {
		w := suite.request(http.MethodPost, "/api/v1/auth/login", "", creds)
		suite.Equal(http.StatusUnauthorized, w.Code, fmt.Sprintf("attempt %d", i+1))
	}

	w := suite.request(http.MethodPost, "/api/v1/auth/login", "", creds)
	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.auth.AssertNumberOfCalls(suite.T(), "Login", 3)
}

func (suite *HandlerTestSuite) TestGetMe_AcceptsSessionCookie() {
	suite.auth.On("RefreshProfile", mock.Anything, suite.admin).Return(suite.admin, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "dash_sid", Value: adminSID})
	w := suite.serve(req)

	suite.Require().Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	user := body["user"].(map[string]any)
	suite.Equal(string(domain.RoleCompanyAdmin), user["userRole"])
	caps := body["capabilities"].(map[string]any)
	suite.Equal(true, caps["canManageCategories"])
	suite.Equal(false, caps["canDeleteCompany"])
}

func (suite *HandlerTestSuite) TestGetMe_RejectedTokenClearsCookie() {
	suite.auth.On("RefreshProfile", mock.Anything, suite.admin).
		Return(nil, fmt.Errorf("refresh profile: %w", apperrors.ErrUnauthorized)).Once()

	w := suite.request(http.MethodGet, "/api/v1/auth/me", adminSID, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Session expired. Please log in again.", suite.decode(w)["error"])
	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal("dash_sid", cookies[0].Name)
	suite.Empty(cookies[0].Value)
	suite.Negative(cookies[0].MaxAge)
}

func (suite *HandlerTestSuite) TestUpdateMe() {
	updated := *suite.admin
	updated.User.Name = "Alice Smith"
	suite.auth.On("UpdateProfile", mock.Anything, suite.admin, domain.ProfileUpdate{Name: "Alice Smith"}).
		Return(&updated, nil).Once()

	w := suite.request(http.MethodPatch, "/api/v1/auth/me", adminSID, map[string]string{"name": "Alice Smith"})

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("Alice Smith", suite.decode(w)["user"].(map[string]any)["name"])
}

func (suite *HandlerTestSuite) TestUpdateMe_InvalidEmail() {
	w := suite.request(http.MethodPatch, "/api/v1/auth/me", adminSID, map[string]string{"email": "nope"})

	suite.Equal(http.StatusBadRequest, w.Code)
	fields := suite.decode(w)["fields"].(map[string]any)
	suite.Equal("must be a valid email address", fields["email"])
}

func (suite *HandlerTestSuite) TestChangePassword_MismatchNeverCallsAPI() {
	w := suite.request(http.MethodPost, "/api/v1/auth/change-password", adminSID, map[string]string{
		"currentPassword": "old-password",
		"newPassword":     "new-password-1",
		"confirmPassword": "new-password-2",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("New passwords do not match", suite.decode(w)["error"])
	suite.auth.AssertNotCalled(suite.T(), "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestChangePassword_TooShort() {
	w := suite.request(http.MethodPost, "/api/v1/auth/change-password", adminSID, map[string]string{
		"currentPassword": "old-password",
		"newPassword":     "short",
		"confirmPassword": "short",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("New password must be at least 8 characters", suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestChangePassword_Success() {
	suite.auth.On("ChangePassword", mock.Anything, suite.admin, domain.PasswordChange{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	}).Return(nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/auth/change-password", adminSID, map[string]string{
		"currentPassword": "old-password",
		"newPassword":     "new-password",
		"confirmPassword": "new-password",
	})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.auth.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestLogout() {
	suite.auth.On("Logout", mock.Anything, adminSID).Return(nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/auth/logout", adminSID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.auth.AssertExpectations(suite.T())
}
