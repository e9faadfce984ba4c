package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSignupRejectsMalformedBody(t *testing.T) {
	controller := NewAuthController(nil)
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/signup", "{not json")

	require.NoError(t, controller.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignupRejectsMissingFields(t *testing.T) {
	controller := NewAuthController(nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "invalid email", body: `{"email":"not-an-email","password":"secret123","firstName":"Awa","lastName":"Diop","phone":"+221771234567","country":"Senegal"}`},
		{name: "short password", body: `{"email":"awa@example.com","password":"short","firstName":"Awa","lastName":"Diop","phone":"+221771234567","country":"Senegal"}`},
		{name: "missing name", body: `{"email":"awa@example.com","password":"secret123","phone":"+221771234567","country":"Senegal"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodPost, "/api/auth/signup", tt.body)
			require.NoError(t, controller.Signup(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLoginRejectsInvalidPayload(t *testing.T) {
	controller := NewAuthController(nil)

	for _, body := range []string{"{not json", `{}`, `{"email":"bad","password":"x"}`} {
		c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", body)
		require.NoError(t, controller.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestGetMeRequiresToken(t *testing.T) {
	controller := NewAuthController(nil)
	c, rec := newTestContext(t, http.MethodGet, "/api/auth/me", "")

	require.NoError(t, controller.GetMe(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
