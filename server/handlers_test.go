package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tech-arch1tect/signup/services/signup"
	"github.com/tech-arch1tect/signup/testutils"
)

func newTestServer(t *testing.T, notifier signup.Notifier) (*Server, *signup.GormStore) {
	t.Helper()

	cfg := testutils.GetTestConfig()
	db := testutils.SetupTestDB(t, &signup.Account{})
	store := signup.NewGormStore(db)

	svc, err := signup.NewService(cfg, store, notifier, nil)
	require.NoError(t, err)

	srv := New(cfg, nil)
	NewHandler(svc, nil).RegisterRoutes(srv)
	return srv, store
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func signupBody(name, email string) string {
	body, _ := json.Marshal(map[string]string{
		"name":         name,
		"email":        email,
		"password":     "x",
		"account_type": "user",
	})
	return string(body)
}

func TestHandler_Signup(t *testing.T) {
	t.Run("valid signup returns 201", func(t *testing.T) {
		notifier := &testutils.MockNotifier{}
		notifier.On("NotifySignup", "bob", "bob@example.com", mock.AnythingOfType("string")).Return(nil)
		srv, store := newTestServer(t, notifier)

		rec := doJSON(t, srv, http.MethodPost, "/signup", signupBody("bob", "bob@example.com"))

		assert.Equal(t, http.StatusCreated, rec.Code)
		account, err := store.FindByName("bob")
		require.NoError(t, err)
		assert.NotNil(t, account)
	})

	t.Run("validation failure returns 422 with a stable code", func(t *testing.T) {
		srv, _ := newTestServer(t, &testutils.MockNotifier{})

		rec := doJSON(t, srv, http.MethodPost, "/signup", signupBody("Bob", "bob@example.com"))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, signup.CodeNameNotLowercase, resp["code"])
	})

	t.Run("duplicate name returns 409", func(t *testing.T) {
		notifier := &testutils.MockNotifier{}
		notifier.On("NotifySignup", "bob", "bob@example.com", mock.AnythingOfType("string")).Return(nil)
		srv, _ := newTestServer(t, notifier)
		doJSON(t, srv, http.MethodPost, "/signup", signupBody("bob", "bob@example.com"))

		rec := doJSON(t, srv, http.MethodPost, "/signup", signupBody("bob", "other@example.com"))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("duplicate email is indistinguishable from success", func(t *testing.T) {
		notifier := &testutils.MockNotifier{}
		notifier.On("NotifySignup", "bob", "bob@example.com", mock.AnythingOfType("string")).Return(nil)
		notifier.On("NotifyDuplicate", "bob", "bob@example.com").Return(nil)
		srv, store := newTestServer(t, notifier)

		fresh := doJSON(t, srv, http.MethodPost, "/signup", signupBody("bob", "bob@example.com"))
		duplicate := doJSON(t, srv, http.MethodPost, "/signup", signupBody("robert", "bob@example.com"))

		assert.Equal(t, fresh.Code, duplicate.Code)
		assert.Equal(t, fresh.Body.String(), duplicate.Body.String())

		account, err := store.FindByName("robert")
		require.NoError(t, err)
		assert.Nil(t, account)
		notifier.AssertExpectations(t)
	})
}

func TestHandler_Resend(t *testing.T) {
	t.Run("unknown email returns 404", func(t *testing.T) {
		srv, _ := newTestServer(t, &testutils.MockNotifier{})

		rec := doJSON(t, srv, http.MethodPost, "/signup/resend", `{"email":"nobody@example.com"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("already verified returns 409", func(t *testing.T) {
		srv, store := newTestServer(t, &testutils.MockNotifier{})
		now := time.Now()
		require.NoError(t, store.Create(&signup.Account{
			Name:            "bob",
			Email:           "bob@example.com",
			Password:        "x",
			AccountType:     "user",
			EmailVerified:   true,
			EmailVerifiedAt: &now,
		}))

		rec := doJSON(t, srv, http.MethodPost, "/signup/resend", `{"email":"bob@example.com"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("pending account returns 202", func(t *testing.T) {
		notifier := &testutils.MockNotifier{}
		notifier.On("NotifySignup", "bob", "bob@example.com", mock.AnythingOfType("string")).Return(nil)
		notifier.On("NotifyResend", "bob", "bob@example.com", mock.AnythingOfType("string")).Return(nil)
		srv, _ := newTestServer(t, notifier)
		doJSON(t, srv, http.MethodPost, "/signup", signupBody("bob", "bob@example.com"))

		rec := doJSON(t, srv, http.MethodPost, "/signup/resend", `{"email":"bob@example.com"}`)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		notifier.AssertExpectations(t)
	})

	t.Run("malformed email returns 422", func(t *testing.T) {
		srv, _ := newTestServer(t, &testutils.MockNotifier{})

		rec := doJSON(t, srv, http.MethodPost, "/signup/resend", `{"email":"nope"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestHandler_Verify(t *testing.T) {
	t.Run("malformed token returns 404", func(t *testing.T) {
		srv, _ := newTestServer(t, &testutils.MockNotifier{})

		rec := doJSON(t, srv, http.MethodGet, "/verify/not-a-token", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown token returns 404", func(t *testing.T) {
		srv, _ := newTestServer(t, &testutils.MockNotifier{})

		rec := doJSON(t, srv, http.MethodGet, "/verify/abcdef0123456789abcdef", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("expired token returns 410", func(t *testing.T) {
		srv, store := newTestServer(t, &testutils.MockNotifier{})
		token := "abcdef0123456789abcdef"
		expires := time.Now().Add(-time.Hour)
		require.NoError(t, store.Create(&signup.Account{
			Name:               "bob",
			Email:              "bob@example.com",
			Password:           "x",
			AccountType:        "user",
			SignupToken:        &token,
			SignupTokenExpires: &expires,
		}))

		rec := doJSON(t, srv, http.MethodGet, "/verify/"+token, "")

		assert.Equal(t, http.StatusGone, rec.Code)
	})

	t.Run("valid token verifies once then 404s", func(t *testing.T) {
		notifier := &testutils.MockNotifier{}
		notifier.On("NotifySignup", "bob", "bob@example.com", mock.AnythingOfType("string")).Return(nil)
		srv, store := newTestServer(t, notifier)
		doJSON(t, srv, http.MethodPost, "/signup", signupBody("bob", "bob@example.com"))

		account, err := store.FindByName("bob")
		require.NoError(t, err)
		require.NotNil(t, account.SignupToken)
		token := *account.SignupToken

		rec := doJSON(t, srv, http.MethodGet, "/verify/"+token, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "bob", resp["name"])

		rec = doJSON(t, srv, http.MethodGet, "/verify/"+token, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
