package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityStub fakes the Identity Toolkit endpoints.
func identityStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(t *testing.T, identityURL, firestoreURL string) *FirebaseProvider {
	t.Helper()
	p, err := NewFirebaseProvider(FirebaseConfig{
		APIKey:           "test-key",
		ProjectID:        "test-project",
		IdentityBaseURL:  identityURL,
		FirestoreBaseURL: firestoreURL,
		Timeout:          2 * time.Second,
	})
	require.NoError(t, err)
	return p
}

func TestNewFirebaseProviderRequiresKey(t *testing.T) {
	_, err := NewFirebaseProvider(FirebaseConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSignInSuccess(t *testing.T) {
	var profileWrites atomic.Int64

	backend := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/accounts:signInWithPassword":
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			var req identityRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "jane@example.com", req.Email)
			fmt.Fprint(w, `{"localId":"uid-1","email":"jane@example.com","idToken":"tok"}`)
		case r.Method == http.MethodPatch:
			profileWrites.Add(1)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			assert.Contains(t, r.URL.Path, "/documents/users/uid-1")
			assert.Contains(t, r.URL.Query()["updateMask.fieldPaths"], "lastLogin")
			assert.NotContains(t, r.URL.Query()["updateMask.fieldPaths"], "createdAt")
			fmt.Fprint(w, `{}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL)
		}
	})

	p := newTestProvider(t, backend.URL, backend.URL)
	user, err := p.SignIn(context.Background(), "jane@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, User{UID: "uid-1", Email: "jane@example.com"}, user)
	assert.Equal(t, int64(1), profileWrites.Load())
}

func TestRegisterStampsCreatedAt(t *testing.T) {
	backend := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/accounts:signUp":
			fmt.Fprint(w, `{"localId":"uid-2","email":"new@example.com","idToken":"tok"}`)
		case r.Method == http.MethodPatch:
			assert.Contains(t, r.URL.Query()["updateMask.fieldPaths"], "createdAt")
			fmt.Fprint(w, `{}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL)
		}
	})

	p := newTestProvider(t, backend.URL, backend.URL)
	user, err := p.Register(context.Background(), "new@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "uid-2", user.UID)
}

func TestBackendErrorMapping(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"EMAIL_EXISTS", ErrEmailInUse},
		{"EMAIL_NOT_FOUND", ErrInvalidCredentials},
		{"INVALID_PASSWORD", ErrInvalidCredentials},
		{"INVALID_LOGIN_CREDENTIALS", ErrInvalidCredentials},
		{"WEAK_PASSWORD : Password should be at least 6 characters", ErrWeakPassword},
		{"TOO_MANY_ATTEMPTS_TRY_LATER", ErrBlocked},
		{"UNAUTHORIZED_DOMAIN", ErrUnauthorizedOrigin},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			backend := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintf(w, `{"error":{"message":%q}}`, tt.code)
			})
			p := newTestProvider(t, backend.URL, backend.URL)
			_, err := p.SignIn(context.Background(), "x@example.com", "pw")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnknownBackendErrorIsNotSwallowed(t *testing.T) {
	backend := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"OPERATION_NOT_ALLOWED"}}`)
	})
	p := newTestProvider(t, backend.URL, backend.URL)
	_, err := p.SignIn(context.Background(), "x@example.com", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPERATION_NOT_ALLOWED")
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	backend := identityStub(t, func(w http.ResponseWriter, r *http.Request) {})
	backend.Close() // force connection refused

	p := newTestProvider(t, backend.URL, backend.URL)
	_, err := p.SignIn(context.Background(), "x@example.com", "pw")
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestProfileFailureDoesNotFailSignIn(t *testing.T) {
	backend := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, `{"localId":"uid-3","email":"jane@example.com","idToken":"tok"}`)
	})

	p := newTestProvider(t, backend.URL, backend.URL)
	user, err := p.SignIn(context.Background(), "jane@example.com", "pw")
	require.NoError(t, err, "auth success must survive a failed profile write")
	assert.Equal(t, "uid-3", user.UID)
}
