package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pricenexus/internal/logging"
)

// FirebaseConfig holds connection settings for the Firebase identity backend.
type FirebaseConfig struct {
	APIKey    string
	ProjectID string

	// IdentityBaseURL and FirestoreBaseURL override the Google endpoints,
	// mainly for tests.
	IdentityBaseURL  string
	FirestoreBaseURL string

	Timeout time.Duration
}

// DefaultFirebaseConfig returns production endpoint settings. The API key
// still has to be filled in by the caller.
func DefaultFirebaseConfig() FirebaseConfig {
	return FirebaseConfig{
		IdentityBaseURL:  "https://identitytoolkit.googleapis.com/v1",
		FirestoreBaseURL: "https://firestore.googleapis.com/v1",
		Timeout:          15 * time.Second,
	}
}

// FirebaseProvider implements Provider against the Firebase Auth REST API.
// After each successful sign-in it upserts a profile document so returning
// users keep their creation timestamp.
type FirebaseProvider struct {
	config     FirebaseConfig
	httpClient *http.Client
	now        func() time.Time
}

// NewFirebaseProvider validates the config and builds a provider.
func NewFirebaseProvider(config FirebaseConfig) (*FirebaseProvider, error) {
	if config.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if config.IdentityBaseURL == "" {
		config.IdentityBaseURL = DefaultFirebaseConfig().IdentityBaseURL
	}
	if config.FirestoreBaseURL == "" {
		config.FirestoreBaseURL = DefaultFirebaseConfig().FirestoreBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultFirebaseConfig().Timeout
	}
	return &FirebaseProvider{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		now:        time.Now,
	}, nil
}

// Simulated always reports false for the real backend.
func (p *FirebaseProvider) Simulated() bool { return false }

// Register creates an account via accounts:signUp.
func (p *FirebaseProvider) Register(ctx context.Context, email, password string) (User, error) {
	return p.authenticate(ctx, "accounts:signUp", email, password, true)
}

// SignIn authenticates via accounts:signInWithPassword.
func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (User, error) {
	return p.authenticate(ctx, "accounts:signInWithPassword", email, password, false)
}

type identityRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
	Error       struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *FirebaseProvider) authenticate(ctx context.Context, endpoint, email, password string, created bool) (User, error) {
	body, err := json.Marshal(identityRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return User{}, fmt.Errorf("auth: encoding request: %w", err)
	}

	u := fmt.Sprintf("%s/%s?key=%s", p.config.IdentityBaseURL, endpoint, url.QueryEscape(p.config.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return User{}, fmt.Errorf("auth: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		logging.AuthError("identity request failed: %v", err)
		return User{}, ErrNetwork
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return User{}, ErrNetwork
	}

	var parsed identityResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		logging.AuthError("identity response unreadable (status %d)", resp.StatusCode)
		return User{}, ErrNetwork
	}
	if resp.StatusCode != http.StatusOK {
		logging.Auth("identity backend rejected %s: %s", endpoint, parsed.Error.Message)
		return User{}, mapBackendError(parsed.Error.Message)
	}

	user := User{UID: parsed.LocalID, Email: parsed.Email, DisplayName: parsed.DisplayName}

	// Profile bookkeeping is best effort. An auth success never turns into
	// a failure because the profile write did not land.
	if err := p.upsertProfile(ctx, user, parsed.IDToken, created); err != nil {
		logging.AuthError("profile upsert failed for %s: %v", user.UID, err)
	}
	return user, nil
}

// mapBackendError converts an Identity Toolkit error code to a sentinel.
func mapBackendError(code string) error {
	switch {
	case code == "EMAIL_EXISTS":
		return ErrEmailInUse
	case code == "EMAIL_NOT_FOUND", code == "INVALID_PASSWORD",
		code == "INVALID_LOGIN_CREDENTIALS", code == "INVALID_EMAIL",
		code == "USER_DISABLED":
		return ErrInvalidCredentials
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return ErrWeakPassword
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS"):
		return ErrBlocked
	case code == "UNAUTHORIZED_DOMAIN", code == "INVALID_ORIGIN":
		return ErrUnauthorizedOrigin
	default:
		return fmt.Errorf("auth: backend error %s", code)
	}
}

type firestoreValue struct {
	StringValue    string `json:"stringValue,omitempty"`
	TimestampValue string `json:"timestampValue,omitempty"`
}

type firestoreDocument struct {
	Fields map[string]firestoreValue `json:"fields"`
}

// upsertProfile writes the user's profile document with merge semantics:
// lastLogin is refreshed on every sign-in, createdAt only on registration.
func (p *FirebaseProvider) upsertProfile(ctx context.Context, user User, idToken string, created bool) error {
	if p.config.ProjectID == "" || idToken == "" {
		return nil
	}

	now := p.now().UTC().Format(time.RFC3339)
	fields := map[string]firestoreValue{
		"email":     {StringValue: user.Email},
		"lastLogin": {TimestampValue: now},
	}
	masks := []string{"email", "lastLogin"}
	if user.DisplayName != "" {
		fields["displayName"] = firestoreValue{StringValue: user.DisplayName}
		masks = append(masks, "displayName")
	}
	if created {
		fields["createdAt"] = firestoreValue{TimestampValue: now}
		masks = append(masks, "createdAt")
	}

	body, err := json.Marshal(firestoreDocument{Fields: fields})
	if err != nil {
		return err
	}

	q := url.Values{}
	for _, m := range masks {
		q.Add("updateMask.fieldPaths", m)
	}
	u := fmt.Sprintf("%s/projects/%s/databases/(default)/documents/users/%s?%s",
		p.config.FirestoreBaseURL, p.config.ProjectID, url.PathEscape(user.UID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+idToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("firestore returned status %d", resp.StatusCode)
	}
	return nil
}
