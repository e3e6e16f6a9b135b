package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedSignIn(t *testing.T) {
	p := NewSimulatedProvider(0)
	require.True(t, p.Simulated())

	user, err := p.SignIn(context.Background(), "jane.doe@example.com", "anything")
	require.NoError(t, err)
	assert.NotEmpty(t, user.UID)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, "Jane Doe", user.DisplayName)
}

func TestSimulatedRejectsEmptyEmail(t *testing.T) {
	p := NewSimulatedProvider(0)
	_, err := p.SignIn(context.Background(), "   ", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSimulatedHonorsCancellation(t *testing.T) {
	p := NewSimulatedProvider(5 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.SignIn(ctx, "jane@example.com", "pw")
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestDisplayNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane.doe@example.com", "Jane Doe"},
		{"sam@example.com", "Sam"},
		{"a_b-c@example.com", "A B C"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayNameFromEmail(tt.email))
	}
}

func TestMessageMapping(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "Invalid email or password.", Message(ErrInvalidCredentials))
	assert.Equal(t, "An account with this email already exists. Try signing in.", Message(ErrEmailInUse))
	assert.Equal(t, "Something went wrong. Please try again.", Message(context.DeadlineExceeded))
}
