package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/edu-licensing/pkg/auth"
	"github.com/stretchr/testify/require"
)

func TestTokens_IssueVerify(t *testing.T) {
	t.Parallel()
	tokens := auth.NewTokens(auth.Config{Secret: "secret", TokenTTL: time.Hour})

	raw, exp, err := tokens.Issue(7, "admin@edu.br", "admin")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, 7, claims.ID)
	require.Equal(t, "admin@edu.br", claims.Email)
	require.Equal(t, "admin", claims.UserType)

	ctx := auth.SetAuthContext(context.Background(), claims)
	got, ok := auth.FromContext(ctx)
	require.True(t, ok)
	require.Equal(t, claims, got)
}

func TestTokens_VerifyRejects(t *testing.T) {
	t.Parallel()
	tokens := auth.NewTokens(auth.Config{Secret: "secret", TokenTTL: time.Hour})
	other := auth.NewTokens(auth.Config{Secret: "other", TokenTTL: time.Hour})
	fallback := auth.NewTokens(auth.Config{Secret: "secret", TokenTTL: -time.Hour})

	foreign, _, err := other.Issue(1, "a@b.c", "admin")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "foreign signature", token: foreign},
		{name: "empty", token: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tokens.Verify(tt.token)
			require.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}

	// a non-positive ttl falls back to one hour
	raw, _, err := fallback.Issue(1, "a@b.c", "admin")
	require.NoError(t, err)
	_, err = tokens.Verify(raw)
	require.NoError(t, err)
}

func TestPassword(t *testing.T) {
	t.Parallel()
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)
	require.True(t, auth.CheckPassword(hash, "s3cret"))
	require.False(t, auth.CheckPassword(hash, "wrong"))
}
