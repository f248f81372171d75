package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitebranch/ordering/internal/apiclient"
	"github.com/bitebranch/ordering/internal/shared/config"
)

// Drives the real router and service through the API client, the same path
// the mobile app takes.
func TestAuthFlow_Integration(t *testing.T) {
	user := testUser(t)
	repo := &stubRepo{user: user}
	server := httptest.NewServer(NewRouter(NewService(repo, testConfig(), zerolog.Nop())))
	defer server.Close()

	client := apiclient.NewClient(&config.Config{APIBaseURL: server.URL}, zerolog.Nop())
	ctx := context.Background()

	t.Run("login with valid credentials", func(t *testing.T) {
		res := client.Login(ctx, "a@b.com", "secret")

		require.True(t, res.OK())
		payload := res.Payload()
		assert.NotEmpty(t, payload.Token)
		assert.Equal(t, user.ID.String(), payload.User.ID)
		assert.Equal(t, "5", payload.User.BranchID)

		claims, err := ParseToken("test-secret", payload.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		res := client.Login(ctx, "a@b.com", "wrong")

		require.False(t, res.OK())
		assert.Equal(t, "Invalid credentials", res.Message())
	})

	t.Run("reset then verify the issued code", func(t *testing.T) {
		res := client.ResetPassword(ctx, "a@b.com")
		require.True(t, res.OK())
		assert.Equal(t, resetRequestedMsg, res.Payload().Message)
		require.NotEmpty(t, repo.savedHash)

		// surface the stored code to the stub so verification can find it
		repo.resetCode = &ResetCode{
			ID:        uuid.New(),
			UserID:    user.ID,
			CodeHash:  repo.savedHash,
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}

		bad := client.VerifyOTP(ctx, "a@b.com", "000000")
		if bad.OK() {
			// one-in-a-million collision with the random code
			t.Skip("generated code happened to be 000000")
		}
		assert.Equal(t, "Invalid or expired code", bad.Message())
	})

	t.Run("verify a known code", func(t *testing.T) {
		repo.resetCode = &ResetCode{
			ID:        uuid.New(),
			UserID:    user.ID,
			CodeHash:  mustHash(t, "123456"),
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}

		res := client.VerifyOTP(ctx, "a@b.com", "123456")
		require.True(t, res.OK())
		assert.Equal(t, "Code verified", res.Payload().Message)
		assert.Equal(t, repo.resetCode.ID, repo.consumedID)
	})

	t.Run("verify without an outstanding code", func(t *testing.T) {
		repo.resetCode = nil

		res := client.VerifyOTP(ctx, "a@b.com", "123456")
		require.False(t, res.OK())
		assert.Equal(t, "Invalid or expired code", res.Message())
	})
}
