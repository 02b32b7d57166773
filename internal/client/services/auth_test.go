package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/client/client"
	"github.com/dmitrijs2005/stakemarket/internal/client/repositories/metadata"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestIdentityFromToken(t *testing.T) {
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{"user id claim", signed(t, tokenClaims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}, UserID: "alice"}), "alice", false},
		{"subject fallback", signed(t, jwt.RegisteredClaims{Subject: "bob", ExpiresAt: exp}), "bob", false},
		{"no subject", signed(t, jwt.RegisteredClaims{ExpiresAt: exp}), "", true},
		{"garbage", "not-a-jwt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IdentityFromToken(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, client.ErrUnauthorized)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_LoginResumeLogout(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	fc := newFakeClient()
	a := NewAuthService(fc, repos.Metadata)

	_, err := a.Resume(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	token := signed(t, tokenClaims{UserID: "alice"})
	id, err := a.Login(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", id)
	assert.Equal(t, token, fc.token)

	stored, err := repos.Metadata.GetString(ctx, metadata.KeyIdentity)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored)

	fc.token = ""
	id, err = a.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", id)
	assert.Equal(t, token, fc.token)

	require.NoError(t, a.Logout(ctx))
	assert.Empty(t, fc.token)
	_, err = a.Resume(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAuthService_LoginRejectsBadToken(t *testing.T) {
	repos := newTestRepos(t)
	fc := newFakeClient()
	a := NewAuthService(fc, repos.Metadata)

	_, err := a.Login(context.Background(), "nope")
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Empty(t, fc.token)
}

func TestAuthService_Ping(t *testing.T) {
	fc := newFakeClient()
	fc.pingErr = client.ErrUnavailable
	a := NewAuthService(fc, newTestRepos(t).Metadata)
	assert.ErrorIs(t, a.Ping(context.Background()), client.ErrUnavailable)
}
