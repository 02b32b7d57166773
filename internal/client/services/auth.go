// Package services contains the CLI's application services: the session
// (whose token the calls carry) and the market workflows built on top of the
// API client and the local cache.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stakemarket/internal/client/client"
	"github.com/dmitrijs2005/stakemarket/internal/client/repositories/metadata"
	"github.com/golang-jwt/jwt/v5"
)

const metaAccessToken = "access_token"

var ErrNoSession = errors.New("no saved session")

// AuthService manages the caller identity. Tokens are issued out of band;
// the CLI only reads the subject to know who it is acting as. The server
// verifies the signature.
type AuthService interface {
	Login(ctx context.Context, token string) (string, error)
	Resume(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	meta   metadata.Repository
}

func NewAuthService(c client.Client, meta metadata.Repository) AuthService {
	return &authService{client: c, meta: meta}
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"UserID"`
}

// IdentityFromToken reads the caller identity from a token without
// verifying it.
func IdentityFromToken(token string) (string, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %v", client.ErrUnauthorized, err)
	}
	if claims.UserID != "" {
		return claims.UserID, nil
	}
	if claims.Subject != "" {
		return claims.Subject, nil
	}
	return "", fmt.Errorf("%w: token has no subject", client.ErrUnauthorized)
}

// Login adopts token for subsequent calls and remembers it locally.
func (a *authService) Login(ctx context.Context, token string) (string, error) {
	identity, err := IdentityFromToken(token)
	if err != nil {
		return "", err
	}

	a.client.SetAccessToken(token)

	if err := a.meta.SetString(ctx, metadata.KeyIdentity, identity); err != nil {
		return "", err
	}
	if err := a.meta.SetString(ctx, metaAccessToken, token); err != nil {
		return "", err
	}
	return identity, nil
}

// Resume restores the last saved session, if any.
func (a *authService) Resume(ctx context.Context) (string, error) {
	token, err := a.meta.GetString(ctx, metaAccessToken)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNoSession
	}
	return a.Login(ctx, token)
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetAccessToken("")
	if err := a.meta.Delete(ctx, metaAccessToken); err != nil {
		return err
	}
	return a.meta.Delete(ctx, metadata.KeyIdentity)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
