// internal/services/identity.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/urbannest/storefront/internal/models"
	"github.com/urbannest/storefront/internal/utils"
)

// IdentityGate is the narrow capability checkout consults to decide
// whether an order is attributed to a user or is a guest order. It is a
// pure query; checkout never mutates it.
type IdentityGate interface {
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) *models.User
}

// AuthIdentity resolves the current user from the id the auth
// middleware attached to the request context.
type AuthIdentity struct {
	auth *AuthService
}

func NewAuthIdentity(auth *AuthService) *AuthIdentity {
	return &AuthIdentity{auth: auth}
}

func (g *AuthIdentity) IsAuthenticated(ctx context.Context) bool {
	return g.CurrentUser(ctx) != nil
}

func (g *AuthIdentity) CurrentUser(ctx context.Context) *models.User {
	raw, ok := utils.UserIDFromContext(ctx)
	if !ok {
		return nil
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	user, err := g.auth.GetUserByID(userID)
	if err != nil {
		return nil
	}
	return user
}

// StaticIdentity pins the gate to one known user (or to nobody when
// nil). Used by tests and guest-only deployments.
type StaticIdentity struct {
	User *models.User
}

func (g *StaticIdentity) IsAuthenticated(ctx context.Context) bool {
	return g.User != nil
}

func (g *StaticIdentity) CurrentUser(ctx context.Context) *models.User {
	return g.User
}
