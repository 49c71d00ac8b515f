package usecase

import (
	"slotswapper/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator abstracts token checks so middleware does not depend on the
// signing implementation.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

type jwtTokenValidator struct {
	service *jwt.Service
}

func NewTokenValidator(service *jwt.Service) TokenValidator {
	return &jwtTokenValidator{service: service}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, error) {
	claims, err := v.service.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
