package usecase

import (
	"workshop-quotes/internal/domain/staff"
	"workshop-quotes/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (staff.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (staff.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return staff.Actor{}, err
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return staff.Actor{}, err
	}

	return staff.Actor{
		UserID:   claims.UserID,
		TenantID: claims.TenantID,
		Role:     role,
	}, nil
}
