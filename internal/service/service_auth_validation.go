package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/novera/internal/validators"
	"github.com/MKhiriev/novera/models"
)

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, input models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before registration: %w", err)
	}

	return v.inner.RegisterUser(ctx, input)
}

func (v *AuthValidationService) Login(ctx context.Context, input models.LoginRequest) (models.User, error) {
	return v.inner.Login(ctx, input)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) ResolveActiveUser(ctx context.Context, tokenString string) (models.User, error) {
	return v.inner.ResolveActiveUser(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
