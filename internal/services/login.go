package services

import (
	"context"

	"clinic-backend/internal/apperr"
	"clinic-backend/internal/models"
)

// LoginService runs the login flow shared by the three account classes.
type LoginService struct {
	credentials *CredentialStore
	sessions    *SessionAuthority
}

func NewLoginService(credentials *CredentialStore, sessions *SessionAuthority) *LoginService {
	return &LoginService{credentials: credentials, sessions: sessions}
}

// Login clears the prior session before looking at the credentials, so a
// failed attempt still logs the caller out.
func (s *LoginService) Login(ctx context.Context, prior string, class models.AccountClass, in models.LoginInput) (string, *models.Session, error) {
	if err := s.sessions.Clear(ctx, prior); err != nil {
		return "", nil, err
	}

	identifying := in.Identifier(class)
	if identifying == "" {
		if class == models.ClassAdmin {
			return "", nil, apperr.Validation("Must provide username")
		}
		return "", nil, apperr.Validation("Must provide Email ID")
	}
	if in.Password == "" {
		return "", nil, apperr.Validation("Must provide password")
	}

	id, err := s.credentials.Verify(ctx, class, identifying, in.Password)
	if err != nil {
		return "", nil, err
	}
	return s.sessions.Establish(ctx, "", class, id)
}
