package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinic-backend/internal/apperr"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"
)

// SessionAuthority issues and checks the session token a caller presents.
// The token is a signed envelope around a server-side session id; a token is
// only honoured while its session record exists and has not expired.
type SessionAuthority struct {
	store  SessionStore
	signer *utils.TokenSigner
	ttl    time.Duration
	log    *zap.Logger
	now    func() time.Time
}

func NewSessionAuthority(store SessionStore, signer *utils.TokenSigner, ttl time.Duration, log *zap.Logger) *SessionAuthority {
	return &SessionAuthority{
		store:  store,
		signer: signer,
		ttl:    ttl,
		log:    log,
		now:    time.Now,
	}
}

// Establish clears the prior session (if any) and opens a new one for the
// account, returning the token to hand back to the caller.
func (a *SessionAuthority) Establish(ctx context.Context, prior string, class models.AccountClass, accountID uint64) (string, *models.Session, error) {
	if err := a.Clear(ctx, prior); err != nil {
		return "", nil, err
	}

	now := a.now()
	session := &models.Session{
		Token:        uuid.NewString(),
		AccountID:    accountID,
		AccountClass: class,
		CreatedAt:    now,
		ExpiresAt:    now.Add(a.ttl),
	}
	if err := a.store.Save(ctx, session); err != nil {
		a.log.Error("failed to save session", zap.String("class", string(class)), zap.Uint64("account_id", accountID), zap.Error(err))
		return "", nil, apperr.Persistence("Oops! An error occurred!", err)
	}

	token, err := a.signer.GenerateToken(session.Token, accountID, string(class), session.ExpiresAt)
	if err != nil {
		_ = a.store.Delete(ctx, session.Token)
		return "", nil, apperr.Persistence("Oops! An error occurred!", err)
	}
	return token, session, nil
}

// Current returns the live session behind token, or nil when there is none.
func (a *SessionAuthority) Current(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := a.signer.ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	session, err := a.store.Find(ctx, claims.SessionID)
	if err != nil {
		a.log.Error("failed to load session", zap.Error(err))
		return nil, apperr.Persistence("Oops! An error occurred!", err)
	}
	if session == nil {
		return nil, nil
	}
	if session.IsExpiredAt(a.now()) {
		if err := a.store.Delete(ctx, session.Token); err != nil {
			a.log.Warn("failed to drop expired session", zap.Error(err))
		}
		return nil, nil
	}
	if session.AccountID != claims.AccountID() || string(session.AccountClass) != claims.Class {
		return nil, nil
	}
	return session, nil
}

// Require returns the session behind token when it belongs to class, and an
// UNAUTHORIZED error otherwise.
func (a *SessionAuthority) Require(ctx context.Context, token string, class models.AccountClass) (*models.Session, error) {
	session, err := a.Current(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.AccountClass != class {
		return nil, apperr.Unauthorized("login required")
	}
	return session, nil
}

// Clear destroys the session behind token. Unknown or malformed tokens are
// ignored.
func (a *SessionAuthority) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := a.signer.ValidateToken(token)
	if err != nil {
		return nil
	}
	if err := a.store.Delete(ctx, claims.SessionID); err != nil {
		a.log.Error("failed to delete session", zap.Error(err))
		return apperr.Persistence("Oops! An error occurred!", err)
	}
	return nil
}

// Sweep deletes expired sessions from stores that do not expire them on
// their own. It returns how many were removed.
func (a *SessionAuthority) Sweep(ctx context.Context) (int64, error) {
	sweeper, ok := a.store.(SessionSweeper)
	if !ok {
		return 0, nil
	}
	n, err := sweeper.DeleteExpired(ctx, a.now())
	if err != nil {
		a.log.Error("failed to sweep expired sessions", zap.Error(err))
		return 0, err
	}
	if n > 0 {
		a.log.Info("swept expired sessions", zap.Int64("count", n))
	}
	return n, nil
}

// RunSweep calls Sweep every interval until ctx is done.
func (a *SessionAuthority) RunSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_, _ = a.Sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}
