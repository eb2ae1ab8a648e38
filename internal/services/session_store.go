package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"clinic-backend/internal/models"
)

// SessionStore persists sessions server side, keyed by token. Find returns
// (nil, nil) when no session exists for the token.
type SessionStore interface {
	Save(ctx context.Context, s *models.Session) error
	Find(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// SessionSweeper is implemented by stores that keep expired sessions until
// they are removed explicitly.
type SessionSweeper interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type dbSessionStore struct {
	db *gorm.DB
}

// NewDBSessionStore keeps sessions in the sessions table.
func NewDBSessionStore(db *gorm.DB) SessionStore {
	return &dbSessionStore{db: db}
}

func (s *dbSessionStore) Save(ctx context.Context, session *models.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *dbSessionStore) Find(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *dbSessionStore) Delete(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
}

// DeleteExpired removes every session that expired at or before before.
func (s *dbSessionStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", before).Delete(&models.Session{})
	return res.RowsAffected, res.Error
}

const redisSessionPrefix = "session:"

type redisSessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisSessionStore keeps sessions as JSON values expiring with the
// session itself.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client, now: time.Now}
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisSessionPrefix+session.Token, data, ttl).Err()
}

func (s *redisSessionStore) Find(ctx context.Context, token string) (*models.Session, error) {
	data, err := s.client.Get(ctx, redisSessionPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisSessionPrefix+token).Err()
}
