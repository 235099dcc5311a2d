package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hotline/internal/session/models"
	"hotline/pkg/platform/sentinel"
)

const (
	sessionKeyPrefix = "hotline:session:"
	smsClaimPrefix   = "hotline:sms:"
)

// RedisStore keeps each session as a JSON value with a TTL, and the SMS
// claim as a separate SETNX key so the claim is atomic across replicas.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedis(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, callSID string) (*models.Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+callSID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w: %w", callSID, sentinel.ErrUnavailable, err)
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", callSID, err)
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.CallSID, err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.CallSID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w: %w", session.CallSID, sentinel.ErrUnavailable, err)
	}
	return nil
}

func (s *RedisStore) ClaimSMS(ctx context.Context, callSID string) error {
	ok, err := s.client.SetNX(ctx, smsClaimPrefix+callSID, time.Now().Unix(), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("claim sms %s: %w: %w", callSID, sentinel.ErrUnavailable, err)
	}
	if !ok {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}

func (s *RedisStore) ReleaseSMS(ctx context.Context, callSID string) error {
	if err := s.client.Del(ctx, smsClaimPrefix+callSID).Err(); err != nil {
		return fmt.Errorf("release sms %s: %w: %w", callSID, sentinel.ErrUnavailable, err)
	}
	return nil
}
