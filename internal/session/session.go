// Package session is the single source of truth for the signed-in user's
// token and role. Both used to be re-synchronized between two stores; here
// one redis-backed record, keyed by an opaque cookie, carries everything.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CookieName is the browser cookie holding the opaque session id.
const CookieName = "ld_session"

const (
	keyPrefix  = "ldsess:"
	defaultTTL = 12 * time.Hour
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

var ErrNoSession = errors.New("session: not signed in")

// Session is what the gateway remembers about a signed-in user. Token is
// the HR core bearer token, attached to every upstream call.
type Session struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
}

type Store struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewStore(rdb *redis.Client, logger ...*zap.Logger) *Store {
	l := zap.L().Named("session")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session")
	}
	return &Store{rdb: rdb, ttl: defaultTTL, logger: l}
}

func (s *Store) WithTTL(ttl time.Duration) *Store {
	s.ttl = ttl
	return s
}

// Login persists sess and returns the new session id.
func (s *Store) Login(ctx context.Context, sess Session) (string, error) {
	sid := uuid.NewString()
	raw, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+sid, raw, s.ttl).Err(); err != nil {
		return "", err
	}
	s.logger.Info("session created",
		zap.String("role", sess.Role),
		zap.String("employee_id", sess.EmployeeID),
	)
	return sid, nil
}

// Current loads the session for sid. A missing record, or a stored token
// that has already expired, both come back as ErrNoSession so the caller
// lands on the login view instead of bouncing 401s off the HR core.
func (s *Store) Current(ctx context.Context, sid string) (Session, error) {
	if sid == "" {
		return Session{}, ErrNoSession
	}
	raw, err := s.rdb.Get(ctx, keyPrefix+sid).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNoSession
		}
		return Session{}, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.logger.Warn("session record corrupt, dropping", zap.Error(err))
		_ = s.rdb.Del(ctx, keyPrefix+sid).Err()
		return Session{}, ErrNoSession
	}
	if tokenExpired(sess.Token) {
		s.logger.Debug("session token expired", zap.String("employee_id", sess.EmployeeID))
		_ = s.rdb.Del(ctx, keyPrefix+sid).Err()
		return Session{}, ErrNoSession
	}
	return sess, nil
}

// Logout drops the session record. Unknown ids are not an error.
func (s *Store) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.rdb.Del(ctx, keyPrefix+sid).Err()
}

// tokenExpired inspects the token's exp claim without verifying the
// signature. The gateway does not hold the HR core's signing key and is
// not a trust boundary; this only avoids keeping sessions alive past the
// token they carry. Tokens that do not parse as JWTs are left to the HR
// core to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
