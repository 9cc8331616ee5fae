package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/logistics-portal/internal/core/domain"
)

// fallbackRevocationTTL applies to claims without an expiry.
const fallbackRevocationTTL = 24 * time.Hour

// RevocationStore keeps the ids of sessions signed out before their token
// expired. Entries expire together with the token they revoke.
// Key format: session:revoked:<session_id>
type RevocationStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRevocationStore creates a RevocationStore wrapping the given Redis client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client, now: time.Now}
}

// IsRevoked reports whether sessionID has been signed out.
func (s *RevocationStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

// Revoke implements ports.SessionRevoker.
func (s *RevocationStore) Revoke(ctx context.Context, claim *domain.SessionClaim) error {
	if claim == nil || claim.SessionID == "" {
		return fmt.Errorf("revoke session: %w", domain.ErrNoSession)
	}

	ttl := fallbackRevocationTTL
	if !claim.ExpiresAt.IsZero() {
		ttl = claim.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			// Already expired; nothing left to revoke.
			return nil
		}
	}

	if err := s.client.Set(ctx, s.key(claim.SessionID), claim.Email, ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *RevocationStore) key(sessionID string) string {
	return "session:revoked:" + sessionID
}
