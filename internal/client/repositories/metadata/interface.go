// Package metadata persists small client-side facts between runs: the last
// known user id and the phone number a verification SMS was sent to. The
// backend remains the source of truth; this cache only pre-fills prompts
// and recovers pending verification state after a restart.
package metadata

import "context"

// Well-known cache keys.
const (
	KeyUserID = "user_id"
	KeyPhone  = "phone"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	List(ctx context.Context) (map[string][]byte, error)
}
