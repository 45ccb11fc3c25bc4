// Package services implements the gateway operations of the client: each
// operation runs its local validations, calls the REST API, and mutates the
// shared state store. The verification gate (EvaluateGate) decides which
// remediation step to run when a gated action is blocked.
package services

import (
	"context"
	"strconv"
	"time"

	"blogcli/internal/client/api"
	"blogcli/internal/client/repositories/metadata"
	"blogcli/internal/client/state"
	"blogcli/internal/logging"
)

// afterFunc schedules the delayed post-login prompts. Package variable so
// tests can run the callbacks synchronously.
var afterFunc = func(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// successMessageTTL is how long a transient form success message stays
// before auto-clearing.
const successMessageTTL = 3 * time.Second

// Services wires the per-concern gateway services over one API client,
// state store, and local cache. The cross-references (login refreshing the
// blog list, the gate firing OTP requests) go through the parent struct.
type Services struct {
	client api.Client
	store  *state.Store
	meta   metadata.Repository
	logger logging.Logger

	promptDelay time.Duration
	confirm     func(prompt string) bool

	Auth     *AuthService
	Blogs    *BlogService
	Comments *CommentService
	Users    *UserService
	AI       *AIService
}

// New builds the service set. promptDelay is the pause before post-login
// remediation prompts, so they do not collide with the closing login dialog.
func New(client api.Client, store *state.Store, meta metadata.Repository, logger logging.Logger, promptDelay time.Duration) *Services {
	s := &Services{
		client:      client,
		store:       store,
		meta:        meta,
		logger:      logger,
		promptDelay: promptDelay,
		confirm:     func(string) bool { return false },
	}
	s.Auth = &AuthService{s: s}
	s.Blogs = &BlogService{s: s}
	s.Comments = &CommentService{s: s}
	s.Users = &UserService{s: s}
	s.AI = &AIService{s: s}
	return s
}

// SetConfirm installs the blocking yes/no prompt used before destructive or
// content-replacing actions. The default declines everything.
func (s *Services) SetConfirm(fn func(prompt string) bool) {
	s.confirm = fn
}

// cachePhone remembers the phone number and owning user id across runs.
func (s *Services) cachePhone(ctx context.Context, userID int64, phone string) {
	if s.meta == nil {
		return
	}
	if err := s.meta.Set(ctx, metadata.KeyPhone, []byte(phone)); err != nil {
		s.logger.Debug(ctx, "failed to cache phone", "error", err)
		return
	}
	if err := s.meta.Set(ctx, metadata.KeyUserID, []byte(strconv.FormatInt(userID, 10))); err != nil {
		s.logger.Debug(ctx, "failed to cache user id", "error", err)
	}
}

// cachedPhone returns the stored phone number, but only when it was cached
// for the same user id.
func (s *Services) cachedPhone(ctx context.Context, userID int64) string {
	if s.meta == nil {
		return ""
	}
	idRaw, err := s.meta.Get(ctx, metadata.KeyUserID)
	if err != nil || len(idRaw) == 0 {
		return ""
	}
	id, err := strconv.ParseInt(string(idRaw), 10, 64)
	if err != nil || id != userID {
		return ""
	}
	phoneRaw, err := s.meta.Get(ctx, metadata.KeyPhone)
	if err != nil {
		return ""
	}
	return string(phoneRaw)
}

func (s *Services) clearCache(ctx context.Context) {
	if s.meta == nil {
		return
	}
	if err := s.meta.Clear(ctx); err != nil {
		s.logger.Debug(ctx, "failed to clear local cache", "error", err)
	}
}
