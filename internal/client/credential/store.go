package credential

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// DefaultSkew is how long before expiry a token set is treated as stale.
const DefaultSkew = 60 * time.Second

// DefaultRefreshTimeout bounds a shared refresh, which outlives the callers waiting on it.
const DefaultRefreshTimeout = 30 * time.Second

const refreshKey = "refresh"

// Refresher exchanges a refresh token for a new token set.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*TokenSet, error)
}

// Option configures a Store.
type Option func(*Store)

// WithSkew overrides DefaultSkew.
func WithSkew(skew time.Duration) Option {
	return func(s *Store) {
		s.skew = skew
	}
}

// WithRefreshTimeout overrides DefaultRefreshTimeout.
func WithRefreshTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		s.refreshTimeout = timeout
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger used for refresh events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store is the single owner of the persisted token set.
// At most one refresh runs at a time; concurrent GetValid callers share its result.
// Every Save and Clear starts a new epoch, and a refresh only persists into the epoch it started in.
type Store struct {
	backend        Backend
	refresher      Refresher
	skew           time.Duration
	refreshTimeout time.Duration
	now            func() time.Time
	logger         *slog.Logger

	mu     sync.Mutex
	cached *TokenSet
	loaded bool
	epoch  uint64

	refreshes singleflight.Group
}

// NewStore builds a Store over backend.
func NewStore(backend Backend, refresher Refresher, opts ...Option) *Store {
	s := &Store{
		backend:        backend,
		refresher:      refresher,
		skew:           DefaultSkew,
		refreshTimeout: DefaultRefreshTimeout,
		now:            time.Now,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Save persists tokens, replacing any previous set.
func (s *Store) Save(tokens *TokenSet) error {
	if !tokens.Valid() {
		return errors.New("token set requires an access token and an expiry")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeLocked(tokens)
}

// Load returns a copy of the stored set, or ErrNoCredentials.
func (s *Store) Load() (*TokenSet, error) {
	tokens, _, err := s.snapshot()

	return tokens, err
}

// HasValid reports whether a non-expired set is stored. It never refreshes.
func (s *Store) HasValid() bool {
	tokens, err := s.Load()
	if err != nil {
		return false
	}

	return tokens.FreshAt(s.now(), s.skew)
}

// GetValid returns the stored set, refreshing it first when it is within skew of expiry.
// The shared refresh is detached from any single caller; ctx only bounds this caller's wait.
func (s *Store) GetValid(ctx context.Context) (*TokenSet, error) {
	tokens, err := s.Load()
	if err != nil {
		return nil, err
	}
	if tokens.FreshAt(s.now(), s.skew) {
		return tokens, nil
	}

	results := s.refreshes.DoChan(refreshKey, func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.refreshTimeout)
		defer cancel()

		return s.refresh(refreshCtx)
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "wait for refresh")
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}

		return result.Val.(*TokenSet).clone(), nil
	}
}

// Clear erases the stored set. Subsequent Load calls return ErrNoCredentials,
// and a refresh already in flight will not write its result back.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clearLocked()
}

func (s *Store) refresh(ctx context.Context) (*TokenSet, error) {
	// A refresh that finished just before this one started may already have replaced the set.
	current, epoch, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if current.FreshAt(s.now(), s.skew) {
		return current, nil
	}

	if current.RefreshToken == "" {
		if err := s.clearIfEpoch(epoch); err != nil {
			return nil, err
		}

		return nil, errors.Wrap(ErrCredentialsInvalid, "no refresh token stored")
	}

	s.logger.Debug("Refreshing access token", slog.Time("expires_at", current.ExpiresAt))

	next, err := s.refresher.Refresh(ctx, current.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrRefreshRejected) {
			s.logger.Info("Refresh token rejected, clearing stored credentials")
			if clearErr := s.clearIfEpoch(epoch); clearErr != nil {
				return nil, clearErr
			}

			return nil, errors.Wrapf(ErrCredentialsInvalid, "refresh: %v", err)
		}

		return nil, errors.Wrap(err, "refresh access token")
	}

	if next.RefreshToken == "" {
		next.RefreshToken = current.RefreshToken
	}

	return s.saveIfEpoch(next, epoch)
}

// saveIfEpoch persists a refreshed set only if nothing was saved or cleared since the refresh began.
// Otherwise the newer state wins: a replacement set is returned as is, a cleared store stays cleared.
func (s *Store) saveIfEpoch(next *TokenSet, epoch uint64) (*TokenSet, error) {
	if !next.Valid() {
		return nil, errors.New("refresh returned an incomplete token set")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		if s.cached == nil {
			return nil, errors.Wrap(ErrCredentialsInvalid, "credentials cleared during refresh")
		}

		return s.cached.clone(), nil
	}

	if err := s.writeLocked(next); err != nil {
		return nil, err
	}

	return next.clone(), nil
}

func (s *Store) clearIfEpoch(epoch uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		return nil
	}

	return s.clearLocked()
}

func (s *Store) snapshot() (*TokenSet, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, 0, err
	}
	if s.cached == nil {
		return nil, s.epoch, errors.WithStack(ErrNoCredentials)
	}

	return s.cached.clone(), s.epoch, nil
}

func (s *Store) writeLocked(tokens *TokenSet) error {
	if err := s.backend.Write(tokens); err != nil {
		return errors.Wrap(err, "persist token set")
	}
	s.cached = tokens.clone()
	s.loaded = true
	s.epoch++

	return nil
}

func (s *Store) clearLocked() error {
	if err := s.backend.Remove(); err != nil {
		return errors.Wrap(err, "remove token set")
	}
	s.cached = nil
	s.loaded = true
	s.epoch++

	return nil
}

func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}

	tokens, err := s.backend.Read()
	if err != nil {
		return errors.Wrap(err, "load token set")
	}
	if tokens.Valid() {
		s.cached = tokens
	}
	s.loaded = true

	return nil
}
