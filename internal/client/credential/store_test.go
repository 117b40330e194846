package credential

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBackend struct {
	mu     sync.Mutex
	tokens *TokenSet
	writes int
}

func (b *memoryBackend) Read() (*TokenSet, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.tokens.clone(), nil
}

func (b *memoryBackend) Write(tokens *TokenSet) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = tokens.clone()
	b.writes++

	return nil
}

func (b *memoryBackend) Remove() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = nil

	return nil
}

type refresherFunc func(ctx context.Context, refreshToken string) (*TokenSet, error)

func (f refresherFunc) Refresh(ctx context.Context, refreshToken string) (*TokenSet, error) {
	return f(ctx, refreshToken)
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(backend Backend, refresher Refresher) *Store {
	return NewStore(backend, refresher,
		WithClock(func() time.Time { return testNow }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestStore_LoadEmpty(t *testing.T) {
	store := newTestStore(&memoryBackend{}, nil)

	_, err := store.Load()

	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.False(t, store.HasValid())
}

func TestStore_SaveRejectsIncompleteSet(t *testing.T) {
	store := newTestStore(&memoryBackend{}, nil)

	assert.Error(t, store.Save(&TokenSet{AccessToken: "a"}))
	assert.Error(t, store.Save(&TokenSet{ExpiresAt: testNow}))
	assert.Error(t, store.Save(nil))
}

func TestStore_LoadReturnsCopy(t *testing.T) {
	store := newTestStore(&memoryBackend{}, nil)
	require.NoError(t, store.Save(&TokenSet{AccessToken: "a", ExpiresAt: testNow.Add(time.Hour)}))

	first, err := store.Load()
	require.NoError(t, err)
	first.AccessToken = "mutated"

	second, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", second.AccessToken)
}

func TestStore_GetValid_FreshSkipsRefresh(t *testing.T) {
	refresher := refresherFunc(func(context.Context, string) (*TokenSet, error) {
		t.Fatal("refresh must not be called for a fresh token")

		return nil, nil
	})
	store := newTestStore(&memoryBackend{}, refresher)
	require.NoError(t, store.Save(&TokenSet{AccessToken: "a", RefreshToken: "r", ExpiresAt: testNow.Add(time.Hour)}))

	tokens, err := store.GetValid(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "a", tokens.AccessToken)
	assert.True(t, store.HasValid())
}

func TestStore_GetValid_RefreshesWithinSkew(t *testing.T) {
	backend := &memoryBackend{}
	var seen string
	refresher := refresherFunc(func(_ context.Context, refreshToken string) (*TokenSet, error) {
		seen = refreshToken

		return &TokenSet{AccessToken: "b", ExpiresAt: testNow.Add(time.Hour)}, nil
	})
	store := newTestStore(backend, refresher)
	require.NoError(t, store.Save(&TokenSet{AccessToken: "a", RefreshToken: "r", ExpiresAt: testNow.Add(30 * time.Second)}))
	assert.False(t, store.HasValid())

	tokens, err := store.GetValid(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "r", seen)
	assert.Equal(t, "b", tokens.AccessToken)
	assert.Equal(t, "r", tokens.RefreshToken, "refresh token is carried over when not rotated")
	assert.Equal(t, "b", backend.tokens.AccessToken)
}

func TestStore_GetValid_ConcurrentCallersShareOneRefresh(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	refresher := refresherFunc(func(context.Context, string) (*TokenSet, error) {
		calls.Add(1)
		<-release

		return &TokenSet{AccessToken: "b", RefreshToken: "r2", ExpiresAt: testNow.Add(time.Hour)}, nil
	})
	store := newTestStore(&memoryBackend{}, refresher)
	require.NoError(t, store.Save(&TokenSet{AccessToken: "a", RefreshToken: "r", ExpiresAt: testNow.Add(-time.Minute)}))

	const callers = 20
	var wg sync.WaitGroup
	results := make([]*TokenSet, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.GetValid(context.Background())
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, "b", results[i].AccessToken)
	}
}

func TestStore_GetValid_RejectedRefreshClearsStore(t *testing.T) {
	backend := &memoryBackend{}
	refresher := refresherFunc(func(context.Context, string) (*TokenSet, error) {
		return nil, errors.Wrap(ErrRefreshRejected, "invalid_grant")
	})
	store := newTestStore(backend, refresher)
	require.NoError(t, store.Save(&TokenSet{AccessToken: "a", RefreshToken: "r", ExpiresAt: testNow.Add(-time.Minute)}))

	_, err := store.GetValid(context.Background())

	assert.ErrorIs(t, err, ErrCredentialsInvalid)
	assert.Nil(t, backend.tokens)
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestStore_GetValid_TransportFailureKeepsSet(t *testing.T) {
	backend := &memoryBackend{}
	refresher := refresherFunc(func(context.Context, string) (*TokenSet, error) {
		return nil, errors.New("dial tcp: connection refused")
	})
	store := newTestStore(backend, refresher)
	require.NoError(t, store.Save(&TokenSet{AccessToken: "a", RefreshToken: "r", ExpiresAt: testNow.Add(-time.Minute)}))

	_, err := store.GetValid(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCredentialsInvalid)
	assert.Equal(t, "a", backend.tokens.AccessToken)
}

func TestStore_GetValid_NoRefreshToken(t *testing.T) {
	store := newTestStore(&memoryBackend{}, nil)
	require.NoError(t, store.Save(&TokenSet{AccessToken: "a", ExpiresAt: testNow.Add(-time.Minute)}))

	_, err := store.GetValid(context.Background())

	assert.ErrorIs(t, err, ErrCredentialsInvalid)
	assert.False(t, store.HasValid())
}

func TestStore_Clear(t *testing.T) {
	backend := &memoryBackend{tokens: &TokenSet{AccessToken: "a", ExpiresAt: testNow.Add(time.Hour)}}
	store := newTestStore(backend, nil)
	require.True(t, store.HasValid())

	require.NoError(t, store.Clear())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func blockingRefresher(entered chan<- struct{}, release <-chan struct{}, next *TokenSet) refresherFunc {
	var once sync.Once

	return func(context.Context, string) (*TokenSet, error) {
		once.Do(func() { close(entered) })
		<-release

		return next.clone(), nil
	}
}

func TestStore_ClearDuringRefreshWins(t *testing.T) {
	backend := &memoryBackend{}
	entered := make(chan struct{})
	release := make(chan struct{})
	refreshed := &TokenSet{AccessToken: "new", RefreshToken: "r2", ExpiresAt: testNow.Add(time.Hour)}
	store := newTestStore(backend, blockingRefresher(entered, release, refreshed))
	require.NoError(t, store.Save(&TokenSet{AccessToken: "old", RefreshToken: "r", ExpiresAt: testNow.Add(-time.Minute)}))

	done := make(chan error, 1)
	go func() {
		_, err := store.GetValid(context.Background())
		done <- err
	}()
	<-entered

	require.NoError(t, store.Clear())
	close(release)

	assert.ErrorIs(t, <-done, ErrCredentialsInvalid)
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.Nil(t, backend.tokens)
}

func TestStore_SaveDuringRefreshWins(t *testing.T) {
	backend := &memoryBackend{}
	entered := make(chan struct{})
	release := make(chan struct{})
	refreshed := &TokenSet{AccessToken: "refreshed", RefreshToken: "r2", ExpiresAt: testNow.Add(time.Hour)}
	store := newTestStore(backend, blockingRefresher(entered, release, refreshed))
	require.NoError(t, store.Save(&TokenSet{AccessToken: "old", RefreshToken: "r", ExpiresAt: testNow.Add(-time.Minute)}))

	done := make(chan *TokenSet, 1)
	go func() {
		tokens, err := store.GetValid(context.Background())
		assert.NoError(t, err)
		done <- tokens
	}()
	<-entered

	require.NoError(t, store.Save(&TokenSet{AccessToken: "login", RefreshToken: "r3", ExpiresAt: testNow.Add(time.Hour)}))
	close(release)

	assert.Equal(t, "login", (<-done).AccessToken)
	assert.Equal(t, "login", backend.tokens.AccessToken)
}

func TestStore_GetValid_CancelledCallerDoesNotFailOthers(t *testing.T) {
	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	refresher := refresherFunc(func(ctx context.Context, _ string) (*TokenSet, error) {
		if calls.Add(1) == 1 {
			close(entered)
		}
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return &TokenSet{AccessToken: "b", RefreshToken: "r2", ExpiresAt: testNow.Add(time.Hour)}, nil
	})
	store := newTestStore(&memoryBackend{}, refresher)
	require.NoError(t, store.Save(&TokenSet{AccessToken: "a", RefreshToken: "r", ExpiresAt: testNow.Add(-time.Minute)}))

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := store.GetValid(leaderCtx)
		leaderErr <- err
	}()
	<-entered

	followerDone := make(chan *TokenSet, 1)
	go func() {
		tokens, err := store.GetValid(context.Background())
		assert.NoError(t, err)
		followerDone <- tokens
	}()

	cancelLeader()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	// Give the follower time to join the flight before it completes.
	time.Sleep(20 * time.Millisecond)
	close(release)

	tokens := <-followerDone
	require.NotNil(t, tokens)
	assert.Equal(t, "b", tokens.AccessToken)
	assert.Equal(t, int32(1), calls.Load())
}
