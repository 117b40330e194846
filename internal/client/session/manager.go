// Package session drives sign-in from startup to an authenticated session.
package session

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"sync"

	"chess/internal/client/authority"
	"chess/internal/client/credential"
	"chess/internal/client/nonce"
	"chess/internal/client/platform"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var (
	// ErrAttemptInFlight is returned when an acquisition attempt is already running.
	ErrAttemptInFlight = errors.New("sign-in attempt already in progress")

	// ErrInvalidInput is returned when the form fails local validation. The message is in State.ErrorMessage.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNonceMismatch means a federated id_token was not issued for the nonce this client generated.
	ErrNonceMismatch = errors.New("federated token nonce mismatch")

	// ErrFederationUnavailable means no federated sign-in source is configured.
	ErrFederationUnavailable = errors.New("federated sign-in is not configured")
)

const (
	msgMissingLogin       = "Please enter email and password"
	msgMissingEmail       = "Please enter your email"
	msgInvalidEmail       = "Please enter a valid email"
	msgMissingPassword    = "Please enter a password"
	msgShortPassword      = "Password must be at least 8 characters"
	msgPasswordMismatch   = "Passwords do not match"
	msgSavedPasswordWrong = "Saved password is incorrect. Please log in again."
	msgLoginFailed        = "Login failed. Please try again."
	msgSignUpFailed       = "Sign up failed. Please try again."
	msgFederatedFailed    = "Google sign-in failed. Please try again."
	msgSessionExpired     = "Your session has expired. Please log in again."

	minPasswordLength = 8
)

// Exchanger trades user credentials for token sets at the identity authority.
type Exchanger interface {
	Login(ctx context.Context, email, password string) (*credential.TokenSet, error)
	LoginWithFederatedToken(ctx context.Context, idToken, nonceHash string) (*credential.TokenSet, error)
	SignUp(ctx context.Context, email, password string) (*credential.TokenSet, error)
}

// TokenStore persists the session's token set.
type TokenStore interface {
	HasValid() bool
	Save(tokens *credential.TokenSet) error
	GetValid(ctx context.Context) (*credential.TokenSet, error)
	Clear() error
}

// NonceSource issues single-use nonces.
type NonceSource interface {
	Generate() (nonce.Nonce, error)
}

// Params holds the Manager's collaborators. Federated may be nil.
type Params struct {
	Store       TokenStore
	Exchanger   Exchanger
	Credentials platform.Source
	Federated   platform.Source
	Nonces      NonceSource
	Logger      *slog.Logger
}

// Manager owns the session state. Only one acquisition attempt runs at a time,
// and results of attempts superseded by Logout or Close never reach subscribers.
type Manager struct {
	store       TokenStore
	exchanger   Exchanger
	credentials platform.Source
	federated   platform.Source
	nonces      NonceSource
	logger      *slog.Logger

	mu          sync.Mutex
	state       State
	busy        bool
	generation  uint64
	closed      bool
	subscribers map[int]func(State)
	nextSubID   int
}

// New builds a Manager in PhaseInit.
func New(params Params) *Manager {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		store:       params.Store,
		exchanger:   params.Exchanger,
		credentials: params.Credentials,
		federated:   params.Federated,
		nonces:      params.Nonces,
		logger:      logger,
		subscribers: make(map[int]func(State)),
	}
}

// State returns the current snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Subscribe registers fn for every state change and returns a function that removes it.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

// Start restores a stored session or tries saved platform credentials, falling back to the manual form.
func (m *Manager) Start(ctx context.Context) error {
	gen, err := m.begin()
	if err != nil {
		return err
	}
	defer m.end()

	m.update(gen, func(s *State) {
		s.Phase = PhaseCheckingStoredSession
		s.IsLoading = true
	})
	if m.store.HasValid() {
		m.update(gen, func(s *State) {
			s.Phase = PhaseLoggedIn
			s.IsLoading = false
		})

		return nil
	}

	m.update(gen, func(s *State) {
		s.Phase = PhaseCheckingSystemCredentials
	})

	n, err := m.nonces.Generate()
	if err != nil {
		m.showForm(gen, "", "")

		return errors.Wrap(err, "generate nonce")
	}

	cred, err := m.credentials.Query(ctx, n.Hash)
	if err != nil {
		if !errors.Is(err, platform.ErrNoStoredCredential) {
			m.logger.Warn("Credential source query failed", slog.Any("error", err))
		}
		m.showForm(gen, "", "")

		return nil
	}

	switch c := cred.(type) {
	case platform.PasswordCredential:
		return m.passwordLogin(ctx, gen, c.Email, c.Password, msgSavedPasswordWrong, false)
	case platform.FederatedCredential:
		return m.federatedLogin(ctx, gen, n, c)
	default:
		m.showForm(gen, "", "")

		return nil
	}
}

// SubmitLogin signs in with the email and password from the manual form.
func (m *Manager) SubmitLogin(ctx context.Context, email, password string) error {
	gen, err := m.begin()
	if err != nil {
		return err
	}
	defer m.end()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		m.showForm(gen, email, msgMissingLogin)

		return errors.WithStack(ErrInvalidInput)
	}

	return m.passwordLogin(ctx, gen, email, password, msgLoginFailed, true)
}

// SubmitFederatedSignIn runs the federated flow with a fresh nonce.
func (m *Manager) SubmitFederatedSignIn(ctx context.Context) error {
	gen, err := m.begin()
	if err != nil {
		return err
	}
	defer m.end()

	if m.federated == nil {
		m.showForm(gen, m.State().Email, msgFederatedFailed)

		return errors.WithStack(ErrFederationUnavailable)
	}

	n, err := m.nonces.Generate()
	if err != nil {
		m.showForm(gen, m.State().Email, msgFederatedFailed)

		return errors.Wrap(err, "generate nonce")
	}

	m.update(gen, func(s *State) {
		s.Phase = PhaseAutoLoggingIn
		s.IsLoading = true
		s.ErrorMessage = ""
	})

	cred, err := m.federated.Query(ctx, n.Hash)
	if err != nil {
		m.showForm(gen, m.State().Email, msgFederatedFailed)

		return errors.Wrap(err, "federated credential")
	}
	fed, ok := cred.(platform.FederatedCredential)
	if !ok {
		m.showForm(gen, m.State().Email, msgFederatedFailed)

		return errors.New("federated source returned a non-federated credential")
	}

	return m.federatedLogin(ctx, gen, n, fed)
}

// SubmitSignUp creates an account at the authority and signs it in.
func (m *Manager) SubmitSignUp(ctx context.Context, email, password, confirm string) error {
	gen, err := m.begin()
	if err != nil {
		return err
	}
	defer m.end()

	email = strings.TrimSpace(email)
	if msg := validateSignUp(email, password, confirm); msg != "" {
		m.showForm(gen, email, msg)

		return errors.WithStack(ErrInvalidInput)
	}

	m.update(gen, func(s *State) {
		s.Phase = PhaseAutoLoggingIn
		s.Email = email
		s.IsLoading = true
		s.ErrorMessage = ""
	})

	tokens, err := m.exchanger.SignUp(ctx, email, password)
	if err != nil {
		m.logger.Info("Sign up failed", slog.String("email", email), slog.Any("error", err))
		m.showForm(gen, email, authority.SignUpMessage(err, msgSignUpFailed))

		return errors.Wrap(err, "sign up")
	}

	if err := m.complete(gen, tokens); err != nil {
		m.showForm(gen, email, msgSignUpFailed)

		return err
	}
	if m.current(gen) {
		m.offerSave(ctx, email, password)
	}

	return nil
}

// SetEmail updates the form's email buffer.
func (m *Manager) SetEmail(email string) {
	m.mutate(func(s *State) {
		s.Email = email
		s.ErrorMessage = ""
	})
}

// SetPassword updates the form's password buffer.
func (m *Manager) SetPassword(password string) {
	m.mutate(func(s *State) {
		s.Password = password
		s.ErrorMessage = ""
	})
}

// Logout erases the stored session and returns to the manual form.
// An attempt still in flight is superseded and its result is dropped.
func (m *Manager) Logout(_ context.Context) error {
	m.mu.Lock()
	m.generation++
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		return errors.Wrap(err, "clear session")
	}

	m.mutate(func(s *State) {
		*s = State{Phase: PhaseShowManualForm}
	})

	return nil
}

// AccessToken returns a usable access token, refreshing it if needed.
// A dead refresh token sends the session back to the manual form.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	tokens, err := m.store.GetValid(ctx)
	if err != nil {
		switch {
		case errors.Is(err, credential.ErrCredentialsInvalid):
			m.mutate(func(s *State) {
				*s = State{Phase: PhaseShowManualForm, Email: s.Email, ErrorMessage: msgSessionExpired}
			})
		case errors.Is(err, credential.ErrNoCredentials):
			m.mutate(func(s *State) {
				*s = State{Phase: PhaseShowManualForm, Email: s.Email}
			})
		}

		return "", err
	}

	return tokens.AccessToken, nil
}

// Close stops all further state updates. Persistence already under way still completes.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.subscribers = make(map[int]func(State))
}

func (m *Manager) passwordLogin(ctx context.Context, gen uint64, email, password, fallback string, manual bool) error {
	m.update(gen, func(s *State) {
		s.Phase = PhaseAutoLoggingIn
		s.Email = email
		s.IsLoading = true
		s.ErrorMessage = ""
	})

	tokens, err := m.exchanger.Login(ctx, email, password)
	if err != nil {
		m.logger.Info("Login failed", slog.String("email", email), slog.Any("error", err))
		m.showForm(gen, email, authority.LoginMessage(err, fallback))

		return errors.Wrap(err, "login")
	}

	if err := m.complete(gen, tokens); err != nil {
		m.showForm(gen, email, msgLoginFailed)

		return err
	}
	if manual && m.current(gen) {
		m.offerSave(ctx, email, password)
	}

	return nil
}

func (m *Manager) federatedLogin(ctx context.Context, gen uint64, n nonce.Nonce, cred platform.FederatedCredential) error {
	m.update(gen, func(s *State) {
		s.Phase = PhaseAutoLoggingIn
		s.Email = cred.Email
		s.IsLoading = true
		s.ErrorMessage = ""
	})

	if err := verifyNonce(cred.IDToken, n.Hash); err != nil {
		m.logger.Warn("Rejected federated token", slog.Any("error", err))
		m.showForm(gen, cred.Email, msgFederatedFailed)

		return err
	}

	tokens, err := m.exchanger.LoginWithFederatedToken(ctx, cred.IDToken, n.Hash)
	if err != nil {
		m.logger.Info("Federated login failed", slog.Any("error", err))
		m.showForm(gen, cred.Email, msgFederatedFailed)

		return errors.Wrap(err, "federated login")
	}

	if err := m.complete(gen, tokens); err != nil {
		m.showForm(gen, cred.Email, msgFederatedFailed)

		return err
	}

	return nil
}

// complete persists tokens unless the attempt was superseded, then enters PhaseLoggedIn.
func (m *Manager) complete(gen uint64, tokens *credential.TokenSet) error {
	if !m.current(gen) {
		return nil
	}
	if err := m.store.Save(tokens); err != nil {
		return errors.Wrap(err, "persist session")
	}

	m.update(gen, func(s *State) {
		s.Phase = PhaseLoggedIn
		s.Password = ""
		s.ErrorMessage = ""
		s.IsLoading = false
	})

	return nil
}

func (m *Manager) offerSave(ctx context.Context, email, password string) {
	if m.credentials == nil {
		return
	}
	if err := m.credentials.Save(ctx, email, password); err != nil {
		m.logger.Warn("Failed to save credential", slog.String("email", email), slog.Any("error", err))
	}
}

func (m *Manager) showForm(gen uint64, email, message string) {
	m.update(gen, func(s *State) {
		s.Phase = PhaseShowManualForm
		s.Email = email
		s.Password = ""
		s.ErrorMessage = message
		s.IsLoading = false
	})
}

func (m *Manager) begin() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.busy {
		return 0, errors.WithStack(ErrAttemptInFlight)
	}
	m.busy = true
	m.generation++

	return m.generation, nil
}

func (m *Manager) end() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.busy = false
}

func (m *Manager) current(gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return gen == m.generation
}

// update applies fn only while gen is the newest attempt and the manager is open.
func (m *Manager) update(gen uint64, fn func(*State)) {
	m.mu.Lock()
	if m.closed || gen != m.generation {
		m.mu.Unlock()

		return
	}
	m.apply(fn)
}

func (m *Manager) mutate(fn func(*State)) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()

		return
	}
	m.apply(fn)
}

// apply must be called with mu held; it releases mu before notifying.
func (m *Manager) apply(fn func(*State)) {
	fn(&m.state)
	snapshot := m.state
	subscribers := make([]func(State), 0, len(m.subscribers))
	for _, sub := range m.subscribers {
		subscribers = append(subscribers, sub)
	}
	m.mu.Unlock()

	for _, sub := range subscribers {
		sub(snapshot)
	}
}

func validateSignUp(email, password, confirm string) string {
	switch {
	case email == "":
		return msgMissingEmail
	case !validEmail(email):
		return msgInvalidEmail
	case password == "":
		return msgMissingPassword
	case len(password) < minPasswordLength:
		return msgShortPassword
	case password != confirm:
		return msgPasswordMismatch
	default:
		return ""
	}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)

	return err == nil && addr.Address == email
}

// verifyNonce checks that idToken carries the nonce hash this client issued.
// The signature is verified by the authority during the exchange.
func verifyNonce(idToken, nonceHash string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return errors.Wrap(ErrNonceMismatch, err.Error())
	}

	got, _ := claims["nonce"].(string)
	if got == "" || got != nonceHash {
		return errors.WithStack(ErrNonceMismatch)
	}

	return nil
}
