package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/pyxpay"
	"pyxpay-admin/internal/repositories"

	"github.com/google/uuid"
)

// Session is a snapshot of the operator's credential state
type Session struct {
	Credentials     pyxpay.Credentials
	IsAuthenticated bool
	SessionID       string
	AuthenticatedAt time.Time
}

// MaskedAPIKey returns the key in display form, empty when logged out
func (s Session) MaskedAPIKey() string {
	if s.Credentials.APIKey == "" {
		return ""
	}
	return models.MaskAPIKey(s.Credentials.APIKey)
}

// SessionService holds the active credentials and persists them encrypted.
// Every state change replaces the whole snapshot under the lock.
type SessionService struct {
	mu      sync.RWMutex
	session Session
	// touched is set once Login or Logout has run, so a late hydration never overwrites it
	touched bool
	// saveMu is held from assignment through the save so storage ends in the same order as memory
	saveMu sync.Mutex

	api             PaymentAPIInterface
	state           repositories.StateRepositoryInterface
	savedKeys       SavedKeyServiceInterface
	cipher          KeyCipherInterface
	defaultEndpoint string
	logger          *slog.Logger
	metrics         MetricsRecorderInterface

	hydrated     chan struct{}
	hydrateOnce  sync.Once
	hydrateStart sync.Once
}

// NewSessionService creates a logged-out session service. Call Hydrate or StartHydration to restore state.
func NewSessionService(
	api PaymentAPIInterface,
	state repositories.StateRepositoryInterface,
	savedKeys SavedKeyServiceInterface,
	cipher KeyCipherInterface,
	defaultEndpoint string,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) *SessionService {
	if defaultEndpoint == "" {
		defaultEndpoint = pyxpay.DefaultEndpoint
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionService{
		session:         Session{Credentials: pyxpay.Credentials{Endpoint: defaultEndpoint}},
		api:             api,
		state:           state,
		savedKeys:       savedKeys,
		cipher:          cipher,
		defaultEndpoint: defaultEndpoint,
		logger:          logger,
		metrics:         metrics,
		hydrated:        make(chan struct{}),
	}
}

// Login probes the balance endpoint with the given key and, on success, makes it the active session
func (s *SessionService) Login(ctx context.Context, apiKey, endpoint string) (*Session, error) {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = s.defaultEndpoint
	}
	creds := pyxpay.NewCredentials(apiKey, endpoint)
	if creds.IsZero() {
		return nil, ErrAPIKeyRequired
	}

	result := s.api.Probe(ctx, creds)
	if !result.Success {
		s.recordAuthEvent("login_failed")
		if result.IsUnauthorized() {
			s.logger.Warn("login rejected: invalid api key", "endpoint", creds.Endpoint)
			return nil, ErrInvalidAPIKey
		}
		s.logger.Warn("login probe failed", "endpoint", creds.Endpoint, "status", result.StatusCode, "error", result.Error)
		return nil, upstreamError(result)
	}

	next := Session{
		Credentials:     creds,
		IsAuthenticated: true,
		SessionID:       uuid.NewString(),
		AuthenticatedAt: time.Now().UTC(),
	}

	s.saveMu.Lock()
	s.mu.Lock()
	s.session = next
	s.touched = true
	s.mu.Unlock()
	s.persist(ctx, next)
	s.saveMu.Unlock()

	s.recordAuthEvent("login_success")
	s.logger.Info("operator logged in", "endpoint", creds.Endpoint, "session_id", next.SessionID)

	return &next, nil
}

// LoginWithSavedKey resolves a saved key and logs in with it
func (s *SessionService) LoginWithSavedKey(ctx context.Context, id uuid.UUID) (*Session, error) {
	if s.savedKeys == nil {
		return nil, errors.New("saved keys are not configured")
	}

	creds, err := s.savedKeys.Reveal(id)
	if err != nil {
		return nil, err
	}

	return s.Login(ctx, creds.APIKey, creds.Endpoint)
}

// Logout clears the credentials and resets the endpoint to the default
func (s *SessionService) Logout(ctx context.Context) error {
	next := Session{Credentials: pyxpay.Credentials{Endpoint: s.defaultEndpoint}}

	s.saveMu.Lock()
	s.mu.Lock()
	previous := s.session.SessionID
	s.session = next
	s.touched = true
	s.mu.Unlock()
	s.persist(ctx, next)
	s.saveMu.Unlock()

	s.recordAuthEvent("logout")
	s.logger.Info("operator logged out", "session_id", previous)

	return nil
}

// Current returns a snapshot of the session
func (s *SessionService) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Credentials returns the active credential pair and whether the session is authenticated
func (s *SessionService) Credentials() (pyxpay.Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Credentials, s.session.IsAuthenticated && !s.session.Credentials.IsZero()
}

// RequireCredentials returns ErrNotAuthenticated when no key is active
func (s *SessionService) RequireCredentials() (pyxpay.Credentials, error) {
	creds, ok := s.Credentials()
	if !ok {
		return pyxpay.Credentials{}, ErrNotAuthenticated
	}
	return creds, nil
}

// ValidateSession checks that sessionID is still the active session
func (s *SessionService) ValidateSession(sessionID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.session.IsAuthenticated {
		return ErrNotAuthenticated
	}
	if sessionID == "" || s.session.SessionID != sessionID {
		return ErrSessionReplaced
	}
	return nil
}

// Hydrate restores the persisted session. It runs at most once; later calls return nil.
func (s *SessionService) Hydrate(ctx context.Context) error {
	var err error
	ran := false
	s.hydrateOnce.Do(func() {
		ran = true
		defer close(s.hydrated)
		err = s.hydrate(ctx)
	})
	if !ran {
		return nil
	}
	return err
}

// StartHydration runs Hydrate in a goroutine
func (s *SessionService) StartHydration(ctx context.Context) {
	s.hydrateStart.Do(func() {
		go func() {
			if err := s.Hydrate(ctx); err != nil {
				s.logger.Error("failed to hydrate session", "error", err)
			}
		}()
	})
}

// WaitHydrated blocks until hydration has finished or ctx is done
func (s *SessionService) WaitHydrated(ctx context.Context) error {
	select {
	case <-s.hydrated:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrSessionNotReady, ctx.Err())
	}
}

// IsHydrated reports whether persisted state has been loaded
func (s *SessionService) IsHydrated() bool {
	select {
	case <-s.hydrated:
		return true
	default:
		return false
	}
}

func (s *SessionService) hydrate(ctx context.Context) error {
	raw, err := s.state.Load(ctx, models.NamespaceAuth)
	if err != nil {
		if errors.Is(err, repositories.ErrStateNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	var stored models.StoredSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return fmt.Errorf("failed to decode session: %w", err)
	}

	restored := Session{Credentials: pyxpay.Credentials{Endpoint: s.defaultEndpoint}}
	if stored.IsAuthenticated {
		apiKey, err := s.cipher.Decrypt(stored.EncryptedAPIKey)
		if err != nil {
			s.logger.Warn("discarding persisted session", "error", err)
		} else {
			restored = Session{
				Credentials:     pyxpay.NewCredentials(apiKey, stored.Endpoint),
				IsAuthenticated: apiKey != "",
				SessionID:       stored.SessionID,
				AuthenticatedAt: stored.AuthenticatedAt,
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.touched {
		return nil
	}
	s.session = restored

	return nil
}

// persist saves the session. Storage failures are logged and the in-memory session stays authoritative.
func (s *SessionService) persist(ctx context.Context, session Session) {
	encrypted, err := s.cipher.Encrypt(session.Credentials.APIKey)
	if err != nil {
		s.logger.Error("failed to encrypt api key", "error", err)
		return
	}

	payload, err := json.Marshal(models.StoredSession{
		EncryptedAPIKey: encrypted,
		Endpoint:        session.Credentials.Endpoint,
		IsAuthenticated: session.IsAuthenticated,
		SessionID:       session.SessionID,
		AuthenticatedAt: session.AuthenticatedAt,
	})
	if err != nil {
		s.logger.Error("failed to encode session", "error", err)
		return
	}

	if err := s.state.Save(ctx, models.NamespaceAuth, payload); err != nil {
		s.logger.Warn("failed to persist session", "error", err)
	}
}

func (s *SessionService) recordAuthEvent(eventType string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": eventType})
}
