package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"pyxpay-admin/internal/database"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/repositories"
	"pyxpay-admin/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type SessionServiceTestSuite struct {
	suite.Suite
	api       *fakePyxPay
	db        *database.DB
	state     repositories.StateRepositoryInterface
	cipher    KeyCipherInterface
	savedKeys SavedKeyServiceInterface
	metrics   *recordingMetrics
	service   *SessionService
	ctx       context.Context
}

func TestSessionServiceSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) SetupTest() {
	var err error
	s.ctx = context.Background()
	s.api = newFakePyxPay(s.T())
	s.db = database.SetupTestDB(s.T())
	s.state = repositories.NewStateRepository(s.db.DB)
	s.cipher, err = NewKeyCipher("session-test-secret")
	s.Require().NoError(err)
	s.savedKeys = NewSavedKeyService(repositories.NewSavedKeyRepository(s.db.DB), s.cipher, s.api.server.URL, discardLogger())
	s.metrics = newRecordingMetrics()
	s.service = s.newService(s.state)
}

func (s *SessionServiceTestSuite) newService(state repositories.StateRepositoryInterface) *SessionService {
	return NewSessionService(s.api.client(), state, s.savedKeys, s.cipher, s.api.server.URL, discardLogger(), s.metrics)
}

func (s *SessionServiceTestSuite) acceptProbe() {
	s.api.respond(http.MethodGet, "/carteira/saldo", http.StatusOK, `{"saldo": 1500.25}`)
}

func (s *SessionServiceTestSuite) storedSession() models.StoredSession {
	raw, err := s.state.Load(s.ctx, models.NamespaceAuth)
	s.Require().NoError(err)

	var stored models.StoredSession
	s.Require().NoError(json.Unmarshal(raw, &stored))
	return stored
}

func (s *SessionServiceTestSuite) TestLogin_SucceedsOn2xxProbe() {
	s.acceptProbe()

	session, err := s.service.Login(s.ctx, "  live-key-abcdef123456  ", "")

	s.Require().NoError(err)
	s.True(session.IsAuthenticated)
	s.NotEmpty(session.SessionID)
	s.Equal("live-key-abcdef123456", session.Credentials.APIKey)
	s.Equal(s.api.server.URL, session.Credentials.Endpoint)

	req, _ := s.api.lastRequest()
	s.Equal("live-key-abcdef123456", req.Header.Get("api-key"))
	s.Equal("/carteira/saldo", req.URL.Path)

	creds, ok := s.service.Credentials()
	s.True(ok)
	s.Equal(session.Credentials, creds)
	s.Equal(1, s.metrics.count("authentication_event"))
}

func (s *SessionServiceTestSuite) TestLogin_PersistsEncryptedKey() {
	s.acceptProbe()

	session, err := s.service.Login(s.ctx, "live-key-abcdef123456", s.api.server.URL)
	s.Require().NoError(err)

	stored := s.storedSession()
	s.True(stored.IsAuthenticated)
	s.Equal(session.SessionID, stored.SessionID)
	s.NotContains(stored.EncryptedAPIKey, "live-key")

	plain, err := s.cipher.Decrypt(stored.EncryptedAPIKey)
	s.NoError(err)
	s.Equal("live-key-abcdef123456", plain)
}

func (s *SessionServiceTestSuite) TestLogin_UnauthorizedIsInvalidAPIKey() {
	s.api.respond(http.MethodGet, "/carteira/saldo", http.StatusUnauthorized, `{"title":"Unauthorized"}`)

	session, err := s.service.Login(s.ctx, "wrong-key", "")

	s.ErrorIs(err, ErrInvalidAPIKey)
	s.Nil(session)
	_, ok := s.service.Credentials()
	s.False(ok)
}

func (s *SessionServiceTestSuite) TestLogin_ClassifiesByStatusNotMessage() {
	s.api.respond(http.MethodGet, "/carteira/saldo", http.StatusInternalServerError, `{"message":"Unauthorized upstream gateway"}`)

	_, err := s.service.Login(s.ctx, "some-key", "")

	s.NotErrorIs(err, ErrInvalidAPIKey)
	upstream, ok := AsUpstreamError(err)
	s.Require().True(ok)
	s.Equal("Unauthorized upstream gateway", upstream.Message)
	s.Equal(http.StatusInternalServerError, upstream.StatusCode)
}

func (s *SessionServiceTestSuite) TestLogin_BlankKeyNeverProbes() {
	_, err := s.service.Login(s.ctx, "   ", "")

	s.ErrorIs(err, ErrAPIKeyRequired)
	s.Equal(0, s.api.requestCount())
}

func (s *SessionServiceTestSuite) TestLogin_PersistFailureKeepsSession() {
	ctrl := gomock.NewController(s.T())
	state := repository_mocks.NewMockStateRepositoryInterface(ctrl)
	state.EXPECT().Save(gomock.Any(), models.NamespaceAuth, gomock.Any()).Return(errors.New("disk full"))
	s.acceptProbe()

	service := s.newService(state)
	session, err := service.Login(s.ctx, "live-key-abcdef123456", "")

	s.NoError(err)
	s.True(session.IsAuthenticated)
}

func (s *SessionServiceTestSuite) TestLogout_ResetsToDefaultEndpoint() {
	s.acceptProbe()
	_, err := s.service.Login(s.ctx, "live-key-abcdef123456", s.api.server.URL+"/")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Logout(s.ctx))

	current := s.service.Current()
	s.False(current.IsAuthenticated)
	s.Empty(current.Credentials.APIKey)
	s.Equal(s.api.server.URL, current.Credentials.Endpoint)

	_, err = s.service.RequireCredentials()
	s.ErrorIs(err, ErrNotAuthenticated)
	s.False(s.storedSession().IsAuthenticated)
}

func (s *SessionServiceTestSuite) TestValidateSession() {
	s.ErrorIs(s.service.ValidateSession("anything"), ErrNotAuthenticated)

	s.acceptProbe()
	first, err := s.service.Login(s.ctx, "live-key-abcdef123456", "")
	s.Require().NoError(err)
	s.NoError(s.service.ValidateSession(first.SessionID))

	second, err := s.service.Login(s.ctx, "live-key-abcdef123456", "")
	s.Require().NoError(err)
	s.ErrorIs(s.service.ValidateSession(first.SessionID), ErrSessionReplaced)
	s.NoError(s.service.ValidateSession(second.SessionID))
}

func (s *SessionServiceTestSuite) TestHydrate_RestoresPersistedSession() {
	s.acceptProbe()
	session, err := s.service.Login(s.ctx, "live-key-abcdef123456", "")
	s.Require().NoError(err)

	restored := s.newService(s.state)
	s.False(restored.IsHydrated())
	s.Require().NoError(restored.Hydrate(s.ctx))

	s.True(restored.IsHydrated())
	s.Equal(session.Credentials, restored.Current().Credentials)
	s.NoError(restored.ValidateSession(session.SessionID))
}

func (s *SessionServiceTestSuite) TestHydrate_NeverOverwritesLaterLogin() {
	s.acceptProbe()
	_, err := s.service.Login(s.ctx, "persisted-key-0001", "")
	s.Require().NoError(err)

	restored := s.newService(s.state)
	_, err = restored.Login(s.ctx, "fresh-key-000000002", "")
	s.Require().NoError(err)
	s.Require().NoError(restored.Hydrate(s.ctx))

	s.Equal("fresh-key-000000002", restored.Current().Credentials.APIKey)
}

func (s *SessionServiceTestSuite) TestHydrate_UndecryptableKeyStaysLoggedOut() {
	payload, err := json.Marshal(models.StoredSession{
		EncryptedAPIKey: "bm90LWEtY2lwaGVydGV4dA==",
		Endpoint:        s.api.server.URL,
		IsAuthenticated: true,
		SessionID:       "stale",
	})
	s.Require().NoError(err)
	s.Require().NoError(s.state.Save(s.ctx, models.NamespaceAuth, payload))

	s.Require().NoError(s.service.Hydrate(s.ctx))

	_, ok := s.service.Credentials()
	s.False(ok)
}

func (s *SessionServiceTestSuite) TestHydrate_NothingPersisted() {
	s.NoError(s.service.Hydrate(s.ctx))
	s.True(s.service.IsHydrated())
	s.False(s.service.Current().IsAuthenticated)
	s.NoError(s.service.Hydrate(s.ctx))
}

func (s *SessionServiceTestSuite) TestWaitHydrated() {
	canceled, cancel := context.WithCancel(s.ctx)
	cancel()
	s.ErrorIs(s.service.WaitHydrated(canceled), ErrSessionNotReady)

	s.service.StartHydration(s.ctx)

	waitCtx, stop := context.WithTimeout(s.ctx, 2*time.Second)
	defer stop()
	s.NoError(s.service.WaitHydrated(waitCtx))
	s.True(s.service.IsHydrated())
}

func (s *SessionServiceTestSuite) TestLoginWithSavedKey() {
	s.acceptProbe()
	saved, err := s.savedKeys.Add("Producción", "saved-key-1234567890", "")
	s.Require().NoError(err)

	id := mustParseUUID(s.T(), saved.ID)
	session, err := s.service.LoginWithSavedKey(s.ctx, id)

	s.Require().NoError(err)
	s.Equal("saved-key-1234567890", session.Credentials.APIKey)
	req, _ := s.api.lastRequest()
	s.Equal("saved-key-1234567890", req.Header.Get("api-key"))
}

func (s *SessionServiceTestSuite) TestLoginWithSavedKey_Missing() {
	_, err := s.service.LoginWithSavedKey(s.ctx, mustParseUUID(s.T(), "00000000-0000-0000-0000-000000000001"))

	s.ErrorIs(err, repositories.ErrSavedKeyNotFound)
	s.Equal(0, s.api.requestCount())
}

func (s *SessionServiceTestSuite) TestMaskedAPIKey() {
	s.Equal("", Session{}.MaskedAPIKey())

	s.acceptProbe()
	session, err := s.service.Login(s.ctx, "live-key-abcdef123456", "")
	s.Require().NoError(err)
	s.Equal("live••••3456", session.MaskedAPIKey())
}

func (s *SessionServiceTestSuite) TestLogoutDuringLoginSaveLeavesStorageLoggedOut() {
	s.acceptProbe()
	held := newHeldStateRepository(s.state, models.NamespaceAuth)
	service := s.newService(held)

	loginDone := make(chan error, 1)
	go func() {
		_, err := service.Login(s.ctx, "sk_live_abcdef123456", "")
		loginDone <- err
	}()
	<-held.entered

	logoutDone := make(chan error, 1)
	go func() { logoutDone <- service.Logout(s.ctx) }()

	select {
	case <-logoutDone:
		s.Fail("logout saved while the login save was still in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(held.release)
	s.Require().NoError(<-loginDone)
	s.Require().NoError(<-logoutDone)

	_, authenticated := service.Credentials()
	s.False(authenticated)
	s.False(s.storedSession().IsAuthenticated)

	restarted := s.newService(s.state)
	s.Require().NoError(restarted.Hydrate(s.ctx))
	_, authenticated = restarted.Credentials()
	s.False(authenticated)
}
