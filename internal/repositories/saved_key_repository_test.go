package repositories

import (
	"testing"
	"time"

	"pyxpay-admin/internal/database"
	"pyxpay-admin/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestSavedKeyRepository(t *testing.T) {
	suite.Run(t, new(SavedKeyRepositorySuite))
}

type SavedKeyRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo SavedKeyRepositoryInterface
}

func (s *SavedKeyRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSavedKeyRepository(s.db.DB)
}

func (s *SavedKeyRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SavedKeyRepositorySuite) newKey() *models.SavedAPIKey {
	return &models.SavedAPIKey{
		Label:           gofakeit.Company(),
		EncryptedAPIKey: gofakeit.LetterN(48),
		Endpoint:        "https://pyxpay.com.br/v1",
	}
}

func (s *SavedKeyRepositorySuite) TestCreate_AssignsIDAndTimestamps() {
	key := s.newKey()

	err := s.repo.Create(key)

	s.NoError(err)
	s.NotEqual(uuid.Nil, key.ID)
	s.NotZero(key.CreatedAt)
	s.NotZero(key.UpdatedAt)
}

func (s *SavedKeyRepositorySuite) TestCreate_ValidatesFields() {
	key := s.newKey()
	key.Label = "   "

	err := s.repo.Create(key)

	s.ErrorIs(err, models.ErrSavedKeyLabelRequired)
	s.Error(s.repo.Create(nil))
}

func (s *SavedKeyRepositorySuite) TestGetByID() {
	key := s.newKey()
	s.Require().NoError(s.repo.Create(key))

	found, err := s.repo.GetByID(key.ID)

	s.NoError(err)
	s.Equal(key.Label, found.Label)
	s.Equal(key.EncryptedAPIKey, found.EncryptedAPIKey)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrSavedKeyNotFound)
}

func (s *SavedKeyRepositorySuite) TestList_OldestFirst() {
	first := s.newKey()
	first.CreatedAt = time.Now().Add(-time.Hour)
	second := s.newKey()
	s.Require().NoError(s.repo.Create(second))
	s.Require().NoError(s.repo.Create(first))

	keys, err := s.repo.List()

	s.NoError(err)
	s.Require().Len(keys, 2)
	s.Equal(first.ID, keys[0].ID)
	s.Equal(second.ID, keys[1].ID)
}

func (s *SavedKeyRepositorySuite) TestUpdate() {
	key := s.newKey()
	s.Require().NoError(s.repo.Create(key))

	key.Label = "Produção"
	key.Endpoint = "https://sandbox.pyxpay.com.br/v1"
	s.Require().NoError(s.repo.Update(key))

	found, err := s.repo.GetByID(key.ID)
	s.NoError(err)
	s.Equal("Produção", found.Label)
	s.Equal("https://sandbox.pyxpay.com.br/v1", found.Endpoint)
}

func (s *SavedKeyRepositorySuite) TestUpdate_Missing() {
	key := s.newKey()
	key.ID = uuid.New()

	s.ErrorIs(s.repo.Update(key), ErrSavedKeyNotFound)
}

func (s *SavedKeyRepositorySuite) TestDelete() {
	key := s.newKey()
	s.Require().NoError(s.repo.Create(key))

	s.NoError(s.repo.Delete(key.ID))
	s.ErrorIs(s.repo.Delete(key.ID), ErrSavedKeyNotFound)

	keys, err := s.repo.List()
	s.NoError(err)
	s.Empty(keys)
}
