package services

import (
	"fmt"
	"log/slog"
	"strings"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/pyxpay"
	"pyxpay-admin/internal/repositories"

	"github.com/google/uuid"
)

// SavedKeyService manages the operator's saved API keys. Keys are encrypted before storage
// and only leave the service masked, except through Reveal.
type SavedKeyService struct {
	repo            repositories.SavedKeyRepositoryInterface
	cipher          KeyCipherInterface
	defaultEndpoint string
	logger          *slog.Logger
}

// NewSavedKeyService creates a new saved key service
func NewSavedKeyService(
	repo repositories.SavedKeyRepositoryInterface,
	cipher KeyCipherInterface,
	defaultEndpoint string,
	logger *slog.Logger,
) SavedKeyServiceInterface {
	if defaultEndpoint == "" {
		defaultEndpoint = pyxpay.DefaultEndpoint
	}
	return &SavedKeyService{
		repo:            repo,
		cipher:          cipher,
		defaultEndpoint: defaultEndpoint,
		logger:          logger,
	}
}

// Add saves a labelled key; a blank endpoint is stored as the default endpoint
func (s *SavedKeyService) Add(label, apiKey, endpoint string) (*dto.SavedKeyResponse, error) {
	label = strings.TrimSpace(label)
	apiKey = strings.TrimSpace(apiKey)
	if label == "" {
		return nil, models.ErrSavedKeyLabelRequired
	}
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	encrypted, err := s.cipher.Encrypt(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt api key: %w", err)
	}

	key := &models.SavedAPIKey{
		Label:           label,
		EncryptedAPIKey: encrypted,
		Endpoint:        s.endpointOrDefault(endpoint),
	}
	if err := s.repo.Create(key); err != nil {
		return nil, err
	}

	s.logger.Info("saved api key added", "saved_key_id", key.ID, "label", key.Label)

	response := toSavedKeyResponse(key, apiKey)
	return &response, nil
}

// List returns every saved key, oldest first, with masked secrets
func (s *SavedKeyService) List() ([]dto.SavedKeyResponse, error) {
	keys, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SavedKeyResponse, 0, len(keys))
	for i := range keys {
		apiKey, err := s.cipher.Decrypt(keys[i].EncryptedAPIKey)
		if err != nil {
			s.logger.Warn("saved api key cannot be decrypted", "saved_key_id", keys[i].ID, "error", err)
		}
		responses = append(responses, toSavedKeyResponse(&keys[i], apiKey))
	}

	return responses, nil
}

// Update changes label, key and endpoint. A blank key keeps the stored one; a blank endpoint resets to default.
func (s *SavedKeyService) Update(id uuid.UUID, req dto.SavedKeyUpdateRequest) (*dto.SavedKeyResponse, error) {
	key, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		label := strings.TrimSpace(*req.Label)
		if label == "" {
			return nil, models.ErrSavedKeyLabelRequired
		}
		key.Label = label
	}

	if req.APIKey != nil && strings.TrimSpace(*req.APIKey) != "" {
		encrypted, err := s.cipher.Encrypt(strings.TrimSpace(*req.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt api key: %w", err)
		}
		key.EncryptedAPIKey = encrypted
	}

	if req.Endpoint != nil {
		key.Endpoint = s.endpointOrDefault(*req.Endpoint)
	}

	if err := s.repo.Update(key); err != nil {
		return nil, err
	}

	apiKey, err := s.cipher.Decrypt(key.EncryptedAPIKey)
	if err != nil {
		return nil, err
	}

	s.logger.Info("saved api key updated", "saved_key_id", key.ID)

	response := toSavedKeyResponse(key, apiKey)
	return &response, nil
}

// Remove deletes a saved key
func (s *SavedKeyService) Remove(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("saved api key removed", "saved_key_id", id)
	return nil
}

// Reveal returns the decrypted credentials for a quick login
func (s *SavedKeyService) Reveal(id uuid.UUID) (pyxpay.Credentials, error) {
	key, err := s.repo.GetByID(id)
	if err != nil {
		return pyxpay.Credentials{}, err
	}

	apiKey, err := s.cipher.Decrypt(key.EncryptedAPIKey)
	if err != nil {
		return pyxpay.Credentials{}, err
	}

	return pyxpay.NewCredentials(apiKey, key.Endpoint), nil
}

func (s *SavedKeyService) endpointOrDefault(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return s.defaultEndpoint
	}
	return endpoint
}

func toSavedKeyResponse(key *models.SavedAPIKey, apiKey string) dto.SavedKeyResponse {
	return dto.SavedKeyResponse{
		ID:           key.ID.String(),
		Label:        key.Label,
		MaskedAPIKey: models.MaskAPIKey(apiKey),
		Endpoint:     key.Endpoint,
		CreatedAt:    key.CreatedAt,
	}
}
