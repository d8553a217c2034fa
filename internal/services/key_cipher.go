package services

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const keyCipherInfo = "pyxpay-dashboard api-key v1"

var (
	ErrEmptyStorageSecret = errors.New("storage secret cannot be empty")
	ErrCiphertextInvalid  = errors.New("stored API key cannot be decrypted")
)

// KeyCipher encrypts API keys before they reach local storage.
// Ciphertexts are base64(nonce || sealed).
type KeyCipher struct {
	aead cipher.AEAD
}

// NewKeyCipher derives an XChaCha20-Poly1305 key from secret with HKDF-SHA256
func NewKeyCipher(secret string) (KeyCipherInterface, error) {
	if secret == "" {
		return nil, ErrEmptyStorageSecret
	}

	key := make([]byte, chacha20poly1305.KeySize)
	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(keyCipherInfo))
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive storage key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return &KeyCipher{aead: aead}, nil
}

// Encrypt seals plaintext. An empty plaintext stays empty.
func (kc *KeyCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, kc.aead.NonceSize(), kc.aead.NonceSize()+len(plaintext)+kc.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := kc.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt
func (kc *KeyCipher) Decrypt(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(sealed) < kc.aead.NonceSize() {
		return "", ErrCiphertextInvalid
	}

	nonce, ciphertext := sealed[:kc.aead.NonceSize()], sealed[kc.aead.NonceSize():]
	plaintext, err := kc.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrCiphertextInvalid
	}

	return string(plaintext), nil
}
