package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
)

type keyPair struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// signingKeys reads the base64 PEM pair from JWT_PRIVATE_KEY and JWT_PUBLIC_KEY.
// Outside production a missing pair is replaced by a fresh one, so sessions end on restart.
func signingKeys(production bool) (keyPair, error) {
	privateB64, publicB64 := os.Getenv("JWT_PRIVATE_KEY"), os.Getenv("JWT_PUBLIC_KEY")

	if privateB64 == "" || publicB64 == "" {
		if production {
			return keyPair{}, errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set in production")
		}
		log.Println("JWT keypair not set: generating one for this process")
		private, public, err := GenerateRSAKeyPair()
		return keyPair{private, public}, err
	}

	privatePEM, err := base64.StdEncoding.DecodeString(privateB64)
	if err != nil {
		return keyPair{}, fmt.Errorf("decode JWT_PRIVATE_KEY: %w", err)
	}
	publicPEM, err := base64.StdEncoding.DecodeString(publicB64)
	if err != nil {
		return keyPair{}, fmt.Errorf("decode JWT_PUBLIC_KEY: %w", err)
	}

	private, err := parsePrivateKey(privatePEM)
	if err != nil {
		return keyPair{}, fmt.Errorf("JWT_PRIVATE_KEY: %w", err)
	}
	public, err := parsePublicKey(publicPEM)
	if err != nil {
		return keyPair{}, fmt.Errorf("JWT_PUBLIC_KEY: %w", err)
	}
	if !private.PublicKey.Equal(public) {
		return keyPair{}, errors.New("JWT_PUBLIC_KEY does not match JWT_PRIVATE_KEY")
	}

	return keyPair{private, public}, nil
}

// GenerateRSAKeyPair creates a 2048-bit session signing key
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	private, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("generate RSA key: %w", err)
	}
	return private, &private.PublicKey, nil
}

// parsePrivateKey accepts PKCS#1 and PKCS#8 PEM blocks
func parsePrivateKey(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("no PEM block")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return key, nil
}

func parsePublicKey(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("no PEM block")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}
	return key, nil
}
