package sealer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"turfly/pkg/model"
)

var ErrInvalidToken = errors.New("invalid token")

// Sealer issues and opens opaque bearer tokens. A token is the AES-GCM
// sealed form of "role:subject", so callers cannot forge or read it.
type Sealer struct {
	aead cipher.AEAD
}

// New builds a Sealer from a base64 encoded AES key of 16, 24 or 32 bytes.
func New(secret string) (*Sealer, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("decode token secret: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Sealer{aead: aesgcm}, nil
}

func (s *Sealer) CreateOpaqueToken(claims model.Claims) (string, error) {
	if !claims.Role.IsValid() {
		return "", fmt.Errorf("unknown role %q", claims.Role)
	}
	if claims.Subject == "" {
		return "", errors.New("subject is required")
	}

	plaintext := []byte(string(claims.Role) + ":" + claims.Subject)

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ct := s.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

func (s *Sealer) ParseOpaqueToken(token string) (*model.Claims, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	nonceSize := s.aead.NonceSize()
	if len(data) <= nonceSize {
		return nil, ErrInvalidToken
	}
	nonce := data[:nonceSize]
	ciphertext := data[nonceSize:]

	pt, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidToken
	}

	parts := strings.SplitN(string(pt), ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, ErrInvalidToken
	}

	role := model.Role(parts[0])
	if !role.IsValid() {
		return nil, ErrInvalidToken
	}

	return &model.Claims{Role: role, Subject: parts[1]}, nil
}
