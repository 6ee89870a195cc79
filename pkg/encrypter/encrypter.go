package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	iterations = 100000
	keySize    = 32 // AES-256
)

var (
	ErrEmptySecret    = errors.New("encrypter: secret is required")
	ErrMalformed      = errors.New("encrypter: malformed ciphertext")
	ErrAuthentication = errors.New("encrypter: ciphertext failed authentication")
)

// Encrypter seals short values (session ids) for use in cookies.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type implEncrypter struct {
	gcm cipher.AEAD
}

// New derives an AES-GCM key from secret.
func New(secret string) (Encrypter, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	salt := sha256.Sum256([]byte(secret + "calendar-event-creator-salt"))
	key := pbkdf2.Key([]byte(secret), salt[:], iterations, keySize, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &implEncrypter{gcm: gcm}, nil
}

func (e *implEncrypter) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := e.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (e *implEncrypter) Decrypt(ciphertext string) (string, error) {
	data, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrMalformed
	}

	nonceSize := e.gcm.NonceSize()
	if len(data) < nonceSize {
		return "", ErrMalformed
	}

	nonce, sealed := data[:nonceSize], data[nonceSize:]
	plaintext, err := e.gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrAuthentication
	}
	return string(plaintext), nil
}
