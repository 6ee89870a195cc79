package encrypter

import (
	"errors"
	"testing"
)

func TestEncryptDecrypt(t *testing.T) {
	enc, err := New("session-secret")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sealed, err := enc.Encrypt("3f0c1a9e-session")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if sealed == "3f0c1a9e-session" {
		t.Fatal("Encrypt() returned plaintext")
	}

	again, _ := enc.Encrypt("3f0c1a9e-session")
	if again == sealed {
		t.Error("Encrypt() should use a fresh nonce per call")
	}

	got, err := enc.Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if got != "3f0c1a9e-session" {
		t.Errorf("Decrypt() = %q", got)
	}
}

func TestDecryptRejectsForeignValues(t *testing.T) {
	enc, _ := New("session-secret")
	other, _ := New("another-secret")

	sealed, _ := other.Encrypt("value")
	own, _ := enc.Encrypt("value")
	flip := byte('A')
	if own[0] == 'A' {
		flip = 'B'
	}
	tampered := string(flip) + own[1:]

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not base64", "%%%", ErrMalformed},
		{"too short", "YWJj", ErrMalformed},
		{"other key", sealed, ErrAuthentication},
		{"tampered", tampered, ErrAuthentication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := enc.Decrypt(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("Decrypt() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewRequiresSecret(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrEmptySecret) {
		t.Errorf("New(\"\") error = %v, want ErrEmptySecret", err)
	}
}
