// file: utils/crypto_test.go
package utils

import (
	"strings"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	SetCryptoSecret("test-secret")

	plain := "user@example.com:verification-token"
	sealed, err := Encrypt(plain)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if sealed == plain {
		t.Fatal("ciphertext equals plaintext")
	}
	if strings.ContainsAny(sealed, "+/=") {
		t.Errorf("ciphertext %q is not URL-safe", sealed)
	}

	got, err := Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != plain {
		t.Errorf("Decrypt = %q, want %q", got, plain)
	}
}

func TestEncryptIsNondeterministic(t *testing.T) {
	SetCryptoSecret("test-secret")

	a, err := Encrypt("same input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt("same input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two encryptions of the same input must differ")
	}
}

func TestDecryptRejectsTamperedInput(t *testing.T) {
	SetCryptoSecret("test-secret")

	sealed, err := Encrypt("payload")
	if err != nil {
		t.Fatal(err)
	}
	tampered := []byte(sealed)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}
	if _, err := Decrypt(string(tampered)); err == nil {
		t.Error("tampered ciphertext must not decrypt")
	}

	if _, err := Decrypt("not-even-close"); err == nil {
		t.Error("garbage input must not decrypt")
	}
}

func TestDecryptRejectsForeignKey(t *testing.T) {
	SetCryptoSecret("key one")
	sealed, err := Encrypt("payload")
	if err != nil {
		t.Fatal(err)
	}

	SetCryptoSecret("key two")
	if _, err := Decrypt(sealed); err == nil {
		t.Error("ciphertext from another key must not decrypt")
	}
}
