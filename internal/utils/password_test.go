package utils

import (
	"testing"
)

func TestHashPassword_CheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must differ from the plain password")
	}

	ok, err := CheckPassword(hash, "password123")
	if err != nil || !ok {
		t.Errorf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = CheckPassword(hash, "wrongpass")
	if err != nil || ok {
		t.Errorf("expected mismatch without error, got ok=%v err=%v", ok, err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	ok, err := CheckPassword("not-a-bcrypt-hash", "password123")
	if err == nil {
		t.Fatal("expected error for malformed hash, got nil")
	}
	if ok {
		t.Error("expected ok=false")
	}
}
