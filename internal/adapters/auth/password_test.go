package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_Hash_and_Compare(t *testing.T) {
	h := NewBcryptHasher(4)
	password := "my-secret-password"

	hash, err := h.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	require.NoError(t, h.Compare(hash, password))
}

func TestBcryptHasher_Compare_wrong_password(t *testing.T) {
	h := NewBcryptHasher(4)
	hash, err := h.Hash("correct")
	require.NoError(t, err)

	assert.Error(t, h.Compare(hash, "wrong"))
}

func TestBcryptHasher_Hash_is_salted(t *testing.T) {
	h := NewBcryptHasher(4)
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestStaticCredentialStore_Verify(t *testing.T) {
	h := NewBcryptHasher(4)
	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	store := NewStaticCredentialStore("admin", hash, h)

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct pair", "admin", "s3cret-pass", true},
		{"wrong password", "admin", "admin123", false},
		{"wrong username", "root", "s3cret-pass", false},
		{"username differs in case", "Admin", "s3cret-pass", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.Verify(t.Context(), tt.username, tt.password))
		})
	}
}

func TestStaticCredentialStore_NoHashRejectsAll(t *testing.T) {
	store := NewStaticCredentialStore("admin", "", NewBcryptHasher(4))
	assert.False(t, store.Verify(t.Context(), "admin", ""))
}
