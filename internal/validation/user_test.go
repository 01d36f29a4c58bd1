package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret"))
	assert.NoError(t, ValidatePassword("a-much-longer-password"))

	err := ValidatePassword("12345")
	assert.EqualError(t, err, "Password must be at least 6 characters long")
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  string
	}{
		{"valid", "alice42", ""},
		{"minimum length", "abc", ""},
		{"too short", "ab", "Username must be between 3 and 20 characters long"},
		{"too long", "abcdefghijklmnopqrstu", "Username must be between 3 and 20 characters long"},
		{"contains space", "ali ce", "Username cannot contain spaces"},
		{"uppercase", "Alice", "Username must be lowercase"},
		{"special characters", "al!ce", "Username must only contain letters and numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.Error(t, ValidateEmail("alice"))
	assert.Error(t, ValidateEmail("alice@"))
	assert.Error(t, ValidateEmail("@example.com"))
	assert.Error(t, ValidateEmail("alice@example"))
}
