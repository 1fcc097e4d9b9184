package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid password", "Str0ng!Pass", true},
		{"underscore counts as special", "Passw0rd_x", true},
		{"too short", "Ab1!xyz", false},
		{"no uppercase", "str0ng!pass", false},
		{"no digit", "Strong!Pass", false},
		{"no special character", "Str0ngPass1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPassword(tt.password))
		})
	}
}
