package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func validSignup() SignupInput {
	return SignupInput{
		Name:            "Jane",
		Surname:         "Smith",
		Username:        "jane.smith",
		Password:        "Str0ng!Pass",
		ConfirmPassword: "Str0ng!Pass",
	}
}

func TestSignup_CreatesUserAndToken(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	user, token, err := svc.Signup(validSignup())
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "Str0ng!Pass", user.Password, "password must be stored hashed")
	assert.Equal(t, "/images/default-profile-photo.jpg", user.ProfilePhoto)
	assert.NotEmpty(t, token)
}

func TestSignup_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*SignupInput)
		field    string
	}{
		{"missing name", func(in *SignupInput) { in.Name = "" }, "name"},
		{"missing surname", func(in *SignupInput) { in.Surname = "" }, "surname"},
		{"missing username", func(in *SignupInput) { in.Username = "" }, "username"},
		{"weak password", func(in *SignupInput) { in.Password = "weakpass"; in.ConfirmPassword = "weakpass" }, "password"},
		{"mismatched confirm", func(in *SignupInput) { in.ConfirmPassword = "Other!Pass1" }, "confirmPassword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(newTestDB(t), testSecret)

			in := validSignup()
			tt.mutate(&in)

			_, _, err := svc.Signup(in)
			require.Error(t, err)

			verrs, ok := err.(ValidationErrors)
			require.True(t, ok, "expected ValidationErrors, got %T", err)
			assert.Contains(t, verrs, tt.field)
		})
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	_, _, err := svc.Signup(validSignup())
	require.NoError(t, err)

	_, _, err = svc.Signup(validSignup())
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	_, _, err := svc.Signup(validSignup())
	require.NoError(t, err)

	user, token, err := svc.Login("jane.smith", "Str0ng!Pass")
	require.NoError(t, err)
	assert.Equal(t, "jane.smith", user.Username)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login("jane.smith", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "Str0ng!Pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIssueToken_CarriesIdentity(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	user, token, err := svc.Signup(validSignup())
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*Claims)
	require.True(t, ok)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "jane.smith", claims.Username)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestResetPassword(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	_, _, err := svc.Signup(validSignup())
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword("jane.smith", "N3w!Password", "N3w!Password"))

	// old password is rejected, new one works
	_, _, err = svc.Login("jane.smith", "Str0ng!Pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("jane.smith", "N3w!Password")
	assert.NoError(t, err)

	// policy still enforced
	err = svc.ResetPassword("jane.smith", "short", "short")
	verrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	assert.Contains(t, verrs, "newPassword")

	assert.ErrorIs(t, svc.ResetPassword("nobody", "N3w!Password", "N3w!Password"), ErrUserNotFound)
}
