// services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"managebooking-backend/models"
	"managebooking-backend/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrUserNotFound       = errors.New("user_not_found")
)

// Claims is the JWT payload carried by every authenticated request. UserID is
// the numeric identity that scopes all customer queries.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SignupInput mirrors the signup form.
type SignupInput struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type AuthService struct {
	DB        *gorm.DB
	JWTSecret []byte
	TokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{
		DB:        db,
		JWTSecret: []byte(secret),
		TokenTTL:  24 * time.Hour,
	}
}

// Signup creates an operator account, hashes the password and returns the
// user together with a fresh token (auto-login after signup).
func (s *AuthService) Signup(in SignupInput) (*models.User, string, error) {
	errs := ValidationErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required."
	}
	if strings.TrimSpace(in.Surname) == "" {
		errs["surname"] = "Surname is required."
	}
	if strings.TrimSpace(in.Username) == "" {
		errs["username"] = "Username is required."
	}
	if in.Password == "" {
		errs["password"] = "Password is required."
	} else if !utils.IsValidPassword(in.Password) {
		errs["password"] = utils.PasswordPolicyMessage
	}
	if in.Password != in.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match."
	}
	if len(errs) > 0 {
		return nil, "", errs
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:         in.Name,
		Surname:      in.Surname,
		Username:     in.Username,
		Password:     string(hash),
		ProfilePhoto: models.DefaultProfilePhoto,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.IssueToken(&user)
	if err != nil {
		return nil, "", err
	}

	log.Printf("✅ User %s signed up (id=%d)", user.Username, user.ID)
	return &user, token, nil
}

// Login verifies credentials and issues a token. Failures are deliberately
// uniform: the caller cannot tell a bad username from a bad password.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(&user)
	if err != nil {
		return nil, "", err
	}

	log.Printf("✅ User %s logged in (id=%d)", user.Username, user.ID)
	return &user, token, nil
}

// ResetPassword replaces a user's password after re-checking the policy.
func (s *AuthService) ResetPassword(username, newPassword, confirmNewPassword string) error {
	errs := ValidationErrors{}
	if strings.TrimSpace(username) == "" {
		errs["username"] = "Username is required."
	}
	if newPassword == "" {
		errs["newPassword"] = "New password is required."
	} else if !utils.IsValidPassword(newPassword) {
		errs["newPassword"] = utils.PasswordPolicyMessage
	}
	if newPassword != confirmNewPassword {
		errs["confirmNewPassword"] = "Passwords do not match."
	}
	if len(errs) > 0 {
		return errs
	}

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.DB.Model(&user).Update("password", string(hash)).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Printf("✅ Password reset for user %s", username)
	return nil
}

// IssueToken signs an HS256 JWT for the user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
