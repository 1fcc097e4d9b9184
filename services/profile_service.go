// services/profile_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"managebooking-backend/models"
	"managebooking-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrWrongPassword = errors.New("wrong_password")

// ProfileService handles an operator's own account edits.
type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

func (s *ProfileService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return &user, nil
}

func (s *ProfileService) ChangeName(userID uint, fullName string) (*models.User, error) {
	if strings.TrimSpace(fullName) == "" {
		return nil, ValidationErrors{"name": "Name cannot be empty."}
	}

	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(user).Update("name", fullName).Error; err != nil {
		return nil, fmt.Errorf("failed to update name: %w", err)
	}
	user.Name = fullName
	return user, nil
}

func (s *ProfileService) ChangeUsername(userID uint, username string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ValidationErrors{"username": "Username cannot be empty."}
	}

	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("username = ? AND id <> ?", username, userID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(user).Update("username", username).Error; err != nil {
		return nil, fmt.Errorf("failed to update username: %w", err)
	}
	user.Username = username
	return user, nil
}

// ChangePassword verifies the current password before accepting the new one.
func (s *ProfileService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ValidationErrors{"password": "Both current and new passwords are required."}
	}
	if !utils.IsValidPassword(newPassword) {
		return ValidationErrors{"newPassword": utils.PasswordPolicyMessage}
	}

	user, err := s.Get(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.DB.Model(user).Update("password", string(hash)).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Printf("✅ Password changed for user %d", userID)
	return nil
}

// ChangePhoto swaps the stored photo path and removes the old file unless it
// was the default.
func (s *ProfileService) ChangePhoto(userID uint, photoPath string) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	old := user.ProfilePhoto
	if err := s.DB.Model(user).Update("profile_photo", photoPath).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile photo: %w", err)
	}
	user.ProfilePhoto = photoPath

	if old != "" && old != models.DefaultProfilePhoto {
		utils.RemoveProfilePhoto(old)
	}
	return user, nil
}
