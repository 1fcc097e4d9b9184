package controllers

import (
	"errors"
	"log"
	"net/http"

	"managebooking-backend/services"
	"managebooking-backend/utils"

	"github.com/gin-gonic/gin"
)

type changeNamePayload struct {
	FullName string `json:"fullName"`
}

type changeUsernamePayload struct {
	Username string `json:"username"`
}

type changePasswordPayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ProfileController struct {
	ProfileSvc *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileSvc: svc}
}

func respondProfileError(c *gin.Context, err error) {
	var verrs services.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		utils.JSONValidationError(c, http.StatusBadRequest, verrs)
	case errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "User not found.")
	case errors.Is(err, services.ErrUsernameTaken):
		utils.JSONError(c, http.StatusConflict, "Username already exists.")
	case errors.Is(err, services.ErrWrongPassword):
		utils.JSONError(c, http.StatusBadRequest, "Current password is incorrect.")
	default:
		log.Printf("❌ profile update failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}
}

// GetProfile (GET /api/profile)
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := ctrl.ProfileSvc.Get(userID)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// ChangeName (POST /api/profile/name)
func (ctrl *ProfileController) ChangeName(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var payload changeNamePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := ctrl.ProfileSvc.ChangeName(userID, payload.FullName)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// ChangeUsername (POST /api/profile/username)
func (ctrl *ProfileController) ChangeUsername(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var payload changeUsernamePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := ctrl.ProfileSvc.ChangeUsername(userID, payload.Username)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// ChangePassword (POST /api/profile/password)
func (ctrl *ProfileController) ChangePassword(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var payload changePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ctrl.ProfileSvc.ChangePassword(userID, payload.CurrentPassword, payload.NewPassword); err != nil {
		respondProfileError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Password updated successfully."})
}

// ChangePhoto (POST /api/profile/photo, multipart field "profilePhoto")
func (ctrl *ProfileController) ChangePhoto(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	header, err := c.FormFile("profilePhoto")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please select a valid image file.")
		return
	}

	ext, err := utils.ValidatePhotoUpload(header)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	path, err := utils.SaveProfilePhoto(c, header, ext)
	if err != nil {
		log.Printf("❌ photo upload failed for user %d: %v", userID, err)
		utils.JSONError(c, http.StatusInternalServerError, "An error occurred while uploading the file.")
		return
	}

	user, err := ctrl.ProfileSvc.ChangePhoto(userID, path)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
