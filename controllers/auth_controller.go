package controllers

import (
	"errors"
	"log"
	"net/http"

	"managebooking-backend/services"
	"managebooking-backend/utils"

	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type forgotPayload struct {
	Username           string `json:"username"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

func userSummary(userID uint, name, surname, username, photo string) gin.H {
	return gin.H{
		"id":           userID,
		"name":         name,
		"surname":      surname,
		"username":     username,
		"profilePhoto": photo,
	}
}

// Signup (POST /api/auth/signup)
func (ctrl *AuthController) Signup(c *gin.Context) {
	var payload services.SignupInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, token, err := ctrl.AuthSvc.Signup(payload)
	if err != nil {
		var verrs services.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			utils.JSONValidationError(c, http.StatusBadRequest, verrs)
		case errors.Is(err, services.ErrUsernameTaken):
			utils.JSONError(c, http.StatusConflict, "Username already exists.")
		default:
			log.Printf("❌ signup failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userSummary(user.ID, user.Name, user.Surname, user.Username, user.ProfilePhoto),
	})
}

// Login (POST /api/auth/login)
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, token, err := ctrl.AuthSvc.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid input, please try again.")
			return
		}
		log.Printf("❌ login failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userSummary(user.ID, user.Name, user.Surname, user.Username, user.ProfilePhoto),
	})
}

// ForgotPassword (POST /api/auth/forgot)
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var payload forgotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	err := ctrl.AuthSvc.ResetPassword(payload.Username, payload.NewPassword, payload.ConfirmNewPassword)
	if err != nil {
		var verrs services.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			utils.JSONValidationError(c, http.StatusBadRequest, verrs)
		case errors.Is(err, services.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, "Username not found.")
		default:
			log.Printf("❌ password reset failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Password reset successfully. You can now login with your new password.",
	})
}
