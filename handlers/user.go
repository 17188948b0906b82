package handlers

import (
	"net/http"

	"autocare/models"
	"autocare/services/user"
	"autocare/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterHandler creates an account and signs the user in.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var data models.UserRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Register(data)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler verifies credentials and returns a JWT.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler returns the authenticated user's profile.
func (h *UserHandler) MeHandler(c *gin.Context) {
	u, err := h.Service.GetUserByID(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfileHandler changes name and phone number.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var input struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Service.UpdateProfile(c.GetString("userID"), input.Name, input.PhoneNumber)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdatePasswordHandler replaces the password after verifying the old one.
func (h *UserHandler) UpdatePasswordHandler(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdatePassword(c.GetString("userID"), input.CurrentPassword, input.NewPassword); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update password", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// UpdateFCMTokenHandler stores the device token for pushes.
func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateFCMToken(c.GetString("userID"), input.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update FCM token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token updated"})
}

// LogoutHandler revokes the current token.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	if err := h.Service.RevokeAuthToken(c.GetString("userID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// DeleteAccountHandler removes the account.
func (h *UserHandler) DeleteAccountHandler(c *gin.Context) {
	if err := h.Service.Delete(c.GetString("userID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete account", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
