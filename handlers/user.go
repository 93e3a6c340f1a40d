package handlers

import (
	"net/http"

	"glambook/models"
	"glambook/services/user"
	"glambook/utils"

	"github.com/gin-gonic/gin"
)

// RegisterUserHandler handles account signup.
func RegisterUserHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reg models.UserRegistration
		if err := c.ShouldBindJSON(&reg); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		created, err := svc.Register(c.Request.Context(), reg)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// AuthenticateUserHandler handles login and returns a JWT.
func AuthenticateUserHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		result, err := svc.Authenticate(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetUserHandler returns the authenticated account.
func GetUserHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		u, err := svc.GetByID(c.Request.Context(), userID)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// UpdateUserHandler updates the authenticated account's mutable fields.
func UpdateUserHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		current, err := svc.GetByID(c.Request.Context(), userID)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
			return
		}

		var input struct {
			Username string `json:"username"`
			Phone    string `json:"phone"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if input.Username != "" {
			current.Username = input.Username
		}
		if input.Phone != "" {
			current.Phone = input.Phone
		}

		updated, err := svc.Update(c.Request.Context(), current)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to update user", err.Error())
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteUserHandler removes the authenticated account.
func DeleteUserHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if err := svc.Delete(c.Request.Context(), userID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to delete user", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": userID})
	}
}

// RevokeTokenHandler invalidates the account's current token (logout).
func RevokeTokenHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if err := svc.RevokeToken(c.Request.Context(), userID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"revoked": userID})
	}
}
