package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"coursehub/internal/application"
	"coursehub/internal/domain/entity"
	"coursehub/internal/interface/middleware"
	"coursehub/pkg/response"
	"coursehub/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Avatar *application.AvatarStore
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, avatar *application.AvatarStore, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Avatar: avatar, Logger: logger}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,strongpwd"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	Role      string `json:"role" binding:"omitempty,oneof=ADMIN INSTRUCTOR STUDENT"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,strongpwd"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,strongpwd"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, validation.ToDetails(err))
		return
	}

	user, pair, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      entity.Role(req.Role),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "User registered successfully", gin.H{"user": user, "tokens": pair})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, validation.ToDetails(err))
		return
	}

	user, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", gin.H{"user": user, "tokens": pair})
}

// Refresh POST /api/auth/refresh-token
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, validation.ToDetails(err))
		return
	}

	pair, err := h.Svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Token refreshed successfully", gin.H{"tokens": pair})
}

// Profile GET /api/auth/profile (auth required)
func (h *AuthHandler) Profile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserID)
	user, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved successfully", gin.H{"user": user})
}

// Logout POST /api/auth/logout (auth required). Tokens are stateless, so
// this only acknowledges; clients discard their token pair.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logout successful", nil)
}

// ChangePassword POST /api/auth/change-password (auth required)
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserID)
	if err := h.Svc.ChangePassword(c.Request.Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}

// ForgotPassword POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, validation.ToDetails(err))
		return
	}

	if err := h.Svc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		response.FromError(c, err)
		return
	}
	// same message whether or not the account exists
	response.Success(c, http.StatusOK, "If the email exists, a password reset link has been sent", nil)
}

// ResetPassword POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, validation.ToDetails(err))
		return
	}

	if err := h.Svc.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Password has been reset successfully", nil)
}

// UploadAvatar POST /api/auth/avatar (auth required, multipart)
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Avatar file is required", "MISSING_FILE")
		return
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		response.Fail(c, http.StatusBadRequest, "Avatar must be a jpg, png or webp image", "INVALID_FILE_TYPE")
		return
	}

	uid := c.GetString(middleware.CtxUserID)
	user, err := h.Svc.UploadAvatar(c.Request.Context(), h.Avatar, uid, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Avatar uploaded successfully", gin.H{"user": user})
}
