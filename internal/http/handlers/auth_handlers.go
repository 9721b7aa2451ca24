package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nakochan/the-kokoa-engine/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc         domain.AuthService
	verificationSvc domain.VerificationService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, verificationSvc domain.VerificationService) *AuthHandlers {
	return &AuthHandlers{
		authSvc:         authSvc,
		verificationSvc: verificationSvc,
	}
}

// LoginRequest represents login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	AuthCode string `json:"authCode"`
	Password string `json:"password"`
}

// SendCodeRequest represents a verification mail request
type SendCodeRequest struct {
	Email string `json:"email"`
}

// ConfirmRequest represents an email confirmation request
type ConfirmRequest struct {
	Username string `json:"username"`
	AuthCode string `json:"authCode"`
}

// Login handles POST /api/auth. Required-field checks happen in the
// service so that missing and empty fields fail identically.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.ErrInvalidRequest)
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, gin.H{"token": token})
}

// Register handles POST /api/auth/register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.ErrInvalidRequest)
		return
	}

	_, err := h.authSvc.Register(c.Request.Context(), domain.RegisterRequest{
		Username: req.Username,
		Nickname: req.Nickname,
		Email:    req.Email,
		AuthCode: req.AuthCode,
		Password: req.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, nil)
}

// SendCode handles POST /api/auth/code
func (h *AuthHandlers) SendCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.ErrInvalidRequest)
		return
	}

	if err := h.verificationSvc.SendCode(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}

	ok(c, nil)
}

// ConfirmEmail handles POST /api/auth/verify
func (h *AuthHandlers) ConfirmEmail(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.ErrInvalidRequest)
		return
	}

	if err := h.authSvc.ConfirmEmail(c.Request.Context(), req.Username, req.AuthCode); err != nil {
		fail(c, err)
		return
	}

	ok(c, nil)
}

// Check handles GET /api/auth/check. The token middleware has already
// validated x-access-token and stored the subject.
func (h *AuthHandlers) Check(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		fail(c, domain.ErrTokenInvalid)
		return
	}

	ok(c, gin.H{"username": username})
}
