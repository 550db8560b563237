package public

import (
	"github.com/attarah-next/internal/http/response"
	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest registration request
type UserRegisterRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
}

// UserRegister registers an account and signs it in
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if req.Password != req.ConfirmPassword {
		respondError(c, response.CodeBadRequest, "error.password_mismatch", nil)
		return
	}

	account, err := h.UserAuthService.Register(service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		respondRegisterError(c, err)
		return
	}

	token, expiresAt, err := h.UserAuthService.GenerateJWT(account)
	if err != nil {
		respondError(c, response.CodeInternal, "error.register_failed", err)
		return
	}

	response.Success(c, gin.H{
		"account":    accountProfile(account),
		"token":      token,
		"expires_at": expiresAt.Unix(),
	})
}

// UserLoginRequest login request
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserLogin verifies credentials and issues a token
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	account, token, expiresAt, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		respondLoginError(c, err)
		return
	}

	response.Success(c, gin.H{
		"account":    accountProfile(account),
		"token":      token,
		"expires_at": expiresAt.Unix(),
	})
}

// GetCurrentUser returns the signed-in profile together with the
// provisioned storefront user record when it has landed.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	accountID, ok := getContextUintWithKeys(c, "account_id", "error.user_id_invalid", "error.user_id_type_invalid")
	if !ok {
		return
	}

	account, err := h.UserAuthService.GetAccountByID(accountID)
	if err != nil {
		respondError(c, response.CodeUnauthorized, "error.unauthorized", err)
		return
	}
	user, err := h.UserAuthService.GetUserByAccountID(accountID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{
		"account": accountProfile(account),
		"user":    user,
	})
}

func accountProfile(account *models.Account) gin.H {
	return gin.H{
		"id":         account.ID,
		"email":      account.Email,
		"first_name": account.FirstName,
		"last_name":  account.LastName,
		"phone":      account.Phone,
	}
}
