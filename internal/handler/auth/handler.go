package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/romidental/reception-api/internal/config"
	"github.com/romidental/reception-api/pkg/auth"
	"github.com/romidental/reception-api/pkg/logger"
	"github.com/romidental/reception-api/pkg/security"
)

type Handler struct {
	cfg    config.AdminConfig
	tokens auth.TokenService
	hasher security.PasswordHasher
	log    *logger.Logger
}

func NewHandler(cfg config.AdminConfig, tokens auth.TokenService, log *logger.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		tokens: tokens,
		hasher: security.NewBcryptHasher(0),
		log:    log,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if req.Username != h.cfg.Username || h.hasher.Compare(h.cfg.PasswordHash, req.Password) != nil {
		h.log.Warn("failed admin login attempt", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"token": token}})
}
