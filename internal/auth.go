package internal

import (
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var allowedRoles = []string{"admin", "editor", "viewer"}

func Register(store *CredStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		if req.Username == "" || req.Password == "" || req.Role == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
			return
		}
		if !slices.Contains(allowedRoles, req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be admin, editor or viewer"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "hash"})
			return
		}

		err = store.InsertIfAbsent(Credential{
			Username:     req.Username,
			PasswordHash: string(hash),
			Role:         req.Role,
		})
		if errors.Is(err, ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
			return
		}
		if err != nil {
			log.Warn().Err(err).Msg("register")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "user registered"})
	}
}

func Login(store *CredStore, secret string, clock clockwork.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}

		cred, err := store.FindByUsername(req.Username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		token, err := IssueToken(cred.Username, cred.Role, secret, clock)
		if err != nil {
			log.Warn().Err(err).Msg("login")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
