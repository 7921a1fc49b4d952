package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell-dev/inkwell/db"
	"github.com/inkwell-dev/inkwell/internal/auth"
	"github.com/inkwell-dev/inkwell/internal/store"
	"github.com/inkwell-dev/inkwell/internal/types"
)

// LoginRequest arrives as form data; the username field carries the email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginUser exchanges form credentials for a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func LoginUser(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := store.NewUserStore(db.DB).GetByEmail(req.Username)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("Failed to fetch user for login: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(user.ID)

	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
