package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell-dev/inkwell/db"
	"github.com/inkwell-dev/inkwell/internal/store"
	"github.com/inkwell-dev/inkwell/internal/utils"
)

// VoteRequest carries the wire encoding of a vote: dir 1 adds the caller's
// vote, dir 0 removes it. Dir is a pointer so that 0 survives binding.
type VoteRequest struct {
	PostID uint `json:"post_id" binding:"required"`
	Dir    *int `json:"dir" binding:"required"`
}

func CastVote(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req VoteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var direction store.VoteDirection

	switch *req.Dir {
	case 1:
		direction = store.VoteUp
	case 0:
		direction = store.VoteRemove
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "dir must be 0 or 1"})
		return
	}

	if err := store.NewVoteStore(db.DB).Cast(req.PostID, userID, direction); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateVote):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "User already voted on this post"})
		case errors.Is(err, store.ErrNotFound):
			if direction == store.VoteUp {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			} else {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Vote does not exist"})
			}
		default:
			log.Printf("Failed to cast vote: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if direction == store.VoteUp {
		ctx.JSON(http.StatusCreated, gin.H{"message": "Vote added successfully"})
	} else {
		ctx.JSON(http.StatusCreated, gin.H{"message": "Vote removed successfully"})
	}
}
