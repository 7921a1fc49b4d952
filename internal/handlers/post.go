package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inkwell-dev/inkwell/db"
	"github.com/inkwell-dev/inkwell/internal/store"
	"github.com/inkwell-dev/inkwell/internal/types"
	"github.com/inkwell-dev/inkwell/internal/utils"
)

type CreatePostRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published *bool  `json:"published"`
}

// UpdatePostRequest uses pointer fields so an omitted field and an explicit
// zero value stay distinguishable.
type UpdatePostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

func postIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return 0, false
	}

	return uint(id), true
}

func ListPosts(ctx *gin.Context) {
	limit := store.DefaultListLimit

	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	posts, err := store.NewPostStore(db.DB).List(limit)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No posts found"})
			return
		}
		log.Printf("Failed to list posts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.PostVotesResponse, 0, len(posts))

	for i := range posts {
		response = append(response, types.NewPostVotesResponse(&posts[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetPost(ctx *gin.Context) {
	id, ok := postIDParam(ctx)

	if !ok {
		return
	}

	post, err := store.NewPostStore(db.DB).Get(id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		log.Printf("Failed to fetch post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewPostVotesResponse(post))
}

func CreatePost(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreatePostRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post, err := store.NewPostStore(db.DB).Create(userID, req.Title, req.Content, published)

	if err != nil {
		log.Printf("Failed to create post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewPostResponse(post))
}

func UpdatePost(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := postIDParam(ctx)

	if !ok {
		return
	}

	var req UpdatePostRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	patch := store.PostPatch{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	}

	post, err := store.NewPostStore(db.DB).Update(id, userID, patch)

	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyUpdate):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided to update"})
		case errors.Is(err, store.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, store.ErrForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this post"})
		default:
			log.Printf("Failed to update post: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewPostResponse(post))
}

func DeletePost(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := postIDParam(ctx)

	if !ok {
		return
	}

	if err := store.NewPostStore(db.DB).Delete(id, userID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, store.ErrForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this post"})
		default:
			log.Printf("Failed to delete post: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
