package types

import (
	"time"

	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/store"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type PostResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   uint      `json:"owner_id"`
}

func NewPostResponse(post *models.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		CreatedAt: post.CreatedAt,
		OwnerID:   post.OwnerID,
	}
}

type PostVotesResponse struct {
	Post  PostResponse `json:"post"`
	Votes int64        `json:"votes"`
}

func NewPostVotesResponse(row *store.PostWithVotes) PostVotesResponse {
	return PostVotesResponse{
		Post:  NewPostResponse(&row.Post),
		Votes: row.Votes,
	}
}
