package store

import (
	"errors"
	"fmt"

	"github.com/inkwell-dev/inkwell/internal/models"
	"gorm.io/gorm"
)

// VoteDirection is the validated form of the wire-level dir field
// (1 = upvote, 0 = remove).
type VoteDirection int

const (
	VoteRemove VoteDirection = 0
	VoteUp     VoteDirection = 1
)

type VoteStore struct {
	db *gorm.DB
}

func NewVoteStore(db *gorm.DB) *VoteStore {
	return &VoteStore{db: db}
}

// Cast toggles the caller's vote on a post. The post must exist. An upvote on
// an already-voted post fails with ErrDuplicateVote; removing an absent vote
// fails with ErrNotFound. The whole toggle runs in one transaction, and the
// composite primary key on votes closes the check-then-insert race.
func (s *VoteStore) Cast(postID, userID uint, direction VoteDirection) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("could not get post: %w", err)
		}

		var vote models.Vote
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&vote).Error
		exists := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("could not check existing vote: %w", err)
		}

		if direction == VoteUp {
			if exists {
				return ErrDuplicateVote
			}

			newVote := models.Vote{UserID: userID, PostID: postID}
			if err := tx.Create(&newVote).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrDuplicateVote
				}
				return fmt.Errorf("could not create vote: %w", err)
			}

			return nil
		}

		if !exists {
			return ErrNotFound
		}

		result := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Vote{})
		if result.Error != nil {
			return fmt.Errorf("could not delete vote: %w", result.Error)
		}

		return nil
	})
}

// Count returns the number of votes on a post.
func (s *VoteStore) Count(postID uint) (int64, error) {
	var count int64

	err := s.db.Model(&models.Vote{}).Where("post_id = ?", postID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("could not count votes: %w", err)
	}

	return count, nil
}
