package store

import (
	"errors"
	"fmt"

	"github.com/inkwell-dev/inkwell/internal/models"
	"gorm.io/gorm"
)

// DefaultListLimit bounds list results when the caller does not supply a limit.
const DefaultListLimit = 10

// PostWithVotes pairs a post with its aggregate vote count.
type PostWithVotes struct {
	models.Post
	Votes int64 `json:"votes"`
}

// PostPatch is a partial update: nil fields are left untouched. "Present but
// nil" is never a valid state for a field, which keeps omitted and cleared
// from being conflated.
type PostPatch struct {
	Title     *string
	Content   *string
	Published *bool
}

func (p PostPatch) empty() bool {
	return p.Title == nil && p.Content == nil && p.Published == nil
}

type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

func (s *PostStore) withVotes() *gorm.DB {
	return s.db.Model(&models.Post{}).
		Select("posts.*, count(votes.post_id) AS votes").
		Joins("LEFT JOIN votes ON votes.post_id = posts.id").
		Group("posts.id")
}

// List returns up to limit posts with their vote counts, ordered by id. An
// empty result is reported as ErrNotFound rather than an empty slice.
func (s *PostStore) List(limit int) ([]PostWithVotes, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var posts []PostWithVotes

	err := s.withVotes().
		Order("posts.id").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not list posts: %w", err)
	}

	if len(posts) == 0 {
		return nil, ErrNotFound
	}

	return posts, nil
}

func (s *PostStore) Get(id uint) (*PostWithVotes, error) {
	var post PostWithVotes

	err := s.withVotes().
		Where("posts.id = ?", id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not get post: %w", err)
	}

	return &post, nil
}

func (s *PostStore) Create(ownerID uint, title, content string, published bool) (*models.Post, error) {
	post := models.Post{
		Title:     title,
		Content:   content,
		Published: published,
		OwnerID:   ownerID,
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return &post, nil
}

// Update applies the patch to the post owned by callerID and returns the
// freshly re-read row. The ownership check and the write run in one
// transaction so a concurrent owner change cannot slip between them.
func (s *PostStore) Update(id, callerID uint, patch PostPatch) (*models.Post, error) {
	if patch.empty() {
		return nil, ErrEmptyUpdate
	}

	updates := make(map[string]interface{})
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Published != nil {
		updates["published"] = *patch.Published
	}

	var updated models.Post

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("could not get post: %w", err)
		}

		if post.OwnerID != callerID {
			return ErrForbidden
		}

		result := tx.Model(&models.Post{}).
			Where("id = ? AND owner_id = ?", id, callerID).
			Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("could not update post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the post owned by callerID; its votes go with it via the
// foreign-key cascade.
func (s *PostStore) Delete(id, callerID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("could not get post: %w", err)
		}

		if post.OwnerID != callerID {
			return ErrForbidden
		}

		result := tx.Where("id = ? AND owner_id = ?", id, callerID).Delete(&models.Post{})
		if result.Error != nil {
			return fmt.Errorf("could not delete post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}
