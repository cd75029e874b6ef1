package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/driftline-social/driftline/pkg/internal/database"
	"github.com/driftline-social/driftline/pkg/internal/models"
	"gorm.io/gorm"
)

// AddComment appends a comment and returns the post with its comment list
// reloaded. Any authenticated account may comment on a visible post.
func AddComment(postID uint, author models.Account, body string) (models.Post, error) {
	body = strings.TrimSpace(body)
	if len(body) == 0 {
		return models.Post{}, fmt.Errorf("comment body cannot be empty: %w", ErrValidation)
	}

	post, err := GetPost(database.C, postID)
	if err != nil {
		return post, err
	}

	comment := models.Comment{
		Body:      body,
		PostID:    post.ID,
		AccountID: author.ID,
	}
	if err := database.C.Create(&comment).Error; err != nil {
		return post, fmt.Errorf("unable to save comment: %w", err)
	}

	return GetPost(database.C, postID)
}

// EditComment is allowed for the comment's author and for the author of the
// parent post, nobody else.
func EditComment(postID, commentID uint, editor models.Account, body string) (models.Comment, error) {
	var comment models.Comment

	body = strings.TrimSpace(body)
	if len(body) == 0 {
		return comment, fmt.Errorf("comment body cannot be empty: %w", ErrValidation)
	}

	if err := database.C.Where("id = ? AND post_id = ?", commentID, postID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return comment, fmt.Errorf("comment #%d: %w", commentID, ErrNotFound)
		}
		return comment, fmt.Errorf("unable to get comment: %w", err)
	}

	var post models.Post
	if err := database.C.Where("id = ?", postID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return comment, fmt.Errorf("post #%d: %w", postID, ErrNotFound)
		}
		return comment, fmt.Errorf("unable to get post: %w", err)
	}

	if comment.AccountID != editor.ID && post.AccountID != editor.ID {
		return comment, ErrNotAuthor
	}

	now := time.Now()
	comment.Body = body
	comment.EditedAt = &now

	if err := database.C.Omit("Account").Save(&comment).Error; err != nil {
		return comment, fmt.Errorf("unable to save comment: %w", err)
	}
	return comment, nil
}
