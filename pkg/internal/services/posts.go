package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/driftline-social/driftline/pkg/internal/database"
	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func FilterPostWithAuthors(tx *gorm.DB, authorIDs []uint) *gorm.DB {
	return tx.Where("posts.account_id IN ?", authorIDs)
}

// FilterPostWithFuzzySearch keeps posts where the probe appears in the
// title, the body or the author's name or nick. LOWER+LIKE instead of ILIKE
// so the same statement runs on every supported dialect.
func FilterPostWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + strings.ToLower(probe) + "%"
	return tx.
		Joins("JOIN accounts ON accounts.id = posts.account_id").
		Where(
			"LOWER(posts.title) LIKE ? OR LOWER(posts.body) LIKE ? OR LOWER(accounts.name) LIKE ? OR LOWER(accounts.nick) LIKE ?",
			probe, probe, probe, probe,
		)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Account").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("comments.created_at ASC")
		}).
		Preload("Comments.Account")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).Where("posts.id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fmt.Errorf("post #%d: %w", id, ErrNotFound)
		}
		return item, fmt.Errorf("unable to get post: %w", err)
	}
	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, fmt.Errorf("unable to count posts: %w", err)
	}
	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, fmt.Errorf("unable to list posts: %w", err)
	}

	return items, nil
}

// NewPost validates and persists a post. Nothing is written when validation
// fails, so a rejected post never leaves a partial row behind.
func NewPost(author models.Account, title, body string, image *string, attachments []string) (models.Post, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if len(title) == 0 || len(body) == 0 {
		return models.Post{}, fmt.Errorf("title and body cannot be empty: %w", ErrValidation)
	}

	item := models.Post{
		Title:       title,
		Body:        body,
		Language:    DetectLanguage(body),
		Image:       image,
		Attachments: attachments,
		AccountID:   author.ID,
	}

	start := time.Now()
	if err := database.C.Create(&item).Error; err != nil {
		return item, fmt.Errorf("unable to save post: %w", err)
	}
	log.Debug().Dur("elapsed", time.Since(start)).Uint("post", item.ID).Msg("The post is posted.")

	item.Account = author
	return item, nil
}

// EditPost replaces the body in place. Id, author and creation timestamp
// never change; EditedAt records the mutation.
func EditPost(item models.Post, editor models.Account, body string) (models.Post, error) {
	if item.AccountID != editor.ID {
		return item, ErrNotAuthor
	}

	body = strings.TrimSpace(body)
	if len(body) == 0 {
		return item, fmt.Errorf("body cannot be empty: %w", ErrValidation)
	}

	now := time.Now()
	item.Body = body
	item.Language = DetectLanguage(body)
	item.EditedAt = &now

	if err := database.C.Omit("Account", "Comments").Save(&item).Error; err != nil {
		return item, fmt.Errorf("unable to save post: %w", err)
	}
	return item, nil
}

func DeletePost(item models.Post, editor models.Account) error {
	if item.AccountID != editor.ID {
		return ErrNotAuthor
	}
	if err := database.C.Delete(&item).Error; err != nil {
		return fmt.Errorf("unable to delete post: %w", err)
	}
	return nil
}
