package services

import (
	"fmt"
	"math"

	"github.com/driftline-social/driftline/pkg/internal/database"
	"github.com/driftline-social/driftline/pkg/internal/models"
	"gorm.io/gorm"
)

const DefaultFeedPageSize = 10

// FeedQuery is the full input of one feed computation: who is looking, what
// they searched for and which page they want.
type FeedQuery struct {
	ViewerID uint   `json:"viewer_id"`
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

func (q FeedQuery) normalized() FeedQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultFeedPageSize
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}
	return q
}

// FeedPage is a derived view, never persisted.
type FeedPage struct {
	Items      []models.Post `json:"items"`
	Page       int           `json:"page"`
	TotalCount int64         `json:"total_count"`
	TotalPages int           `json:"total_pages"`
}

// BuildFeedQuery scopes a statement to the visible author set and the
// search probe. Ordering and pagination are left to the caller.
func BuildFeedQuery(tx *gorm.DB, authorIDs []uint, probe string) *gorm.DB {
	tx = FilterPostWithAuthors(tx, authorIDs)
	tx = FilterPostWithFuzzySearch(tx, probe)
	return tx
}

// ResolveFeed computes one page of the viewer's feed: posts by the viewer
// and everyone they follow, filtered by the probe, newest first with the id
// as tie-break so pagination stays deterministic. An empty result is an
// empty page, not an error.
func ResolveFeed(query FeedQuery) (FeedPage, error) {
	query = query.normalized()
	page := FeedPage{Items: []models.Post{}, Page: query.Page}

	authors, err := VisibleAuthorIDs(query.ViewerID)
	if err != nil {
		return page, fmt.Errorf("unable to resolve visible authors: %w", err)
	}

	count, err := CountPost(BuildFeedQuery(database.C, authors, query.Search))
	if err != nil {
		return page, err
	}
	page.TotalCount = count
	page.TotalPages = int(math.Ceil(float64(count) / float64(query.PageSize)))
	if count == 0 {
		return page, nil
	}

	tx := BuildFeedQuery(database.C, authors, query.Search)
	items, err := ListPost(tx, query.PageSize, (query.Page-1)*query.PageSize, "posts.created_at DESC, posts.id DESC")
	if err != nil {
		return page, err
	}

	page.Items = items
	return page, nil
}
