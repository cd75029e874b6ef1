package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	localCache "github.com/driftline-social/driftline/pkg/internal/cache"
	"github.com/driftline-social/driftline/pkg/internal/database"
	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Per-viewer follow set versions. Every follow mutation bumps the version,
// which rotates the cache key of the visible author set, so a recomputation
// after a mutation can never read a stale entry. Old entries age out via TTL.
var followVersions sync.Map

func FollowVersion(viewerID uint) uint64 {
	if v, ok := followVersions.Load(viewerID); ok {
		return v.(uint64)
	}
	return 0
}

func visibleAuthorsCacheKey(viewerID uint) string {
	return fmt.Sprintf("feed-visible-authors#%d@%d", viewerID, FollowVersion(viewerID))
}

func GetFollowEdge(viewerID, targetID uint) (*models.FollowEdge, error) {
	var edge models.FollowEdge
	if err := database.C.Where("follower_id = ? AND followee_id = ?", viewerID, targetID).First(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow edge: %w", err)
	}
	return &edge, nil
}

// FollowUser inserts a follow edge and returns the viewer's updated followed
// id set. Following yourself or someone you already follow is an error, not
// a silent no-op.
func FollowUser(viewer models.Account, target models.Account) ([]uint, error) {
	if viewer.ID == target.ID {
		return nil, ErrSelfFollow
	}

	if edge, err := GetFollowEdge(viewer.ID, target.ID); err != nil {
		return nil, err
	} else if edge != nil {
		return nil, ErrAlreadyFollowing
	}

	edge := models.FollowEdge{
		FollowerID: viewer.ID,
		FolloweeID: target.ID,
	}
	if err := database.C.Create(&edge).Error; err != nil {
		return nil, fmt.Errorf("unable to save follow edge: %w", err)
	}

	FlushVisibleAuthors(viewer.ID)
	return ListFollowedIDs(viewer.ID)
}

// UnfollowUser removes the edge if present. Removing an absent edge is a
// no-op so the operation stays idempotent.
func UnfollowUser(viewer models.Account, target models.Account) error {
	edge, err := GetFollowEdge(viewer.ID, target.ID)
	if err != nil {
		return err
	}
	if edge == nil {
		return nil
	}

	if err := database.C.Delete(edge).Error; err != nil {
		return fmt.Errorf("unable to remove follow edge: %w", err)
	}

	FlushVisibleAuthors(viewer.ID)
	return nil
}

func ListFollowedIDs(viewerID uint) ([]uint, error) {
	var edges []models.FollowEdge
	if err := database.C.Where("follower_id = ?", viewerID).Find(&edges).Error; err != nil {
		return nil, fmt.Errorf("unable to list follow edges: %w", err)
	}
	return lo.Map(edges, func(item models.FollowEdge, _ int) uint {
		return item.FolloweeID
	}), nil
}

func ListFollowedAccounts(viewerID uint) ([]models.Account, error) {
	ids, err := ListFollowedIDs(viewerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Account{}, nil
	}

	var accounts []models.Account
	if err := database.C.Where("id IN ?", ids).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("unable to list followed accounts: %w", err)
	}
	return accounts, nil
}

// VisibleAuthorIDs returns the viewer plus everyone the viewer follows.
// The set is cached briefly; follow mutations flush it by key.
func VisibleAuthorIDs(viewerID uint) ([]uint, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if hit, err := marshal.Get(ctx, visibleAuthorsCacheKey(viewerID), new([]uint)); err == nil {
		return *hit.(*[]uint), nil
	}

	followed, err := ListFollowedIDs(viewerID)
	if err != nil {
		return nil, err
	}
	authors := append(followed, viewerID)

	_ = marshal.Set(ctx, visibleAuthorsCacheKey(viewerID), authors,
		store.WithExpiration(5*time.Minute),
	)

	return authors, nil
}

func FlushVisibleAuthors(viewerID uint) {
	cacheManager := cache.New[any](localCache.S)
	_ = cacheManager.Delete(context.Background(), visibleAuthorsCacheKey(viewerID))
	followVersions.Store(viewerID, FollowVersion(viewerID)+1)
}
