package services

import (
	"testing"
	"time"

	"github.com/driftline-social/driftline/pkg/internal/database"
	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPost(t *testing.T, author models.Account, title, body string, createdAt time.Time) models.Post {
	t.Helper()

	item := models.Post{
		BaseModel: models.BaseModel{CreatedAt: createdAt},
		Title:     title,
		Body:      body,
		AccountID: author.ID,
	}
	require.NoError(t, database.C.Create(&item).Error)
	return item
}

func feedAuthorIDs(page FeedPage) []uint {
	return lo.Uniq(lo.Map(page.Items, func(item models.Post, _ int) uint {
		return item.AccountID
	}))
}

func TestResolveFeedScopesToVisibleAuthors(t *testing.T) {
	openTestDatabase(t)

	bret := mustAccount(t, "bret")
	followed := mustAccount(t, "followed")
	stranger := mustAccount(t, "stranger")

	now := time.Now()
	seedPost(t, bret, "own post", "by the viewer", now.Add(-3*time.Hour))
	seedPost(t, followed, "followed post", "by a followed user", now.Add(-2*time.Hour))
	seedPost(t, stranger, "stranger post", "should stay invisible", now.Add(-1*time.Hour))

	_, err := FollowUser(bret, followed)
	require.NoError(t, err)

	page, err := ResolveFeed(FeedQuery{ViewerID: bret.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalCount)
	assert.ElementsMatch(t, []uint{bret.ID, followed.ID}, feedAuthorIDs(page))
}

func TestResolveFeedWithoutFollows(t *testing.T) {
	openTestDatabase(t)

	loner := mustAccount(t, "loner")
	other := mustAccount(t, "other")

	// A brand-new viewer with no follows and no posts gets an empty page
	page, err := ResolveFeed(FeedQuery{ViewerID: loner.ID})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.TotalCount)
	assert.Zero(t, page.TotalPages)

	seedPost(t, loner, "own post", "only mine", time.Now().Add(-2*time.Hour))
	seedPost(t, other, "other post", "not followed", time.Now().Add(-1*time.Hour))

	page, err = ResolveFeed(FeedQuery{ViewerID: loner.ID})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, loner.ID, page.Items[0].AccountID)
}

func TestResolveFeedSearch(t *testing.T) {
	openTestDatabase(t)

	alice := mustAccount(t, "alice")
	now := time.Now()
	seedPost(t, alice, "React Testing", "hooks and renders", now.Add(-3*time.Hour))
	seedPost(t, alice, "Next.js Guide", "server components", now.Add(-2*time.Hour))
	seedPost(t, alice, "JavaScript Tips", "closures and scopes", now.Add(-1*time.Hour))

	page, err := ResolveFeed(FeedQuery{ViewerID: alice.ID, Search: "React"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "React Testing", page.Items[0].Title)

	// Resolving the same inputs again yields the same result
	again, err := ResolveFeed(FeedQuery{ViewerID: alice.ID, Search: "React"})
	require.NoError(t, err)
	assert.Equal(t, page.TotalCount, again.TotalCount)
	assert.Equal(t, page.Items[0].ID, again.Items[0].ID)

	// Zero matches is an empty page, not an error
	page, err = ResolveFeed(FeedQuery{ViewerID: alice.ID, Search: "no such thing"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.TotalPages)
}

func TestResolveFeedPagination(t *testing.T) {
	openTestDatabase(t)

	alice := mustAccount(t, "alice")
	base := time.Now().Add(-48 * time.Hour)
	for i := 0; i < 23; i++ {
		seedPost(t, alice, "post", "body", base.Add(time.Duration(i)*time.Minute))
	}
	// Two posts sharing one timestamp, the id breaks the tie
	tied := base.Add(100 * time.Minute)
	older := seedPost(t, alice, "tied a", "body", tied)
	newer := seedPost(t, alice, "tied b", "body", tied)

	var seen []uint
	var pages int
	for p := 1; ; p++ {
		page, err := ResolveFeed(FeedQuery{ViewerID: alice.ID, Page: p})
		require.NoError(t, err)
		assert.EqualValues(t, 25, page.TotalCount)
		assert.Equal(t, 3, page.TotalPages)
		if len(page.Items) == 0 {
			break
		}
		pages++
		for _, item := range page.Items {
			seen = append(seen, item.ID)
		}
		if p >= page.TotalPages {
			break
		}
	}

	// Pages partition the sorted set: every post exactly once, no overlaps
	assert.Equal(t, 3, pages)
	assert.Len(t, seen, 25)
	assert.Len(t, lo.Uniq(seen), 25)

	// Newest first, and the higher id wins the timestamp tie
	assert.Equal(t, newer.ID, seen[0])
	assert.Equal(t, older.ID, seen[1])
}

func TestResolveFeedReflectsFollowChanges(t *testing.T) {
	openTestDatabase(t)

	viewer := mustAccount(t, "viewer")
	author := mustAccount(t, "author")
	other := mustAccount(t, "other")

	now := time.Now()
	seedPost(t, author, "followed post", "will come and go", now.Add(-2*time.Hour))
	seedPost(t, viewer, "own post", "stays forever", now.Add(-1*time.Hour))
	_ = other

	_, err := FollowUser(viewer, author)
	require.NoError(t, err)

	page, err := ResolveFeed(FeedQuery{ViewerID: viewer.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalCount)

	// Unfollowing removes the author's posts from the next computation
	require.NoError(t, UnfollowUser(viewer, author))

	page, err = ResolveFeed(FeedQuery{ViewerID: viewer.ID})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "own post", page.Items[0].Title)

	// And following again re-adds them
	_, err = FollowUser(viewer, author)
	require.NoError(t, err)

	page, err = ResolveFeed(FeedQuery{ViewerID: viewer.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalCount)
}
