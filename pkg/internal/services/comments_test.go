package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	openTestDatabase(t)

	alice := mustAccount(t, "alice")
	bob := mustAccount(t, "bob")

	item := mustPost(t, alice, "a title", "some body")

	_, err := AddComment(item.ID, bob, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = AddComment(item.ID+999, bob, "hello")
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := AddComment(item.ID, bob, "hello there")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, "hello there", updated.Comments[0].Body)
	assert.Equal(t, bob.ID, updated.Comments[0].AccountID)
}

func TestEditComment(t *testing.T) {
	openTestDatabase(t)

	alice := mustAccount(t, "alice")
	bob := mustAccount(t, "bob")
	mallory := mustAccount(t, "mallory")

	item := mustPost(t, alice, "a title", "some body")
	updated, err := AddComment(item.ID, bob, "original comment")
	require.NoError(t, err)
	comment := updated.Comments[0]

	// A bystander cannot edit
	_, err = EditComment(item.ID, comment.ID, mallory, "defaced")
	assert.ErrorIs(t, err, ErrNotAuthor)

	// The comment's author can
	edited, err := EditComment(item.ID, comment.ID, bob, "edited by author")
	require.NoError(t, err)
	assert.Equal(t, "edited by author", edited.Body)
	assert.NotNil(t, edited.EditedAt)

	// So can the author of the parent post
	edited, err = EditComment(item.ID, comment.ID, alice, "edited by poster")
	require.NoError(t, err)
	assert.Equal(t, "edited by poster", edited.Body)

	_, err = EditComment(item.ID, comment.ID+999, bob, "whatever")
	assert.ErrorIs(t, err, ErrNotFound)
}
