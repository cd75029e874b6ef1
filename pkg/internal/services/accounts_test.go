package services

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAccount(t *testing.T) {
	openTestDatabase(t)

	account, err := RegisterAccount("alice", "Alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Name)
	assert.Equal(t, "Alice", account.Nick)
	assert.NotEqual(t, "secret", account.Password)

	_, err = RegisterAccount("alice", "Imposter", "other")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = RegisterAccount("  ", "", "secret")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEditAccountProfile(t *testing.T) {
	openTestDatabase(t)

	account := mustAccount(t, "alice")

	edited, err := EditAccountProfile(account, "Alice in Chains", "now with a headline", "avatar-ref")
	require.NoError(t, err)
	assert.Equal(t, "alice", edited.Name)
	assert.Equal(t, "Alice in Chains", edited.Nick)
	assert.Equal(t, "now with a headline", edited.Headline)

	stored, err := GetAccountByName("alice")
	require.NoError(t, err)
	assert.Equal(t, "now with a headline", stored.Headline)
	assert.Equal(t, "avatar-ref", stored.Avatar)
}

func TestSessionRoundTrip(t *testing.T) {
	openTestDatabase(t)
	viper.Set("security.session_secret", "test-secret")

	account := mustAccount(t, "alice")

	_, err := Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = Authenticate("nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	authed, err := Authenticate("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, account.ID, authed.ID)

	token, err := IssueSession(authed)
	require.NoError(t, err)

	verified, err := VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, verified.ID)

	_, err = VerifySession("not-a-token")
	assert.Error(t, err)
}
