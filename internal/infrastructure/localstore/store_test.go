package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
	"github.com/dias012rrr/fooddelivery/internal/infrastructure/localstore"
)

func openStore(t *testing.T) (*localstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := localstore.Open(path)
	require.NoError(t, err)
	return s, path
}

func TestOpen_MissingFileIsEmptyStore(t *testing.T) {
	s, _ := openStore(t)

	user, err := s.LoadUser()
	require.NoError(t, err)
	assert.Nil(t, user)

	token, err := s.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestUserRoundTrip(t *testing.T) {
	s, path := openStore(t)

	require.NoError(t, s.SaveUser(entity.User{ID: 7, Name: "Ann", Email: "ann@example.com"}))

	// Survives a reopen.
	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	user, err := reopened.LoadUser()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ann@example.com", user.Email)

	require.NoError(t, reopened.DeleteUser())
	user, err = reopened.LoadUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestTokenRoundTrip(t *testing.T) {
	s, _ := openStore(t)

	require.NoError(t, s.SaveToken("tok-1"))
	token, err := s.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, s.DeleteToken())
	token, err = s.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestDeleteAbsentKeyIsNoOp(t *testing.T) {
	s, _ := openStore(t)
	assert.NoError(t, s.DeleteUser())
	assert.NoError(t, s.DeleteToken())
}

func TestAccountsRoundTrip(t *testing.T) {
	s, path := openStore(t)

	accounts := []entity.Account{
		{Email: "ann@example.com", Phone: "+15550001", Password: "password1"},
		{Email: "bob@example.com", Phone: "+15550002", Password: "password2"},
	}
	require.NoError(t, s.SaveAccounts(accounts))

	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	loaded, err := reopened.LoadAccounts()
	require.NoError(t, err)
	assert.Equal(t, accounts, loaded)
}

func TestTheme_DefaultsToLight(t *testing.T) {
	s, _ := openStore(t)

	theme, err := s.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	require.NoError(t, s.SaveTheme("dark"))
	theme, err = s.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestOpen_CorruptFileBehavesLikeClearedStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := localstore.Open(path)
	require.NoError(t, err)

	user, err := s.LoadUser()
	require.NoError(t, err)
	assert.Nil(t, user)

	// The store is usable again after the reset.
	require.NoError(t, s.SaveToken("tok-1"))
	token, err := s.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}
