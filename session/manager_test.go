package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielterto2000/broadcastmotion-api/models"
	"github.com/danielterto2000/broadcastmotion-api/store"
)

func newStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return st
}

func adminCount(users []models.User) int {
	n := 0
	for _, u := range users {
		if u.Email == AdminEmail {
			n++
		}
	}
	return n
}

func TestBootstrapCreatesCanonicalAdmin(t *testing.T) {
	m := NewManager(newStore(t))

	admin, ok := m.FindUserByEmail(AdminEmail)
	require.True(t, ok)
	assert.True(t, admin.IsAdmin)
	assert.False(t, admin.IsCreator)
	assert.Equal(t, "admin123", admin.PasswordHash)
	assert.Equal(t, 1, adminCount(m.Users()))
}

func TestBootstrapRepairsTamperedAdmin(t *testing.T) {
	st := newStore(t)
	st.Put(store.KeyUsers, []models.User{
		{ID: "x", Name: "Hacked", Email: AdminEmail, PasswordHash: "changed", IsAdmin: false, IsCreator: true},
	})

	m := NewManager(st)

	admin, ok := m.FindUserByEmail(AdminEmail)
	require.True(t, ok)
	assert.True(t, admin.IsAdmin)
	assert.False(t, admin.IsCreator)
	assert.Equal(t, "admin123", admin.PasswordHash)
	assert.Equal(t, 1, adminCount(m.Users()))
}

func TestBootstrapCorruptUserListStartsFresh(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, store.KeyUsers+".json"), []byte("][garbage"), 0o644))

	m := NewManager(st)
	assert.Equal(t, 1, adminCount(m.Users()))
	assert.Len(t, m.Users(), 1)
}

func TestBootstrapDropsStaleSessionSlots(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	require.NoError(t, err)
	st.Put(store.KeyToken, "stale-token")
	require.NoError(t, os.WriteFile(filepath.Join(dir, store.KeyLoggedInUser+".json"), []byte("{bad"), 0o644))

	m := NewManager(st)
	assert.False(t, m.LoggedIn)

	var token string
	assert.ErrorIs(t, st.Get(store.KeyToken, &token), store.ErrNotFound)
}

func TestBootstrapKeepsTokenWhenIdentityRecordAbsent(t *testing.T) {
	st := newStore(t)
	st.Put(store.KeyToken, "orphan-token")

	m := NewManager(st)
	assert.False(t, m.LoggedIn)
	assert.False(t, m.IsAdminAuthenticated())

	// An absent identity record is not a parse failure; the token stays
	var token string
	require.NoError(t, st.Get(store.KeyToken, &token))
	assert.Equal(t, "orphan-token", token)
}

func TestBootstrapRestoresSession(t *testing.T) {
	st := newStore(t)
	first := NewManager(st)
	first.Login(LoginParams{Email: "u@x.com", Name: "U", UserID: "user_1"})

	m := NewManager(st)
	assert.True(t, m.LoggedIn)
	assert.Equal(t, "U", m.UserName)
	assert.Equal(t, "u@x.com", m.UserEmail)
	assert.False(t, m.AdminSession)
}

func TestLoginAdminWithToken(t *testing.T) {
	m := NewManager(newStore(t))

	_, adminSession := m.Login(LoginParams{
		Email: AdminEmail, Name: "Admin", UserID: "admin_user_001",
		IsAdmin: true, Token: "tok",
	})

	assert.True(t, adminSession)
	assert.True(t, m.AdminSession)
	assert.True(t, m.TrueAdmin)
	assert.True(t, m.IsAdminAuthenticated())
}

func TestLoginAdminWithoutTokenIsNotAdminSession(t *testing.T) {
	m := NewManager(newStore(t))

	_, adminSession := m.Login(LoginParams{
		Email: AdminEmail, Name: "Admin", UserID: "admin_user_001", IsAdmin: true,
	})

	assert.False(t, adminSession)
	assert.True(t, m.TrueAdmin)
	assert.False(t, m.IsAdminAuthenticated())
}

func TestLoginAdminEmailNeverSessionCreator(t *testing.T) {
	m := NewManager(newStore(t))

	m.Login(LoginParams{
		Email: AdminEmail, Name: "Admin", UserID: "admin_user_001",
		IsAdmin: true, IsCreator: true, Token: "tok",
	})

	assert.True(t, m.TrueCreator)
	assert.False(t, m.CreatorSession)
	assert.Empty(t, m.CreatorName)
}

func TestLoginClearsAndReturnsPendingIntent(t *testing.T) {
	m := NewManager(newStore(t))
	m.SetPendingIntent(models.PendingIntent{Kind: models.IntentOpenCart, ItemID: "t1"})

	intent, _ := m.Login(LoginParams{Email: "u@x.com", Name: "U"})

	assert.Equal(t, models.IntentOpenCart, intent.Kind)
	assert.Equal(t, "t1", intent.ItemID)
	assert.Equal(t, models.IntentNone, m.PendingIntent().Kind)
}

func TestRegisterCreatesPlainAccount(t *testing.T) {
	m := NewManager(newStore(t))

	m.Register("Nova", "nova@x.com")

	u, ok := m.FindUserByEmail("nova@x.com")
	require.True(t, ok)
	assert.False(t, u.IsAdmin)
	assert.False(t, u.IsCreator)
	assert.True(t, m.LoggedIn)
	assert.False(t, m.AdminSession)
}

func TestCreatorSignupUpgradesExistingAccount(t *testing.T) {
	m := NewManager(newStore(t))
	m.Register("Plain", "c@x.com")
	m.Logout()

	m.CreatorSignup(models.CreatorSignupData{FullName: "Criadora", Email: "c@x.com", Password: "pw"})

	u, ok := m.FindUserByEmail("c@x.com")
	require.True(t, ok)
	assert.True(t, u.IsCreator)
	assert.Equal(t, "Criadora", u.Name)
	assert.True(t, m.CreatorSession)
	assert.Equal(t, "Criadora", m.CreatorName)
}

func TestCreatorSignupCreatesNewAccount(t *testing.T) {
	m := NewManager(newStore(t))

	m.CreatorSignup(models.CreatorSignupData{FullName: "Nova Criadora", Email: "nc@x.com", Password: "pw"})

	u, ok := m.FindUserByEmail("nc@x.com")
	require.True(t, ok)
	assert.True(t, u.IsCreator)
	assert.True(t, m.CreatorSession)
}

func TestLogoutClearsSessionAndSlots(t *testing.T) {
	st := newStore(t)
	m := NewManager(st)
	m.Login(LoginParams{Email: AdminEmail, Name: "Admin", UserID: "admin_user_001", IsAdmin: true, Token: "tok"})

	view := m.Logout()

	assert.Equal(t, models.ViewMain, view)
	assert.False(t, m.LoggedIn)
	assert.False(t, m.IsAdminAuthenticated())

	var token string
	assert.ErrorIs(t, st.Get(store.KeyToken, &token), store.ErrNotFound)
	var u models.User
	assert.ErrorIs(t, st.Get(store.KeyLoggedInUser, &u), store.ErrNotFound)
}

func TestIsAdminAuthenticatedFailsClosedOnCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	require.NoError(t, err)
	m := NewManager(st)
	m.Login(LoginParams{Email: AdminEmail, Name: "Admin", UserID: "admin_user_001", IsAdmin: true, Token: "tok"})
	require.True(t, m.IsAdminAuthenticated())

	require.NoError(t, os.WriteFile(filepath.Join(dir, store.KeyLoggedInUser+".json"), []byte("{bad"), 0o644))
	assert.False(t, m.IsAdminAuthenticated())
}

func TestIdentityComplete(t *testing.T) {
	m := NewManager(newStore(t))
	assert.False(t, m.IdentityComplete())

	m.Login(LoginParams{Email: "u@x.com", Name: "U", UserID: "user_1"})
	assert.True(t, m.IdentityComplete())
}
