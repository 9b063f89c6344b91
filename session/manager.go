// Package session tracks who is logged in and reconciles the account's
// inherent role flags with the current session's effective grants.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/danielterto2000/broadcastmotion-api/models"
	"github.com/danielterto2000/broadcastmotion-api/store"
)

// The canonical administrator account. Repaired on every startup so
// exactly one admin record always exists with these values.
const (
	AdminEmail        = "admin@broadcastmotion.com.br"
	adminPasswordHash = "admin123"
	adminUserID       = "admin_user_001"
	adminUserName     = "Admin BroadcastMotion"
)

// LoginParams carries the identity fields supplied by the authentication
// collaborator. An empty Token means no bearer token was returned.
type LoginParams struct {
	Email     string
	Name      string
	UserID    string
	IsAdmin   bool
	IsCreator bool
	Token     string
}

// Manager holds the registered-user list and the session state. Two
// independent truths are tracked: the account's inherent isAdmin/isCreator
// flags (TrueAdmin/TrueCreator) and the token-gated session grants
// (AdminSession/CreatorSession).
type Manager struct {
	store store.Store
	users []models.User

	LoggedIn    bool
	UserName    string
	UserEmail   string
	UserID      string
	TrueAdmin   bool
	TrueCreator bool

	AdminSession   bool
	CreatorSession bool
	CreatorName    string

	pending models.PendingIntent
}

// NewManager loads the persisted user list, repairs the canonical admin
// account, and rebuilds the session from the persisted identity record and
// token, if any.
func NewManager(st store.Store) *Manager {
	m := &Manager{store: st, pending: models.NoIntent()}
	m.bootstrap()
	return m
}

func (m *Manager) bootstrap() {
	var users []models.User
	m.store.Get(store.KeyUsers, &users) // parse failure reads as empty

	found := false
	for i := range users {
		if users[i].Email == AdminEmail {
			found = true
			if !users[i].IsAdmin || users[i].IsCreator || users[i].PasswordHash != adminPasswordHash {
				users[i].IsAdmin = true
				users[i].IsCreator = false
				users[i].PasswordHash = adminPasswordHash
			}
		}
	}
	if !found {
		users = append(users, models.User{
			ID:               adminUserID,
			Name:             adminUserName,
			Email:            AdminEmail,
			PasswordHash:     adminPasswordHash,
			IsAdmin:          true,
			IsCreator:        false,
			RegistrationDate: time.Now(),
		})
	}
	m.users = users
	m.saveUsers()

	var current models.User
	var token string
	hasToken := m.store.Get(store.KeyToken, &token) == nil && token != ""

	switch err := m.store.Get(store.KeyLoggedInUser, &current); {
	case err == nil:
		m.LoggedIn = true
		m.UserName = current.Name
		m.UserEmail = current.Email
		m.UserID = current.ID
		m.TrueAdmin = current.IsAdmin
		m.TrueCreator = current.IsCreator
		m.AdminSession = current.IsAdmin && hasToken
		m.CreatorSession = current.IsCreator
		if current.IsCreator {
			m.CreatorName = current.Name
		}
	case errors.Is(err, store.ErrNotFound):
		// Logged out. A lone token is left in place; it cannot satisfy
		// the admin predicate without an identity record.
	default:
		// Corrupt identity record: fail closed and drop both slots.
		m.store.Delete(store.KeyLoggedInUser)
		m.store.Delete(store.KeyToken)
	}
}

func (m *Manager) saveUsers() {
	m.store.Put(store.KeyUsers, m.users)
}

// persistIdentity rewrites the denormalized logged-in-user slot from the
// current session fields, or removes it when logged out.
func (m *Manager) persistIdentity() {
	if !m.LoggedIn || m.UserName == "" || m.UserEmail == "" || m.UserID == "" {
		m.store.Delete(store.KeyLoggedInUser)
		return
	}
	record := models.User{
		ID:               m.UserID,
		Name:             m.UserName,
		Email:            m.UserEmail,
		IsAdmin:          m.TrueAdmin,
		IsCreator:        m.TrueCreator,
		RegistrationDate: time.Now(),
	}
	if u, ok := m.FindUserByID(m.UserID); ok {
		record.PasswordHash = u.PasswordHash
		record.RegistrationDate = u.RegistrationDate
	}
	m.store.Put(store.KeyLoggedInUser, record)
}

// Login establishes the session from the collaborator-supplied identity
// and hands back the deferred intent, cleared, for the caller to execute.
// The second result reports whether the new session is admin-effective,
// which navigates to the admin view when no intent was queued.
func (m *Manager) Login(p LoginParams) (models.PendingIntent, bool) {
	m.LoggedIn = true
	m.UserName = p.Name
	m.UserEmail = p.Email
	if p.UserID != "" {
		m.UserID = p.UserID
	} else {
		m.UserID = "user_" + uuid.NewString()
	}

	if p.Token != "" {
		m.store.Put(store.KeyToken, p.Token)
	} else {
		m.store.Delete(store.KeyToken)
	}

	m.TrueAdmin = p.IsAdmin
	m.TrueCreator = p.IsCreator

	m.AdminSession = p.IsAdmin && p.Token != ""

	// The canonical admin account never presents as a session creator.
	if p.Email == AdminEmail && p.IsAdmin {
		m.CreatorSession = false
	} else {
		m.CreatorSession = p.IsCreator
	}
	if m.CreatorSession {
		m.CreatorName = p.Name
	} else {
		m.CreatorName = ""
	}

	m.persistIdentity()

	intent := m.pending
	m.pending = models.NoIntent()
	return intent, m.AdminSession
}

// Register creates a plain (non-admin, non-creator) account and logs it
// in without a token.
func (m *Manager) Register(name, email string) (models.PendingIntent, bool) {
	user := models.User{
		ID:               "user_" + uuid.NewString(),
		Name:             name,
		Email:            email,
		PasswordHash:     "simulated_hash_" + uuid.NewString(),
		RegistrationDate: time.Now(),
	}
	m.users = append(m.users, user)
	m.saveUsers()

	return m.Login(LoginParams{Email: email, Name: name, UserID: user.ID})
}

// CreatorSignup upgrades an existing account to creator status, or creates
// a new creator account, then logs in. The caller executes the returned
// intent and lands on the creator dashboard regardless. This path never
// downgrades creator status.
func (m *Manager) CreatorSignup(data models.CreatorSignupData) (models.PendingIntent, bool) {
	var userID string
	if u, ok := m.FindUserByEmail(data.Email); ok {
		userID = u.ID
		for i := range m.users {
			if m.users[i].ID == u.ID {
				m.users[i].IsCreator = true
				m.users[i].Name = data.FullName
				m.users[i].PasswordHash = data.Password
			}
		}
	} else {
		userID = "creator_" + uuid.NewString()
		m.users = append(m.users, models.User{
			ID:               userID,
			Name:             data.FullName,
			Email:            data.Email,
			PasswordHash:     data.Password,
			IsCreator:        true,
			RegistrationDate: time.Now(),
		})
	}
	m.saveUsers()

	return m.Login(LoginParams{Email: data.Email, Name: data.FullName, UserID: userID, IsCreator: true})
}

// Logout clears the session and the persisted token and identity record.
func (m *Manager) Logout() models.AppView {
	m.LoggedIn = false
	m.UserName = ""
	m.UserEmail = ""
	m.UserID = ""
	m.TrueAdmin = false
	m.TrueCreator = false
	m.AdminSession = false
	m.CreatorSession = false
	m.CreatorName = ""

	m.store.Delete(store.KeyLoggedInUser)
	m.store.Delete(store.KeyToken)
	return models.ViewMain
}

// IsAdminAuthenticated reports whether the persisted token exists and the
// persisted identity record carries the admin flag. Reads storage directly
// so admin-gated views stay consistent even if the in-memory session was
// not rebuilt; any parse failure reads as not authenticated.
func (m *Manager) IsAdminAuthenticated() bool {
	var token string
	if m.store.Get(store.KeyToken, &token) != nil || token == "" {
		return false
	}
	var current models.User
	if m.store.Get(store.KeyLoggedInUser, &current) != nil {
		return false
	}
	return current.IsAdmin
}

// IdentityComplete reports whether the session has everything checkout
// needs: logged in with id, email and name present.
func (m *Manager) IdentityComplete() bool {
	return m.LoggedIn && m.UserID != "" && m.UserEmail != "" && m.UserName != ""
}

func (m *Manager) SetPendingIntent(intent models.PendingIntent) {
	m.pending = intent
}

func (m *Manager) PendingIntent() models.PendingIntent { return m.pending }

func (m *Manager) Users() []models.User { return m.users }

func (m *Manager) FindUserByEmail(email string) (models.User, bool) {
	for _, u := range m.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (m *Manager) FindUserByID(id string) (models.User, bool) {
	for _, u := range m.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (m *Manager) IsEmailTaken(email string) bool {
	_, ok := m.FindUserByEmail(email)
	return ok
}
