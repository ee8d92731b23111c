// Package services contains the application services of taskdeck:
// authentication and session handling, the per-user task store, and the
// rolling usage statistics tracker. Each service is a thin layer over the
// flat key-value substrate and rewrites its whole collection on every
// mutation, so every persisted value is a complete snapshot.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmarkov/taskdeck/internal/common"
	"github.com/dmarkov/taskdeck/internal/logging"
	"github.com/dmarkov/taskdeck/internal/models"
	"github.com/dmarkov/taskdeck/internal/repositories/kv"
)

// Storage keys of the collections owned by the auth service.
const (
	usersKey          = "users"
	currentSessionKey = "current-session"
)

// AuthService defines registration, login and session operations.
//
// Contract:
//   - Register: create an account, make it the current session, seed its
//     stats record and count the first login.
//   - Login: verify credentials against the local catalog, set the session.
//   - Logout: clear the session; logging out twice in a row is not an error.
//   - CurrentUser: in-memory read of the active session, nil when logged out.
//
// Users handed to callers or persisted as the session never carry a password.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.User
}

type authService struct {
	repo    kv.Repository
	stats   StatsService
	log     logging.Logger
	session *models.User
}

// NewAuthService constructs an AuthService over the given storage and
// restores the persisted session pointer immediately. A session that cannot
// be read or parsed means "nobody logged in", never a startup failure.
func NewAuthService(ctx context.Context, repo kv.Repository, stats StatsService, log logging.Logger) AuthService {
	a := &authService{repo: repo, stats: stats, log: log}
	a.restoreSession(ctx)
	return a
}

func (a *authService) restoreSession(ctx context.Context) {
	data, err := a.repo.Get(ctx, currentSessionKey)
	if err != nil {
		a.log.Warn(ctx, "failed to load persisted session", "error", err)
		return
	}
	if data == nil {
		return
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		a.log.Warn(ctx, "malformed persisted session, starting logged out", "error", err)
		return
	}
	a.session = &u
}

func (a *authService) loadCatalog(ctx context.Context) ([]models.StoredUser, error) {
	data, err := a.repo.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load user catalog: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var users []models.StoredUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode user catalog: %w", err)
	}
	return users, nil
}

func (a *authService) saveCatalog(ctx context.Context, users []models.StoredUser) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode user catalog: %w", err)
	}
	if err := a.repo.Set(ctx, usersKey, data); err != nil {
		return fmt.Errorf("failed to save user catalog: %w", err)
	}
	return nil
}

func (a *authService) persistSession(ctx context.Context, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := a.repo.Set(ctx, currentSessionKey, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Register creates a new account and logs it in. The email must not collide
// with any catalog entry (exact, case-sensitive match). Stats seeding is
// best-effort: a failure there is logged but does not undo the registration.
func (a *authService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return nil, common.ErrMissingFields
	}

	users, err := a.loadCatalog(ctx)
	if err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return nil, common.ErrDuplicateUser
		}
	}

	stored := models.StoredUser{
		User: models.User{
			ID:        uuid.NewString(),
			Email:     email,
			Name:      name,
			CreatedAt: time.Now().UTC(),
		},
		Password: password,
	}
	users = append(users, stored)

	if err := a.saveCatalog(ctx, users); err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		return nil, err
	}

	user := stored.Sanitized()
	if err := a.persistSession(ctx, user); err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		return nil, err
	}
	a.session = &user

	if err := a.stats.Initialize(ctx, user.ID); err != nil {
		a.log.Warn(ctx, "failed to seed stats for new user", "user", user.ID, "error", err)
	}
	if err := a.stats.RecordLogin(ctx, user.ID); err != nil {
		a.log.Warn(ctx, "failed to record first login", "user", user.ID, "error", err)
	}

	return &user, nil
}

// Login verifies the credentials against the catalog. Both fields must match
// a stored record exactly.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	users, err := a.loadCatalog(ctx)
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return nil, err
	}

	var match *models.StoredUser
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			match = &users[i]
			break
		}
	}
	if match == nil {
		return nil, common.ErrInvalidCredentials
	}

	user := match.Sanitized()
	if err := a.persistSession(ctx, user); err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return nil, err
	}
	a.session = &user

	if err := a.stats.RecordLogin(ctx, user.ID); err != nil {
		a.log.Warn(ctx, "failed to record login", "user", user.ID, "error", err)
	}

	return &user, nil
}

// Logout clears the persisted and in-memory session. Calling it with no
// active session is not an error.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.repo.Delete(ctx, currentSessionKey); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return fmt.Errorf("failed to clear session: %w", err)
	}
	a.session = nil
	return nil
}

// CurrentUser returns a copy of the active session user, or nil.
func (a *authService) CurrentUser() *models.User {
	if a.session == nil {
		return nil
	}
	u := *a.session
	return &u
}
