// Package auth is the mock account directory behind login and profile
// pages.  Users live in memory only.  Logging in with an unknown email
// succeeds and creates a demo account, so the booking flow can be tried
// without registering.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/iliyamo/seat-booking/internal/latency"
	"github.com/iliyamo/seat-booking/internal/model"
	"github.com/iliyamo/seat-booking/internal/utils"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

// Profile is the editable part of a user.  Nil fields are left unchanged.
type Profile struct {
	Name        *string                `json:"name"`
	Phone       *string                `json:"phone"`
	Address     *string                `json:"address"`
	Preferences *model.UserPreferences `json:"preferences"`
}

type refreshEntry struct {
	userID string
	exp    time.Time
}

// Directory holds users keyed by id with an email index, plus the hashes
// of outstanding refresh tokens.
type Directory struct {
	mu      sync.RWMutex
	byID    map[string]*model.User
	byEmail map[string]string
	refresh map[string]refreshEntry

	delay      latency.Simulator
	bcryptCost int
	now        func() time.Time
}

// NewDirectory creates an empty directory.  delay is waited on by
// Register and Login; nil means none.
func NewDirectory(delay latency.Simulator, bcryptCost int) *Directory {
	if delay == nil {
		delay = latency.None
	}
	return &Directory{
		byID:       map[string]*model.User{},
		byEmail:    map[string]string{},
		refresh:    map[string]refreshEntry{},
		delay:      delay,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with a bcrypt password hash.
func (d *Directory) Register(ctx context.Context, name, email, password string) (model.User, error) {
	if err := d.delay.Wait(ctx); err != nil {
		return model.User{}, err
	}
	email = normalizeEmail(email)
	hash, err := utils.HashPassword(password, d.bcryptCost)
	if err != nil {
		return model.User{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.byEmail[email]; ok {
		return model.User{}, ErrEmailExists
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = NameFromEmail(email)
	}
	u := d.insert(name, email)
	u.PasswordHash = hash
	return *u, nil
}

// Login checks a registered user's password.  An unknown email is
// accepted as a demo account named after the email's local part.
func (d *Directory) Login(ctx context.Context, email, password string) (model.User, error) {
	if err := d.delay.Wait(ctx); err != nil {
		return model.User{}, err
	}
	email = normalizeEmail(email)

	d.mu.Lock()
	defer d.mu.Unlock()
	if id, ok := d.byEmail[email]; ok {
		u := d.byID[id]
		if u.PasswordHash != "" && !utils.VerifyPassword(u.PasswordHash, password) {
			return model.User{}, ErrInvalidCredentials
		}
		return *u, nil
	}
	return *d.insert(NameFromEmail(email), email), nil
}

// insert must be called with mu held.
func (d *Directory) insert(name, email string) *model.User {
	u := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: d.now().UTC(),
		Preferences: model.UserPreferences{
			Notifications: true,
		},
	}
	d.byID[u.ID] = u
	d.byEmail[email] = u.ID
	return u
}

// Get returns a user by id.
func (d *Directory) Get(id string) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.byID[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return *u, nil
}

// UpdateProfile applies the non-nil fields of p.
func (d *Directory) UpdateProfile(id string, p Profile) (model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.byID[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.Phone != nil {
		u.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Address != nil {
		u.Address = strings.TrimSpace(*p.Address)
	}
	if p.Preferences != nil {
		u.Preferences = *p.Preferences
	}
	return *u, nil
}

// IssueRefresh creates a refresh token for the user and remembers its hash.
func (d *Directory) IssueRefresh(userID string, ttlDays int) (utils.RefreshToken, error) {
	rt, err := utils.NewRefreshToken(ttlDays)
	if err != nil {
		return utils.RefreshToken{}, err
	}
	d.mu.Lock()
	d.refresh[utils.HashRefreshRaw(rt.Raw)] = refreshEntry{userID: userID, exp: rt.Exp}
	d.mu.Unlock()
	return rt, nil
}

// Rotate exchanges a refresh token for a new one.  The old token is
// revoked whether or not the exchange succeeds.
func (d *Directory) Rotate(raw string, ttlDays int) (model.User, utils.RefreshToken, error) {
	hash := utils.HashRefreshRaw(raw)
	d.mu.Lock()
	e, ok := d.refresh[hash]
	delete(d.refresh, hash)
	var u model.User
	if ok {
		if p, found := d.byID[e.userID]; found {
			u = *p
		} else {
			ok = false
		}
	}
	d.mu.Unlock()

	if !ok || d.now().UTC().After(e.exp) {
		return model.User{}, utils.RefreshToken{}, ErrInvalidRefresh
	}
	rt, err := d.IssueRefresh(u.ID, ttlDays)
	if err != nil {
		return model.User{}, utils.RefreshToken{}, err
	}
	return u, rt, nil
}

// Logout revokes one refresh token, or every token of userID when raw is
// empty.
func (d *Directory) Logout(userID, raw string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if raw != "" {
		h := utils.HashRefreshRaw(raw)
		if e, ok := d.refresh[h]; ok && e.userID == userID {
			delete(d.refresh, h)
		}
		return
	}
	for h, e := range d.refresh {
		if e.userID == userID {
			delete(d.refresh, h)
		}
	}
}

// NameFromEmail turns "john.doe@example.com" into "John Doe".
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, p := range parts {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	if len(parts) == 0 {
		return "Guest"
	}
	return strings.Join(parts, " ")
}
