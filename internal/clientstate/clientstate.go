package clientstate

import (
	"context"
	"errors"

	"voyago/internal/models"
)

// ErrNoValue is returned when a key has never been written.
var ErrNoValue = errors.New("no value stored")

// KV is the persistence port. Values survive process restarts; there is no
// schema versioning, stored values are restored verbatim.
type KV interface {
	Put(ctx context.Context, key string, value interface{}) error
	Fetch(ctx context.Context, key string, dest interface{}) error
	Remove(ctx context.Context, key string) error
}

const (
	keyScreen    = "screen"
	keyProfile   = "profile"
	keyActiveTab = "active_tab"
	keyTheme     = "theme"
)

// Manager exposes the small set of typed keys the client persists across
// sessions.
type Manager struct {
	kv KV
}

func NewManager(kv KV) *Manager {
	return &Manager{kv: kv}
}

func (m *Manager) SaveScreen(ctx context.Context, screen string) error {
	return m.kv.Put(ctx, keyScreen, screen)
}

func (m *Manager) Screen(ctx context.Context) (string, error) {
	var screen string
	if err := m.kv.Fetch(ctx, keyScreen, &screen); err != nil {
		return "", err
	}
	return screen, nil
}

func (m *Manager) SaveProfile(ctx context.Context, user *models.User) error {
	return m.kv.Put(ctx, keyProfile, user)
}

func (m *Manager) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := m.kv.Fetch(ctx, keyProfile, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Manager) ClearProfile(ctx context.Context) error {
	return m.kv.Remove(ctx, keyProfile)
}

func (m *Manager) SaveActiveTab(ctx context.Context, tab string) error {
	return m.kv.Put(ctx, keyActiveTab, tab)
}

func (m *Manager) ActiveTab(ctx context.Context) (string, error) {
	var tab string
	if err := m.kv.Fetch(ctx, keyActiveTab, &tab); err != nil {
		return "", err
	}
	return tab, nil
}

func (m *Manager) SaveTheme(ctx context.Context, theme string) error {
	return m.kv.Put(ctx, keyTheme, theme)
}

func (m *Manager) Theme(ctx context.Context) (string, error) {
	var theme string
	if err := m.kv.Fetch(ctx, keyTheme, &theme); err != nil {
		return "", err
	}
	return theme, nil
}
