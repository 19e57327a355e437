package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/scrivoapp/scrivo/internal/domain/repository"
)

// SettingRepositoryImpl implements repository.SettingRepository with SQLite.
type SettingRepositoryImpl struct {
	store *Store
}

// NewSettingRepository creates a new SQLite-based setting repository.
func NewSettingRepository(store *Store) repository.SettingRepository {
	return &SettingRepositoryImpl{store: store}
}

// Get returns the stored value, or def when the key is absent.
func (r *SettingRepositoryImpl) Get(ctx context.Context, key, def string) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var value string
	err := r.store.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q failed: %w", key, err)
	}
	return value, nil
}

// Save inserts or overwrites a key.
func (r *SettingRepositoryImpl) Save(ctx context.Context, key, value string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, err := r.store.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("save setting %q failed: %w", key, err)
	}
	return nil
}
