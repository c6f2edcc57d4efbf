package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/freshness/pkg/domain"
)

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty string if not set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	return withRetry(ctx, "set setting", func() error {
		_, err := r.db.ExecContext(ctx, query, key, value)
		return err
	})
}

// LoadDelayConfig returns the delay configuration saved at runtime, nil if none was saved
func (r *SettingRepository) LoadDelayConfig(ctx context.Context) (*domain.DelayConfig, error) {
	value, err := r.GetSetting(ctx, domain.SettingDelayConfig)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	var cfg domain.DelayConfig
	if err := json.Unmarshal([]byte(value), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal delay config: %w", err)
	}
	return &cfg, nil
}

// SaveDelayConfig persists the delay configuration so it survives restarts
func (r *SettingRepository) SaveDelayConfig(ctx context.Context, cfg domain.DelayConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal delay config: %w", err)
	}
	return r.SetSetting(ctx, domain.SettingDelayConfig, string(data))
}
