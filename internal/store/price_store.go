package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
)

// PriceStore persists unit-price hints keyed by normalized material name and
// unit. Reads and writes are independent, non-transactional steps: two
// concurrent estimates may both miss and both write, which is fine because
// entries are idempotent hints.
type PriceStore struct {
	db *sql.DB
}

func NewPriceStore(db *sql.DB) *PriceStore {
	return &PriceStore{db: db}
}

// cacheKey normalizes a material name or unit for lookup.
func cacheKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Get returns the cached price for a material, or nil when there is no
// entry. Staleness is the caller's concern.
func (s *PriceStore) Get(ctx context.Context, name, unit string) (*domain.CachedPrice, error) {
	entry := &domain.CachedPrice{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, unit, unit_price, confidence, source, updated_at
		FROM price_cache WHERE name = ? AND unit = ?
	`, cacheKey(name), cacheKey(unit)).Scan(
		&entry.ID, &entry.Name, &entry.Unit, &entry.UnitPrice,
		&entry.Confidence, &entry.Source, &entry.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached price: %w", err)
	}
	return entry, nil
}

// Put inserts or refreshes a cached price.
func (s *PriceStore) Put(ctx context.Context, name, unit string, unitPrice float64, confidence domain.Confidence, source string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO price_cache (name, unit, unit_price, confidence, source, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (name, unit) DO UPDATE SET
			unit_price = excluded.unit_price,
			confidence = excluded.confidence,
			source     = excluded.source,
			updated_at = excluded.updated_at
	`, cacheKey(name), cacheKey(unit), unitPrice, string(confidence), source, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to put cached price: %w", err)
	}
	return nil
}

// Purge deletes entries older than the given age and reports how many rows
// were removed.
func (s *PriceStore) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM price_cache WHERE updated_at < ?
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge price cache: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
