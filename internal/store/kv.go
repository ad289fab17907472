package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("key not found")

// Save JSON-encodes v and stores it under key, replacing any prior value.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(KvTable.Name).
		Columns("key", "value", "updated_at").
		Values(key, string(b), time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Load decodes the value stored under key into dst. It returns ErrNotFound
// when the key is absent.
func (s *Store) Load(ctx context.Context, key string, dst any) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table(KvTable.Name)).
		Where(entsql.EQ("key", key)).
		Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("load %s: %w", key, err)
		}
		return fmt.Errorf("load %s: %w", key, ErrNotFound)
	}
	var raw string
	if err := rows.Scan(&raw); err != nil {
		return fmt.Errorf("scan %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// LoadOr loads key into a T, returning fallback when the key is missing or
// cannot be decoded. Failures other than a missing key are logged.
func LoadOr[T any](ctx context.Context, s *Store, key string, fallback T) T {
	var v T
	if err := s.Load(ctx, key, &v); err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("storage load failed, using fallback", "key", key, "error", err)
		}
		return fallback
	}
	return v
}

// Has reports whether key has a stored value.
func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*")).
		From(entsql.Table(KvTable.Name)).
		Where(entsql.EQ("key", key)).
		Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return false, fmt.Errorf("count %s: %w", key, err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return false, fmt.Errorf("scan count: %w", err)
		}
	}
	return n > 0, rows.Err()
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(KvTable.Name).
		Where(entsql.EQ("key", key)).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Clear removes every stored value and the scan history, keeping only the
// language preference.
func (s *Store) Clear(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(KvTable.Name).
		Where(entsql.NEQ("key", KeyLang)).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear values: %w", err)
	}

	query, args = entsql.Dialect(dialect.SQLite).Delete(ScansTable.Name).Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear scans: %w", err)
	}

	s.logger.Info("storage cleared")
	return nil
}

// ensureVersion records the format version on first open.
func (s *Store) ensureVersion(ctx context.Context) error {
	ok, err := s.Has(ctx, KeyVersion)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return s.Save(ctx, KeyVersion, FormatVersion)
}
