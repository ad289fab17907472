package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/genesis/internal/scoring"
)

// ScanRecord is one persisted AnalysisResult.
type ScanRecord struct {
	ID      string                 `json:"id"`
	SavedAt time.Time              `json:"savedAt"`
	Result  scoring.AnalysisResult `json:"result"`
}

// EvolutionMetrics are the per-scan trend series used for display.
type EvolutionMetrics struct {
	EntropyTrend   []int    `json:"entropyTrend"`
	IntegrityTrend []int    `json:"integrityTrend"`
	Dates          []string `json:"dates"`
}

// ScanHistory is the append-only list of completed scans.
type ScanHistory struct {
	Scans            []ScanRecord     `json:"scans"`
	Latest           *ScanRecord      `json:"latestScan"`
	EvolutionMetrics EvolutionMetrics `json:"evolutionMetrics"`
}

// EmptyScanHistory is the value returned when nothing has been saved.
func EmptyScanHistory() ScanHistory {
	return ScanHistory{
		Scans: []ScanRecord{},
		EvolutionMetrics: EvolutionMetrics{
			EntropyTrend:   []int{},
			IntegrityTrend: []int{},
			Dates:          []string{},
		},
	}
}

// Append adds a record and extends every trend series.
func (h *ScanHistory) Append(rec ScanRecord) {
	h.Scans = append(h.Scans, rec)
	latest := rec
	h.Latest = &latest
	h.EvolutionMetrics.EntropyTrend = append(h.EvolutionMetrics.EntropyTrend, rec.Result.EntropyScore)
	h.EvolutionMetrics.IntegrityTrend = append(h.EvolutionMetrics.IntegrityTrend, rec.Result.Integrity)
	h.EvolutionMetrics.Dates = append(h.EvolutionMetrics.Dates, rec.Result.Timestamp.Format(time.DateOnly))
}

// SaveScan appends a completed result to the scan history.
func (s *Store) SaveScan(ctx context.Context, res scoring.AnalysisResult) (ScanRecord, error) {
	rec := ScanRecord{
		ID:      uuid.NewString(),
		SavedAt: time.Now(),
		Result:  res,
	}

	data, err := json.Marshal(res)
	if err != nil {
		return ScanRecord{}, fmt.Errorf("marshal scan: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(ScansTable.Name).
		Columns("id", "created_at", "archetype", "integrity", "entropy_score", "share_code", "data").
		Values(rec.ID, rec.SavedAt.UnixNano(), string(res.ArchetypeKey), res.Integrity, res.EntropyScore, res.ShareCode, string(data)).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return ScanRecord{}, fmt.Errorf("save scan: %w", err)
	}

	s.logger.Info("scan saved", "id", rec.ID, "archetype", res.ArchetypeKey, "integrity", res.Integrity)
	return rec, nil
}

// ScanHistory loads every scan in save order. Rows that fail to decode are
// logged and skipped.
func (s *Store) ScanHistory(ctx context.Context) (ScanHistory, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id", "created_at", "data").
		From(entsql.Table(ScansTable.Name)).
		OrderBy(entsql.Asc("created_at")).
		Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return EmptyScanHistory(), fmt.Errorf("query scans: %w", err)
	}
	defer rows.Close()

	h := EmptyScanHistory()
	for rows.Next() {
		var (
			id      string
			created int64
			data    string
		)
		if err := rows.Scan(&id, &created, &data); err != nil {
			return EmptyScanHistory(), fmt.Errorf("scan row: %w", err)
		}
		var res scoring.AnalysisResult
		if err := json.Unmarshal([]byte(data), &res); err != nil {
			s.logger.Warn("skipping unreadable scan", "id", id, "error", err)
			continue
		}
		h.Append(ScanRecord{ID: id, SavedAt: time.Unix(0, created), Result: res})
	}
	if err := rows.Err(); err != nil {
		return EmptyScanHistory(), fmt.Errorf("iterate scans: %w", err)
	}
	return h, nil
}

// LatestScans returns up to limit scans, newest first.
func (s *Store) LatestScans(ctx context.Context, limit int) ([]ScanRecord, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id", "created_at", "data").
		From(entsql.Table(ScansTable.Name)).
		OrderBy(entsql.Desc("created_at")).
		Limit(limit).
		Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}
	defer rows.Close()

	var out []ScanRecord
	for rows.Next() {
		var (
			rec     ScanRecord
			created int64
			data    string
		)
		if err := rows.Scan(&rec.ID, &created, &data); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(data), &rec.Result); err != nil {
			s.logger.Warn("skipping unreadable scan", "id", rec.ID, "error", err)
			continue
		}
		rec.SavedAt = time.Unix(0, created)
		out = append(out, rec)
	}
	return out, rows.Err()
}
