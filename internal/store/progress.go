package store

import (
	"context"
	"errors"
	"slices"

	"github.com/abhisek/genesis/internal/profile"
)

// History returns the stored answer history, or an empty one.
func (s *Store) History(ctx context.Context) profile.History {
	return LoadOr(ctx, s, KeyHistory, profile.History{})
}

// SaveHistory replaces the stored answer history.
func (s *Store) SaveHistory(ctx context.Context, h profile.History) error {
	return s.Save(ctx, KeyHistory, h)
}

// CompletedNodes returns the stored completed node ids.
func (s *Store) CompletedNodes(ctx context.Context) []int {
	return LoadOr(ctx, s, KeyCompletedNodes, []int{})
}

// SaveCompletedNodes replaces the stored completed node ids.
func (s *Store) SaveCompletedNodes(ctx context.Context, ids []int) error {
	return s.Save(ctx, KeyCompletedNodes, ids)
}

// RoadmapDays returns the roadmap days marked done, ascending.
func (s *Store) RoadmapDays(ctx context.Context) []int {
	return LoadOr(ctx, s, KeyRoadmap, []int{})
}

// ToggleRoadmapDay flips the done flag for a roadmap day and returns the new
// set of done days.
func (s *Store) ToggleRoadmapDay(ctx context.Context, day int) ([]int, error) {
	days := s.RoadmapDays(ctx)
	if i := slices.Index(days, day); i >= 0 {
		days = slices.Delete(days, i, i+1)
	} else {
		days = append(days, day)
		slices.Sort(days)
	}
	if err := s.Save(ctx, KeyRoadmap, days); err != nil {
		return nil, err
	}
	return days, nil
}

// HardwareOffset returns the cached input-lag offset, if one was measured.
func (s *Store) HardwareOffset(ctx context.Context) (float64, bool) {
	var ms float64
	if err := s.Load(ctx, KeyHardwareCal, &ms); err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("storage load failed, using fallback", "key", KeyHardwareCal, "error", err)
		}
		return 0, false
	}
	return ms, true
}

// SaveHardwareOffset caches the measured input-lag offset.
func (s *Store) SaveHardwareOffset(ctx context.Context, ms float64) error {
	return s.Save(ctx, KeyHardwareCal, ms)
}

// Language returns the stored language code, or fallback.
func (s *Store) Language(ctx context.Context, fallback string) string {
	return LoadOr(ctx, s, KeyLang, fallback)
}

// SaveLanguage stores the language preference.
func (s *Store) SaveLanguage(ctx context.Context, lang string) error {
	return s.Save(ctx, KeyLang, lang)
}
