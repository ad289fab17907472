package compat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/scoring"
)

// ErrEmptyProfile is returned for input that is neither a result object nor
// a history array.
var ErrEmptyProfile = errors.New("empty profile")

// ReadProfile decodes either a saved AnalysisResult (a JSON object) or an
// answer history (a JSON array), scoring the latter with engine.
func ReadProfile(raw []byte, engine *scoring.Engine) (scoring.AnalysisResult, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return scoring.AnalysisResult{}, ErrEmptyProfile
	}

	switch trimmed[0] {
	case '[':
		h, err := profile.ParseHistory(trimmed)
		if err != nil {
			return scoring.AnalysisResult{}, fmt.Errorf("parse history: %w", err)
		}
		return engine.ComputeResult(h), nil
	case '{':
		var res scoring.AnalysisResult
		if err := json.Unmarshal(trimmed, &res); err != nil {
			return scoring.AnalysisResult{}, fmt.Errorf("decode result: %w", err)
		}
		if res.ArchetypeKey == "" {
			return scoring.AnalysisResult{}, fmt.Errorf("decode result: %w", ErrEmptyProfile)
		}
		return res, nil
	default:
		return scoring.AnalysisResult{}, fmt.Errorf("decode profile: unexpected %q", trimmed[0])
	}
}

// LoadProfile reads a profile file from disk. See ReadProfile.
func LoadProfile(path string, engine *scoring.Engine) (scoring.AnalysisResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return scoring.AnalysisResult{}, fmt.Errorf("read profile: %w", err)
	}
	res, err := ReadProfile(raw, engine)
	if err != nil {
		return scoring.AnalysisResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
