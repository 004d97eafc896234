package config

import (
	"fmt"

	"github.com/verte-zerg/docstat/internal/model"
)

// Validate checks the analysis settings. It runs once, before any document
// is read; a failure here aborts the run with no partial output.
func Validate(cfg model.Config) error {
	if iv := cfg.WordLengthInterval; iv != nil {
		if iv.Min < 0 || iv.Max < 0 {
			return fmt.Errorf("word length bounds must not be negative (got %d..%d)", iv.Min, iv.Max)
		}
		if iv.Min > iv.Max {
			return fmt.Errorf("minimum word length %d cannot be greater than maximum %d", iv.Min, iv.Max)
		}
	}
	if cfg.CommonWords != nil && *cfg.CommonWords < 0 {
		return fmt.Errorf("common words count must not be negative (got %d)", *cfg.CommonWords)
	}
	if cfg.ColumnWidth <= 0 {
		return fmt.Errorf("column width must be greater than 0 (got %d)", cfg.ColumnWidth)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1 (got %d)", cfg.Workers)
	}
	return nil
}
