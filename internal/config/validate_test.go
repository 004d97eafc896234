package config

import (
	"testing"

	"github.com/verte-zerg/docstat/internal/model"
)

func intPtr(n int) *int { return &n }

func validConfig() model.Config {
	return model.Config{
		Dir:         "documents",
		Ext:         ".txt",
		ColumnWidth: 80,
		Workers:     2,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Config)
		wantErr bool
	}{
		{name: "valid without filters", mutate: func(*model.Config) {}},
		{name: "valid with filters", mutate: func(cfg *model.Config) {
			cfg.WordLengthInterval = &model.Interval{Min: 6, Max: 8}
			cfg.CommonWords = intPtr(5)
		}},
		{name: "zero common words allowed", mutate: func(cfg *model.Config) {
			cfg.CommonWords = intPtr(0)
		}},
		{name: "min greater than max", mutate: func(cfg *model.Config) {
			cfg.WordLengthInterval = &model.Interval{Min: 9, Max: 3}
		}, wantErr: true},
		{name: "negative bound", mutate: func(cfg *model.Config) {
			cfg.WordLengthInterval = &model.Interval{Min: -1, Max: 4}
		}, wantErr: true},
		{name: "negative common words", mutate: func(cfg *model.Config) {
			cfg.CommonWords = intPtr(-2)
		}, wantErr: true},
		{name: "negative column width", mutate: func(cfg *model.Config) {
			cfg.ColumnWidth = -1
		}, wantErr: true},
		{name: "zero column width", mutate: func(cfg *model.Config) {
			cfg.ColumnWidth = 0
		}, wantErr: true},
		{name: "zero workers", mutate: func(cfg *model.Config) {
			cfg.Workers = 0
		}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
