// Package db provides database connection and management functionality.
package db

import (
	"testing"

	"gorm.io/gorm/logger"
)

func TestGormLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logger.LogLevel
	}{
		{name: "info", level: "info", want: logger.Info},
		{name: "warn", level: "warn", want: logger.Warn},
		{name: "error", level: "error", want: logger.Error},
		{name: "silent", level: "silent", want: logger.Silent},
		{name: "empty falls back to silent", level: "", want: logger.Silent},
		{name: "unknown falls back to silent", level: "debug", want: logger.Silent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gormLogLevel(tt.level); got != tt.want {
				t.Errorf("gormLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
