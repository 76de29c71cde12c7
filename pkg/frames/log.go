// Package frames holds column-level helpers for gota dataframes: shared
// column discovery, column removal and splitting, categorical encoding and
// class-balanced down-sampling.
package frames

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger replaces the package logger. A nil l silences logging again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
