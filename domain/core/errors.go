package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input-shape errors
	ErrColumnMissing     = errors.New("required column missing")
	ErrDatasetUnreadable = errors.New("dataset unreadable")
	ErrInvalidErrorCode  = errors.New("error code out of range")

	// Aggregate errors
	ErrNoData = errors.New("no data to analyze")

	// Report errors
	ErrReportInvalid = errors.New("report file invalid")
)

// Error constructors with context
func NewColumnMissingError(column string) error {
	return fmt.Errorf("%w: %s", ErrColumnMissing, column)
}

func NewInvalidErrorCodeError(value string, rowNum int) error {
	return fmt.Errorf("%w: %q at row %d (expected 1-5 or empty)", ErrInvalidErrorCode, value, rowNum)
}

// Error checking helpers
func IsInputShapeError(err error) bool {
	return errors.Is(err, ErrColumnMissing) ||
		errors.Is(err, ErrDatasetUnreadable) ||
		errors.Is(err, ErrInvalidErrorCode)
}

func IsNoDataError(err error) bool {
	return errors.Is(err, ErrNoData)
}
