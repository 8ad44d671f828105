package domain

import "errors"

var (
	ErrSolverFailed      = errors.New("solver returned no feasible assignment")
	ErrSolverTimeout     = errors.New("solver deadline exceeded")
	ErrIllegalAssignment = errors.New("driver license does not permit route")
	ErrMatchingViolation = errors.New("route or driver allocated more than once")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrColumnMissing     = errors.New("required column missing")
)
