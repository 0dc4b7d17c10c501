package models

import "errors"

// Application-wide standard errors
var (
	// Common Resource/DB Errors
	ErrNotFound = errors.New("resource not found")

	// Request Validation Errors
	ErrMissingIdea  = errors.New("idea must not be empty")
	ErrInvalidInput = errors.New("invalid input data")

	// Synthesis Errors
	ErrSynthesisFailed     = errors.New("synthesis request failed")
	ErrUnsafeGeneratedPath = errors.New("generated file path is not a safe relative path")

	// General Request/Server Errors
	ErrInternalServer = errors.New("internal server error")
)
