package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidLessonID = errors.New("invalid lesson id")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)
