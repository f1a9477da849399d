package logger

import "github.com/google/uuid"

// NewTraceID generates a fresh request trace identifier.
func NewTraceID() string {
	return uuid.New().String()
}
