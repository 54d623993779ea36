package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/kozaktomas/beauty-advisor/internal/advice"
	"github.com/kozaktomas/beauty-advisor/internal/classify"
)

// StoredAnalysis is one analysis as kept in the history table.
type StoredAnalysis struct {
	ID             uuid.UUID
	Source         string // "upload", "capture", "cli"
	Width          int
	Height         int
	Classification classify.Result
	Advice         advice.Bundle
	CreatedAt      time.Time
}
