package storage

import (
	"time"

	"github.com/google/uuid"
)

// Outcomes posibles de un /matchinfo.
const (
	OutcomeOK      = "ok"
	OutcomeFailed  = "failed"  // la API respondió success=false
	OutcomeInvalid = "invalid" // faltan match o equipos
	OutcomeError   = "error"   // red, decode, panic
)

var AllOutcomes = []string{OutcomeOK, OutcomeFailed, OutcomeInvalid, OutcomeError}

// Lookup es una fila del historial. No guarda el payload del match.
type Lookup struct {
	ID         uuid.UUID
	MatchID    string
	GuildID    string
	UserID     string
	Outcome    string
	DurationMS int64
	CreatedAt  time.Time
}
