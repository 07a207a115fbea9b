package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	pq "github.com/lib/pq"
)

type LookupRepo struct{ db *sql.DB }

func NewLookupRepo(db *sql.DB) *LookupRepo { return &LookupRepo{db: db} }

// Insert guarda una invocación; si no trae ID/fecha se completan acá.
func (r *LookupRepo) Insert(ctx context.Context, l Lookup) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO matchinfo_lookups (id, match_id, guild_id, user_id, outcome, duration_ms, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`, l.ID, l.MatchID, l.GuildID, l.UserID, l.Outcome, l.DurationMS, l.CreatedAt)
	return err
}

// Prune borra filas anteriores a before cuyo outcome esté en outcomes.
func (r *LookupRepo) Prune(ctx context.Context, before time.Time, outcomes []string) (int64, error) {
	if len(outcomes) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `
DELETE FROM matchinfo_lookups
 WHERE created_at < $1
   AND outcome = ANY($2)
`, before, pq.Array(outcomes))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
