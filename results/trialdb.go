package results

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/domino14/tilesearch/stats"
)

const trialsSchema = `
CREATE TABLE IF NOT EXISTS trials (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	trial       INTEGER NOT NULL,
	goal        INTEGER NOT NULL,
	start_board TEXT NOT NULL,
	start_fp    TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	moves       INTEGER NOT NULL,
	expanded    INTEGER NOT NULL,
	generated   INTEGER NOT NULL,
	elapsed_ms  REAL NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS trials_run_id ON trials (run_id);
`

// TrialLog appends one row per trial to a SQLite database. Every process
// run gets its own run id so batches can be told apart.
type TrialLog struct {
	db    *sql.DB
	runID string
}

func OpenTrialLog(ctx context.Context, path string) (*TrialLog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, trialsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating trials table: %w", err)
	}
	tl := &TrialLog{db: db, runID: uuid.NewString()}
	log.Debug().Str("path", path).Str("run-id", tl.runID).Msg("opened-trial-log")
	return tl, nil
}

func (tl *TrialLog) RunID() string {
	return tl.runID
}

func (tl *TrialLog) Record(ctx context.Context, r stats.TrialRecord) error {
	_, err := tl.db.ExecContext(ctx,
		`INSERT INTO trials (run_id, trial, goal, start_board, start_fp, outcome,
			moves, expanded, generated, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tl.runID, r.Trial, int64(r.Goal), r.Start.String(),
		fmt.Sprintf("%016x", r.Start.Fingerprint()), r.Outcome.String(),
		r.Moves, r.Expanded, r.Generated,
		float64(r.Elapsed)/float64(time.Millisecond),
		time.Now().UTC().Format(time.RFC3339))
	return err
}

// Count returns how many trials this run has logged.
func (tl *TrialLog) Count(ctx context.Context) (int, error) {
	var n int
	err := tl.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM trials WHERE run_id = ?`, tl.runID).Scan(&n)
	return n, err
}

func (tl *TrialLog) Close() error {
	return tl.db.Close()
}
