package sim

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const traceSchema = `
CREATE TABLE IF NOT EXISTS scenario_runs (
	run_id     TEXT NOT NULL,
	scenario   TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (run_id, scenario)
);
CREATE TABLE IF NOT EXISTS scenario_frames (
	run_id       TEXT NOT NULL,
	scenario     TEXT NOT NULL,
	frame        INTEGER NOT NULL,
	visible      INTEGER NOT NULL,
	quality      REAL NOT NULL,
	distance     REAL NOT NULL,
	box_width    REAL NOT NULL,
	tick_length  REAL NOT NULL,
	diverged     INTEGER NOT NULL,
	path_max_idx INTEGER NOT NULL,
	PRIMARY KEY (run_id, scenario, frame)
);`

// TraceStore keeps scenario traces in sqlite so runs with different settings can
// be compared later.
type TraceStore struct {
	db *sql.DB
}

func NewRunID() string {
	return uuid.New().String()
}

func OpenTraceStore(path string) (*TraceStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open trace store %s", path)
	}
	if _, err := db.Exec(traceSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "could not create trace tables")
	}
	return &TraceStore{db: db}, nil
}

func (s *TraceStore) Close() error {
	return s.db.Close()
}

func (s *TraceStore) Insert(runID string, tr Trace) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "could not begin trace insert")
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO scenario_runs (run_id, scenario, created_at) VALUES (?, ?, ?)`,
		runID, tr.Name, time.Now().UnixNano())
	if err != nil {
		return errors.Wrapf(err, "could not insert run %s/%s", runID, tr.Name)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO scenario_frames (
			run_id, scenario, frame, visible, quality, distance,
			box_width, tick_length, diverged, path_max_idx
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "could not prepare frame insert")
	}
	defer stmt.Close()

	for _, f := range tr.Frames {
		_, err := stmt.Exec(
			runID, tr.Name, f.Frame, f.Visible, f.Quality, f.Distance,
			f.BoxWidth, f.TickLength, f.Diverged, f.PathMaxIdx,
		)
		if err != nil {
			return errors.Wrapf(err, "could not insert frame %d", f.Frame)
		}
	}
	return errors.Wrap(tx.Commit(), "could not commit trace")
}

// Load returns the stored trace for one scenario of a run, frames in order.
func (s *TraceStore) Load(runID, scenario string) (Trace, error) {
	tr := Trace{Name: scenario}
	rows, err := s.db.Query(`
		SELECT frame, visible, quality, distance, box_width, tick_length, diverged, path_max_idx
		FROM scenario_frames
		WHERE run_id = ? AND scenario = ?
		ORDER BY frame`, runID, scenario)
	if err != nil {
		return tr, errors.Wrap(err, "could not query trace")
	}
	defer rows.Close()

	for rows.Next() {
		var f FrameTrace
		err := rows.Scan(&f.Frame, &f.Visible, &f.Quality, &f.Distance, &f.BoxWidth, &f.TickLength, &f.Diverged, &f.PathMaxIdx)
		if err != nil {
			return tr, errors.Wrap(err, "could not scan frame")
		}
		tr.Frames = append(tr.Frames, f)
	}
	if err := rows.Err(); err != nil {
		return tr, errors.Wrap(err, "could not read trace")
	}
	if len(tr.Frames) == 0 {
		return tr, errors.Errorf("no trace for run %s scenario %s", runID, scenario)
	}
	return tr, nil
}

// Runs lists stored run ids, newest first.
func (s *TraceStore) Runs() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT run_id FROM scenario_runs
		GROUP BY run_id
		ORDER BY MAX(created_at) DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "could not query runs")
	}
	defer rows.Close()

	var runs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "could not scan run")
		}
		runs = append(runs, id)
	}
	return runs, errors.Wrap(rows.Err(), "could not read runs")
}
