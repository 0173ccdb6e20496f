package recording

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"

	"cpu-scheduler-sim/internal/responses"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id                       TEXT PRIMARY KEY,
	algorithm                TEXT NOT NULL,
	time_quantum             INTEGER NOT NULL,
	total_time               REAL NOT NULL,
	idle_time                REAL NOT NULL,
	average_waiting_time     REAL NOT NULL,
	average_response_time    REAL NOT NULL,
	average_turn_around_time REAL NOT NULL,
	cpu_utilization          REAL NOT NULL,
	cpu_throughput           REAL NOT NULL,
	context_switches         INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS run_processes (
	run_id           TEXT NOT NULL REFERENCES runs(id),
	process_id       INTEGER NOT NULL,
	arrival_time     INTEGER NOT NULL,
	burst_time       INTEGER NOT NULL,
	priority         INTEGER NOT NULL,
	completion_time  INTEGER NOT NULL,
	response_time    REAL NOT NULL,
	turn_around_time REAL NOT NULL,
	waiting_time     REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS run_segments (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	position INTEGER NOT NULL,
	label    TEXT NOT NULL,
	start_time INTEGER NOT NULL,
	end_time   INTEGER NOT NULL
);
`

// SQLiteRecorder writes runs into a SQLite database.
type SQLiteRecorder struct {
	*sql.DB

	path string
}

// NewSQLiteRecorder opens (or creates) the database at path. An empty path
// creates a uniquely named file in the working directory.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	if path == "" {
		path = "cpusched_runs_" + xid.New().String() + ".sqlite3"
		fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", path)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables in %s: %w", path, err)
	}

	return &SQLiteRecorder{DB: db, path: path}, nil
}

func (r *SQLiteRecorder) Path() string {
	return r.path
}

func (r *SQLiteRecorder) Record(response responses.ScheduleResponse) (string, error) {
	runID := xid.New().String()

	tx, err := r.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		response.Algorithm,
		response.TimeQuantum,
		response.TotalTime,
		response.IdleTime,
		response.AverageWaitingTime,
		response.AverageResponseTime,
		response.AverageTurnAroundTime,
		response.CpuUtilization,
		response.CpuThroughput,
		response.ContextSwitches,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	for _, d := range response.Details {
		_, err = tx.Exec(
			`INSERT INTO run_processes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, d.ProcessId, d.ArrivalTime, d.BurstTime, d.Priority,
			d.CompletionTime, d.ResponseTime, d.TurnAroundTime, d.WaitingTime,
		)
		if err != nil {
			return "", fmt.Errorf("inserting process %d: %w", d.ProcessId, err)
		}
	}

	for i, block := range response.Gantt {
		_, err = tx.Exec(
			`INSERT INTO run_segments VALUES (?, ?, ?, ?, ?)`,
			runID, i, block.Label, block.Start, block.End,
		)
		if err != nil {
			return "", fmt.Errorf("inserting segment %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

func (r *SQLiteRecorder) Load(runID string) (responses.ScheduleResponse, error) {
	response := responses.ScheduleResponse{RunId: runID}

	err := r.QueryRow(
		`SELECT algorithm, time_quantum, total_time, idle_time, average_waiting_time,
			average_response_time, average_turn_around_time, cpu_utilization,
			cpu_throughput, context_switches
		FROM runs WHERE id = ?`, runID,
	).Scan(
		&response.Algorithm,
		&response.TimeQuantum,
		&response.TotalTime,
		&response.IdleTime,
		&response.AverageWaitingTime,
		&response.AverageResponseTime,
		&response.AverageTurnAroundTime,
		&response.CpuUtilization,
		&response.CpuThroughput,
		&response.ContextSwitches,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	if response.Details, err = r.loadProcesses(runID); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if response.Gantt, err = r.loadSegments(runID); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return response, nil
}

func (r *SQLiteRecorder) loadProcesses(runID string) ([]responses.ProcessResponse, error) {
	rows, err := r.Query(
		`SELECT process_id, arrival_time, burst_time, priority, completion_time,
			response_time, turn_around_time, waiting_time
		FROM run_processes WHERE run_id = ? ORDER BY process_id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]responses.ProcessResponse, 0)
	for rows.Next() {
		var d responses.ProcessResponse
		err := rows.Scan(&d.ProcessId, &d.ArrivalTime, &d.BurstTime, &d.Priority,
			&d.CompletionTime, &d.ResponseTime, &d.TurnAroundTime, &d.WaitingTime)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *SQLiteRecorder) loadSegments(runID string) ([]responses.GanttBlock, error) {
	rows, err := r.Query(
		`SELECT label, start_time, end_time FROM run_segments WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gantt := make([]responses.GanttBlock, 0)
	for rows.Next() {
		var block responses.GanttBlock
		if err := rows.Scan(&block.Label, &block.Start, &block.End); err != nil {
			return nil, err
		}
		gantt = append(gantt, block)
	}
	return gantt, rows.Err()
}
