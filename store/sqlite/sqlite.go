/*
Package sqlite provides a SQLite-backed implementation of workflow.Store.

PURPOSE:
  Persists records requests, their append-only event log, and meetings.
  In production the same patterns apply to PostgreSQL - only minor SQL
  dialect differences.

APPEND-ONLY ENFORCEMENT:
  The request_events table is append-only:
  - No UPDATE statements on request_events
  - No DELETE statements on request_events
  The event trail is the audit record a public-access complaint is judged
  against; corrections are new events.

KEY TABLES:
  requests:       Records requests with their running statutory deadline
  request_events: Immutable lifecycle log (received, clarified, reset, ...)
  meetings:       Public meetings and posted notices

  Holiday data is deliberately NOT a table: calendars are rebuilt from
  rule sets and options at startup, never persisted.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block, a single writer at a time, better crash
  recovery.

USAGE:
  store, err := sqlite.New("./data/clerk.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  svc := workflow.NewRequestService(store, cal)

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - workflow/store.go: Interface definition
  - workflow/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/civica/compliance-engine/businesstime"
	"github.com/civica/compliance-engine/workflow"
)

// Store implements workflow.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS requests (
		id TEXT PRIMARY KEY,
		requester TEXT NOT NULL,
		description TEXT,
		received_at TEXT NOT NULL,
		received_gran INTEGER NOT NULL,
		deadline TEXT NOT NULL,
		deadline_gran INTEGER NOT NULL,
		status TEXT NOT NULL,
		clarification_sent_at TEXT,
		clarification_sent_gran INTEGER,
		clarified_at TEXT,
		clarified_gran INTEGER,
		closed_at TEXT,
		closed_gran INTEGER,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_requests_status
		ON requests(status, received_at);

	-- Lifecycle log (append-only: no UPDATE, no DELETE, ever)
	CREATE TABLE IF NOT EXISTS request_events (
		id TEXT PRIMARY KEY,
		request_id TEXT NOT NULL,
		event_type TEXT NOT NULL,
		at TEXT NOT NULL,
		at_gran INTEGER NOT NULL,
		deadline TEXT,
		deadline_gran INTEGER,
		note TEXT,
		recorded_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_request
		ON request_events(request_id);

	CREATE TABLE IF NOT EXISTS meetings (
		id TEXT PRIMARY KEY,
		body TEXT NOT NULL,
		kind TEXT NOT NULL,
		starts_at TEXT NOT NULL,
		starts_gran INTEGER NOT NULL,
		notice_posted_at TEXT,
		notice_posted_gran INTEGER,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// TIME POINT ENCODING
// =============================================================================

const timeLayout = time.RFC3339

func encodeTimePoint(tp businesstime.TimePoint) (string, int) {
	return tp.Time.UTC().Format(timeLayout), int(tp.Granularity)
}

func decodeTimePoint(value string, gran int) (businesstime.TimePoint, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return businesstime.TimePoint{}, fmt.Errorf("corrupt timestamp %q: %w", value, err)
	}
	return businesstime.TimePoint{Time: t.UTC(), Granularity: businesstime.Granularity(gran)}, nil
}

func encodeOptional(tp *businesstime.TimePoint) (sql.NullString, sql.NullInt64) {
	if tp == nil {
		return sql.NullString{}, sql.NullInt64{}
	}
	v, g := encodeTimePoint(*tp)
	return sql.NullString{String: v, Valid: true}, sql.NullInt64{Int64: int64(g), Valid: true}
}

func decodeOptional(value sql.NullString, gran sql.NullInt64) (*businesstime.TimePoint, error) {
	if !value.Valid {
		return nil, nil
	}
	tp, err := decodeTimePoint(value.String, int(gran.Int64))
	if err != nil {
		return nil, err
	}
	return &tp, nil
}

// =============================================================================
// REQUESTS
// =============================================================================

// SaveRequest inserts or updates a records request by ID.
func (s *Store) SaveRequest(ctx context.Context, r *workflow.RecordsRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	receivedAt, receivedGran := encodeTimePoint(r.ReceivedAt)
	deadline, deadlineGran := encodeTimePoint(r.Deadline)
	clarSentAt, clarSentGran := encodeOptional(r.ClarificationSentAt)
	clarifiedAt, clarifiedGran := encodeOptional(r.ClarifiedAt)
	closedAt, closedGran := encodeOptional(r.ClosedAt)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO requests (
			id, requester, description,
			received_at, received_gran, deadline, deadline_gran, status,
			clarification_sent_at, clarification_sent_gran,
			clarified_at, clarified_gran, closed_at, closed_gran,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			requester = excluded.requester,
			description = excluded.description,
			received_at = excluded.received_at,
			received_gran = excluded.received_gran,
			deadline = excluded.deadline,
			deadline_gran = excluded.deadline_gran,
			status = excluded.status,
			clarification_sent_at = excluded.clarification_sent_at,
			clarification_sent_gran = excluded.clarification_sent_gran,
			clarified_at = excluded.clarified_at,
			clarified_gran = excluded.clarified_gran,
			closed_at = excluded.closed_at,
			closed_gran = excluded.closed_gran,
			updated_at = excluded.updated_at`,
		string(r.ID), r.Requester, r.Description,
		receivedAt, receivedGran, deadline, deadlineGran, string(r.Status),
		clarSentAt, clarSentGran,
		clarifiedAt, clarifiedGran, closedAt, closedGran,
		r.CreatedAt.UTC().Format(timeLayout), r.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to save request %s: %w", r.ID, err)
	}
	return nil
}

// GetRequest returns the request or workflow.ErrRequestNotFound.
func (s *Store) GetRequest(ctx context.Context, id workflow.RequestID) (*workflow.RecordsRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, requester, description,
			received_at, received_gran, deadline, deadline_gran, status,
			clarification_sent_at, clarification_sent_gran,
			clarified_at, clarified_gran, closed_at, closed_gran,
			created_at, updated_at
		FROM requests WHERE id = ?`, string(id))

	r, err := scanRequest(row)
	if err == sql.ErrNoRows {
		return nil, workflow.ErrRequestNotFound
	}
	return r, err
}

// ListRequestsByStatus returns requests in a status, oldest first.
func (s *Store) ListRequestsByStatus(ctx context.Context, status workflow.RequestStatus) ([]*workflow.RecordsRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, requester, description,
			received_at, received_gran, deadline, deadline_gran, status,
			clarification_sent_at, clarification_sent_gran,
			clarified_at, clarified_gran, closed_at, closed_gran,
			created_at, updated_at
		FROM requests WHERE status = ? ORDER BY received_at`, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	var result []*workflow.RecordsRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(row scanner) (*workflow.RecordsRequest, error) {
	var (
		r                                       workflow.RecordsRequest
		id, status                              string
		receivedAt, deadline                    string
		receivedGran, deadlineGran              int
		clarSentAt, clarifiedAt, closedAt       sql.NullString
		clarSentGran, clarifiedGran, closedGran sql.NullInt64
		createdAt, updatedAt                    string
	)
	err := row.Scan(
		&id, &r.Requester, &r.Description,
		&receivedAt, &receivedGran, &deadline, &deadlineGran, &status,
		&clarSentAt, &clarSentGran,
		&clarifiedAt, &clarifiedGran, &closedAt, &closedGran,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.ID = workflow.RequestID(id)
	r.Status = workflow.RequestStatus(status)
	if r.ReceivedAt, err = decodeTimePoint(receivedAt, receivedGran); err != nil {
		return nil, err
	}
	if r.Deadline, err = decodeTimePoint(deadline, deadlineGran); err != nil {
		return nil, err
	}
	if r.ClarificationSentAt, err = decodeOptional(clarSentAt, clarSentGran); err != nil {
		return nil, err
	}
	if r.ClarifiedAt, err = decodeOptional(clarifiedAt, clarifiedGran); err != nil {
		return nil, err
	}
	if r.ClosedAt, err = decodeOptional(closedAt, closedGran); err != nil {
		return nil, err
	}
	if r.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("corrupt created_at: %w", err)
	}
	if r.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("corrupt updated_at: %w", err)
	}
	return &r, nil
}

// =============================================================================
// EVENTS (append-only)
// =============================================================================

// AppendEvent persists a lifecycle event. This is the only write the
// request_events table ever sees.
func (s *Store) AppendEvent(ctx context.Context, e workflow.RequestEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	at, atGran := encodeTimePoint(e.At)
	deadline, deadlineGran := encodeOptional(e.Deadline)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO request_events (
			id, request_id, event_type, at, at_gran,
			deadline, deadline_gran, note, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.RequestID), string(e.Type), at, atGran,
		deadline, deadlineGran, e.Note, e.RecordedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to append event %s: %w", e.ID, err)
	}
	return nil
}

// ListEvents returns a request's events in insertion order.
func (s *Store) ListEvents(ctx context.Context, id workflow.RequestID) ([]workflow.RequestEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, request_id, event_type, at, at_gran,
			deadline, deadline_gran, note, recorded_at
		FROM request_events WHERE request_id = ? ORDER BY rowid`, string(id))
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var result []workflow.RequestEvent
	for rows.Next() {
		var (
			e               workflow.RequestEvent
			requestID, kind string
			at              string
			atGran          int
			deadline        sql.NullString
			deadlineGran    sql.NullInt64
			recordedAt      string
		)
		if err := rows.Scan(&e.ID, &requestID, &kind, &at, &atGran,
			&deadline, &deadlineGran, &e.Note, &recordedAt); err != nil {
			return nil, err
		}
		e.RequestID = workflow.RequestID(requestID)
		e.Type = workflow.EventType(kind)
		if e.At, err = decodeTimePoint(at, atGran); err != nil {
			return nil, err
		}
		if e.Deadline, err = decodeOptional(deadline, deadlineGran); err != nil {
			return nil, err
		}
		if e.RecordedAt, err = time.Parse(timeLayout, recordedAt); err != nil {
			return nil, fmt.Errorf("corrupt recorded_at: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// =============================================================================
// MEETINGS
// =============================================================================

// SaveMeeting inserts or updates a meeting by ID.
func (s *Store) SaveMeeting(ctx context.Context, m *workflow.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	startsAt, startsGran := encodeTimePoint(m.StartsAt)
	postedAt, postedGran := encodeOptional(m.NoticePostedAt)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO meetings (
			id, body, kind, starts_at, starts_gran,
			notice_posted_at, notice_posted_gran, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			body = excluded.body,
			kind = excluded.kind,
			starts_at = excluded.starts_at,
			starts_gran = excluded.starts_gran,
			notice_posted_at = excluded.notice_posted_at,
			notice_posted_gran = excluded.notice_posted_gran,
			updated_at = excluded.updated_at`,
		string(m.ID), m.Body, string(m.Kind), startsAt, startsGran,
		postedAt, postedGran,
		m.CreatedAt.UTC().Format(timeLayout), m.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to save meeting %s: %w", m.ID, err)
	}
	return nil
}

// GetMeeting returns the meeting or workflow.ErrMeetingNotFound.
func (s *Store) GetMeeting(ctx context.Context, id workflow.MeetingID) (*workflow.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, body, kind, starts_at, starts_gran,
			notice_posted_at, notice_posted_gran, created_at, updated_at
		FROM meetings WHERE id = ?`, string(id))

	m, err := scanMeeting(row)
	if err == sql.ErrNoRows {
		return nil, workflow.ErrMeetingNotFound
	}
	return m, err
}

// ListMeetings returns all meetings, earliest start first.
func (s *Store) ListMeetings(ctx context.Context) ([]*workflow.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, body, kind, starts_at, starts_gran,
			notice_posted_at, notice_posted_gran, created_at, updated_at
		FROM meetings ORDER BY starts_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	var result []*workflow.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func scanMeeting(row scanner) (*workflow.Meeting, error) {
	var (
		m                    workflow.Meeting
		id, kind             string
		startsAt             string
		startsGran           int
		postedAt             sql.NullString
		postedGran           sql.NullInt64
		createdAt, updatedAt string
	)
	err := row.Scan(&id, &m.Body, &kind, &startsAt, &startsGran,
		&postedAt, &postedGran, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	m.ID = workflow.MeetingID(id)
	m.Kind = workflow.MeetingKind(kind)
	if m.StartsAt, err = decodeTimePoint(startsAt, startsGran); err != nil {
		return nil, err
	}
	if m.NoticePostedAt, err = decodeOptional(postedAt, postedGran); err != nil {
		return nil, err
	}
	if m.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("corrupt created_at: %w", err)
	}
	if m.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("corrupt updated_at: %w", err)
	}
	return &m, nil
}

// Compile-time check that Store implements workflow.Store
var _ workflow.Store = (*Store)(nil)
