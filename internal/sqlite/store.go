package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ascent-labs/ascent/pkg/types"
)

// Compile-time interface checks.
var (
	_ types.GoalStore = (*Store)(nil)
	_ types.Ledger    = (*Store)(nil)
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "ascent.db"

// Store implements types.GoalStore and types.Ledger over one SQLite
// database. A Store is not usable until Open succeeds; Close is idempotent.
type Store struct {
	mu   sync.RWMutex
	open bool
	db   *sql.DB
}

// NewStore creates an unopened Store. Call Open with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Open validates the config, creates the data directory if needed, opens
// the database, and applies the schema on first use. Returns ErrAlreadyOpen
// if called while open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return fmt.Errorf("enabling foreign keys: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		db.Close()
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version < schemaVersion {
		for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
			if _, err := db.Exec(ddl); err != nil {
				db.Close()
				return fmt.Errorf("applying schema: %w", err)
			}
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d;", schemaVersion)); err != nil {
			db.Close()
			return fmt.Errorf("stamping schema version: %w", err)
		}
	}

	s.db = db
	s.open = true
	return nil
}

// Close releases the database handle. Idempotent: closing a closed store
// succeeds.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	err := s.db.Close()
	s.db = nil
	return err
}

// conn returns the database handle, or ErrStoreClosed.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// CreateGoal persists a new goal aggregate. A UUID v7 GoalID is assigned
// when empty, timestamps are stamped, and the version starts at 1.
func (s *Store) CreateGoal(g *types.Goal) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}
	if g == nil {
		return "", types.ErrInvalidData
	}

	now := time.Now().UTC()
	if g.GoalID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		g.GoalID = id.String()
	}
	g.CreatedAt = now
	g.UpdatedAt = now
	g.Version = 1

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO goals (goal_id, title, description, category, duration_value,
		    duration_unit, status, progress, completed_milestones, completed_at,
		    created_at, updated_at, version)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.GoalID, g.Title, g.Description, g.Category,
		g.EstimatedDuration.Value, g.EstimatedDuration.Unit,
		g.Status, g.Progress, g.CompletedMilestones, nullableTime(g.CompletedAt),
		now.Format(time.RFC3339), now.Format(time.RFC3339), g.Version,
	)
	if err != nil {
		return "", fmt.Errorf("inserting goal: %w", err)
	}

	if err := insertMilestones(tx, g); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing goal: %w", err)
	}
	return g.GoalID, nil
}

// LoadGoal hydrates the full aggregate: goal row, milestones ordered by
// position, and dependency edges. Returns ErrGoalNotFound for unknown IDs.
func (s *Store) LoadGoal(id string) (*types.Goal, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := db.QueryRow(
		`SELECT goal_id, title, description, category, duration_value,
		    duration_unit, status, progress, completed_milestones, completed_at,
		    created_at, updated_at, version
		 FROM goals WHERE goal_id = ?`, id)
	g, err := hydrateGoal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrGoalNotFound
		}
		return nil, fmt.Errorf("getting goal %s: %w", id, err)
	}

	rows, err := db.Query(
		`SELECT milestone_id, title, description, kind, position, completed, completed_at
		 FROM milestones WHERE goal_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying milestones for goal %s: %w", id, err)
	}
	defer rows.Close()

	byID := make(map[string]*types.Milestone)
	for rows.Next() {
		m, err := hydrateMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating milestone: %w", err)
		}
		g.Milestones = append(g.Milestones, m)
		byID[m.MilestoneID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}

	depRows, err := db.Query(
		`SELECT milestone_id, depends_on FROM milestone_deps WHERE goal_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("querying dependencies for goal %s: %w", id, err)
	}
	defer depRows.Close()

	for depRows.Next() {
		var mid, dep string
		if err := depRows.Scan(&mid, &dep); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		if m, ok := byID[mid]; ok {
			m.Dependencies = append(m.Dependencies, dep)
		}
	}
	if err := depRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return g, nil
}

// SaveGoal rewrites the aggregate in one transaction. The stored version
// must equal g.Version or ErrVersionConflict is returned; on success the
// version is bumped, in the database and on g. Milestone and dependency rows
// are replaced wholesale, keeping the write all-or-nothing.
func (s *Store) SaveGoal(g *types.Goal) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if g == nil || g.GoalID == "" {
		return types.ErrInvalidData
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var stored int64
	err = tx.QueryRow("SELECT version FROM goals WHERE goal_id = ?", g.GoalID).Scan(&stored)
	if err == sql.ErrNoRows {
		return types.ErrGoalNotFound
	}
	if err != nil {
		return fmt.Errorf("checking goal version: %w", err)
	}
	if stored != g.Version {
		return types.ErrVersionConflict
	}

	newVersion := g.Version + 1
	g.UpdatedAt = time.Now().UTC()

	_, err = tx.Exec(
		`UPDATE goals SET title = ?, description = ?, category = ?,
		    duration_value = ?, duration_unit = ?, status = ?, progress = ?,
		    completed_milestones = ?, completed_at = ?, updated_at = ?, version = ?
		 WHERE goal_id = ?`,
		g.Title, g.Description, g.Category,
		g.EstimatedDuration.Value, g.EstimatedDuration.Unit,
		g.Status, g.Progress, g.CompletedMilestones,
		nullableTime(g.CompletedAt), g.UpdatedAt.Format(time.RFC3339),
		newVersion, g.GoalID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM milestone_deps WHERE goal_id = ?", g.GoalID); err != nil {
		return fmt.Errorf("clearing dependencies: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM milestones WHERE goal_id = ?", g.GoalID); err != nil {
		return fmt.Errorf("clearing milestones: %w", err)
	}
	if err := insertMilestones(tx, g); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing goal: %w", err)
	}
	g.Version = newVersion
	return nil
}

// ListGoals returns goal records matching the filter, newest first, without
// milestone collections hydrated. Stored derived fields (progress, counts)
// are included, which is all listing callers need.
func (s *Store) ListGoals(filter types.GoalFilter) ([]*types.Goal, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT goal_id, title, description, category, duration_value,
	    duration_unit, status, progress, completed_milestones, completed_at,
	    created_at, updated_at, version FROM goals`
	var clauses []string
	var args []any
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, filter.Category)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying goals: %w", err)
	}
	defer rows.Close()

	goals := []*types.Goal{}
	for rows.Next() {
		g, err := hydrateGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

// insertMilestones writes all milestone and dependency rows for g inside tx.
func insertMilestones(tx *sql.Tx, g *types.Goal) error {
	for _, m := range g.Milestones {
		_, err := tx.Exec(
			`INSERT INTO milestones (goal_id, milestone_id, title, description,
			    kind, position, completed, completed_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			g.GoalID, m.MilestoneID, m.Title, m.Description,
			m.Type, m.Order, boolToInt(m.Completed), nullableTime(m.CompletedAt),
		)
		if err != nil {
			return fmt.Errorf("inserting milestone %s: %w", m.MilestoneID, err)
		}
		for _, dep := range m.Dependencies {
			_, err := tx.Exec(
				`INSERT INTO milestone_deps (goal_id, milestone_id, depends_on) VALUES (?, ?, ?)`,
				g.GoalID, m.MilestoneID, dep,
			)
			if err != nil {
				return fmt.Errorf("inserting dependency %s -> %s: %w", m.MilestoneID, dep, err)
			}
		}
	}
	return nil
}
