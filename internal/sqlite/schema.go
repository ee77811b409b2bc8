// Package sqlite implements the SQLite-backed GoalStore and Ledger for the
// Ascent tracker. SQLite is the source of truth; the whole goal aggregate
// (goal row, milestone rows, dependency edges) is loaded and saved together,
// with a version column enforcing the per-goal optimistic concurrency check.
package sqlite

// Schema DDL. Milestone IDs are goal-scoped, so milestones and dependency
// edges key on (goal_id, milestone_id). Timestamps are RFC 3339 TEXT.
const (
	createGoals = `CREATE TABLE goals (
    goal_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    category TEXT,
    duration_value INTEGER NOT NULL,
    duration_unit TEXT NOT NULL,
    status TEXT NOT NULL,
    progress INTEGER NOT NULL,
    completed_milestones INTEGER NOT NULL,
    completed_at TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    version INTEGER NOT NULL
);`

	createMilestones = `CREATE TABLE milestones (
    goal_id TEXT NOT NULL,
    milestone_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    kind TEXT NOT NULL,
    position INTEGER NOT NULL,
    completed INTEGER NOT NULL,
    completed_at TEXT,
    PRIMARY KEY (goal_id, milestone_id),
    FOREIGN KEY (goal_id) REFERENCES goals(goal_id)
);`

	createMilestoneDeps = `CREATE TABLE milestone_deps (
    goal_id TEXT NOT NULL,
    milestone_id TEXT NOT NULL,
    depends_on TEXT NOT NULL,
    PRIMARY KEY (goal_id, milestone_id, depends_on),
    FOREIGN KEY (goal_id, milestone_id) REFERENCES milestones(goal_id, milestone_id)
);`

	createLedgerEvents = `CREATE TABLE ledger_events (
    event_id TEXT PRIMARY KEY,
    goal_id TEXT NOT NULL,
    event_type TEXT NOT NULL,
    value INTEGER NOT NULL,
    description TEXT,
    milestone_id TEXT,
    created_at TEXT NOT NULL,
    FOREIGN KEY (goal_id) REFERENCES goals(goal_id)
);`
)

// Index DDL for common queries.
const (
	idxGoalsStatus    = `CREATE INDEX idx_goals_status ON goals(status);`
	idxGoalsCategory  = `CREATE INDEX idx_goals_category ON goals(category);`
	idxMilestonesGoal = `CREATE INDEX idx_milestones_goal ON milestones(goal_id, position);`
	idxDepsGoal       = `CREATE INDEX idx_milestone_deps_goal ON milestone_deps(goal_id, milestone_id);`
	idxLedgerGoal     = `CREATE INDEX idx_ledger_events_goal ON ledger_events(goal_id, created_at);`
	idxLedgerGoalType = `CREATE INDEX idx_ledger_events_type ON ledger_events(goal_id, event_type);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createGoals,
	createMilestones,
	createMilestoneDeps,
	createLedgerEvents,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxGoalsStatus,
	idxGoalsCategory,
	idxMilestonesGoal,
	idxDepsGoal,
	idxLedgerGoal,
	idxLedgerGoalType,
}

// schemaVersion is stamped into PRAGMA user_version after initialization so
// reopening an existing database skips the DDL.
const schemaVersion = 1
