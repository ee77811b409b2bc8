// Package types defines the Goal and Milestone entities, the GoalStore and
// Ledger interfaces, and the standard error values shared across the Ascent
// tracker. All derived attributes (progress, status promotion, blocked state)
// are computed by pkg/engine; this package only carries the data model and
// its normalization boundary.
package types
