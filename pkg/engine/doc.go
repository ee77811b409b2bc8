// Package engine implements the milestone dependency and progress engine:
// blocked-state derivation, dependency-gated completion, strict dependency
// edits with cycle rejection, and goal progress/status recomputation.
//
// Every function is pure computation over one in-memory *types.Goal. The
// engine performs no I/O, no logging, and no retries; persistence, mutual
// exclusion across concurrent mutations of the same goal, and all recovery
// policy belong to the caller (see pkg/tracker). Different goals share no
// state and can be processed in parallel without coordination.
package engine
