// Shared helpers for ascent CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ascent-labs/ascent/pkg/sqlite"
	"github.com/ascent-labs/ascent/pkg/tracker"
	"github.com/ascent-labs/ascent/pkg/types"
)

// openTracker resolves the data directory, opens the SQLite store, and
// wires a Tracker with the store doubling as the progress ledger. The
// caller must defer store.Close().
func openTracker() (*tracker.Tracker, *sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	return tracker.New(store, tracker.WithLedger(store)), store, nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// userError reports whether the error is the caller's fault (bad IDs,
// rejected transitions, invalid edits) as opposed to a system failure.
func userError(err error) bool {
	for _, target := range []error{
		types.ErrGoalNotFound,
		types.ErrMilestoneNotFound,
		types.ErrAlreadyCompleted,
		types.ErrDependenciesUnmet,
		types.ErrSelfDependency,
		types.ErrUnknownDependency,
		types.ErrCycleDetected,
		types.ErrInvalidTitle,
		types.ErrInvalidStatus,
		types.ErrInvalidMilestoneType,
		types.ErrInvalidDuration,
		types.ErrInvalidData,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// fail prints a prefixed error and exits with the appropriate code.
func fail(prefix string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err)
	if userError(err) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}

// formatUnmet renders an unmet-dependency list for human output.
func formatUnmet(unmet []types.UnmetDependency) string {
	parts := make([]string, len(unmet))
	for i, u := range unmet {
		if u.Title != "" {
			parts[i] = fmt.Sprintf("%s (%s)", u.Title, u.MilestoneID)
		} else {
			parts[i] = u.MilestoneID
		}
	}
	return strings.Join(parts, ", ")
}
