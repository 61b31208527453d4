package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/chapter"
	"github.com/yansilmi/novel-kit/internal/entity"
	"github.com/yansilmi/novel-kit/internal/memory"
	"github.com/yansilmi/novel-kit/internal/resolver"
	"github.com/yansilmi/novel-kit/internal/stats"
	"github.com/yansilmi/novel-kit/internal/template"
	"github.com/yansilmi/novel-kit/internal/ui"
)

// requireState loads the project memory record, failing with NOT_INITIALIZED
// when the project was never initialized. The record is never auto-created.
func requireState(action string) (*memory.State, error) {
	state, err := memory.Load(proj.MemoryPath())
	if err != nil {
		if errors.Is(err, memory.ErrNotInitialized) {
			return nil, failMsg(action, ErrNotInitialized, err.Error())
		}
		return nil, fail(action, ErrInternal, err)
	}
	return state, nil
}

// saveState persists the memory record after a command-layer mutation.
func saveState(action string, state *memory.State) error {
	if err := memory.Save(proj.MemoryPath(), state); err != nil {
		return fail(action, ErrFileWriteError, err)
	}
	return nil
}

// entityStore returns the entity store for the current project.
func entityStore() *entity.Store {
	return entity.NewStore(proj)
}

// chapters returns the chapter manager for the current project.
func chapters() *chapter.Manager {
	return chapter.NewManager(proj)
}

// templates returns the template provider for the current project.
func templates() *template.Provider {
	return template.NewProvider(proj.Root, proj.TemplatesDir())
}

// lookupKind maps a CLI kind argument to its registry entry.
func lookupKind(action, name string) (entity.Kind, error) {
	kind, ok := entity.Lookup(name)
	if !ok {
		return entity.Kind{}, failMsg(action, ErrUnknownKind,
			fmt.Sprintf("unknown kind %q (expected one of: %v)", name, entity.KindNames()))
	}
	return kind, nil
}

// failResolve maps lookup and chapter errors onto their stable codes.
func failResolve(action string, err error) error {
	switch {
	case errors.Is(err, resolver.ErrNotFound):
		return fail(action, ErrNotFound, err)
	case errors.Is(err, chapter.ErrChapterNotFound):
		return fail(action, ErrChapterNotFound, err)
	case errors.Is(err, chapter.ErrPlanNotFound):
		return fail(action, ErrPlanNotFound, err)
	default:
		return fail(action, ErrInternal, err)
	}
}

// recordSession logs a writing session to the stats database. Stats are
// best-effort bookkeeping: failures warn in plain mode and never fail the
// command that triggered them.
func recordSession(chapterID, action string, wordsBefore, wordsAfter int) {
	db, err := stats.Open(proj.StatsDBPath())
	if err != nil {
		if plainOutput {
			fmt.Fprintln(os.Stderr, ui.Warningf("stats unavailable: %v", err))
		}
		return
	}
	defer db.Close()

	if err := db.RecordSession(chapterID, action, wordsBefore, wordsAfter); err != nil && plainOutput {
		fmt.Fprintln(os.Stderr, ui.Warningf("stats not recorded: %v", err))
	}
}

// tokenArg returns the optional positional token of a command.
func tokenArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// exactArgs wraps cobra.ExactArgs with a MISSING_ARGUMENT envelope so arg
// validation failures stay machine-readable.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return failMsg(actionName(cmd), ErrMissingArgument,
				fmt.Sprintf("expected %d argument(s), got %d", n, len(args)))
		}
		return nil
	}
}

// rangeArgs is exactArgs for an argument span.
func rangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min || len(args) > max {
			return failMsg(actionName(cmd), ErrMissingArgument,
				fmt.Sprintf("expected between %d and %d argument(s), got %d", min, max, len(args)))
		}
		return nil
	}
}
