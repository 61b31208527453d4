package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/chapter"
	"github.com/yansilmi/novel-kit/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the project's current position",
	Long: `Show where the project stands: the root, the current chapter and
writer, the latest chapter recorded in the creation history, and how many
chapters exist in each workflow state.`,
	Args: exactArgs(0),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	const action = "status"

	state, err := requireState(action)
	if err != nil {
		return err
	}

	infos, err := chapters().List(state.CurrentChapterID())
	if err != nil {
		return fail(action, ErrInternal, err)
	}
	planned, written := 0, 0
	for _, info := range infos {
		if info.Status == chapter.StatusWritten {
			written++
		} else {
			planned++
		}
	}

	if plainOutput {
		fmt.Println(ui.Header("Project status"))
		fmt.Println("  root:            " + ui.FilePath(proj.Root))
		fmt.Println("  current chapter: " + orNone(state.CurrentChapterID()))
		fmt.Println("  current writer:  " + orNone(state.CurrentWriterID()))
		fmt.Println("  latest planned:  " + orNone(state.LatestCompletedChapter()))
		fmt.Printf("  chapters:        %d written, %d planned\n", written, planned)
		return nil
	}
	return respond(action, map[string]interface{}{
		"root": proj.Root,
		"current_chapter": map[string]interface{}{
			"id":     state.CurrentChapterID(),
			"number": state.CurrentChapterNumber(),
		},
		"current_writer":   state.CurrentWriterID(),
		"latest_chapter":   state.LatestCompletedChapter(),
		"chapters_total":   len(infos),
		"chapters_written": written,
		"chapters_planned": planned,
	})
}

func orNone(value string) string {
	if value == "" {
		return ui.Hint("(none)")
	}
	return ui.ID(value)
}
