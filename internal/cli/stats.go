package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/stats"
	"github.com/yansilmi/novel-kit/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show writing session statistics",
	Long: `Summarize the writing sessions recorded per chapter: session count,
latest word count, and when the last session happened. Sessions are logged
automatically by "chapter write", "chapter polish" and "chapter confirm".`,
	Args: exactArgs(0),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	const action = "stats"

	if _, err := requireState(action); err != nil {
		return err
	}

	db, err := stats.Open(proj.StatsDBPath())
	if err != nil {
		return fail(action, ErrInternal, err)
	}
	defer db.Close()

	rows, err := db.ByChapter()
	if err != nil {
		return fail(action, ErrInternal, err)
	}
	if rows == nil {
		rows = []stats.ChapterStats{}
	}

	if plainOutput {
		if len(rows) == 0 {
			fmt.Println(ui.Hint("No sessions recorded yet"))
			return nil
		}
		fmt.Println(ui.Header(fmt.Sprintf("sessions (%d chapters)", len(rows))))
		for _, row := range rows {
			fmt.Printf("  %s  %2d session(s)  %s\n",
				ui.ID(row.ChapterID), row.Sessions,
				ui.Hint(fmt.Sprintf("%d words, last %s", row.LatestWords, row.LastRecordedAt)))
		}
		return nil
	}
	return respond(action, map[string]interface{}{
		"count":    len(rows),
		"chapters": rows,
	})
}
