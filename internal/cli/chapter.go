package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/chapter"
	"github.com/yansilmi/novel-kit/internal/ui"
)

var chapterCmd = &cobra.Command{
	Use:   "chapter",
	Short: "Chapter workflow: plan, write, review, polish, confirm",
	Long: `Manage the chapter workflow. A chapter starts as a plan bundle under
.novelkit/chapters/, gets a content file under chapters/ when written, and
accumulates review and polish records as you revise it. Most subcommands
default to the current chapter when no token is given.`,
}

var chapterPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan the next chapter",
	Long: `Allocate the next chapter id and number, create its metadata bundle
with a pre-filled plan document, and make it the current chapter.`,
	Args: exactArgs(0),
	RunE: runChapterPlan,
}

var chapterWriteCmd = &cobra.Command{
	Use:   "write [token]",
	Short: "Create the content file for a chapter",
	Long: `Create the content file for a planned chapter (the current chapter
when no token is given). The file is seeded from the chapter template and
never overwritten, so re-running is safe.`,
	Args: rangeArgs(0, 1),
	RunE: runChapterWrite,
}

var chapterReviewCmd = &cobra.Command{
	Use:   "review [token]",
	Short: "Start a review pass over a chapter",
	Long: `Report where the review notes for a written chapter belong. The
report file itself is yours to write; re-reviewing replaces it.`,
	Args: rangeArgs(0, 1),
	RunE: runChapterReview,
}

var chapterPolishCmd = &cobra.Command{
	Use:   "polish [token]",
	Short: "Record a polish session on a chapter",
	Long: `Append a dated session entry to the chapter's polish history. The
actual prose edits happen in your editor; this records that a pass happened
and tracks the word count around it.`,
	Args: rangeArgs(0, 1),
	RunE: runChapterPolish,
}

var chapterConfirmCmd = &cobra.Command{
	Use:   "confirm [token]",
	Short: "Report a chapter as completed",
	Long: `Report the final word count for a written chapter. Confirm is an
endpoint, not a gate: it changes no files and no state, and the chapter can
still be reviewed or polished afterwards.`,
	Args: rangeArgs(0, 1),
	RunE: runChapterConfirm,
}

var chapterShowCmd = &cobra.Command{
	Use:   "show [token]",
	Short: "Show a chapter's content or plan",
	Args:  rangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showChapter("chapter.show", tokenArg(args))
	},
}

var chapterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all chapters",
	Args:  exactArgs(0),
	RunE:  runChapterList,
}

func init() {
	chapterCmd.AddCommand(
		chapterPlanCmd,
		chapterWriteCmd,
		chapterReviewCmd,
		chapterPolishCmd,
		chapterConfirmCmd,
		chapterShowCmd,
		chapterListCmd,
	)
	rootCmd.AddCommand(chapterCmd)
}

func runChapterPlan(cmd *cobra.Command, args []string) error {
	const action = "chapter.plan"

	state, err := requireState(action)
	if err != nil {
		return err
	}

	res, err := chapters().Plan(state.CurrentChapterNumber())
	if err != nil {
		return fail(action, ErrFileWriteError, err)
	}

	// Planning is the one step that moves the current-chapter pointer and
	// extends the creation history.
	state.SetCurrentChapter(res.ID, res.Number)
	state.AppendChapterCreation(res.ID, time.Now())
	if err := saveState(action, state); err != nil {
		return err
	}

	if plainOutput {
		fmt.Println(ui.Successf("Planned chapter %d (%s)", res.Number, ui.ID(res.ID)))
		fmt.Println(ui.Hint("  " + res.PlanPath))
		return nil
	}
	return respond(action, res)
}

// resolveChapter resolves a chapter token, defaulting to the current chapter.
func resolveChapter(action, token string) (string, error) {
	state, err := requireState(action)
	if err != nil {
		return "", err
	}
	id, err := chapters().Resolve(token, state.CurrentChapterID())
	if err != nil {
		return "", failResolve(action, err)
	}
	return id, nil
}

func runChapterWrite(cmd *cobra.Command, args []string) error {
	const action = "chapter.write"

	id, err := resolveChapter(action, tokenArg(args))
	if err != nil {
		return err
	}

	res, err := chapters().Write(id, templates())
	if err != nil {
		return failResolve(action, err)
	}
	recordSession(res.ID, "write", 0, res.WordCount)

	if plainOutput {
		verb := "Opened"
		if res.Created {
			verb = "Created"
		}
		fmt.Println(ui.Successf("%s content for chapter %d (%s)", verb, res.Number, ui.ID(res.ID)))
		fmt.Println(ui.Hint(fmt.Sprintf("  %s (%d words)", res.ContentPath, res.WordCount)))
		return nil
	}
	return respond(action, res)
}

func runChapterReview(cmd *cobra.Command, args []string) error {
	const action = "chapter.review"

	id, err := resolveChapter(action, tokenArg(args))
	if err != nil {
		return err
	}

	res, err := chapters().Review(id)
	if err != nil {
		return failResolve(action, err)
	}

	if plainOutput {
		fmt.Println(ui.Successf("Review %s (%d words)", ui.ID(res.ID), res.WordCount))
		fmt.Println(ui.Hint("  write notes to: ") + ui.FilePath(res.ReportPath))
		return nil
	}
	return respond(action, res)
}

func runChapterPolish(cmd *cobra.Command, args []string) error {
	const action = "chapter.polish"

	id, err := resolveChapter(action, tokenArg(args))
	if err != nil {
		return err
	}

	res, err := chapters().Polish(id)
	if err != nil {
		return failResolve(action, err)
	}
	recordSession(res.ID, "polish", res.WordsBefore, res.WordsAfter)

	if plainOutput {
		fmt.Println(ui.Successf("Polish session recorded for %s", ui.ID(res.ID)))
		fmt.Println(ui.Hint("  " + res.HistoryPath))
		return nil
	}
	return respond(action, res)
}

func runChapterConfirm(cmd *cobra.Command, args []string) error {
	const action = "chapter.confirm"

	id, err := resolveChapter(action, tokenArg(args))
	if err != nil {
		return err
	}

	res, err := chapters().Confirm(id)
	if err != nil {
		return failResolve(action, err)
	}
	recordSession(res.ID, "confirm", res.WordCount, res.WordCount)

	if plainOutput {
		fmt.Println(ui.Successf("Chapter %d (%s) completed at %d words",
			res.Number, ui.ID(res.ID), res.WordCount))
		return nil
	}
	return respond(action, res)
}

// showChapter backs both "chapter show" and "show chapter".
func showChapter(action, token string) error {
	id, err := resolveChapter(action, token)
	if err != nil {
		return err
	}

	path, err := chapters().Show(id)
	if err != nil {
		return failResolve(action, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fail(action, ErrInternal, err)
	}

	if plainOutput {
		printDocument(string(content))
		return nil
	}
	return respond(action, map[string]interface{}{
		"id":      id,
		"file":    proj.Rel(path),
		"content": string(content),
	})
}

func runChapterList(cmd *cobra.Command, args []string) error {
	const action = "chapter.list"

	state, err := requireState(action)
	if err != nil {
		return err
	}

	infos, err := chapters().List(state.CurrentChapterID())
	if err != nil {
		return fail(action, ErrInternal, err)
	}
	if infos == nil {
		infos = []chapter.Info{}
	}

	if plainOutput {
		printChapterTable(infos)
		return nil
	}
	return respond(action, map[string]interface{}{
		"count":           len(infos),
		"chapters":        infos,
		"current_chapter": state.CurrentChapterID(),
	})
}

func printChapterTable(infos []chapter.Info) {
	if len(infos) == 0 {
		fmt.Println(ui.Hint("No chapters yet; start with \"nvk chapter plan\""))
		return
	}
	fmt.Println(ui.Header(fmt.Sprintf("chapters (%d)", len(infos))))
	for _, info := range infos {
		marker := " "
		if info.Current {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s  #%-3d %-8s", marker, ui.ID(info.ID), info.Number, info.Status)
		if info.Status == chapter.StatusWritten {
			line += ui.Hint(fmt.Sprintf(" %d words", info.WordCount))
		}
		fmt.Println("  " + line)
	}
}
