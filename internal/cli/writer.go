package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/entity"
	"github.com/yansilmi/novel-kit/internal/ui"
)

var writerCmd = &cobra.Command{
	Use:   "writer",
	Short: "Manage writer profiles",
	Long: `Manage writer profiles. Each writer is a bundle directory under
.novelkit/writers/ holding a writer.md profile; the current writer is tracked
in the project memory record and used when a writer token is omitted.`,
}

var writerNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a writer profile and make it current",
	Args:  exactArgs(1),
	RunE:  runWriterNew,
}

var writerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List writer profiles",
	Args:  exactArgs(0),
	RunE:  runWriterList,
}

var writerSwitchCmd = &cobra.Command{
	Use:   "switch <token>",
	Short: "Switch the current writer",
	Args:  exactArgs(1),
	RunE:  runWriterSwitch,
}

var writerCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current writer",
	Args:  exactArgs(0),
	RunE:  runWriterCurrent,
}

func init() {
	writerCmd.AddCommand(writerNewCmd, writerListCmd, writerSwitchCmd, writerCurrentCmd)
	rootCmd.AddCommand(writerCmd)
}

func writerKind() entity.Kind {
	kind, _ := entity.Lookup("writer")
	return kind
}

func runWriterNew(cmd *cobra.Command, args []string) error {
	const action = "writer.new"

	state, err := requireState(action)
	if err != nil {
		return err
	}

	res, err := entityStore().Create(writerKind(), args[0], templates())
	if err != nil {
		return fail(action, ErrFileWriteError, err)
	}

	// A freshly created writer becomes the current one.
	state.SetCurrentWriter(res.ID)
	if err := saveState(action, state); err != nil {
		return err
	}

	if plainOutput {
		fmt.Println(ui.Successf("Created writer %s (now current)", ui.ID(res.ID)))
		fmt.Println(ui.Hint("  " + res.RelPath))
		return nil
	}
	return respond(action, map[string]interface{}{
		"id":      res.ID,
		"name":    res.Title,
		"file":    res.RelPath,
		"current": true,
	})
}

func runWriterList(cmd *cobra.Command, args []string) error {
	const action = "writer.list"

	state, err := requireState(action)
	if err != nil {
		return err
	}

	items, err := entityStore().List(writerKind())
	if err != nil {
		return fail(action, ErrInternal, err)
	}

	current := state.CurrentWriterID()
	type writerRow struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Status  string `json:"status"`
		Current bool   `json:"current"`
	}
	rows := make([]writerRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, writerRow{
			ID:      item.ID,
			Name:    item.Title,
			Status:  item.Status,
			Current: item.ID == current,
		})
	}

	if plainOutput {
		if len(rows) == 0 {
			fmt.Println(ui.Hint("No writers yet; create one with \"nvk writer new\""))
			return nil
		}
		fmt.Println(ui.Header(fmt.Sprintf("writers (%d)", len(rows))))
		for _, row := range rows {
			marker := " "
			if row.Current {
				marker = "*"
			}
			fmt.Printf("  %s %s  %s\n", marker, ui.ID(row.ID), row.Name)
		}
		return nil
	}
	return respond(action, map[string]interface{}{
		"count":          len(rows),
		"writers":        rows,
		"current_writer": current,
	})
}

func runWriterSwitch(cmd *cobra.Command, args []string) error {
	const action = "writer.switch"

	state, err := requireState(action)
	if err != nil {
		return err
	}

	rec, err := entityStore().Resolve(writerKind(), args[0])
	if err != nil {
		return failResolve(action, err)
	}

	state.SetCurrentWriter(rec.ID)
	if err := saveState(action, state); err != nil {
		return err
	}

	if plainOutput {
		fmt.Println(ui.Successf("Switched to writer %s (%s)", ui.ID(rec.ID), rec.Title))
		return nil
	}
	return respond(action, map[string]interface{}{
		"id":   rec.ID,
		"name": rec.Title,
	})
}

func runWriterCurrent(cmd *cobra.Command, args []string) error {
	const action = "writer.current"

	state, err := requireState(action)
	if err != nil {
		return err
	}

	current := state.CurrentWriterID()
	if current == "" {
		return failMsg(action, ErrNotFound, "no current writer set")
	}

	rec, err := entityStore().Resolve(writerKind(), current)
	if err != nil {
		return failResolve(action, err)
	}

	if plainOutput {
		fmt.Printf("%s  %s\n", ui.ID(rec.ID), rec.Title)
		return nil
	}
	return respond(action, map[string]interface{}{
		"id":   rec.ID,
		"name": rec.Title,
	})
}
