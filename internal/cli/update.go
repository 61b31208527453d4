package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/ui"
)

var updateCmd = &cobra.Command{
	Use:   "update <kind> <token>",
	Short: "Locate an entity document for editing",
	Long: `Resolve an entity and report the path of its mutable document.
Edits themselves happen in your editor; this command only finds the file,
so agents can read it, rewrite it and save it back.`,
	Args: exactArgs(2),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	const action = "update"

	kind, err := lookupKind(action, args[0])
	if err != nil {
		return err
	}
	if _, err := requireState(action); err != nil {
		return err
	}

	rec, err := entityStore().Resolve(kind, args[1])
	if err != nil {
		return failResolve(action, err)
	}

	if plainOutput {
		fmt.Println(ui.Successf("%s %s", kind.Name, ui.ID(rec.ID)))
		fmt.Println(ui.Hint("  edit: ") + ui.FilePath(proj.Rel(rec.Path)))
		if editor := cfg.EditorCommand(); editor != "" {
			fmt.Println(ui.Hint(fmt.Sprintf("  %s %s", editor, proj.Rel(rec.Path))))
		}
		return nil
	}
	return respond(action, map[string]interface{}{
		"kind":  kind.Name,
		"id":    rec.ID,
		"title": rec.Title,
		"file":  proj.Rel(rec.Path),
	})
}
