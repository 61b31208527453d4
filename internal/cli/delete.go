package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <kind> <token>",
	Aliases: []string{"rm"},
	Short:   "Move an entity to the project trash",
	Long: `Resolve an entity and move its document (or bundle directory) into
the project trash. Nothing is erased; the trash entry keeps the id and title
in its name so it can be restored by hand. Freed ids are never reused.`,
	Args: exactArgs(2),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	const action = "delete"

	kind, err := lookupKind(action, args[0])
	if err != nil {
		return err
	}
	if _, err := requireState(action); err != nil {
		return err
	}

	res, err := entityStore().Delete(kind, args[1])
	if err != nil {
		return failResolve(action, err)
	}

	if plainOutput {
		fmt.Println(ui.Successf("Moved %s %s to trash", kind.Name, ui.ID(res.ID)))
		fmt.Println(ui.Hint("  " + proj.Rel(res.TrashPath)))
		return nil
	}
	return respond(action, map[string]interface{}{
		"kind":  kind.Name,
		"id":    res.ID,
		"trash": proj.Rel(res.TrashPath),
	})
}
