package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new <kind> <title>",
	Short: "Create a new entity",
	Long: `Create an entity document of the given kind with the next free id.
Kinds: character, faction, main-plot, side-plot, foreshadow.

The document is rendered from the kind's template (project override first,
builtin otherwise) with the title, id and date filled in. Writers have their
own command group; see "nvk writer new".`,
	Args: exactArgs(2),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	const action = "new"

	if args[0] == "writer" {
		return failMsg(action, ErrUnknownKind, `writers are managed separately; use "nvk writer new"`)
	}
	kind, err := lookupKind(action, args[0])
	if err != nil {
		return err
	}
	if _, err := requireState(action); err != nil {
		return err
	}

	res, err := entityStore().Create(kind, args[1], templates())
	if err != nil {
		return fail(action, ErrFileWriteError, err)
	}

	if plainOutput {
		fmt.Println(ui.Successf("Created %s %s", kind.Name, ui.ID(res.ID)))
		fmt.Println(ui.Hint("  " + res.RelPath))
		return nil
	}
	return respond(action, map[string]interface{}{
		"kind":  kind.Name,
		"id":    res.ID,
		"title": res.Title,
		"file":  res.RelPath,
	})
}
