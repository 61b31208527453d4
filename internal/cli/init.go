package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/config"
	"github.com/yansilmi/novel-kit/internal/entity"
	"github.com/yansilmi/novel-kit/internal/memory"
	"github.com/yansilmi/novel-kit/internal/paths"
	"github.com/yansilmi/novel-kit/internal/project"
	"github.com/yansilmi/novel-kit/internal/template"
	"github.com/yansilmi/novel-kit/internal/ui"
)

var (
	initForce bool
	initHere  bool
)

// builtin template names written out at init so projects can customize them.
var seededTemplates = []string{"character", "faction", "plot", "writer", "chapter"}

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create a new novel project",
	Long: `Create a novel project in a new directory (or the current one when no
name is given): the collection directories, the .novelkit metadata tree, the
memory record, and a customizable copy of every builtin template.`,
	Args:        rangeArgs(0, 1),
	Annotations: map[string]string{skipProjectAnnotation: ""},
	RunE:        runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "initialize even if a project already exists here")
	initCmd.Flags().BoolVar(&initHere, "here", false, "initialize in the current directory (same as omitting the name)")
	rootCmd.AddCommand(initCmd)
}

type initResult struct {
	Name      string   `json:"name"`
	Root      string   `json:"root"`
	Templates []string `json:"templates"`
}

func runInit(cmd *cobra.Command, args []string) error {
	const action = "init"

	target, err := os.Getwd()
	if err != nil {
		return fail(action, ErrInternal, err)
	}
	if initHere && len(args) == 1 {
		return failMsg(action, ErrMissingArgument, "--here and a project name are mutually exclusive")
	}
	if len(args) == 1 {
		target = filepath.Join(target, args[0])
	}
	target, err = filepath.Abs(target)
	if err != nil {
		return fail(action, ErrInternal, err)
	}

	if paths.IsProjectRoot(target) && !initForce {
		return failMsg(action, ErrProjectExists,
			fmt.Sprintf("%s is already a novel-kit project (use --force to re-initialize)", target))
	}

	dirs := []string{
		filepath.Join(target, paths.MetaDirName, "memory"),
		filepath.Join(target, paths.MetaDirName, "templates"),
		filepath.Join(target, paths.MetaDirName, "writers"),
		filepath.Join(target, paths.MetaDirName, "chapters"),
		filepath.Join(target, paths.MetaDirName, "trash"),
		filepath.Join(target, "chapters"),
	}
	for _, kind := range entity.Kinds() {
		if kind.Bundle {
			continue
		}
		dirs = append(dirs, filepath.Join(target, filepath.FromSlash(kind.DefaultDir)))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fail(action, ErrFileWriteError, err)
		}
	}

	configPath := filepath.Join(target, project.ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if werr := os.WriteFile(configPath, []byte(projectConfigSkeleton), 0o644); werr != nil {
			return fail(action, ErrFileWriteError, werr)
		}
	}

	// Seed the memory record. This is the only place it is ever created.
	memoryPath := filepath.Join(target, paths.MetaDirName, "memory", "config.json")
	if _, err := os.Stat(memoryPath); os.IsNotExist(err) || initForce {
		if werr := memory.Save(memoryPath, &memory.State{}); werr != nil {
			return fail(action, ErrFileWriteError, werr)
		}
	}

	templatesDir := filepath.Join(target, paths.MetaDirName, "templates")
	for _, name := range seededTemplates {
		path := filepath.Join(templatesDir, name+".md")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if werr := os.WriteFile(path, []byte(template.Builtin(name)), 0o644); werr != nil {
			return fail(action, ErrFileWriteError, werr)
		}
	}

	name := filepath.Base(target)
	if err := registerProject(name, target); err != nil && plainOutput {
		fmt.Fprintln(os.Stderr, ui.Warningf("project not registered in config: %v", err))
	}

	if plainOutput {
		fmt.Println(ui.Successf("Initialized novel project %s", ui.ID(name)))
		fmt.Println(ui.Hint("  " + target))
		return nil
	}
	return respond(action, initResult{Name: name, Root: target, Templates: seededTemplates})
}

// registerProject records the project in the machine-local config and makes
// it the active project.
func registerProject(name, root string) error {
	cfg.RegisterProject(name, root)
	if err := config.SaveTo(config.ResolveConfigPath(flagConfigPath), cfg); err != nil {
		return err
	}

	state, err := config.LoadState(statePath)
	if err != nil {
		return err
	}
	state.ActiveProject = name
	return config.SaveState(statePath, state)
}

const projectConfigSkeleton = `# novel-kit project configuration.
#
# Collection directories can be remapped per project; the defaults are:
#
# directories:
#   character: world/characters
#   faction: world/factions
#   main-plot: plots/main
#   side-plot: plots/side
#   foreshadow: plots/foreshadowing
#   content: chapters
#
# trash_dir: .novelkit/trash
`
