package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yansilmi/novel-kit/internal/config"
	"github.com/yansilmi/novel-kit/internal/paths"
	"github.com/yansilmi/novel-kit/internal/project"
	"github.com/yansilmi/novel-kit/internal/ui"
)

// skipProjectAnnotation marks commands that run without a resolved project.
const skipProjectAnnotation = "novelkit_skip_project"

var (
	flagConfigPath  string
	flagStatePath   string
	flagProjectName string
	flagProjectPath string

	cfg       *config.Config
	statePath string
	proj      *project.Project
)

var rootCmd = &cobra.Command{
	Use:   "nvk",
	Short: "Manage novel projects from the command line",
	Long: `nvk manages the working files of a novel project: world-building
entities (characters, factions, plots), per-chapter metadata bundles, writer
profiles, and the plan/write/review/polish/confirm chapter workflow.

Output is a JSON envelope by default so agents can parse it; pass --plain
for human-readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFrom(config.ResolveConfigPath(flagConfigPath))
		if err != nil {
			return fail(actionName(cmd), ErrInternal, err)
		}
		statePath = config.ResolveStatePath(flagStatePath, flagConfigPath, cfg)

		if _, skip := cmd.Annotations[skipProjectAnnotation]; skip {
			return nil
		}
		// Bare "nvk" just prints help; don't demand a project for it.
		if !cmd.HasParent() {
			return nil
		}
		for c := cmd; c != nil; c = c.Parent() {
			switch c.Name() {
			case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
				return nil
			}
		}

		root, err := resolveProjectRoot()
		if err != nil {
			return fail(actionName(cmd), ErrRepoNotFound, err)
		}
		proj, err = project.Open(root)
		if err != nil {
			return fail(actionName(cmd), ErrRepoNotFound, err)
		}
		return nil
	},
}

// resolveProjectRoot picks the project root with precedence:
// --project-path, --project (by registered name), the working directory walk,
// the machine-local active project, then the configured default project.
func resolveProjectRoot() (string, error) {
	if flagProjectPath != "" {
		if !paths.IsProjectRoot(flagProjectPath) {
			return "", fmt.Errorf("%s is not a novel-kit project (missing %s)", flagProjectPath, paths.MetaDirName)
		}
		return flagProjectPath, nil
	}

	if flagProjectName != "" {
		return cfg.GetProjectPath(flagProjectName)
	}

	cwd, err := os.Getwd()
	if err == nil {
		if root, ferr := paths.FindRoot(cwd); ferr == nil {
			return root, nil
		}
	}

	state, err := config.LoadState(statePath)
	if err == nil && state.ActiveProject != "" {
		if root, perr := cfg.GetProjectPath(state.ActiveProject); perr == nil {
			return root, nil
		}
	}

	if cfg.DefaultProject != "" {
		if root, perr := cfg.GetProjectPath(cfg.DefaultProject); perr == nil {
			return root, nil
		}
	}

	return "", paths.ErrRepoNotFound
}

// registerGlobalFlags binds the persistent flags shared by every command.
func registerGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagConfigPath, "config", "", "path to config.toml (default ~/.config/novelkit/config.toml)")
	fs.StringVar(&flagStatePath, "state", "", "path to state.toml (default next to config.toml)")
	fs.StringVar(&flagProjectName, "project", "", "registered project name to operate on")
	fs.StringVar(&flagProjectPath, "project-path", "", "project root path to operate on")
	fs.BoolVar(&plainOutput, "plain", false, "human-readable output instead of JSON")
}

func init() {
	registerGlobalFlags(rootCmd.PersistentFlags())
}

// actionName builds the dotted action identifier for a command,
// e.g. "chapter.plan".
func actionName(cmd *cobra.Command) string {
	var parts []string
	for c := cmd; c != nil && c.HasParent(); c = c.Parent() {
		parts = append([]string{c.Name()}, parts...)
	}
	if len(parts) == 0 {
		return cmd.Name()
	}
	return strings.Join(parts, ".")
}

// Execute runs the root command. Errors that already produced a JSON envelope
// pass through silently; anything else gets reported in the active mode.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if !errors.Is(err, errReported) {
		if plainOutput {
			fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		} else {
			_ = failMsg("nvk", ErrInternal, err.Error())
		}
	}
	return err
}
