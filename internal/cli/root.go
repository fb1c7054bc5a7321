// Package cli is the command surface over the resolver: it reads the host
// registry, runs one resolution pass, and prints the report. It never
// executes the suggested commands itself.
package cli

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bayleafwalker/plugdeps/internal/config"
)

type options struct {
	log        logr.Logger
	pluginsDir string
	noColor    bool
}

// dir resolves the effective plugins directory and merged settings.
func (o *options) dir() (string, config.Config) {
	base := o.pluginsDir
	if base == "" {
		base = config.ResolvePluginsDir("", config.Config{})
	}
	cfg, err := config.Load(base)
	if err != nil {
		// A broken config file should be visible but not block resolution.
		o.log.Error(err, "ignoring config file")
		cfg = config.Config{}
	}
	return config.ResolvePluginsDir(o.pluginsDir, cfg), cfg
}

func (o *options) styles(cfg config.Config) styles {
	return newStyles(!o.noColor && !cfg.NoColor)
}

// NewRootCommand builds the plugdeps command tree. The bare command runs a
// full resolution pass; tree and json give the other views of the same
// snapshot.
func NewRootCommand(log logr.Logger) *cobra.Command {
	opts := &options{log: log}

	root := &cobra.Command{
		Use:   "plugdeps",
		Short: "Resolve dependencies between installed plugins",
		Long: "plugdeps scans installed plugins for dependency declarations, builds the\n" +
			"dependency graph, and reports what is missing, outdated, or cyclic, with\n" +
			"the commands needed to fix it. It only reports; it never installs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.pluginsDir, "plugins-dir", "", "plugins directory (default ~/.claude/plugins)")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	root.AddCommand(newResolveCommand(opts))
	root.AddCommand(newTreeCommand(opts))
	root.AddCommand(newJSONCommand(opts))

	return root
}

// Execute runs the CLI and reports failure via the exit code.
func Execute(log logr.Logger) {
	if err := NewRootCommand(log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "plugdeps:", err)
		os.Exit(1)
	}
}
