package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bayleafwalker/plugdeps/internal/registry"
	"github.com/bayleafwalker/plugdeps/internal/resolver"
)

func newTreeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the dependency tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg := opts.dir()
			st := opts.styles(cfg)
			out := cmd.OutOrStdout()

			in, err := registry.Snapshot(dir, opts.log)
			if err != nil {
				return err
			}

			printTree(out, st, in)

			rep, err := resolver.NewDefault().Resolve(context.Background(), in)
			if err != nil {
				return err
			}
			printCycles(out, st, rep.Cycles)
			return nil
		},
	}
}

func printTree(out io.Writer, st styles, in resolver.Input) {
	declared := false
	for _, it := range in.Items {
		if len(it.Declarations) > 0 {
			declared = true
			break
		}
	}
	if !declared {
		fmt.Fprintln(out, "No dependencies declared by any installed plugin.")
		return
	}
	lines := resolver.RenderTree(in)
	fmt.Fprintln(out, st.header.Render("Dependency tree:"))
	for _, line := range lines {
		fmt.Fprintf(out, "  %s\n", line)
	}
}

func printCycles(out io.Writer, st styles, cycles [][]string) {
	if len(cycles) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s\n", st.warn.Render(fmt.Sprintf("Warning: %d dependency cycle(s) detected:", len(cycles))))
	for _, c := range cycles {
		fmt.Fprintf(out, "  %s\n", cycleText(c))
	}
}
