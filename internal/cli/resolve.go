package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bayleafwalker/plugdeps/internal/actions"
	"github.com/bayleafwalker/plugdeps/internal/registry"
	"github.com/bayleafwalker/plugdeps/internal/resolver"
)

func newResolveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Report missing, outdated, and cyclic dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts)
		},
	}
}

func runResolve(cmd *cobra.Command, opts *options) error {
	dir, cfg := opts.dir()
	st := opts.styles(cfg)
	out := cmd.OutOrStdout()

	in, err := registry.Snapshot(dir, opts.log)
	if err != nil {
		return err
	}
	known := registry.LoadMarketplaces(dir)

	rep, err := resolver.NewDefault().Resolve(context.Background(), in)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", st.header.Render(fmt.Sprintf("Installed plugins: %d", len(in.Items))))
	for _, it := range in.Items {
		line := "  " + it.Name
		if it.Version != "" {
			line += " v" + it.Version
		}
		if it.Marketplace != "" {
			line += " (" + it.Marketplace + ")"
		}
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out)
	printTree(out, st, in)

	printCycles(out, st, rep.Cycles)

	if len(rep.Invalid) > 0 {
		fmt.Fprintf(out, "\n%s\n", st.bad.Render(fmt.Sprintf("Invalid dependency declarations: %d", len(rep.Invalid))))
		for _, inv := range rep.Invalid {
			fmt.Fprintf(out, "  %s -> %s: %s\n", inv.Dependent, inv.Target, inv.Reason)
		}
	}

	if len(rep.Unknown) > 0 {
		fmt.Fprintf(out, "\n%s\n", st.warn.Render(fmt.Sprintf("Unverifiable dependencies: %d", len(rep.Unknown))))
		for _, u := range rep.Unknown {
			fmt.Fprintf(out, "  %s requires %s %s, but its installed version is not recorded\n", u.Dependent, u.Target, u.Required)
		}
	}

	cs := actions.Commands(rep, known)

	if len(rep.Missing) > 0 {
		names := missingNames(rep.Missing)
		fmt.Fprintf(out, "\n%s\n", st.bad.Render(fmt.Sprintf("Missing dependencies: %d", len(names))))
		if len(cs.MarketplaceAdds) > 0 {
			fmt.Fprintln(out, "\nFirst, add missing marketplaces:")
			for _, c := range cs.MarketplaceAdds {
				fmt.Fprintf(out, "  %s\n", st.command.Render(c))
			}
		}
		if len(cs.Installs) > 0 {
			fmt.Fprintln(out, "\nThen install missing plugins:")
			for _, c := range cs.Installs {
				fmt.Fprintf(out, "  %s\n", st.command.Render(c))
			}
		}
	}

	if len(rep.Outdated) > 0 {
		fmt.Fprintf(out, "\n%s\n", st.warn.Render(fmt.Sprintf("Outdated dependencies: %d", len(rep.Outdated))))
		for _, o := range rep.Outdated {
			fmt.Fprintf(out, "  %s: installed %s, %s requires %s\n", o.Target, o.Installed, o.Dependent, o.Required)
		}
		if len(cs.Updates) > 0 {
			fmt.Fprintln(out, "\nUpdate them with:")
			for _, c := range cs.Updates {
				fmt.Fprintf(out, "  %s\n", st.command.Render(c))
			}
		}
	}

	if rep.AllSatisfied {
		fmt.Fprintf(out, "\n%s\n", st.good.Render("All dependencies satisfied."))
	}
	return nil
}

// missingNames deduplicates missing entries by target: several dependents
// may miss the same plugin, which still needs installing only once.
func missingNames(missing []resolver.MissingDep) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range missing {
		if !seen[m.Target] {
			seen[m.Target] = true
			names = append(names, m.Target)
		}
	}
	sort.Strings(names)
	return names
}
