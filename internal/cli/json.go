package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bayleafwalker/plugdeps/internal/actions"
	"github.com/bayleafwalker/plugdeps/internal/registry"
	"github.com/bayleafwalker/plugdeps/internal/resolver"
)

// jsonReport is the machine-readable resolution dump. Field order and the
// sorted inputs behind it keep repeated runs byte-identical.
type jsonReport struct {
	Installed           map[string]string   `json:"installed"`
	Tree                map[string][]string `json:"tree"`
	Missing             []string            `json:"missing"`
	Outdated            []jsonOutdated      `json:"outdated"`
	Unknown             []jsonUnknown       `json:"unknown,omitempty"`
	Invalid             []jsonInvalid       `json:"invalid,omitempty"`
	Cycles              []string            `json:"cycles"`
	AllSatisfied        bool                `json:"all_satisfied"`
	MarketplaceCommands []string            `json:"marketplace_commands"`
	InstallCommands     []string            `json:"install_commands"`
	UpdateCommands      []string            `json:"update_commands"`
}

type jsonOutdated struct {
	Dependent string `json:"dependent"`
	Name      string `json:"name"`
	Installed string `json:"installed"`
	Required  string `json:"required"`
}

type jsonUnknown struct {
	Dependent string `json:"dependent"`
	Name      string `json:"name"`
	Required  string `json:"required"`
}

type jsonInvalid struct {
	Dependent string `json:"dependent"`
	Name      string `json:"name"`
	Reason    string `json:"reason"`
}

func newJSONCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Print the resolution report as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := opts.dir()

			in, err := registry.Snapshot(dir, opts.log)
			if err != nil {
				return err
			}
			known := registry.LoadMarketplaces(dir)

			rep, err := resolver.NewDefault().Resolve(context.Background(), in)
			if err != nil {
				return err
			}
			cs := actions.Commands(rep, known)

			doc := jsonReport{
				Installed:           make(map[string]string, len(in.Items)),
				Tree:                rep.Tree,
				Missing:             missingNames(rep.Missing),
				Cycles:              []string{},
				AllSatisfied:        rep.AllSatisfied,
				MarketplaceCommands: cs.MarketplaceAdds,
				InstallCommands:     cs.Installs,
				UpdateCommands:      cs.Updates,
			}
			for _, it := range in.Items {
				doc.Installed[it.Name] = it.Version
			}
			if doc.Missing == nil {
				doc.Missing = []string{}
			}
			if doc.MarketplaceCommands == nil {
				doc.MarketplaceCommands = []string{}
			}
			if doc.InstallCommands == nil {
				doc.InstallCommands = []string{}
			}
			if doc.UpdateCommands == nil {
				doc.UpdateCommands = []string{}
			}
			doc.Outdated = make([]jsonOutdated, 0, len(rep.Outdated))
			for _, o := range rep.Outdated {
				doc.Outdated = append(doc.Outdated, jsonOutdated{Dependent: o.Dependent, Name: o.Target, Installed: o.Installed, Required: o.Required})
			}
			for _, u := range rep.Unknown {
				doc.Unknown = append(doc.Unknown, jsonUnknown{Dependent: u.Dependent, Name: u.Target, Required: u.Required})
			}
			for _, inv := range rep.Invalid {
				doc.Invalid = append(doc.Invalid, jsonInvalid{Dependent: inv.Dependent, Name: inv.Target, Reason: inv.Reason})
			}
			for _, c := range rep.Cycles {
				doc.Cycles = append(doc.Cycles, cycleText(c))
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("cli: encode report: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
