package actions

import (
	"fmt"

	"github.com/bayleafwalker/plugdeps/internal/registry"
	"github.com/bayleafwalker/plugdeps/internal/resolver"
)

// CommandSet is the literal slash-command text derived from a report. The
// caller decides whether to display or execute it; nothing here runs
// anything.
type CommandSet struct {
	// MarketplaceAdds must run before Installs: they register the source
	// repositories that the install commands pull from.
	MarketplaceAdds []string
	Installs        []string
	Updates         []string
}

// Commands translates a report into actionable command text.
//
// A marketplace-add is emitted only for a missing dependency whose declared
// alias is not already registered and whose declaration names a source repo.
// All lists are deduplicated and follow the report's ordering.
func Commands(rep resolver.Report, known registry.Marketplaces) CommandSet {
	var cs CommandSet
	seenAdd := make(map[string]bool)
	seenInstall := make(map[string]bool)
	seenUpdate := make(map[string]bool)

	for _, m := range rep.Missing {
		if m.Marketplace != "" && m.Source != "" && !known.Has(m.Marketplace) {
			cmd := fmt.Sprintf("/plugin marketplace add %s", m.Source)
			if !seenAdd[cmd] {
				seenAdd[cmd] = true
				cs.MarketplaceAdds = append(cs.MarketplaceAdds, cmd)
			}
		}
		if m.Marketplace != "" {
			cmd := fmt.Sprintf("/plugin install %s@%s", m.Target, m.Marketplace)
			if !seenInstall[cmd] {
				seenInstall[cmd] = true
				cs.Installs = append(cs.Installs, cmd)
			}
		}
	}

	for _, o := range rep.Outdated {
		marketplace := o.Marketplace
		if marketplace == "" {
			continue
		}
		cmd := fmt.Sprintf("/plugin update %s@%s", o.Target, marketplace)
		if !seenUpdate[cmd] {
			seenUpdate[cmd] = true
			cs.Updates = append(cs.Updates, cmd)
		}
	}

	return cs
}
