package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-logr/logr"

	"github.com/bayleafwalker/plugdeps/internal/graph"
	"github.com/bayleafwalker/plugdeps/internal/resolver"
)

// File layout under the plugins directory, as maintained by the host.
const (
	installedFile    = "installed_plugins.json"
	marketplacesFile = "known_marketplaces.json"
	manifestDir      = ".claude-plugin"
	manifestFile     = "plugin.json"
	dependenciesFile = "dependencies.json"
)

// InstalledPlugin is one entry from the host's installed-plugins registry.
type InstalledPlugin struct {
	Name        string
	Marketplace string
	Version     string
	InstallPath string
	Scope       string
	ProjectPath string
}

type installRecord struct {
	InstallPath string `json:"installPath"`
	Version     string `json:"version"`
	Scope       string `json:"scope"`
	ProjectPath string `json:"projectPath"`
}

type installedDoc struct {
	Plugins map[string][]installRecord `json:"plugins"`
}

// LoadInstalled reads the installed-plugins registry under dir.
//
// Registry keys are "name@marketplace"; keys without an "@" are skipped.
// Plugin names are unique in the registry, which the resolver relies on.
// Failure to read or decode the registry is fatal to the whole run: without
// the snapshot there is nothing to resolve.
func LoadInstalled(dir string) (map[string]InstalledPlugin, error) {
	data, err := os.ReadFile(filepath.Join(dir, installedFile))
	if err != nil {
		return nil, fmt.Errorf("registry: read installed plugins: %w", err)
	}
	var doc installedDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("registry: decode installed plugins: %w", err)
	}

	// Key-sorted so a name installed under two marketplaces resolves the
	// same way on every run.
	keys := make([]string, 0, len(doc.Plugins))
	for key := range doc.Plugins {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	plugins := make(map[string]InstalledPlugin, len(doc.Plugins))
	for _, key := range keys {
		name, marketplace, ok := strings.Cut(key, "@")
		if !ok {
			continue
		}
		for _, rec := range doc.Plugins[key] {
			plugins[name] = InstalledPlugin{
				Name:        name,
				Marketplace: marketplace,
				Version:     rec.Version,
				InstallPath: rec.InstallPath,
				Scope:       rec.Scope,
				ProjectPath: rec.ProjectPath,
			}
		}
	}
	return plugins, nil
}

// Marketplaces is the set of locally registered marketplace aliases.
type Marketplaces map[string]json.RawMessage

func (m Marketplaces) Has(alias string) bool {
	_, ok := m[alias]
	return ok
}

// LoadMarketplaces reads the known-marketplaces registry under dir. A
// missing or unreadable file yields an empty set: it only gates which
// marketplace-add suggestions are emitted, so it is never fatal.
func LoadMarketplaces(dir string) Marketplaces {
	data, err := os.ReadFile(filepath.Join(dir, marketplacesFile))
	if err != nil {
		return Marketplaces{}
	}
	var m Marketplaces
	if err := json.Unmarshal(data, &m); err != nil {
		return Marketplaces{}
	}
	return m
}

// Manifest is a plugin's primary descriptor. Dependencies is the legacy
// embedded declaration field, used only when no dedicated dependencies file
// exists.
type Manifest struct {
	Name         string              `json:"name"`
	Version      string              `json:"version"`
	Dependencies map[string]depEntry `json:"dependencies"`
}

// depEntry decodes the two declaration forms a manifest may use: a bare
// marketplace-alias string, or an object with marketplace/source/version.
type depEntry struct {
	alias string
	spec  *graph.DeclarationSpec
}

func (d *depEntry) UnmarshalJSON(data []byte) error {
	var alias string
	if err := json.Unmarshal(data, &alias); err == nil {
		*d = depEntry{alias: alias}
		return nil
	}
	var obj struct {
		Marketplace string `json:"marketplace"`
		Source      string `json:"source"`
		Version     string `json:"version"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*d = depEntry{spec: &graph.DeclarationSpec{
		Marketplace: obj.Marketplace,
		Source:      obj.Source,
		Version:     obj.Version,
	}}
	return nil
}

// LoadDeclarations reads the dependency declarations for one installed
// plugin. A dedicated dependencies.json next to the manifest wins
// exclusively; otherwise the legacy field embedded in plugin.json is used;
// the two are never merged. A plugin with neither, or with an unreadable
// manifest, has zero declarations; the log carries a warning but the run
// continues.
func LoadDeclarations(installPath string, log logr.Logger) []graph.RawDeclaration {
	base := filepath.Join(installPath, manifestDir)

	if data, err := os.ReadFile(filepath.Join(base, dependenciesFile)); err == nil {
		var deps map[string]depEntry
		if err := json.Unmarshal(data, &deps); err != nil {
			log.Error(err, "skipping unreadable dependencies file", "path", filepath.Join(base, dependenciesFile))
			return nil
		}
		return rawDeclarations(deps)
	}

	data, err := os.ReadFile(filepath.Join(base, manifestFile))
	if err != nil {
		return nil
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		log.Error(err, "skipping unreadable manifest", "path", filepath.Join(base, manifestFile))
		return nil
	}
	return rawDeclarations(m.Dependencies)
}

func rawDeclarations(deps map[string]depEntry) []graph.RawDeclaration {
	if len(deps) == 0 {
		return nil
	}
	targets := make([]string, 0, len(deps))
	for t := range deps {
		targets = append(targets, t)
	}
	sort.Strings(targets)

	out := make([]graph.RawDeclaration, 0, len(targets))
	for _, t := range targets {
		d := deps[t]
		out = append(out, graph.RawDeclaration{Target: t, Alias: d.alias, Spec: d.spec})
	}
	return out
}

// Snapshot assembles the resolver input for every plugin installed under
// dir, in deterministic name order.
func Snapshot(dir string, log logr.Logger) (resolver.Input, error) {
	installed, err := LoadInstalled(dir)
	if err != nil {
		return resolver.Input{}, err
	}

	names := make([]string, 0, len(installed))
	for name := range installed {
		names = append(names, name)
	}
	sort.Strings(names)

	in := resolver.Input{Items: make([]graph.Item, 0, len(names))}
	for _, name := range names {
		p := installed[name]
		in.Items = append(in.Items, graph.Item{
			Name:         name,
			Installed:    true,
			Version:      p.Version,
			Marketplace:  p.Marketplace,
			Declarations: LoadDeclarations(p.InstallPath, log),
		})
	}
	return in, nil
}
