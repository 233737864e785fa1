// Package project scaffolds and inspects standardized research-project
// directory trees (data/raw|interim|processed, src, plots, notebooks, ...)
// under a path registry location.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/oceanbgc/boxpath/internal/domain"
	"github.com/oceanbgc/boxpath/internal/registry"
)

// Template selects how much of the standard structure to create
type Template string

const (
	// TemplateFull creates the complete data-science structure
	TemplateFull Template = "full"

	// TemplateSimple creates data, src, plots, and notebooks
	TemplateSimple Template = "simple"

	// TemplateMinimal creates just data and src
	TemplateMinimal Template = "minimal"
)

// ParseTemplate validates a template name
func ParseTemplate(s string) (Template, error) {
	switch Template(s) {
	case TemplateFull, TemplateSimple, TemplateMinimal:
		return Template(s), nil
	case "":
		return TemplateFull, nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnknownTemplate, s)
}

// Project addresses the standard locations inside one project directory.
// Paths are composed eagerly; nothing is created until CreateStructure.
type Project struct {
	// Base is the project directory
	Base string
}

// New wraps an existing or future project directory
func New(base string) *Project {
	return &Project{Base: filepath.Clean(base)}
}

// Name returns the project's directory name
func (p *Project) Name() string { return filepath.Base(p.Base) }

// Data locations
func (p *Project) DataRaw() string       { return filepath.Join(p.Base, "data", "raw") }
func (p *Project) DataInterim() string   { return filepath.Join(p.Base, "data", "interim") }
func (p *Project) DataProcessed() string { return filepath.Join(p.Base, "data", "processed") }

// Source locations
func (p *Project) Src() string              { return filepath.Join(p.Base, "src") }
func (p *Project) SrcData() string          { return filepath.Join(p.Base, "src", "data") }
func (p *Project) SrcFeatures() string      { return filepath.Join(p.Base, "src", "features") }
func (p *Project) SrcModels() string        { return filepath.Join(p.Base, "src", "models") }
func (p *Project) SrcVisualization() string { return filepath.Join(p.Base, "src", "visualization") }

// Plot locations
func (p *Project) Plots() string            { return filepath.Join(p.Base, "plots") }
func (p *Project) PlotsExploratory() string { return filepath.Join(p.Base, "plots", "exploratory") }
func (p *Project) PlotsPublication() string { return filepath.Join(p.Base, "plots", "publication") }

// Other locations
func (p *Project) Notebooks() string { return filepath.Join(p.Base, "notebooks") }
func (p *Project) Docs() string      { return filepath.Join(p.Base, "docs") }
func (p *Project) Reports() string   { return filepath.Join(p.Base, "reports") }
func (p *Project) Results() string   { return filepath.Join(p.Base, "results") }
func (p *Project) Config() string    { return filepath.Join(p.Base, "config") }

// Seed files
func (p *Project) Readme() string    { return filepath.Join(p.Base, "README.md") }
func (p *Project) Gitignore() string { return filepath.Join(p.Base, ".gitignore") }

// templateDirs returns the directories a template creates
func (p *Project) templateDirs(tmpl Template) []string {
	switch tmpl {
	case TemplateMinimal:
		return []string{p.DataRaw(), p.DataProcessed(), p.Src()}
	case TemplateSimple:
		return []string{
			p.DataRaw(), p.DataInterim(), p.DataProcessed(),
			p.Src(), p.Plots(), p.Notebooks(),
		}
	default: // full
		return []string{
			p.DataRaw(), p.DataInterim(), p.DataProcessed(),
			p.SrcData(), p.SrcFeatures(), p.SrcModels(), p.SrcVisualization(),
			p.PlotsExploratory(), p.PlotsPublication(),
			p.Notebooks(), p.Docs(), p.Reports(), p.Results(), p.Config(),
		}
	}
}

// CreateStructure creates the template's directory tree and seeds
// README.md and .gitignore when they do not exist yet. Existing content is
// never overwritten, so converting a lived-in folder is safe.
func (p *Project) CreateStructure(tmpl Template) error {
	for _, dir := range p.templateDirs(tmpl) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	if err := seedFile(p.Readme(), readmeTemplate(p.Name())); err != nil {
		return err
	}
	if err := seedFile(p.Gitignore(), gitignoreTemplate); err != nil {
		return err
	}
	return nil
}

// Create scaffolds a new project directory under parent
func Create(parent, name string, tmpl Template) (*Project, error) {
	p := New(filepath.Join(parent, name))
	if err := p.CreateStructure(tmpl); err != nil {
		return nil, err
	}
	return p, nil
}

// Convert treats an existing folder as a project: missing standard
// directories are created per the template, and when autoDiscover is set,
// pre-existing subfolders are returned as an identifier-keyed map with
// the standard locations taking precedence over discovered ones.
func Convert(path string, tmpl Template, autoDiscover bool) (*Project, map[string]string, error) {
	p := New(path)
	if err := p.CreateStructure(tmpl); err != nil {
		return nil, nil, err
	}

	if !autoDiscover {
		return p, nil, nil
	}

	discovered, err := registry.Discover(p.Base, 1)
	if err != nil {
		return nil, nil, err
	}

	explicit := map[string]string{
		"data":      filepath.Join(p.Base, "data"),
		"src":       p.Src(),
		"plots":     p.Plots(),
		"notebooks": p.Notebooks(),
		"docs":      p.Docs(),
		"reports":   p.Reports(),
		"results":   p.Results(),
		"config":    p.Config(),
	}
	return p, registry.Merge(explicit, discovered), nil
}

// ListDatasets lists files in the project's data folders. location is
// "raw", "interim", "processed", or "all"; pattern is a glob applied to
// file names. Results are sorted per location.
func (p *Project) ListDatasets(location, pattern string) (map[string][]string, error) {
	if pattern == "" {
		pattern = "*"
	}

	dirs := map[string]string{
		"raw":       p.DataRaw(),
		"interim":   p.DataInterim(),
		"processed": p.DataProcessed(),
	}

	selected := make(map[string]string)
	if location == "all" || location == "" {
		selected = dirs
	} else {
		dir, ok := dirs[location]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownLocation, location)
		}
		selected[location] = dir
	}

	results := make(map[string][]string, len(selected))
	for loc, dir := range selected {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", loc, err)
		}
		sort.Strings(matches)
		results[loc] = matches
	}
	return results, nil
}

// seedFile writes content to path only when the file does not exist
func seedFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
