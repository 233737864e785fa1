// Package registry maps logical names to filesystem paths under a located
// sync root: the group's fixed shared folders, a member's personal
// folders, and auto-discovered subfolders keyed by normalized identifier.
package registry

import (
	"path/filepath"
	"sort"

	"github.com/oceanbgc/boxpath/internal/core/identifier"
)

// groupFolders are the group's shared folders as they appear on disk.
// Lookup keys are their normalized identifiers.
var groupFolders = []string{
	"Assorted content",
	"Collaborative_projects",
	"Datasets",
	"Group_notes",
	"Lab_Field_Data",
	"Ocean_Reports",
}

// personalFolders are the conventional folders inside a member's personal
// space. These are already identifier-shaped on disk.
var personalFolders = []string{
	"admin",
	"datasets",
	"meeting",
	"mycode",
	"papers",
	"phd",
	"projects",
	"slides",
	"team",
	"utils",
}

// Group provides access to the group's shared folders
type Group struct {
	// Base is the sync root the group folders live under
	Base string

	folders map[string]string
}

// NewGroup builds the group registry under root. Paths are composed, not
// checked for existence; callers probe sync status separately.
func NewGroup(root string) *Group {
	g := &Group{Base: root, folders: make(map[string]string, len(groupFolders))}
	for _, name := range groupFolders {
		g.folders[identifier.Normalize(name)] = filepath.Join(root, name)
	}
	return g
}

// Lookup returns the path for a logical identifier
func (g *Group) Lookup(id string) (string, bool) {
	path, ok := g.folders[id]
	return path, ok
}

// Identifiers returns all logical identifiers, sorted
func (g *Group) Identifiers() []string {
	return sortedKeys(g.folders)
}

// Datasets returns the shared datasets folder
func (g *Group) Datasets() string { return g.folders["datasets"] }

// GroupNotes returns the shared meeting/notes folder
func (g *Group) GroupNotes() string { return g.folders["group_notes"] }

// CollaborativeProjects returns the shared projects folder
func (g *Group) CollaborativeProjects() string { return g.folders["collaborative_projects"] }

// LabFieldData returns the lab and field data folder
func (g *Group) LabFieldData() string { return g.folders["lab_field_data"] }

// Personal provides access to one member's folders inside the group space
type Personal struct {
	// Base is root/<personal folder>
	Base string

	folders map[string]string
}

// NewPersonal builds the personal registry for the named member folder
func NewPersonal(root, personalFolder string) *Personal {
	base := filepath.Join(root, personalFolder)
	p := &Personal{Base: base, folders: make(map[string]string, len(personalFolders))}
	for _, name := range personalFolders {
		p.folders[name] = filepath.Join(base, name)
	}
	return p
}

// Lookup returns the path for a logical identifier
func (p *Personal) Lookup(id string) (string, bool) {
	path, ok := p.folders[id]
	return path, ok
}

// Identifiers returns all logical identifiers, sorted
func (p *Personal) Identifiers() []string {
	return sortedKeys(p.folders)
}

// Datasets returns the personal datasets folder
func (p *Personal) Datasets() string { return p.folders["datasets"] }

// Projects returns the personal projects folder
func (p *Personal) Projects() string { return p.folders["projects"] }

// Papers returns the personal papers folder
func (p *Personal) Papers() string { return p.folders["papers"] }

// Paths composes the full registry for one session: the located root, the
// group folders, and optionally one member's personal folders.
type Paths struct {
	Root     string
	Group    *Group
	Personal *Personal
}

// New builds the session registry. personalFolder may be empty, in which
// case Personal is nil and only group paths are available.
func New(root, personalFolder string) *Paths {
	p := &Paths{Root: root, Group: NewGroup(root)}
	if personalFolder != "" {
		p.Personal = NewPersonal(root, personalFolder)
	}
	return p
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
