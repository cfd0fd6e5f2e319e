package types

import (
	"fmt"
	"strings"
)

// Predefined dependency groups. Every parse result carries these keys even
// when they are empty; custom group blocks add keys on demand.
const (
	GroupDevelopment = "development"
	GroupRuntime     = "runtime"
	GroupTest        = "test"
	GroupProduction  = "production"
	GroupMetrics     = "metrics"
)

// PredefinedGroups lists the groups every DependencySet starts with.
var PredefinedGroups = []string{
	GroupDevelopment,
	GroupRuntime,
	GroupTest,
	GroupProduction,
	GroupMetrics,
}

// Dependency is one gem declaration extracted from a Gemfile or gemspec.
// Fields that the line does not carry stay at their zero value; a line with
// no recognizable attributes still produces a record with Group and Parent
// set. Platforms and Groups hold the raw bracketed literal from the source
// text (e.g. "[:mri, :mingw]"), not a parsed list.
type Dependency struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Requirement []string `json:"requirement,omitempty" yaml:"requirement,omitempty"`
	Autorequire string   `json:"autorequire,omitempty" yaml:"autorequire,omitempty"`
	Source      string   `json:"source,omitempty" yaml:"source,omitempty"`
	Git         string   `json:"git,omitempty" yaml:"git,omitempty"`
	Path        string   `json:"path,omitempty" yaml:"path,omitempty"`
	Github      string   `json:"github,omitempty" yaml:"github,omitempty"`
	Branch      string   `json:"branch,omitempty" yaml:"branch,omitempty"`
	Parent      []string `json:"parent,omitempty" yaml:"parent,omitempty"`
	Group       string   `json:"group,omitempty" yaml:"group,omitempty"`
	Platform    string   `json:"platform,omitempty" yaml:"platform,omitempty"`
	Platforms   string   `json:"platforms,omitempty" yaml:"platforms,omitempty"`
	Groups      string   `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// String returns a compact representation with only the populated fields.
func (d Dependency) String() string {
	parts := make([]string, 0, 4)
	if d.Name != "" {
		parts = append(parts, "name:"+d.Name)
	}
	if len(d.Requirement) > 0 {
		parts = append(parts, "requirement:"+strings.Join(d.Requirement, " "))
	}
	if d.Group != "" {
		parts = append(parts, "group:"+d.Group)
	}
	if d.Path != "" {
		parts = append(parts, "path:"+d.Path)
	}
	if d.Git != "" {
		parts = append(parts, "git:"+d.Git)
	}
	return fmt.Sprintf("Dependency{%s}", strings.Join(parts, ", "))
}

// DependencySet maps a group name to the dependencies declared in it, in
// file-line order.
type DependencySet map[string][]Dependency

// NewDependencySet creates a set with all predefined groups present.
func NewDependencySet() DependencySet {
	set := make(DependencySet, len(PredefinedGroups))
	for _, group := range PredefinedGroups {
		set[group] = make([]Dependency, 0)
	}
	return set
}

// Add files a dependency under its Group, creating the key if the group was
// declared dynamically in the source file.
func (s DependencySet) Add(dep Dependency) {
	s[dep.Group] = append(s[dep.Group], dep)
}

// Count returns the total number of dependencies across all groups.
func (s DependencySet) Count() int {
	total := 0
	for _, deps := range s {
		total += len(deps)
	}
	return total
}

// GroupNames returns the group keys that hold at least one dependency.
func (s DependencySet) GroupNames() []string {
	names := make([]string, 0, len(s))
	for name, deps := range s {
		if len(deps) > 0 {
			names = append(names, name)
		}
	}
	return names
}
