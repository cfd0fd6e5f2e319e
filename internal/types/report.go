package types

// ManifestKind identifies the dialect a manifest file is parsed with.
type ManifestKind string

const (
	ManifestGemfile ManifestKind = "gemfile"
	ManifestGemspec ManifestKind = "gemspec"
)

// Manifest is one dependency-manifest file discovered during a scan.
type Manifest struct {
	Path     string       `json:"path" yaml:"path"`
	Kind     ManifestKind `json:"kind" yaml:"kind"`
	Language string       `json:"language,omitempty" yaml:"language,omitempty"`
}

// ManifestReport couples a discovered manifest with its parse result.
type ManifestReport struct {
	Manifest     Manifest      `json:"manifest" yaml:"manifest"`
	Dependencies DependencySet `json:"dependencies" yaml:"dependencies"`
}

// ScanReport is the aggregate result of scanning a directory tree.
type ScanReport struct {
	Root      string           `json:"root" yaml:"root"`
	Git       *GitInfo         `json:"git,omitempty" yaml:"git,omitempty"`
	Manifests []ManifestReport `json:"manifests" yaml:"manifests"`
}

// GitInfo contains git repository information for a scanned root.
type GitInfo struct {
	Branch    string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Commit    string `json:"commit,omitempty" yaml:"commit,omitempty"`
	IsDirty   bool   `json:"is_dirty" yaml:"is_dirty"`
	RemoteURL string `json:"remote_url,omitempty" yaml:"remote_url,omitempty"`
}

// TotalDependencies sums dependency counts across all manifests.
func (r *ScanReport) TotalDependencies() int {
	total := 0
	for _, m := range r.Manifests {
		total += m.Dependencies.Count()
	}
	return total
}
