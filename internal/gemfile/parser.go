// Package gemfile extracts structured dependency information from Ruby
// dependency manifests (Gemfiles and gemspec files).
//
// The input is treated as line-oriented text matched against a fixed table
// of patterns, not as Ruby source: expressions are never evaluated and
// variables are never resolved. Each recognized dependency line produces one
// record, filed under the declaration group that is current at that point in
// the file.
package gemfile

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/petrarca/gemfile-parser/internal/types"
)

// gemspecGlob matches sibling gemspec files during `gemspec` directive
// resolution.
const gemspecGlob = "*.gemspec"

// Parser parses one manifest file per Parse call. The current declaration
// group is held per instance, so concurrent parses need separate parsers.
type Parser struct {
	provider types.Provider
	logger   *slog.Logger
	appName  string
	group    string
}

// NewParser creates a parser reading through the given provider. appName, if
// non-empty, becomes the single Parent entry of every extracted dependency.
func NewParser(provider types.Provider, appName string, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		provider: provider,
		logger:   logger,
		appName:  appName,
		group:    types.GroupRuntime,
	}
}

// Parse reads the file at path and returns the categorized dependency
// collection. Files whose path ends in "gemspec" are parsed with the gemspec
// dialect, everything else as a Gemfile. The five predefined group keys are
// always present in the result, even for an empty input file.
func (p *Parser) Parse(path string) (types.DependencySet, error) {
	p.group = types.GroupRuntime
	set := types.NewDependencySet()

	var err error
	if strings.HasSuffix(path, "gemspec") {
		err = p.parseGemspec(path, set)
	} else {
		err = p.parseGemfile(path, set)
	}
	if err != nil {
		return nil, err
	}
	return set, nil
}

// parseGemfile classifies each preprocessed line of a Gemfile. Lines that
// match no classification are skipped silently.
func (p *Parser) parseGemfile(path string, set types.DependencySet) error {
	lines, err := p.readLines(path)
	if err != nil {
		return err
	}

	for _, raw := range lines {
		line := Preprocess(raw)
		switch {
		case line == "" || strings.HasPrefix(line, "source"):
			// No state change.
		case strings.HasPrefix(line, "group"):
			if m := groupBlockRe.FindStringSubmatch(line); m != nil {
				p.group = m[1]
			}
		case strings.HasPrefix(line, "end"):
			p.group = types.GroupRuntime
		case strings.HasPrefix(line, "gemspec"):
			if err := p.includeGemspec(path, set); err != nil {
				return err
			}
		case strings.HasPrefix(line, "gem "):
			set.Add(p.buildDependency(line))
		}
	}
	return nil
}

// parseGemspec handles the gemspec dialect: only add_development_dependency
// and add_runtime_dependency directives produce records, filed under
// "development" and "runtime" respectively.
func (p *Parser) parseGemspec(path string, set types.DependencySet) error {
	lines, err := p.readLines(path)
	if err != nil {
		return err
	}

	for _, raw := range lines {
		line := Preprocess(raw)

		var rest string
		if m := devDepRe.FindStringSubmatch(line); m != nil {
			p.group = types.GroupDevelopment
			rest = m[1]
		} else if m := runDepRe.FindStringSubmatch(line); m != nil {
			p.group = types.GroupRuntime
			rest = m[1]
		} else {
			continue
		}

		// The remainder is the argument list of the add_*_dependency
		// call. Prefixing the gem keyword lets the pattern table read
		// it as a plain dependency declaration.
		set.Add(p.buildDependency("gem " + rest))
	}
	return nil
}

// includeGemspec resolves a `gemspec` directive by searching the Gemfile's
// directory for sibling gemspec files. Zero or multiple candidates emit a
// diagnostic and skip the directive; exactly one candidate is parsed into
// the same collection.
//
// The current group deliberately carries over into, and out of, the included
// gemspec parse: Gemfile lines after the directive inherit whatever group
// the gemspec left behind. This mirrors the historical behavior consumers
// depend on.
func (p *Parser) includeGemspec(gemfilePath string, set types.DependencySet) error {
	dir := filepath.Dir(gemfilePath)
	entries, err := p.provider.ListDir(dir)
	if err != nil {
		p.logger.Warn("cannot list directory for gemspec directive", "dir", dir, "error", err)
		return nil
	}

	var candidates []string
	for _, entry := range entries {
		if entry.Type != "file" {
			continue
		}
		if ok, _ := doublestar.Match(gemspecGlob, entry.Name); ok {
			candidates = append(candidates, entry.Name)
		}
	}

	switch len(candidates) {
	case 0:
		p.logger.Warn("no gemspec file found, ignoring gemspec directive", "dir", dir)
		return nil
	case 1:
		return p.parseGemspec(filepath.Join(dir, candidates[0]), set)
	default:
		p.logger.Warn("multiple gemspec files found, ignoring gemspec directive",
			"dir", dir, "count", len(candidates))
		return nil
	}
}

// buildDependency applies the whole pattern table to one dependency line.
// Every matcher is attempted in table order; requirement matches append
// while any other match sets its field. Always succeeds: a line matching
// nothing still yields a record carrying the current group and app name.
func (p *Parser) buildDependency(line string) types.Dependency {
	dep := types.Dependency{Group: p.group}
	if p.appName != "" {
		dep.Parent = append(dep.Parent, p.appName)
	}

	for _, fp := range patternTable {
		m := fp.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value := m[1]

		switch fp.field {
		case fieldName:
			dep.Name = value
		case fieldSource:
			dep.Source = value
		case fieldGit:
			dep.Git = value
		case fieldPlatform:
			dep.Platform = value
		case fieldPlatforms:
			dep.Platforms = value
		case fieldPath:
			dep.Path = value
		case fieldGithub:
			dep.Github = value
		case fieldBranch:
			dep.Branch = value
		case fieldAutorequire:
			dep.Autorequire = value
		case fieldGroup:
			dep.Group = value
		case fieldGroups:
			dep.Groups = value
		case fieldRequirement:
			dep.Requirement = append(dep.Requirement, value)
		}
	}
	return dep
}

func (p *Parser) readLines(path string) ([]string, error) {
	content, err := p.provider.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.Split(string(content), "\n"), nil
}
