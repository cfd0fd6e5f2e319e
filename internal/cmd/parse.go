package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petrarca/gemfile-parser/internal/gemfile"
	"github.com/petrarca/gemfile-parser/internal/provider"
	"github.com/petrarca/gemfile-parser/internal/types"
	"github.com/petrarca/gemfile-parser/internal/util"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a single Gemfile or gemspec file",
	Long: `Parse extracts dependency records from one Ruby dependency manifest.
Files whose name ends in "gemspec" are parsed with the gemspec dialect,
everything else as a Gemfile. A "gemspec" directive inside a Gemfile pulls
the sibling gemspec file into the same result.

Examples:
  gemfile-parser parse Gemfile
  gemfile-parser parse my_library.gemspec --format json
  gemfile-parser parse Gemfile --app myapp -o deps.json --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&settings.AppName, "app", settings.AppName, "Application name recorded as parent of every dependency")
}

// parseResult is the output of the parse command.
type parseResult struct {
	File         string              `json:"file" yaml:"file"`
	Dependencies types.DependencySet `json:"dependencies" yaml:"dependencies"`
}

func (r *parseResult) ToJSON() interface{} { return r }

func (r *parseResult) ToText(w io.Writer) {
	fmt.Fprintln(w, render(styleHeading, r.File))
	writeDependencySet(w, r.Dependencies, "")
}

func runParse(cmd *cobra.Command, args []string) error {
	logger := configureLogging(cmd)

	if err := util.ValidateOutputFormat(settings.Format); err != nil {
		return err
	}

	absPath, err := filepath.Abs(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", args[0], err)
	}

	parser := gemfile.NewParser(provider.NewFSProvider("/"), settings.AppName, logger)
	set, err := parser.Parse(absPath)
	if err != nil {
		return err
	}

	return OutputToFile(&parseResult{File: absPath, Dependencies: set}, settings.Format, settings.OutputFile)
}

// writeDependencySet renders the non-empty groups of a set, predefined
// groups first and dynamically created ones after, in name order.
func writeDependencySet(w io.Writer, set types.DependencySet, indent string) {
	if set.Count() == 0 {
		fmt.Fprintln(w, indent+render(styleDim, "no dependencies found"))
		return
	}

	for _, group := range orderedGroups(set) {
		deps := set[group]
		if len(deps) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s%s %s\n", indent, render(styleGroup, group),
			render(styleDim, fmt.Sprintf("(%d)", len(deps))))
		for _, dep := range deps {
			writeDependency(w, dep, indent+"  ")
		}
	}
}

func writeDependency(w io.Writer, dep types.Dependency, indent string) {
	name := dep.Name
	if name == "" {
		name = "(unnamed)"
	}

	extras := make([]string, 0, 4)
	if len(dep.Requirement) > 0 {
		extras = append(extras, strings.Join(dep.Requirement, ", "))
	}
	if dep.Path != "" {
		extras = append(extras, "path: "+dep.Path)
	}
	if dep.Git != "" {
		extras = append(extras, "git: "+dep.Git)
	}
	if dep.Github != "" {
		extras = append(extras, "github: "+dep.Github)
	}
	if dep.Platform != "" {
		extras = append(extras, "platform: "+dep.Platform)
	}
	if dep.Platforms != "" {
		extras = append(extras, "platforms: "+dep.Platforms)
	}
	if dep.Autorequire != "" {
		extras = append(extras, "require: "+dep.Autorequire)
	}

	line := indent + render(styleName, name)
	if len(extras) > 0 {
		line += " " + render(styleDim, strings.Join(extras, "  "))
	}
	fmt.Fprintln(w, line)
}

// orderedGroups returns all group keys: the predefined ones in their fixed
// order, then any dynamic groups sorted by name.
func orderedGroups(set types.DependencySet) []string {
	predefined := make(map[string]bool, len(types.PredefinedGroups))
	ordered := make([]string, 0, len(set))
	for _, group := range types.PredefinedGroups {
		predefined[group] = true
		ordered = append(ordered, group)
	}

	var dynamic []string
	for group := range set {
		if !predefined[group] {
			dynamic = append(dynamic, group)
		}
	}
	sort.Strings(dynamic)
	return append(ordered, dynamic...)
}
