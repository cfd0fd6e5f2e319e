package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petrarca/gemfile-parser/internal/discovery"
	"github.com/petrarca/gemfile-parser/internal/gemfile"
	"github.com/petrarca/gemfile-parser/internal/gitinfo"
	"github.com/petrarca/gemfile-parser/internal/provider"
	"github.com/petrarca/gemfile-parser/internal/types"
	"github.com/petrarca/gemfile-parser/internal/util"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory tree for Ruby dependency manifests",
	Long: `Scan walks a directory tree, discovers every Gemfile and *.gemspec
file, parses each one and reports the dependencies per manifest. Vendored
directories (vendor, node_modules, .git, ...) are skipped by default.

Examples:
  gemfile-parser scan
  gemfile-parser scan /path/to/project --format json
  gemfile-parser scan --exclude "spec/**" --exclude "*.lock" .`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&settings.AppName, "app", settings.AppName, "Application name recorded as parent of every dependency")
	scanCmd.Flags().StringSliceVar(&settings.ExcludePatterns, "exclude", settings.ExcludePatterns, "Patterns to exclude (supports glob patterns, can be specified multiple times)")
}

// scanResult wraps a ScanReport for output rendering.
type scanResult struct {
	Report types.ScanReport
}

func (r *scanResult) ToJSON() interface{} { return &r.Report }

func (r *scanResult) ToText(w io.Writer) {
	fmt.Fprintln(w, render(styleHeading, r.Report.Root))
	if git := r.Report.Git; git != nil {
		line := git.Branch + "@" + git.Commit
		if git.IsDirty {
			line += " (dirty)"
		}
		if git.RemoteURL != "" {
			line += "  " + git.RemoteURL
		}
		fmt.Fprintln(w, render(styleDim, line))
	}

	if len(r.Report.Manifests) == 0 {
		fmt.Fprintln(w, render(styleDim, "no manifests found"))
		return
	}

	for _, m := range r.Report.Manifests {
		label := m.Manifest.Path
		if m.Manifest.Language != "" {
			label += "  [" + m.Manifest.Language + "]"
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, render(styleName, label))
		writeDependencySet(w, m.Dependencies, "  ")
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := configureLogging(cmd)

	if err := util.ValidateOutputFormat(settings.Format); err != nil {
		return err
	}

	path := "."
	if len(args) > 0 {
		path = strings.TrimSpace(args[0])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	prov := provider.NewFSProvider(absPath)
	isDir, err := prov.IsDir(".")
	if err != nil {
		return fmt.Errorf("reading %s: %w", absPath, err)
	}
	if !isDir {
		return fmt.Errorf("%s is not a directory (use parse for single files)", absPath)
	}

	walker := discovery.NewWalker(prov, settings.ExcludePatterns, logger)
	manifests, err := walker.Discover(".")
	if err != nil {
		return fmt.Errorf("scanning %s: %w", absPath, err)
	}

	parser := gemfile.NewParser(prov, settings.AppName, logger)
	reports := make([]types.ManifestReport, 0, len(manifests))
	for _, manifest := range manifests {
		set, err := parser.Parse(manifest.Path)
		if err != nil {
			logger.Error("cannot parse manifest, skipping", "path", manifest.Path, "error", err)
			continue
		}
		reports = append(reports, types.ManifestReport{
			Manifest:     manifest,
			Dependencies: set,
		})
	}

	report := types.ScanReport{
		Root:      absPath,
		Git:       gitinfo.Collect(absPath),
		Manifests: reports,
	}
	logger.Info("scan complete", "manifests", len(reports), "dependencies", report.TotalDependencies())

	return OutputToFile(&scanResult{Report: report}, settings.Format, settings.OutputFile)
}
