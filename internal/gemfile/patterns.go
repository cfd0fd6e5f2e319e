package gemfile

import "regexp"

// Field names extracted by the pattern table.
const (
	fieldName        = "name"
	fieldSource      = "source"
	fieldGit         = "git"
	fieldPlatform    = "platform"
	fieldPlatforms   = "platforms"
	fieldPath        = "path"
	fieldGithub      = "github"
	fieldBranch      = "branch"
	fieldAutorequire = "autorequire"
	fieldGroup       = "group"
	fieldGroups      = "groups"
	fieldRequirement = "requirement"
)

// fieldPattern couples a dependency field with the anchored regex that
// extracts it. Submatch 1 is always the field value.
type fieldPattern struct {
	field string
	re    *regexp.Regexp
}

// patternTable is applied in order to every dependency-declaration line.
// All matchers are independent and may match the same line; order is
// significant because a later key-value matcher can overwrite an earlier
// one. Keys accept both the `key:` and `key =>` hash syntaxes.
//
// platforms and groups capture the raw bracketed literal (brackets
// included); path captures the value with its surrounding quotes trimmed.
var patternTable = []fieldPattern{
	{fieldName, regexp.MustCompile(`^gem ['"](.*?)['"]`)},
	{fieldSource, regexp.MustCompile(`^.*source(?::| ?=>) *['"]([a-zA-Z:/.\-\\]+)['"]`)},
	{fieldGit, regexp.MustCompile(`^.*git(?::| ?=>) *([a-zA-Z:/.\-]+)`)},
	{fieldPlatform, regexp.MustCompile(`^.*platform(?::| ?=>) *([a-zA-Z:/.\-]+)`)},
	{fieldPlatforms, regexp.MustCompile(`^.*platforms(?::| ?=>) *(\[.*\]),?`)},
	{fieldPath, regexp.MustCompile(`^.*path(?::| ?=>) *['"]?([^'")]+)['")]`)},
	{fieldGithub, regexp.MustCompile(`^.*github(?::| ?=>) *['"]([a-zA-Z0-9:/.\-]+)['"]`)},
	{fieldBranch, regexp.MustCompile(`^.*branch(?::| ?=>) *([a-zA-Z:/.\-]+)`)},
	{fieldAutorequire, regexp.MustCompile(`^.*require(?::| ?=>) *([a-zA-Z:/.\-]+)`)},
	{fieldGroup, regexp.MustCompile(`^.*group(?::| ?=>) *([a-zA-Z:/.\-]+)`)},
	{fieldGroups, regexp.MustCompile(`^.*groups(?::| ?=>) *(\[.*\]),`)},
	{fieldRequirement, regexp.MustCompile(`^gem ['"].*?['"](([><=~\d]+ *[0-9.\w]+[ ,]*)+)`)},
}

// Block and directive patterns used by the line classifier.
var (
	// group :test do  /  group :development, :test do
	groupBlockRe = regexp.MustCompile(`^.*group ?(?::| ?=>) *(.*?) do`)

	// spec.add_development_dependency "rspec", "~> 3.0"
	devDepRe = regexp.MustCompile(`^.*add_development_dependency (.*)`)

	// spec.add_runtime_dependency "rails"
	runDepRe = regexp.MustCompile(`^.*add_runtime_dependency (.*)`)
)
