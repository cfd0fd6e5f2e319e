package gemfile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petrarca/gemfile-parser/internal/types"
)

func newTestParser(appName string) *Parser {
	return NewParser(nil, appName, nil)
}

func TestBuildDependency_NameAndRequirement(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantReq  []string
	}{
		{"double quotes", `gem "foo", ">= 1.0"`, "foo", []string{">= 1.0"}},
		{"single quotes", `gem 'rails', '~> 6.1.4'`, "rails", []string{"~> 6.1.4"}},
		{"no version", `gem 'devise'`, "devise", nil},
		{"hyphenated name", `gem 'sass-rails', '~> 6.0'`, "sass-rails", []string{"~> 6.0"}},
		{"underscored name", `gem 'factory_bot_rails'`, "factory_bot_rails", nil},
		{"two clauses in one string", `gem "foo", ">= 1.0, < 2.0"`, "foo", []string{">= 1.0, < 2.0"}},
		{"separately quoted clauses keep the first", `gem 'pg', '~> 1.0', '>= 1.0.0'`, "pg", []string{"~> 1.0"}},
		{"prerelease version", `gem 'selenium-webdriver', '>= 4.0.0.rc1'`, "selenium-webdriver", []string{">= 4.0.0.rc1"}},
	}

	parser := newTestParser("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep := parser.buildDependency(tt.line)
			assert.Equal(t, tt.wantName, dep.Name)
			assert.Equal(t, tt.wantReq, dep.Requirement)
		})
	}
}

func TestBuildDependency_KeyValueFields(t *testing.T) {
	parser := newTestParser("")

	t.Run("path with quotes trimmed", func(t *testing.T) {
		dep := parser.buildDependency(`gem "bar", path: "../bar"`)
		assert.Equal(t, "bar", dep.Name)
		assert.Equal(t, "../bar", dep.Path)
		assert.Empty(t, dep.Requirement)
	})

	t.Run("autorequire", func(t *testing.T) {
		dep := parser.buildDependency(`gem 'bootsnap', '>= 1.4.4', require: false`)
		assert.Equal(t, "bootsnap", dep.Name)
		assert.Equal(t, "false", dep.Autorequire)
		assert.Equal(t, []string{">= 1.4.4"}, dep.Requirement)
	})

	t.Run("inline group keeps the symbol colon", func(t *testing.T) {
		dep := parser.buildDependency(`gem 'qux', group: :development`)
		assert.Equal(t, ":development", dep.Group)
	})

	t.Run("platforms captured as raw literal", func(t *testing.T) {
		dep := parser.buildDependency(`gem 'byebug', platforms: [:mri, :mingw, :x64_mingw]`)
		assert.Equal(t, "[:mri, :mingw, :x64_mingw]", dep.Platforms)
		assert.Empty(t, dep.Platform, "singular platform must not match a platforms list")
	})

	t.Run("single platform", func(t *testing.T) {
		dep := parser.buildDependency(`gem 'wdm', platform: mswin`)
		assert.Equal(t, "mswin", dep.Platform)
	})

	t.Run("groups list is independent of group", func(t *testing.T) {
		dep := parser.buildDependency(`gem 'pry', groups: [:development, :test], require: false`)
		assert.Equal(t, "[:development, :test]", dep.Groups)
		assert.Equal(t, types.GroupRuntime, dep.Group, "groups list must not override the current group")
	})

	t.Run("github and branch", func(t *testing.T) {
		dep := parser.buildDependency(`gem 'rails', github: 'rails/rails', branch: main`)
		assert.Equal(t, "rails/rails", dep.Github)
		assert.Equal(t, "main", dep.Branch)
		assert.Empty(t, dep.Git)
	})

	t.Run("source url", func(t *testing.T) {
		dep := parser.buildDependency(`gem 'internal', source: 'https://gems.internal.example'`)
		assert.Equal(t, "https://gems.internal.example", dep.Source)
	})

	t.Run("unquoted git url", func(t *testing.T) {
		dep := parser.buildDependency(`gem 'widget', git: https://example.com/widget`)
		assert.Equal(t, "https://example.com/widget", dep.Git)
	})

	t.Run("hash rocket syntax", func(t *testing.T) {
		dep := parser.buildDependency(`gem "bar", :path => "../bar"`)
		assert.Equal(t, "../bar", dep.Path)
	})
}

func TestBuildDependency_AlwaysSucceeds(t *testing.T) {
	parser := newTestParser("myapp")

	dep := parser.buildDependency(`gem !!!`)
	assert.Empty(t, dep.Name, "unparseable line leaves the name empty")
	assert.Equal(t, types.GroupRuntime, dep.Group)
	assert.Equal(t, []string{"myapp"}, dep.Parent)
}

func TestBuildDependency_Parent(t *testing.T) {
	withApp := newTestParser("myapp").buildDependency(`gem 'rake'`)
	assert.Equal(t, []string{"myapp"}, withApp.Parent)

	withoutApp := newTestParser("").buildDependency(`gem 'rake'`)
	assert.Empty(t, withoutApp.Parent)
}
