package provider

import (
	"fmt"
	"path/filepath"

	"github.com/petrarca/gemfile-parser/internal/types"
)

// FakeProvider implements the Provider interface for testing
type FakeProvider struct {
	files   map[string][]types.File
	content map[string]string
}

// NewFakeProvider creates a new fake provider
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		files:   make(map[string][]types.File),
		content: make(map[string]string),
	}
}

// AddFile adds a file to the fake provider
func (p *FakeProvider) AddFile(path, content string) {
	dir := filepath.Dir(path)
	if dir == "." {
		dir = "/"
	}

	if p.files[dir] == nil {
		p.files[dir] = make([]types.File, 0)
	}

	p.files[dir] = append(p.files[dir], types.File{
		Name: filepath.Base(path),
		Path: path,
		Type: "file",
		Size: int64(len(content)),
	})

	p.content[path] = content
}

// AddDir adds a directory to the fake provider
func (p *FakeProvider) AddDir(path string) {
	if p.files[path] == nil {
		p.files[path] = make([]types.File, 0)
	}

	parent := filepath.Dir(path)
	if parent == path {
		return
	}
	if parent == "." {
		parent = "/"
	}
	for _, entry := range p.files[parent] {
		if entry.Path == path {
			return
		}
	}
	p.files[parent] = append(p.files[parent], types.File{
		Name: filepath.Base(path),
		Path: path,
		Type: "dir",
	})
}

// ListDir returns the contents of a directory
func (p *FakeProvider) ListDir(path string) ([]types.File, error) {
	files, exists := p.files[path]
	if !exists {
		return nil, fmt.Errorf("no such directory: %s", path)
	}
	return files, nil
}

// ReadFile reads file content as bytes
func (p *FakeProvider) ReadFile(path string) ([]byte, error) {
	content, exists := p.content[path]
	if !exists {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return []byte(content), nil
}

// IsDir checks if a path is a directory
func (p *FakeProvider) IsDir(path string) (bool, error) {
	_, exists := p.files[path]
	return exists, nil
}

// GetBasePath returns the base path for this provider
func (p *FakeProvider) GetBasePath() string {
	return "/"
}
