// Package project reads the bytes.yml manifest of a Vira project and lists
// its source files.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file name of a project manifest
const ManifestName = "bytes.yml"

// SourceExt is the extension of Vira source files
const SourceExt = ".vira"

// DefaultSourceDir is used when the manifest does not name one
const DefaultSourceDir = "cmd"

// Errors
var (
	ErrManifestNotFound = errors.New("bytes.yml not found")
	ErrMissingName      = errors.New("manifest has no name")
	ErrMissingVersion   = errors.New("manifest has no version")
)

// Manifest is the content of bytes.yml
type Manifest struct {
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Author       string            `yaml:"author,omitempty"`
	SourceDir    string            `yaml:"<>,omitempty"`
	Dependencies map[string]string `yaml:"dependencies,omitempty"`

	// Dir is the directory holding the manifest
	Dir string `yaml:"-"`
}

// FindManifest looks for bytes.yml in dir and its parents
func FindManifest(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		path := filepath.Join(dir, ManifestName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrManifestNotFound
		}
		dir = parent
	}
}

// Load reads and decodes the manifest at path
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	m.Dir = filepath.Dir(path)
	if m.SourceDir == "" {
		m.SourceDir = DefaultSourceDir
	}

	return &m, nil
}

// Validate checks the required keys
func (m *Manifest) Validate() error {
	var errs []error

	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, ErrMissingName)
	}
	if strings.TrimSpace(m.Version) == "" {
		errs = append(errs, ErrMissingVersion)
	}

	return errors.Join(errs...)
}

// SourceRoot returns the absolute source directory
func (m *Manifest) SourceRoot() string {
	if filepath.IsAbs(m.SourceDir) {
		return m.SourceDir
	}
	return filepath.Join(m.Dir, m.SourceDir)
}

// SourceFiles lists the .vira files under the source directory, sorted
func (m *Manifest) SourceFiles() ([]string, error) {
	root := m.SourceRoot()

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == SourceExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sources in %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
