// Package library persists user-imported tabulated materials on disk.
// Each material is one yaml document in the store directory, readable
// by the source package.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/optmat/optmat/internal/models"
	"github.com/optmat/optmat/internal/optics"
	"github.com/optmat/optmat/internal/source"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// DefaultDir returns the per-user material directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".optmat"
	}
	return filepath.Join(home, ".optmat", "materials")
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) path(name string) string {
	return filepath.Join(s.baseDir, name+".yaml")
}

// Save writes the samples as a yaml material document. The samples are
// validated by building a tabulated model before anything hits disk.
func (s *Store) Save(name string, unit optics.Unit, samples []source.Sample) error {
	if name == "" {
		return fmt.Errorf("library: material name is empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("library: invalid material name %q", name)
	}

	if _, err := source.FromPairs(samples, unit); err != nil {
		return err
	}

	doc := source.Document{
		Material: name,
		Unit:     string(unit),
		Samples:  make([][]float64, 0, len(samples)),
	}
	for _, smp := range samples {
		doc.Samples = append(doc.Samples, []float64{smp.Wavelength, smp.Index})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}

	if err := s.Init(); err != nil {
		return err
	}
	return os.WriteFile(s.path(name), data, 0644)
}

// Load reads a stored material back into a tabulated model.
func (s *Store) Load(name string) (*models.Tabulated, error) {
	_, tab, err := source.FromYAMLFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", optics.ErrUnknownMaterial, name)
		}
		return nil, err
	}
	return tab, nil
}

// List returns the stored material names, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".yaml"))
	}

	sort.Strings(names)
	return names, nil
}
