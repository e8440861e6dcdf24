// Package samples provides the preset sample catalog.
//
// A catalog is a YAML file listing samples and the relative paths of their
// texts. The bundled catalog is embedded in the binary; a catalog on disk can
// be used instead via the samples.catalog setting.
package samples

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.SampleCatalog = (*Catalog)(nil)

// CatalogFile is the name of the bundled catalog.
const CatalogFile = "catalog.yaml"

//go:embed data
var bundled embed.FS

// catalogFile is the YAML document layout.
type catalogFile struct {
	Samples []domain.Sample `yaml:"samples"`
}

// Catalog serves samples offered to SameDiff from a catalog file.
// It is read-only after construction.
type Catalog struct {
	fsys    fs.FS
	samples []domain.Sample
	byID    map[string]int
}

// NewBundledCatalog loads the catalog embedded in the binary.
func NewBundledCatalog() (*Catalog, error) {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		return nil, fmt.Errorf("opening bundled samples: %w", err)
	}
	return NewCatalog(sub, CatalogFile)
}

// NewFileCatalog loads a catalog from disk. Sample sources are resolved
// relative to the catalog's directory.
func NewFileCatalog(catalogPath string) (*Catalog, error) {
	dir, name := filepath.Split(catalogPath)
	if dir == "" {
		dir = "."
	}
	return NewCatalog(os.DirFS(dir), name)
}

// NewCatalog parses the named catalog within fsys.
func NewCatalog(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading sample catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing sample catalog %s: %w", name, err)
	}

	c := &Catalog{
		fsys: fsys,
		byID: make(map[string]int),
	}
	base := path.Dir(name)
	for _, s := range file.Samples {
		if !s.SupportsModule(domain.SampleModule) {
			continue
		}
		if s.ID == "" || s.Source == "" {
			return nil, fmt.Errorf("%w: sample entry needs id and source", domain.ErrInvalidInput)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate sample id %q", domain.ErrInvalidInput, s.ID)
		}
		s.Source = path.Join(base, s.Source)
		c.byID[s.ID] = len(c.samples)
		c.samples = append(c.samples, s)
	}
	return c, nil
}

// List returns the samples offered to SameDiff in catalog order.
func (c *Catalog) List(_ context.Context) ([]domain.Sample, error) {
	out := make([]domain.Sample, len(c.samples))
	copy(out, c.samples)
	return out, nil
}

// Get returns a sample and its text.
func (c *Catalog) Get(_ context.Context, id string) (*domain.Sample, string, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, "", fmt.Errorf("sample %q: %w", id, domain.ErrNotFound)
	}
	sample := c.samples[i]

	text, err := fs.ReadFile(c.fsys, sample.Source)
	if err != nil {
		return nil, "", fmt.Errorf("reading sample %q: %w", id, err)
	}
	return &sample, string(text), nil
}
