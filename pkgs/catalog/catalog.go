// Package catalog derives the analysis parameter set for a company's domain and ad objective.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
	"github.com/DhruvPatel284/supermind-ART/pkgs/shared"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

var ErrEmptyCatalog = errors.New("catalog: no default parameters defined")

type Catalog struct {
	Default    []models.Parameter            `yaml:"default"`
	Objectives map[string][]models.Parameter `yaml:"objectives"`
	Domains    map[string][]models.Parameter `yaml:"domains"`
}

// Parse decodes a YAML catalog and normalises its lookup keys.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	if len(c.Default) == 0 {
		return nil, ErrEmptyCatalog
	}
	c.Objectives = normaliseKeys(c.Objectives)
	c.Domains = normaliseKeys(c.Domains)
	return &c, nil
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a local path or a gs://bucket/object URI.
// An empty source yields the built-in catalog.
func Load(ctx context.Context, source string) (*Catalog, error) {
	if source == "" {
		return Default(), nil
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "gs://") {
		bucket, object, perr := shared.ParseGCSURI(source)
		if perr != nil {
			return nil, perr
		}
		data, err = shared.GetFileFromGCS(ctx, bucket, object)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", source, err)
	}
	return Parse(data)
}

// Parameters returns a fresh parameter set: the objective's parameters (or the
// defaults when the objective is unknown) followed by domain-specific ones.
// Keys already present are not repeated.
func (c *Catalog) Parameters(_ context.Context, domain, objective string) (models.ParameterSet, error) {
	base, ok := c.Objectives[normalise(objective)]
	if !ok {
		base = c.Default
	}

	seen := make(map[string]bool)
	var out models.ParameterSet
	add := func(params []models.Parameter) {
		for _, p := range params {
			if p.Key == "" || seen[p.Key] {
				continue
			}
			if p.Weight <= 0 {
				p.Weight = 1
			}
			seen[p.Key] = true
			out = append(out, p)
		}
	}
	add(base)
	add(c.Domains[normalise(domain)])
	return out, nil
}

func normalise(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normaliseKeys(m map[string][]models.Parameter) map[string][]models.Parameter {
	out := make(map[string][]models.Parameter, len(m))
	for k, v := range m {
		out[normalise(k)] = v
	}
	return out
}
