// Package advice maps classification labels to style recommendations.
package advice

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/kozaktomas/beauty-advisor/internal/classify"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Undertone families used as table keys.
const (
	FamilyWarm    = "warm"
	FamilyCool    = "cool"
	FamilyNeutral = "neutral"
)

var families = []string{FamilyWarm, FamilyCool, FamilyNeutral}

// noseKeys are the nose shapes that get a contouring tip.
var noseKeys = []string{"wide", "narrow", "long", "short", "thin"}

// Catalog holds every advice table.
type Catalog struct {
	Contouring ContouringTable     `yaml:"contouring" json:"contouring"`
	Highlights HighlightTable      `yaml:"highlights" json:"highlights"`
	Haircuts   map[string][]string `yaml:"haircuts" json:"haircuts"`
	Eyewear    map[string][]string `yaml:"eyewear" json:"eyewear"`
	Earrings   map[string][]string `yaml:"earrings" json:"earrings"`
	Makeup     map[string][]string `yaml:"makeup" json:"makeup"`
	Metals     map[string][]string `yaml:"metals" json:"metals"`
}

type ContouringTable struct {
	Face  map[string][]string `yaml:"face" json:"face"`
	Nose  map[string]string   `yaml:"nose" json:"nose"`
	Shade map[string]string   `yaml:"shade" json:"shade"`
}

type HighlightTable struct {
	Palettes    map[string][]string `yaml:"palettes" json:"palettes"`
	Framing     []string            `yaml:"framing" json:"framing"`
	Lengthening []string            `yaml:"lengthening" json:"lengthening"`
}

// ParseCatalog parses and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(catalogYAML)
	if err != nil {
		// Embedded file, so this only fails on a broken build.
		panic("failed to load embedded catalog.yaml: " + err.Error())
	}
	return c
}

func (c *Catalog) validate() error {
	var errs []error

	faceTables := map[string]map[string][]string{
		"contouring.face": c.Contouring.Face,
		"haircuts":        c.Haircuts,
		"eyewear":         c.Eyewear,
		"earrings":        c.Earrings,
	}
	for name, table := range faceTables {
		for _, shape := range classify.FaceShapes {
			if len(table[shape.String()]) == 0 {
				errs = append(errs, fmt.Errorf("%s: missing %q", name, shape))
			}
		}
	}

	familyTables := map[string]map[string][]string{
		"highlights.palettes": c.Highlights.Palettes,
		"makeup":              c.Makeup,
		"metals":              c.Metals,
	}
	for name, table := range familyTables {
		for _, f := range families {
			if len(table[f]) == 0 {
				errs = append(errs, fmt.Errorf("%s: missing %q", name, f))
			}
		}
	}
	for _, f := range families {
		if c.Contouring.Shade[f] == "" {
			errs = append(errs, fmt.Errorf("contouring.shade: missing %q", f))
		}
	}
	for _, k := range noseKeys {
		if c.Contouring.Nose[k] == "" {
			errs = append(errs, fmt.Errorf("contouring.nose: missing %q", k))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}
