package advice

import (
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/kozaktomas/beauty-advisor/internal/classify"
)

// MaxHighlights is the number of hair colors suggested at most.
const MaxHighlights = 4

// Bundle is the advice derived from one classification result.
type Bundle struct {
	Contouring []string `json:"contouring"`
	Highlights []string `json:"highlights"`
	Haircuts   []string `json:"haircuts"`
	Eyewear    []string `json:"eyewear"`
	Earrings   []string `json:"earrings"`
	Makeup     []string `json:"makeup"`
	Metals     []string `json:"metals"`
}

// Mapper looks labels up in a catalog. Highlight sampling draws from the
// mapper's random source, so a seeded source gives reproducible output.
type Mapper struct {
	catalog *Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMapper creates a mapper. A nil rng is replaced by a time-seeded source.
func NewMapper(catalog *Catalog, rng *rand.Rand) *Mapper {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Mapper{catalog: catalog, rng: rng}
}

// NewSeededMapper creates a mapper with a deterministic random source.
func NewSeededMapper(catalog *Catalog, seed uint64) *Mapper {
	return NewMapper(catalog, rand.New(rand.NewPCG(seed, seed)))
}

// Catalog returns the tables the mapper reads from.
func (m *Mapper) Catalog() *Catalog {
	return m.catalog
}

// Family groups an undertone into warm, cool or neutral.
func Family(u classify.Undertone) string {
	switch u {
	case classify.UndertoneWarm:
		return FamilyWarm
	case classify.UndertoneCool:
		return FamilyCool
	case classify.UndertoneOlive, classify.UndertoneBalanced, classify.UndertoneUndetermined:
		return FamilyNeutral
	default:
		return FamilyNeutral
	}
}

func noseKey(n classify.NoseShape) string {
	switch n {
	case classify.NoseWide, classify.NoseWideNarrowBridge:
		return "wide"
	case classify.NoseNarrow:
		return "narrow"
	case classify.NoseLong:
		return "long"
	case classify.NoseShort:
		return "short"
	case classify.NoseThin:
		return "thin"
	case classify.NoseBalanced:
		return ""
	default:
		return ""
	}
}

// byShape looks a face shape up, falling back to the oval entry.
func byShape(table map[string][]string, face classify.FaceShape) []string {
	if v, ok := table[face.String()]; ok {
		return slices.Clone(v)
	}
	return slices.Clone(table[classify.FaceOval.String()])
}

// Contouring returns face tips, then a nose tip, then a shade tip.
func (m *Mapper) Contouring(face classify.FaceShape, nose classify.NoseShape, undertone classify.Undertone) []string {
	t := m.catalog.Contouring
	tips := byShape(t.Face, face)
	if key := noseKey(nose); key != "" {
		tips = append(tips, t.Nose[key])
	}
	return append(tips, t.Shade[Family(undertone)])
}

// HighlightPalette is the full set of colors HairHighlights samples from.
func (m *Mapper) HighlightPalette(undertone classify.Undertone, face classify.FaceShape) []string {
	h := m.catalog.Highlights
	palette := slices.Clone(h.Palettes[Family(undertone)])

	switch face {
	case classify.FaceRound, classify.FaceSquare:
		palette = append(palette, h.Framing...)
	case classify.FaceOblong:
		palette = append(palette, h.Lengthening...)
	case classify.FaceOval, classify.FaceHeart, classify.FaceDiamond:
	}
	return palette
}

// HairHighlights samples up to MaxHighlights distinct colors from the palette.
func (m *Mapper) HairHighlights(undertone classify.Undertone, face classify.FaceShape) []string {
	pool := m.HighlightPalette(undertone, face)
	n := min(MaxHighlights, len(pool))

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range n {
		j := i + m.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// Haircuts returns haircuts suited to the face shape.
func (m *Mapper) Haircuts(face classify.FaceShape) []string {
	return byShape(m.catalog.Haircuts, face)
}

// Eyewear returns frame styles suited to the face shape.
func (m *Mapper) Eyewear(face classify.FaceShape) []string {
	return byShape(m.catalog.Eyewear, face)
}

// Earrings returns earring styles suited to the face shape.
func (m *Mapper) Earrings(face classify.FaceShape) []string {
	return byShape(m.catalog.Earrings, face)
}

// Makeup returns makeup products for the undertone.
func (m *Mapper) Makeup(undertone classify.Undertone) []string {
	return slices.Clone(m.catalog.Makeup[Family(undertone)])
}

// JewelryMetals returns metal tones for the undertone.
func (m *Mapper) JewelryMetals(undertone classify.Undertone) []string {
	return slices.Clone(m.catalog.Metals[Family(undertone)])
}

// Build derives the whole bundle from one classification result.
func (m *Mapper) Build(r classify.Result) Bundle {
	return Bundle{
		Contouring: m.Contouring(r.FaceShape, r.NoseShape, r.Undertone),
		Highlights: m.HairHighlights(r.Undertone, r.FaceShape),
		Haircuts:   m.Haircuts(r.FaceShape),
		Eyewear:    m.Eyewear(r.FaceShape),
		Earrings:   m.Earrings(r.FaceShape),
		Makeup:     m.Makeup(r.Undertone),
		Metals:     m.JewelryMetals(r.Undertone),
	}
}
