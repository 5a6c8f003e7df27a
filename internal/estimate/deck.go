package estimate

import (
	"fmt"
	"math"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
)

type DeckingMaterial string

const (
	DeckingPressureTreated DeckingMaterial = "pressure-treated"
	DeckingCedar           DeckingMaterial = "cedar"
	DeckingRedwood         DeckingMaterial = "redwood"
	DeckingComposite       DeckingMaterial = "composite"
	DeckingPVC             DeckingMaterial = "pvc"
)

var deckingNames = map[DeckingMaterial]string{
	DeckingPressureTreated: "Pressure-treated decking boards",
	DeckingCedar:           "Cedar decking boards",
	DeckingRedwood:         "Redwood decking boards",
	DeckingComposite:       "Composite decking boards",
	DeckingPVC:             "PVC decking boards",
}

func (m DeckingMaterial) Valid() bool {
	_, ok := deckingNames[m]
	return ok
}

// synthetic reports whether the decking is a manufactured product with a
// lower cut-loss risk than dimensional lumber.
func (m DeckingMaterial) synthetic() bool {
	return m == DeckingComposite || m == DeckingPVC
}

type RailingMaterial string

const (
	RailingWood      RailingMaterial = "wood"
	RailingComposite RailingMaterial = "composite"
	RailingAluminum  RailingMaterial = "aluminum"
	RailingCable     RailingMaterial = "cable"
)

var railingNames = map[RailingMaterial]string{
	RailingWood:      "Wood railing",
	RailingComposite: "Composite railing",
	RailingAluminum:  "Aluminum railing",
	RailingCable:     "Cable railing",
}

func (m RailingMaterial) Valid() bool {
	_, ok := railingNames[m]
	return ok
}

type FoundationType string

const (
	FoundationConcreteFootings FoundationType = "concrete-footings"
	FoundationDeckBlocks       FoundationType = "deck-blocks"
	FoundationHelicalPiles     FoundationType = "helical-piles"
)

func (f FoundationType) Valid() bool {
	switch f {
	case FoundationConcreteFootings, FoundationDeckBlocks, FoundationHelicalPiles:
		return true
	}
	return false
}

// DeckDimensions describes the deck footprint and its structural features.
// StairSteps/StairWidthFt are the legacy single-stair shape: when Stairs is
// empty and StairSteps is set, exactly one stair set is synthesized at
// construction. Calculators only ever see the canonical []StairSet.
type DeckDimensions struct {
	LengthFt     float64    `json:"length"`
	WidthFt      float64    `json:"width"`
	HeightFt     float64    `json:"height"`
	Stairs       []StairSet `json:"stairs,omitempty"`
	StairSteps   int        `json:"stairSteps,omitempty"`
	StairWidthFt float64    `json:"stairWidth,omitempty"`
	HasRailing   bool       `json:"hasRailing"`
	RailingSides []Side     `json:"railingSides,omitempty"`
}

type DeckOptions struct {
	DeckingMaterial DeckingMaterial `json:"deckingMaterial"`
	RailingMaterial RailingMaterial `json:"railingMaterial,omitempty"`
	FoundationType  FoundationType  `json:"foundationType"`
	RemoveExisting  bool            `json:"removeExisting,omitempty"`
	BuildQuality    BuildQuality    `json:"buildQuality"`
}

// DeckCalculator derives the bill of materials for a new deck build.
type DeckCalculator struct {
	dims   DeckDimensions
	opts   DeckOptions
	book   Costbook
	stairs []StairSet
}

func NewDeckCalculator(dims DeckDimensions, opts DeckOptions, book Costbook) (*DeckCalculator, error) {
	if dims.LengthFt <= 0 {
		return nil, errPositive("dimensions.length", dims.LengthFt)
	}
	if dims.WidthFt <= 0 {
		return nil, errPositive("dimensions.width", dims.WidthFt)
	}
	if dims.HeightFt <= 0 {
		return nil, errPositive("dimensions.height", dims.HeightFt)
	}
	if !opts.DeckingMaterial.Valid() {
		return nil, errUnknown("options.deckingMaterial", string(opts.DeckingMaterial))
	}
	if !opts.FoundationType.Valid() {
		return nil, errUnknown("options.foundationType", string(opts.FoundationType))
	}
	if !opts.BuildQuality.Valid() {
		return nil, errUnknown("options.buildQuality", string(opts.BuildQuality))
	}

	if dims.HasRailing {
		if !opts.RailingMaterial.Valid() {
			return nil, errUnknown("options.railingMaterial", string(opts.RailingMaterial))
		}
		if len(dims.RailingSides) == 0 {
			return nil, &ValidationError{Field: "dimensions.railingSides", Message: "at least one side is required when hasRailing is set"}
		}
		seen := map[Side]bool{}
		for _, side := range dims.RailingSides {
			if !side.Valid() {
				return nil, errUnknown("dimensions.railingSides", string(side))
			}
			if seen[side] {
				return nil, &ValidationError{Field: "dimensions.railingSides", Message: fmt.Sprintf("duplicate side %q", side)}
			}
			seen[side] = true
		}
	}

	stairs, err := normalizeStairs(dims)
	if err != nil {
		return nil, err
	}

	return &DeckCalculator{dims: dims, opts: opts, book: book, stairs: stairs}, nil
}

// normalizeStairs resolves the dual-shape stair input into a canonical slice.
// The stairs array wins when present; otherwise the legacy single-stair
// fields synthesize exactly one set.
func normalizeStairs(dims DeckDimensions) ([]StairSet, error) {
	sets := dims.Stairs
	if len(sets) == 0 && dims.StairSteps != 0 {
		if dims.StairSteps < 0 {
			return nil, errNonNegative("dimensions.stairSteps", dims.StairSteps)
		}
		if dims.StairWidthFt <= 0 {
			return nil, errPositive("dimensions.stairWidth", dims.StairWidthFt)
		}
		sets = []StairSet{{ID: "stairs-1", Steps: dims.StairSteps, WidthFt: dims.StairWidthFt, Location: "front"}}
	}

	out := make([]StairSet, len(sets))
	for i, set := range sets {
		if set.Steps <= 0 {
			return nil, errPositive(fmt.Sprintf("dimensions.stairs[%d].steps", i), float64(set.Steps))
		}
		if set.WidthFt <= 0 {
			return nil, errPositive(fmt.Sprintf("dimensions.stairs[%d].width", i), set.WidthFt)
		}
		out[i] = set
		if out[i].Location == "" {
			out[i].Location = "side"
		}
	}
	return out, nil
}

// Calculate derives the deck bill of materials. It is pure and deterministic:
// identical inputs always produce an identical ordered item list.
func (c *DeckCalculator) Calculate() *domain.MaterialList {
	length, width, height := c.dims.LengthFt, c.dims.WidthFt, c.dims.HeightFt
	area := length * width
	bill := newBill("deck")

	// Demolition
	var demoHours float64
	if c.opts.RemoveExisting {
		bill.add(domain.MaterialItem{
			Category: domain.CategoryDemolition,
			Name:     "Tear-out and disposal of existing deck",
			Quantity: 1,
			Unit:     "job",
			Notes:    fmt.Sprintf("approx %.0f sq ft of existing structure", area),
		})
		demoHours = math.Ceil(area / 25)
	}

	// Structure
	posts := supportCount(length, c.book.PostSpacingFt) * supportCount(width, c.book.PostSpacingFt)
	if posts < 4 {
		posts = 4
	}

	switch c.opts.FoundationType {
	case FoundationConcreteFootings:
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryConcrete,
			Name:        "Concrete footing",
			Quantity:    posts,
			Unit:        "each",
			Description: "12 in diameter, below frost line",
		})
		bill.add(domain.MaterialItem{
			Category: domain.CategoryConcrete,
			Name:     "Concrete mix (60 lb bag)",
			Quantity: posts * 2,
			Unit:     "bag",
		})
	case FoundationDeckBlocks:
		bill.add(domain.MaterialItem{
			Category: domain.CategoryConcrete,
			Name:     "Precast deck block",
			Quantity: posts,
			Unit:     "each",
		})
	case FoundationHelicalPiles:
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryConcrete,
			Name:        "Helical pile",
			Quantity:    posts,
			Unit:        "each",
			Description: "installed by pile contractor",
		})
	}

	bill.add(domain.MaterialItem{
		Category:    domain.CategoryFraming,
		Name:        "4x4 pressure-treated post",
		Quantity:    posts,
		Unit:        "each",
		Description: fmt.Sprintf("%.0f ft length", height+3),
	})

	beamRows := supportCount(width, c.book.PostSpacingFt)
	boardsPerBeam := math.Ceil(length / 16)
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryFraming,
		Name:        "2x10 pressure-treated beam board",
		Quantity:    beamRows * 2 * boardsPerBeam,
		Unit:        "each",
		Description: "16 ft, doubled beams",
	})
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryFraming,
		Name:        "2x10 pressure-treated ledger board",
		Quantity:    math.Ceil(length / 16),
		Unit:        "each",
		Description: "16 ft",
	})

	joists := spanCount(length, inchesToFeet(c.book.JoistSpacingIn))
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryFraming,
		Name:        "2x10 pressure-treated joist",
		Quantity:    joists,
		Unit:        "each",
		Description: fmt.Sprintf("%.0f in on-center, %.0f ft span", c.book.JoistSpacingIn, width),
	})
	bill.add(domain.MaterialItem{
		Category: domain.CategoryFraming,
		Name:     "2x10 pressure-treated rim joist",
		Quantity: 2 * math.Ceil(length/16),
		Unit:     "each",
	})
	bill.add(domain.MaterialItem{
		Category: domain.CategoryHardware,
		Name:     "Galvanized joist hanger",
		Quantity: joists,
		Unit:     "each",
	})
	bill.add(domain.MaterialItem{
		Category: domain.CategoryHardware,
		Name:     "Post base anchor",
		Quantity: posts,
		Unit:     "each",
	})

	// Surface
	waste := c.book.WoodDeckingWaste
	if c.opts.DeckingMaterial.synthetic() {
		waste = c.book.SyntheticDeckingWaste
	}
	deckingSqft := ceilWaste(area, waste)
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryDecking,
		Name:        deckingNames[c.opts.DeckingMaterial],
		Quantity:    deckingSqft,
		Unit:        "sq ft",
		Description: c.gradeDescription(),
		Notes:       fmt.Sprintf("includes %.0f%% waste", (waste-1)*100),
	})
	if c.opts.DeckingMaterial.synthetic() {
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryHardware,
			Name:        "Hidden fastener clips (box)",
			Quantity:    math.Ceil(area / 50),
			Unit:        "box",
			Description: "covers 50 sq ft per box",
		})
	} else {
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryHardware,
			Name:        "Exterior deck screws (5 lb box)",
			Quantity:    math.Ceil(area / 100),
			Unit:        "box",
			Description: "covers 100 sq ft per box",
		})
	}
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryDecking,
		Name:        "Fascia board",
		Quantity:    math.Ceil(2 * (length + width) / 12),
		Unit:        "each",
		Description: "12 ft",
	})

	// Railing
	var railLen float64
	if c.dims.HasRailing {
		railPosts := 0.0
		railSections := 0.0
		for _, side := range c.dims.RailingSides {
			sideLen := length
			if side == SideLeft || side == SideRight {
				sideLen = width
			}
			railLen += sideLen
			railSections += supportCount(sideLen, c.book.RailSectionFt)
			railPosts += supportCount(sideLen, c.book.RailSectionFt) + 1
		}

		railName := railingNames[c.opts.RailingMaterial]
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryRailing,
			Name:        railName + " post",
			Quantity:    railPosts,
			Unit:        "each",
			Description: fmt.Sprintf("sides: %s", sideList(c.dims.RailingSides)),
		})
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryRailing,
			Name:        railName + " section",
			Quantity:    railSections,
			Unit:        "each",
			Description: fmt.Sprintf("%.0f ft sections", c.book.RailSectionFt),
		})
		if c.opts.RailingMaterial == RailingCable {
			bill.add(domain.MaterialItem{
				Category: domain.CategoryRailing,
				Name:     "Cable infill kit",
				Quantity: railSections,
				Unit:     "kit",
			})
		} else {
			bill.add(domain.MaterialItem{
				Category: domain.CategoryRailing,
				Name:     "Baluster",
				Quantity: math.Ceil(railLen * c.book.BalustersPerFt),
				Unit:     "each",
			})
		}
	}

	// Stairs, one group per set
	for i, set := range c.stairs {
		tag := fmt.Sprintf("stair set %d (%s)", i+1, set.Location)
		stringers := math.Ceil(set.WidthFt*12/c.book.StringerSpacingIn) + 1
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryStairs,
			Name:        "Stair stringer",
			Quantity:    stringers,
			Unit:        "each",
			Description: fmt.Sprintf("%d-step cut stringer", set.Steps),
			Notes:       tag,
		})
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryStairs,
			Name:        "Stair tread board",
			Quantity:    float64(set.Steps) * 2 * math.Ceil(set.WidthFt/6),
			Unit:        "each",
			Description: fmt.Sprintf("two 5/4x6 boards per tread, %.1f ft wide", set.WidthFt),
			Notes:       tag,
		})
		if c.opts.BuildQuality == QualityPremium {
			bill.add(domain.MaterialItem{
				Category: domain.CategoryStairs,
				Name:     "Stair riser board",
				Quantity: float64(set.Steps) * math.Ceil(set.WidthFt/6),
				Unit:     "each",
				Notes:    tag,
			})
		}
	}

	// Accessories
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryHardware,
		Name:        "Joist flashing tape",
		Quantity:    math.Ceil(area / 150),
		Unit:        "roll",
		Description: "protects joist tops from moisture",
	})
	bill.add(domain.MaterialItem{
		Category: domain.CategoryHardware,
		Name:     "Structural screws (box)",
		Quantity: 1,
		Unit:     "box",
	})

	// Labor: framing and decking throughput plus per-feature hours.
	hours := area/12 + area/20
	hours += railLen / 8
	hours += float64(len(c.stairs)) * 4
	if c.opts.BuildQuality == QualityPremium {
		hours *= c.book.DeckPremiumLabor
	}

	return &domain.MaterialList{
		Items:               bill.items,
		Area:                area,
		EstimatedLaborHours: math.Ceil(hours),
		DemolitionHours:     demoHours,
	}
}

func (c *DeckCalculator) gradeDescription() string {
	if c.opts.BuildQuality == QualityPremium {
		return "premium grade"
	}
	return "standard grade"
}

func sideList(sides []Side) string {
	out := ""
	for i, s := range sides {
		if i > 0 {
			out += ", "
		}
		out += string(s)
	}
	return out
}
