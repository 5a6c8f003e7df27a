package estimate

import (
	"fmt"
	"math"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
)

type FloorTileMaterial string

const (
	TileCeramic      FloorTileMaterial = "ceramic"
	TilePorcelain    FloorTileMaterial = "porcelain"
	TileNaturalStone FloorTileMaterial = "natural-stone"
	TileLuxuryVinyl  FloorTileMaterial = "luxury-vinyl"
)

var floorTileNames = map[FloorTileMaterial]string{
	TileCeramic:      "Ceramic floor tile",
	TilePorcelain:    "Porcelain floor tile",
	TileNaturalStone: "Natural stone floor tile",
	TileLuxuryVinyl:  "Luxury vinyl plank flooring",
}

func (m FloorTileMaterial) Valid() bool {
	_, ok := floorTileNames[m]
	return ok
}

type WallFinish string

const (
	WallPaint        WallFinish = "paint"
	WallTileWainscot WallFinish = "tile-wainscot"
	WallFullTile     WallFinish = "full-tile"
)

func (w WallFinish) Valid() bool {
	switch w {
	case WallPaint, WallTileWainscot, WallFullTile:
		return true
	}
	return false
}

type ShowerType string

const (
	ShowerTubCombo        ShowerType = "tub-shower-combo"
	ShowerWalkIn          ShowerType = "walk-in-shower"
	ShowerStall           ShowerType = "shower-stall"
	ShowerFreestandingTub ShowerType = "freestanding-tub"
)

func (s ShowerType) Valid() bool {
	switch s {
	case ShowerTubCombo, ShowerWalkIn, ShowerStall, ShowerFreestandingTub:
		return true
	}
	return false
}

// surroundSqft is the wet-wall area that needs cement board and
// waterproofing for each shower configuration. A freestanding tub has no
// surround.
func (s ShowerType) surroundSqft() float64 {
	switch s {
	case ShowerTubCombo:
		return 60
	case ShowerWalkIn:
		return 80
	case ShowerStall:
		return 50
	default:
		return 0
	}
}

type VanitySize string

const (
	Vanity24       VanitySize = "24-inch"
	Vanity36       VanitySize = "36-inch"
	Vanity48       VanitySize = "48-inch"
	Vanity60Double VanitySize = "60-inch-double"
)

func (v VanitySize) Valid() bool {
	switch v {
	case Vanity24, Vanity36, Vanity48, Vanity60Double:
		return true
	}
	return false
}

func (v VanitySize) doubleSink() bool {
	return v == Vanity60Double
}

type BathroomDimensions struct {
	LengthFt          float64 `json:"length"`
	WidthFt           float64 `json:"width"`
	CeilingHeightFt   float64 `json:"ceilingHeight"`
	HasWindow         bool    `json:"hasWindow"`
	WindowReplacement bool    `json:"windowReplacement"`
}

type BathroomOptions struct {
	Scope        Scope             `json:"scope"`
	FloorTile    FloorTileMaterial `json:"floorTile"`
	WallFinish   WallFinish        `json:"wallFinish"`
	ShowerType   ShowerType        `json:"showerType"`
	VanitySize   VanitySize        `json:"vanitySize"`
	HeatedFloor  bool              `json:"heatedFloor"`
	GFCIOutlets  int               `json:"gfciOutlets"`
	BuildQuality BuildQuality      `json:"buildQuality"`
}

// BathroomCalculator derives the bill of materials for a bathroom remodel.
type BathroomCalculator struct {
	dims BathroomDimensions
	opts BathroomOptions
	book Costbook
}

func NewBathroomCalculator(dims BathroomDimensions, opts BathroomOptions, book Costbook) (*BathroomCalculator, error) {
	if dims.LengthFt <= 0 {
		return nil, errPositive("dimensions.length", dims.LengthFt)
	}
	if dims.WidthFt <= 0 {
		return nil, errPositive("dimensions.width", dims.WidthFt)
	}
	if dims.CeilingHeightFt <= 0 {
		return nil, errPositive("dimensions.ceilingHeight", dims.CeilingHeightFt)
	}
	if !opts.Scope.Valid() {
		return nil, errUnknown("options.scope", string(opts.Scope))
	}
	if !opts.FloorTile.Valid() {
		return nil, errUnknown("options.floorTile", string(opts.FloorTile))
	}
	if !opts.WallFinish.Valid() {
		return nil, errUnknown("options.wallFinish", string(opts.WallFinish))
	}
	if !opts.ShowerType.Valid() {
		return nil, errUnknown("options.showerType", string(opts.ShowerType))
	}
	if !opts.VanitySize.Valid() {
		return nil, errUnknown("options.vanitySize", string(opts.VanitySize))
	}
	if !opts.BuildQuality.Valid() {
		return nil, errUnknown("options.buildQuality", string(opts.BuildQuality))
	}
	if opts.GFCIOutlets < 0 {
		return nil, errNonNegative("options.gfciOutlets", opts.GFCIOutlets)
	}
	return &BathroomCalculator{dims: dims, opts: opts, book: book}, nil
}

// Calculate derives the bathroom bill of materials in fixed phase order.
func (c *BathroomCalculator) Calculate() *domain.MaterialList {
	length, width := c.dims.LengthFt, c.dims.WidthFt
	area := length * width
	perimeter := 2 * (length + width)
	wallSqft := perimeter * c.dims.CeilingHeightFt
	bill := newBill("bath")

	// Demolition
	var demoHours float64
	if c.opts.Scope != ScopeSurfaceUpdate {
		bill.add(domain.MaterialItem{
			Category: domain.CategoryDemolition,
			Name:     "Demolition and disposal",
			Quantity: 1,
			Unit:     "job",
			Notes:    fmt.Sprintf("scope: %s", c.opts.Scope),
		})
		// Fixture removal adds a fixed two hours on top of the tear-out rate.
		demoHours = math.Ceil(area/12) + 2
	}

	// Wet-area structure
	surround := c.opts.ShowerType.surroundSqft()
	if surround > 0 {
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryWalls,
			Name:        "Cement backer board (3x5 sheet)",
			Quantity:    math.Ceil(surround / 15),
			Unit:        "sheet",
			Description: "shower surround substrate",
		})
		bill.add(domain.MaterialItem{
			Category: domain.CategoryWalls,
			Name:     "Waterproofing membrane",
			Quantity: math.Ceil(surround * 1.1),
			Unit:     "sq ft",
		})
	}

	// Floor finish
	floorWaste := c.book.TileWaste
	if c.opts.FloorTile == TileLuxuryVinyl {
		floorWaste = c.book.FlooringWaste
	}
	floorSqft := ceilWaste(area, floorWaste)
	bill.add(domain.MaterialItem{
		Category: domain.CategoryTile,
		Name:     floorTileNames[c.opts.FloorTile],
		Quantity: floorSqft,
		Unit:     "sq ft",
		Notes:    fmt.Sprintf("includes %.0f%% waste", (floorWaste-1)*100),
	})

	// Wall finish
	var wallTileSqft float64
	switch c.opts.WallFinish {
	case WallFullTile:
		// Full-height tile, less roughly 10% for the door opening.
		wallTileSqft = ceilWaste(wallSqft*0.9, c.book.TileWaste)
	case WallTileWainscot:
		wallTileSqft = ceilWaste(perimeter*4, c.book.TileWaste)
	case WallPaint:
		// handled below with paint
	}
	if wallTileSqft > 0 {
		bill.add(domain.MaterialItem{
			Category: domain.CategoryTile,
			Name:     "Wall tile",
			Quantity: wallTileSqft,
			Unit:     "sq ft",
			Notes:    string(c.opts.WallFinish),
		})
	}
	if c.opts.FloorTile != TileLuxuryVinyl || wallTileSqft > 0 {
		tiledSqft := wallTileSqft
		if c.opts.FloorTile != TileLuxuryVinyl {
			tiledSqft += floorSqft
		}
		bill.add(domain.MaterialItem{
			Category: domain.CategoryTile,
			Name:     "Thinset mortar (50 lb bag)",
			Quantity: math.Ceil(tiledSqft / 50),
			Unit:     "bag",
		})
		bill.add(domain.MaterialItem{
			Category: domain.CategoryTile,
			Name:     "Grout (10 lb bag)",
			Quantity: math.Ceil(tiledSqft / 100),
			Unit:     "bag",
		})
	}
	if c.opts.WallFinish != WallFullTile {
		paintSqft := wallSqft
		if c.opts.WallFinish == WallTileWainscot {
			paintSqft = wallSqft / 2
		}
		gallons := math.Ceil(paintSqft / 350)
		if gallons < 1 {
			gallons = 1
		}
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryPaint,
			Name:        "Bathroom wall paint",
			Quantity:    gallons,
			Unit:        "gallon",
			Description: "mildew-resistant",
		})
	}

	// Fixtures
	c.addShowerFixtures(bill)

	vanityName := fmt.Sprintf("Vanity (%s)", c.opts.VanitySize)
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryFixtures,
		Name:        vanityName,
		Quantity:    1,
		Unit:        "each",
		Description: c.gradeDescription(),
	})
	bill.add(domain.MaterialItem{
		Category: domain.CategoryFixtures,
		Name:     "Vanity countertop with sink",
		Quantity: 1,
		Unit:     "each",
	})
	faucets := 1.0
	if c.opts.VanitySize.doubleSink() {
		faucets = 2
	}
	bill.add(domain.MaterialItem{
		Category: domain.CategoryPlumbing,
		Name:     "Bathroom faucet",
		Quantity: faucets,
		Unit:     "each",
	})
	bill.add(domain.MaterialItem{
		Category: domain.CategoryFixtures,
		Name:     "Toilet",
		Quantity: 1,
		Unit:     "each",
	})
	if c.opts.Scope == ScopeFullRemodel {
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryPlumbing,
			Name:        "Plumbing rough-in",
			Quantity:    1,
			Unit:        "job",
			Description: "relocate supply and drain lines",
		})
	}

	// Electrical. At least one GFCI outlet is required near the vanity; the
	// exhaust fan is sized at 1 CFM per square foot with a 50 CFM floor.
	gfci := c.opts.GFCIOutlets
	if gfci < c.book.BathroomMinGFCI {
		gfci = c.book.BathroomMinGFCI
	}
	bill.add(domain.MaterialItem{
		Category: domain.CategoryElectrical,
		Name:     "GFCI outlet",
		Quantity: float64(gfci),
		Unit:     "each",
	})
	lights := 1.0
	if c.opts.VanitySize.doubleSink() {
		lights = 2
	}
	bill.add(domain.MaterialItem{
		Category: domain.CategoryLighting,
		Name:     "Vanity light fixture",
		Quantity: lights,
		Unit:     "each",
	})
	fanCFM := math.Max(c.book.MinExhaustFanCFM, math.Ceil(area))
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryVentilation,
		Name:        "Exhaust fan",
		Quantity:    1,
		Unit:        "each",
		Description: fmt.Sprintf("%.0f CFM", fanCFM),
	})
	if c.opts.HeatedFloor {
		bill.add(domain.MaterialItem{
			Category: domain.CategoryElectrical,
			Name:     "Electric floor heating mat",
			Quantity: math.Ceil(area * 0.7),
			Unit:     "sq ft",
		})
		bill.add(domain.MaterialItem{
			Category: domain.CategoryElectrical,
			Name:     "Floor heating thermostat",
			Quantity: 1,
			Unit:     "each",
		})
	}

	// Accessories
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryAccessories,
		Name:        "Bath accessory set",
		Quantity:    1,
		Unit:        "set",
		Description: "towel bars, paper holder, hooks",
	})
	mirrors := 1.0
	if c.opts.VanitySize.doubleSink() {
		mirrors = 2
	}
	bill.add(domain.MaterialItem{
		Category: domain.CategoryAccessories,
		Name:     "Vanity mirror",
		Quantity: mirrors,
		Unit:     "each",
	})
	if c.dims.HasWindow && c.dims.WindowReplacement {
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryWindows,
			Name:        "Vinyl replacement window",
			Quantity:    1,
			Unit:        "each",
			Description: "privacy glass",
		})
		bill.add(domain.MaterialItem{
			Category: domain.CategoryWindows,
			Name:     "Window trim kit",
			Quantity: 1,
			Unit:     "kit",
		})
	}

	// Labor
	var hours float64
	if c.opts.FloorTile == TileLuxuryVinyl {
		hours += floorSqft / c.book.FlooringSqftPerHour
	} else {
		hours += floorSqft / c.book.TileSqftPerHour
	}
	hours += wallTileSqft / 8
	hours += c.showerHours()
	hours += 3 // vanity and top
	if c.opts.VanitySize.doubleSink() {
		hours++
	}
	hours += 2 // toilet
	if c.opts.Scope == ScopeFullRemodel {
		hours += 8
	}
	hours += 1.5 * (float64(gfci) + lights + 1)
	if c.opts.HeatedFloor {
		hours += 4
	}
	if c.opts.WallFinish != WallFullTile {
		hours += wallSqft / c.book.PaintSqftPerHour
	}
	if c.opts.BuildQuality == QualityPremium {
		hours *= c.book.BathroomPremiumLabor
	}

	return &domain.MaterialList{
		Items:               bill.items,
		Area:                area,
		EstimatedLaborHours: math.Ceil(hours),
		DemolitionHours:     demoHours,
	}
}

func (c *BathroomCalculator) addShowerFixtures(bill *billBuilder) {
	switch c.opts.ShowerType {
	case ShowerTubCombo:
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryFixtures,
			Name:        "Tub and shower combo unit",
			Quantity:    1,
			Unit:        "each",
			Description: c.gradeDescription(),
		})
		bill.add(domain.MaterialItem{
			Category: domain.CategoryPlumbing,
			Name:     "Shower valve and trim kit",
			Quantity: 1,
			Unit:     "each",
		})
	case ShowerWalkIn:
		bill.add(domain.MaterialItem{
			Category: domain.CategoryFixtures,
			Name:     "Shower pan",
			Quantity: 1,
			Unit:     "each",
		})
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryFixtures,
			Name:        "Frameless glass shower door",
			Quantity:    1,
			Unit:        "each",
			Description: c.gradeDescription(),
		})
		bill.add(domain.MaterialItem{
			Category: domain.CategoryPlumbing,
			Name:     "Shower valve and trim kit",
			Quantity: 1,
			Unit:     "each",
		})
	case ShowerStall:
		bill.add(domain.MaterialItem{
			Category: domain.CategoryFixtures,
			Name:     "Prefabricated shower stall kit",
			Quantity: 1,
			Unit:     "each",
		})
		bill.add(domain.MaterialItem{
			Category: domain.CategoryPlumbing,
			Name:     "Shower valve and trim kit",
			Quantity: 1,
			Unit:     "each",
		})
	case ShowerFreestandingTub:
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryFixtures,
			Name:        "Freestanding soaking tub",
			Quantity:    1,
			Unit:        "each",
			Description: c.gradeDescription(),
		})
		bill.add(domain.MaterialItem{
			Category: domain.CategoryPlumbing,
			Name:     "Floor-mounted tub filler",
			Quantity: 1,
			Unit:     "each",
		})
	}
}

func (c *BathroomCalculator) showerHours() float64 {
	switch c.opts.ShowerType {
	case ShowerWalkIn:
		return 10
	case ShowerTubCombo:
		return 6
	case ShowerStall:
		return 5
	default:
		return 6
	}
}

func (c *BathroomCalculator) gradeDescription() string {
	if c.opts.BuildQuality == QualityPremium {
		return "premium grade"
	}
	return "standard grade"
}
