package estimate

import (
	"fmt"
	"math"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
)

type CabinetGrade string

const (
	CabinetStock      CabinetGrade = "stock"
	CabinetSemiCustom CabinetGrade = "semi-custom"
	CabinetCustom     CabinetGrade = "custom"
)

var cabinetNames = map[CabinetGrade]string{
	CabinetStock:      "Stock cabinets",
	CabinetSemiCustom: "Semi-custom cabinets",
	CabinetCustom:     "Custom cabinets",
}

func (g CabinetGrade) Valid() bool {
	_, ok := cabinetNames[g]
	return ok
}

type CountertopMaterial string

const (
	CountertopLaminate     CountertopMaterial = "laminate"
	CountertopButcherBlock CountertopMaterial = "butcher-block"
	CountertopQuartz       CountertopMaterial = "quartz"
	CountertopGranite      CountertopMaterial = "granite"
)

var countertopNames = map[CountertopMaterial]string{
	CountertopLaminate:     "Laminate countertop",
	CountertopButcherBlock: "Butcher block countertop",
	CountertopQuartz:       "Quartz countertop",
	CountertopGranite:      "Granite countertop",
}

func (m CountertopMaterial) Valid() bool {
	_, ok := countertopNames[m]
	return ok
}

type FlooringMaterial string

const (
	FlooringTile        FlooringMaterial = "tile"
	FlooringHardwood    FlooringMaterial = "hardwood"
	FlooringLuxuryVinyl FlooringMaterial = "luxury-vinyl"
	FlooringLaminate    FlooringMaterial = "laminate"
)

var flooringNames = map[FlooringMaterial]string{
	FlooringTile:        "Porcelain floor tile",
	FlooringHardwood:    "Hardwood flooring",
	FlooringLuxuryVinyl: "Luxury vinyl plank flooring",
	FlooringLaminate:    "Laminate flooring",
}

func (m FlooringMaterial) Valid() bool {
	_, ok := flooringNames[m]
	return ok
}

type BacksplashStyle string

const (
	BacksplashNone       BacksplashStyle = "none"
	BacksplashStandard   BacksplashStyle = "standard"
	BacksplashFullHeight BacksplashStyle = "full-height"
)

func (b BacksplashStyle) Valid() bool {
	switch b {
	case BacksplashNone, BacksplashStandard, BacksplashFullHeight:
		return true
	}
	return false
}

type SinkType string

const (
	SinkSingleBasin SinkType = "single-basin"
	SinkDoubleBasin SinkType = "double-basin"
	SinkFarmhouse   SinkType = "farmhouse"
)

var sinkNames = map[SinkType]string{
	SinkSingleBasin: "Single basin sink",
	SinkDoubleBasin: "Double basin sink",
	SinkFarmhouse:   "Farmhouse apron sink",
}

func (s SinkType) Valid() bool {
	_, ok := sinkNames[s]
	return ok
}

// ApplianceSelections flags which appliances the estimate includes. Each
// selected appliance contributes one line item.
type ApplianceSelections struct {
	Refrigerator bool `json:"refrigerator"`
	Range        bool `json:"range"`
	RangeHood    bool `json:"rangeHood"`
	Dishwasher   bool `json:"dishwasher"`
	Microwave    bool `json:"microwave"`
}

type LightingSelections struct {
	RecessedCount int  `json:"recessedCount"`
	PendantCount  int  `json:"pendantCount"`
	UnderCabinet  bool `json:"underCabinet"`
}

type KitchenDimensions struct {
	LengthFt        float64 `json:"length"`
	WidthFt         float64 `json:"width"`
	CeilingHeightFt float64 `json:"ceilingHeight"`
}

type KitchenOptions struct {
	Scope              Scope               `json:"scope"`
	CabinetGrade       CabinetGrade        `json:"cabinetGrade"`
	CountertopMaterial CountertopMaterial  `json:"countertopMaterial"`
	FlooringMaterial   FlooringMaterial    `json:"flooringMaterial"`
	Backsplash         BacksplashStyle     `json:"backsplash"`
	SinkType           SinkType            `json:"sinkType"`
	HasIsland          bool                `json:"hasIsland"`
	Appliances         ApplianceSelections `json:"appliances"`
	Lighting           LightingSelections  `json:"lighting"`
	GFCIOutlets        int                 `json:"gfciOutlets"`
	BuildQuality       BuildQuality        `json:"buildQuality"`
}

// KitchenCalculator derives the bill of materials for a kitchen remodel.
type KitchenCalculator struct {
	dims KitchenDimensions
	opts KitchenOptions
	book Costbook
}

func NewKitchenCalculator(dims KitchenDimensions, opts KitchenOptions, book Costbook) (*KitchenCalculator, error) {
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
	if !opts.CabinetGrade.Valid() {
		return nil, errUnknown("options.cabinetGrade", string(opts.CabinetGrade))
	}
	if !opts.CountertopMaterial.Valid() {
		return nil, errUnknown("options.countertopMaterial", string(opts.CountertopMaterial))
	}
	if !opts.FlooringMaterial.Valid() {
		return nil, errUnknown("options.flooringMaterial", string(opts.FlooringMaterial))
	}
	if !opts.Backsplash.Valid() {
		return nil, errUnknown("options.backsplash", string(opts.Backsplash))
	}
	if !opts.SinkType.Valid() {
		return nil, errUnknown("options.sinkType", string(opts.SinkType))
	}
	if !opts.BuildQuality.Valid() {
		return nil, errUnknown("options.buildQuality", string(opts.BuildQuality))
	}
	if opts.GFCIOutlets < 0 {
		return nil, errNonNegative("options.gfciOutlets", opts.GFCIOutlets)
	}
	if opts.Lighting.RecessedCount < 0 {
		return nil, errNonNegative("options.lighting.recessedCount", opts.Lighting.RecessedCount)
	}
	if opts.Lighting.PendantCount < 0 {
		return nil, errNonNegative("options.lighting.pendantCount", opts.Lighting.PendantCount)
	}
	return &KitchenCalculator{dims: dims, opts: opts, book: book}, nil
}

// Calculate derives the kitchen bill of materials in fixed phase order.
func (c *KitchenCalculator) Calculate() *domain.MaterialList {
	length, width := c.dims.LengthFt, c.dims.WidthFt
	area := length * width
	perimeter := 2 * (length + width)
	wallSqft := perimeter * c.dims.CeilingHeightFt
	bill := newBill("kitchen")

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
		demoHours = math.Ceil(area / 15)
	}

	// Cabinets. Base run covers roughly 40% of the perimeter, wall run 30%;
	// an island adds a standard 7 ft base run.
	baseFt := math.Ceil(perimeter * 0.4)
	wallFt := math.Ceil(perimeter * 0.3)
	if c.opts.HasIsland {
		baseFt += 7
	}
	grade := cabinetNames[c.opts.CabinetGrade]
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryCabinets,
		Name:        grade + " (base)",
		Quantity:    baseFt,
		Unit:        "linear ft",
		Description: c.gradeDescription(),
	})
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryCabinets,
		Name:        grade + " (wall)",
		Quantity:    wallFt,
		Unit:        "linear ft",
		Description: c.gradeDescription(),
	})
	bill.add(domain.MaterialItem{
		Category: domain.CategoryHardware,
		Name:     "Cabinet pulls and knobs",
		Quantity: math.Ceil((baseFt + wallFt) / 1.5),
		Unit:     "each",
	})

	// Countertops and backsplash
	ctSqft := ceilWaste(baseFt*2.2, c.book.CountertopWaste)
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryCountertops,
		Name:        countertopNames[c.opts.CountertopMaterial],
		Quantity:    ctSqft,
		Unit:        "sq ft",
		Notes:       fmt.Sprintf("includes %.0f%% waste", (c.book.CountertopWaste-1)*100),
		Description: "25.5 in standard depth",
	})
	var backsplashSqft float64
	switch c.opts.Backsplash {
	case BacksplashStandard:
		backsplashSqft = ceilWaste(baseFt*1.5, c.book.BacksplashWaste)
	case BacksplashFullHeight:
		backsplashSqft = ceilWaste(baseFt*2.5, c.book.BacksplashWaste)
	case BacksplashNone:
		// no backsplash section
	}
	if backsplashSqft > 0 {
		bill.add(domain.MaterialItem{
			Category: domain.CategoryTile,
			Name:     "Backsplash tile",
			Quantity: backsplashSqft,
			Unit:     "sq ft",
			Notes:    string(c.opts.Backsplash),
		})
	}

	// Flooring
	flooringWaste := c.book.FlooringWaste
	if c.opts.FlooringMaterial == FlooringTile {
		flooringWaste = c.book.TileWaste
	}
	floorSqft := ceilWaste(area, flooringWaste)
	bill.add(domain.MaterialItem{
		Category: domain.CategoryFlooring,
		Name:     flooringNames[c.opts.FlooringMaterial],
		Quantity: floorSqft,
		Unit:     "sq ft",
		Notes:    fmt.Sprintf("includes %.0f%% waste", (flooringWaste-1)*100),
	})
	if c.opts.FlooringMaterial == FlooringTile {
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryFlooring,
			Name:        "Cement backer board (3x5 sheet)",
			Quantity:    math.Ceil(area / 15),
			Unit:        "sheet",
			Description: "under floor tile",
		})
	} else {
		bill.add(domain.MaterialItem{
			Category: domain.CategoryFlooring,
			Name:     "Flooring underlayment",
			Quantity: math.Ceil(area),
			Unit:     "sq ft",
		})
	}

	// Plumbing fixtures
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryPlumbing,
		Name:        sinkNames[c.opts.SinkType],
		Quantity:    1,
		Unit:        "each",
		Description: c.gradeDescription(),
	})
	bill.add(domain.MaterialItem{
		Category: domain.CategoryPlumbing,
		Name:     "Kitchen faucet",
		Quantity: 1,
		Unit:     "each",
	})
	bill.add(domain.MaterialItem{
		Category: domain.CategoryPlumbing,
		Name:     "Garbage disposal",
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

	// Appliances
	c.addAppliances(bill)

	// Electrical. Kitchen code requires at least two GFCI-protected
	// countertop circuits regardless of what was requested.
	gfci := c.opts.GFCIOutlets
	if gfci < c.book.KitchenMinGFCI {
		gfci = c.book.KitchenMinGFCI
	}
	bill.add(domain.MaterialItem{
		Category:    domain.CategoryElectrical,
		Name:        "GFCI outlet",
		Quantity:    float64(gfci),
		Unit:        "each",
		Description: "countertop circuits",
	})
	if c.opts.Lighting.RecessedCount > 0 {
		bill.add(domain.MaterialItem{
			Category: domain.CategoryLighting,
			Name:     "Recessed LED light",
			Quantity: float64(c.opts.Lighting.RecessedCount),
			Unit:     "each",
		})
	}
	if c.opts.Lighting.PendantCount > 0 {
		bill.add(domain.MaterialItem{
			Category: domain.CategoryLighting,
			Name:     "Pendant light fixture",
			Quantity: float64(c.opts.Lighting.PendantCount),
			Unit:     "each",
		})
	}
	if c.opts.Lighting.UnderCabinet {
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryLighting,
			Name:        "Under-cabinet LED strip",
			Quantity:    math.Ceil(wallFt / 4),
			Unit:        "each",
			Description: "4 ft strips under wall cabinets",
		})
	}

	// Paint
	gallons := math.Ceil(wallSqft / 350)
	if gallons < 1 {
		gallons = 1
	}
	bill.add(domain.MaterialItem{
		Category: domain.CategoryPaint,
		Name:     "Interior wall paint",
		Quantity: gallons,
		Unit:     "gallon",
	})
	bill.add(domain.MaterialItem{
		Category: domain.CategoryPaint,
		Name:     "Primer",
		Quantity: 1,
		Unit:     "gallon",
	})

	// Labor
	hours := (baseFt + wallFt) / 2 // cabinet install
	hours += ctSqft / 8
	hours += backsplashSqft / 6
	if c.opts.FlooringMaterial == FlooringTile {
		hours += floorSqft / c.book.TileSqftPerHour
	} else {
		hours += floorSqft / c.book.FlooringSqftPerHour
	}
	if c.opts.Scope == ScopeFullRemodel {
		hours += 6
	} else {
		hours += 2
	}
	fixtureCount := gfci + c.opts.Lighting.RecessedCount + c.opts.Lighting.PendantCount
	if c.opts.Lighting.UnderCabinet {
		fixtureCount += 2
	}
	hours += 1.5 * float64(fixtureCount)
	hours += wallSqft / c.book.PaintSqftPerHour
	hours += 1.5 * float64(c.applianceCount())
	if c.opts.BuildQuality == QualityPremium {
		hours *= c.book.KitchenPremiumLabor
	}

	return &domain.MaterialList{
		Items:               bill.items,
		Area:                area,
		EstimatedLaborHours: math.Ceil(hours),
		DemolitionHours:     demoHours,
	}
}

func (c *KitchenCalculator) addAppliances(bill *billBuilder) {
	add := func(name string) {
		bill.add(domain.MaterialItem{
			Category:    domain.CategoryAppliances,
			Name:        name,
			Quantity:    1,
			Unit:        "each",
			Description: c.gradeDescription(),
		})
	}
	if c.opts.Appliances.Refrigerator {
		add("Refrigerator")
	}
	if c.opts.Appliances.Range {
		add("Range")
	}
	if c.opts.Appliances.RangeHood {
		add("Range hood")
	}
	if c.opts.Appliances.Dishwasher {
		add("Dishwasher")
	}
	if c.opts.Appliances.Microwave {
		add("Built-in microwave")
	}
}

func (c *KitchenCalculator) applianceCount() int {
	n := 0
	for _, on := range []bool{
		c.opts.Appliances.Refrigerator,
		c.opts.Appliances.Range,
		c.opts.Appliances.RangeHood,
		c.opts.Appliances.Dishwasher,
		c.opts.Appliances.Microwave,
	} {
		if on {
			n++
		}
	}
	return n
}

func (c *KitchenCalculator) gradeDescription() string {
	if c.opts.BuildQuality == QualityPremium {
		return "premium grade"
	}
	return "standard grade"
}
