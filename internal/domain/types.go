package domain

import "time"

// Confidence is the qualitative trust level attached to a price, reflecting
// its source tier: cache and AI confidence is source-reported, static
// fallback confidence is always medium.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Valid reports whether c is one of the three known confidence levels.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// ParseConfidence maps a source-reported confidence string to a Confidence.
// Unrecognized values degrade to medium rather than failing the whole entry,
// since a price with an odd confidence label is still a usable price.
func ParseConfidence(s string) Confidence {
	c := Confidence(s)
	if c.Valid() {
		return c
	}
	return ConfidenceMedium
}

// Material categories used as grouping labels on line items. The pricing
// fallback table keys its category defaults off these values.
const (
	CategoryDemolition  = "Demolition"
	CategoryConcrete    = "Concrete"
	CategoryFraming     = "Framing"
	CategoryDecking     = "Decking"
	CategoryRailing     = "Railing"
	CategoryStairs      = "Stairs"
	CategoryHardware    = "Hardware"
	CategoryCabinets    = "Cabinets"
	CategoryCountertops = "Countertops"
	CategoryFlooring    = "Flooring"
	CategoryTile        = "Tile"
	CategoryWalls       = "Walls"
	CategoryPaint       = "Paint"
	CategoryPlumbing    = "Plumbing"
	CategoryElectrical  = "Electrical"
	CategoryLighting    = "Lighting"
	CategoryAppliances  = "Appliances"
	CategoryFixtures    = "Fixtures"
	CategoryVentilation = "Ventilation"
	CategoryWindows     = "Windows"
	CategoryAccessories = "Accessories"
)

// CachedPrice is a persisted unit-price hint keyed by normalized material
// name and unit. Entries are idempotent best-effort hints, not a
// correctness-critical source of truth.
type CachedPrice struct {
	ID         int64
	Name       string
	Unit       string
	UnitPrice  float64
	Confidence Confidence
	Source     string
	UpdatedAt  time.Time
}

// MaterialItem is one line of a bill of materials. IDs are generated per
// calculation run and are only unique within their MaterialList.
type MaterialItem struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Description string  `json:"description,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// MaterialList is the output of one calculator run: the ordered item list
// plus the floor area it was derived from and the labor estimate. Demolition
// hours are reported separately, not folded into the main figure. A
// MaterialList is created fresh on every Calculate call and never mutated
// afterwards; downstream consumers read only.
type MaterialList struct {
	Items               []MaterialItem `json:"items"`
	Area                float64        `json:"area"`
	EstimatedLaborHours float64        `json:"estimatedLaborHours"`
	DemolitionHours     float64        `json:"demolitionHours,omitempty"`
}

// PricedMaterial is a MaterialItem enriched with a resolved unit price.
type PricedMaterial struct {
	MaterialItem
	UnitPrice   float64    `json:"unitPrice"`
	TotalPrice  float64    `json:"totalPrice"`
	Confidence  Confidence `json:"confidence"`
	PriceNotes  string     `json:"priceNotes,omitempty"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// PricingResult is the final priced estimate. Subtotal, EstimatedLabor and
// Total are rounded up to whole dollars; Total >= Subtotal always holds.
// Confidence is computed from the per-material confidences, never supplied.
type PricingResult struct {
	Materials      []PricedMaterial `json:"materials"`
	Subtotal       float64          `json:"subtotal"`
	EstimatedLabor float64          `json:"estimatedLabor"`
	LaborHours     float64          `json:"laborHours"`
	Total          float64          `json:"total"`
	ZipCode        string           `json:"zipCode,omitempty"`
	PricingDate    time.Time        `json:"pricingDate"`
	Confidence     Confidence       `json:"confidence"`
	Disclaimer     string           `json:"disclaimer"`
}
