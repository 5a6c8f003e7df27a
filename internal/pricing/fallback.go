package pricing

import (
	"strings"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
)

// fallbackNote is attached to every item priced from the static table.
const fallbackNote = "estimated wholesale pricing"

// SubstringPrice maps a lowercase material-name fragment to a unit price.
// Entries are checked in order; the first match wins, so more specific
// fragments must come before generic ones.
type SubstringPrice struct {
	Substring string
	Price     float64
}

// FallbackTable is the last pricing tier: a static name-substring map, a
// category default map, and a hard default. It always resolves; fallback
// prices carry medium confidence.
type FallbackTable struct {
	ByName     []SubstringPrice
	ByCategory map[string]float64
	Default    float64
}

// DefaultFallbackTable returns the embedded wholesale price table.
func DefaultFallbackTable() FallbackTable {
	return FallbackTable{
		ByName: []SubstringPrice{
			{"composite decking", 9.50},
			{"pvc decking", 11.00},
			{"cedar decking", 7.50},
			{"redwood decking", 8.50},
			{"pressure-treated decking", 4.50},
			{"decking", 5.50},
			{"joist hanger", 2.50},
			{"joist", 18.00},
			{"ledger", 22.00},
			{"beam", 24.00},
			{"4x4", 16.00},
			{"concrete footing", 35.00},
			{"concrete mix", 6.50},
			{"deck block", 9.00},
			{"helical pile", 225.00},
			{"post base anchor", 12.00},
			{"fascia", 14.00},
			{"flashing tape", 28.00},
			{"screws", 32.00},
			{"fastener", 45.00},
			{"stringer", 18.00},
			{"tread", 9.00},
			{"riser", 7.00},
			{"baluster", 4.00},
			{"cable infill", 85.00},
			{"railing", 38.00},
			{"custom cabinets", 320.00},
			{"semi-custom cabinets", 190.00},
			{"cabinets", 120.00},
			{"pulls and knobs", 6.00},
			{"granite countertop", 65.00},
			{"quartz countertop", 75.00},
			{"butcher block countertop", 45.00},
			{"laminate countertop", 28.00},
			{"backsplash", 12.00},
			{"backer board", 14.00},
			{"underlayment", 0.60},
			{"hardwood flooring", 8.00},
			{"luxury vinyl", 4.50},
			{"laminate flooring", 3.50},
			{"floor tile", 6.50},
			{"wall tile", 8.00},
			{"thinset", 18.00},
			{"grout", 16.00},
			{"waterproofing", 1.80},
			{"farmhouse", 420.00},
			{"sink", 240.00},
			{"faucet", 145.00},
			{"garbage disposal", 120.00},
			{"rough-in", 850.00},
			{"refrigerator", 1400.00},
			{"range hood", 350.00},
			{"range", 950.00},
			{"dishwasher", 650.00},
			{"microwave", 280.00},
			{"gfci", 28.00},
			{"recessed", 35.00},
			{"pendant", 90.00},
			{"under-cabinet", 40.00},
			{"heating mat", 18.00},
			{"thermostat", 160.00},
			{"paint", 38.00},
			{"primer", 26.00},
			{"tub and shower combo", 550.00},
			{"shower pan", 280.00},
			{"glass shower door", 750.00},
			{"shower stall", 480.00},
			{"soaking tub", 1200.00},
			{"tub filler", 420.00},
			{"valve and trim", 180.00},
			{"vanity light", 140.00},
			{"vanity countertop", 260.00},
			{"vanity", 480.00},
			{"toilet", 240.00},
			{"exhaust fan", 140.00},
			{"mirror", 110.00},
			{"accessory set", 85.00},
			{"window trim", 60.00},
			{"window", 380.00},
			{"demolition", 450.00},
			{"tear-out", 600.00},
		},
		ByCategory: map[string]float64{
			domain.CategoryDecking:     5.00,
			domain.CategoryFraming:     12.00,
			domain.CategoryConcrete:    8.00,
			domain.CategoryRailing:     30.00,
			domain.CategoryStairs:      15.00,
			domain.CategoryHardware:    20.00,
			domain.CategoryCabinets:    120.00,
			domain.CategoryCountertops: 45.00,
			domain.CategoryFlooring:    5.00,
			domain.CategoryTile:        8.00,
			domain.CategoryWalls:       12.00,
			domain.CategoryPaint:       35.00,
			domain.CategoryPlumbing:    160.00,
			domain.CategoryElectrical:  35.00,
			domain.CategoryLighting:    75.00,
			domain.CategoryAppliances:  800.00,
			domain.CategoryFixtures:    350.00,
			domain.CategoryVentilation: 140.00,
			domain.CategoryWindows:     300.00,
			domain.CategoryAccessories: 60.00,
			domain.CategoryDemolition:  500.00,
		},
		Default: 10.00,
	}
}

// Price resolves a unit price for item: first matching name substring, then
// the item's category default, then the hard default.
func (t FallbackTable) Price(item domain.MaterialItem) (float64, string) {
	name := strings.ToLower(item.Name)
	for _, entry := range t.ByName {
		if strings.Contains(name, entry.Substring) {
			return entry.Price, fallbackNote
		}
	}
	if price, ok := t.ByCategory[item.Category]; ok {
		return price, fallbackNote + " (category estimate)"
	}
	return t.Default, fallbackNote + " (default estimate)"
}
