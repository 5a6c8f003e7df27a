package estimate

// Costbook carries the waste factors, structural spacings, code minimums and
// labor heuristics the calculators derive quantities from. It is injected at
// construction so tests can pin fixtures; DefaultCostbook returns the values
// used in production.
type Costbook struct {
	// Waste multipliers applied to surface quantities before rounding up.
	// Wood decking and tile carry more cut loss than synthetics.
	WoodDeckingWaste      float64
	SyntheticDeckingWaste float64
	TileWaste             float64
	FlooringWaste         float64
	CountertopWaste       float64
	BacksplashWaste       float64

	// Structural spacing. On-center values are in inches and converted to
	// feet for span math.
	JoistSpacingIn    float64
	PostSpacingFt     float64
	StringerSpacingIn float64
	RailSectionFt     float64
	BalustersPerFt    float64

	// Code minimums. Quantities are clamped so they never fall below these
	// even when the naive formula suggests less.
	KitchenMinGFCI   int
	BathroomMinGFCI  int
	MinExhaustFanCFM float64

	// Labor heuristics. Throughputs are square feet per labor hour; the
	// premium factors scale the final figure for premium build quality.
	TileSqftPerHour      float64
	FlooringSqftPerHour  float64
	PaintSqftPerHour     float64
	DeckPremiumLabor     float64
	KitchenPremiumLabor  float64
	BathroomPremiumLabor float64
}

func DefaultCostbook() Costbook {
	return Costbook{
		WoodDeckingWaste:      1.15,
		SyntheticDeckingWaste: 1.10,
		TileWaste:             1.15,
		FlooringWaste:         1.10,
		CountertopWaste:       1.10,
		BacksplashWaste:       1.10,

		JoistSpacingIn:    16,
		PostSpacingFt:     8,
		StringerSpacingIn: 16,
		RailSectionFt:     6,
		BalustersPerFt:    3,

		KitchenMinGFCI:   2,
		BathroomMinGFCI:  1,
		MinExhaustFanCFM: 50,

		TileSqftPerHour:      10,
		FlooringSqftPerHour:  20,
		PaintSqftPerHour:     100,
		DeckPremiumLabor:     1.15,
		KitchenPremiumLabor:  1.20,
		BathroomPremiumLabor: 1.15,
	}
}
