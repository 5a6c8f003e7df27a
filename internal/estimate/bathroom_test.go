package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
)

func bathroomFixture() (BathroomDimensions, BathroomOptions) {
	dims := BathroomDimensions{LengthFt: 8, WidthFt: 6, CeilingHeightFt: 8}
	opts := BathroomOptions{
		Scope:        ScopeFullRemodel,
		FloorTile:    TilePorcelain,
		WallFinish:   WallPaint,
		ShowerType:   ShowerTubCombo,
		VanitySize:   Vanity36,
		BuildQuality: QualityStandard,
	}
	return dims, opts
}

func TestBathroomCalculateDeterminism(t *testing.T) {
	dims, opts := bathroomFixture()
	opts.HeatedFloor = true

	calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	assert.Equal(t, calc.Calculate(), calc.Calculate())
}

func TestBathroomExhaustFanSizing(t *testing.T) {
	dims, opts := bathroomFixture()

	// 48 sq ft is below the 50 CFM code floor.
	calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	fan := findItem(t, calc.Calculate(), "Exhaust fan")
	assert.Equal(t, "50 CFM", fan.Description)
	assert.Equal(t, 1.0, fan.Quantity)

	// A large bathroom is sized at 1 CFM per square foot.
	dims.LengthFt, dims.WidthFt = 12, 10
	calc, err = NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	fan = findItem(t, calc.Calculate(), "Exhaust fan")
	assert.Equal(t, "120 CFM", fan.Description)
}

func TestBathroomGFCIMinimum(t *testing.T) {
	dims, opts := bathroomFixture()

	calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	gfci := findItem(t, calc.Calculate(), "GFCI outlet")
	assert.Equal(t, 1.0, gfci.Quantity)

	opts.GFCIOutlets = 3
	calc, err = NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	gfci = findItem(t, calc.Calculate(), "GFCI outlet")
	assert.Equal(t, 3.0, gfci.Quantity)
}

func TestBathroomFloorTileWaste(t *testing.T) {
	dims, opts := bathroomFixture()

	calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	floor := findItem(t, calc.Calculate(), "Porcelain floor tile")
	assert.Equal(t, 56.0, floor.Quantity) // ceil(48 * 1.15)

	opts.FloorTile = TileLuxuryVinyl
	calc, err = NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	floor = findItem(t, calc.Calculate(), "Luxury vinyl plank flooring")
	assert.Equal(t, 53.0, floor.Quantity) // ceil(48 * 1.10)
}

func TestBathroomWallFinishes(t *testing.T) {
	t.Run("paint only", func(t *testing.T) {
		dims, opts := bathroomFixture()

		calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
		require.NoError(t, err)
		list := calc.Calculate()

		findItem(t, list, "Bathroom wall paint")
		for _, it := range list.Items {
			assert.NotEqual(t, "Wall tile", it.Name)
		}
	})

	t.Run("full tile", func(t *testing.T) {
		dims, opts := bathroomFixture()
		opts.WallFinish = WallFullTile

		calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
		require.NoError(t, err)
		list := calc.Calculate()

		// wall area 224 sq ft less 10% opening, ceil(201.6 * 1.15) = 232
		tile := findItem(t, list, "Wall tile")
		assert.Equal(t, 232.0, tile.Quantity)
		for _, it := range list.Items {
			assert.NotEqual(t, "Bathroom wall paint", it.Name)
		}
	})

	t.Run("wainscot gets tile and paint", func(t *testing.T) {
		dims, opts := bathroomFixture()
		opts.WallFinish = WallTileWainscot

		calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
		require.NoError(t, err)
		list := calc.Calculate()

		tile := findItem(t, list, "Wall tile")
		assert.Equal(t, 129.0, tile.Quantity) // ceil(28*4 * 1.15)
		findItem(t, list, "Bathroom wall paint")
	})
}

func TestBathroomNoThinsetForVinylAndPaint(t *testing.T) {
	dims, opts := bathroomFixture()
	opts.FloorTile = TileLuxuryVinyl

	calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	for _, it := range calc.Calculate().Items {
		assert.NotEqual(t, "Thinset mortar (50 lb bag)", it.Name)
		assert.NotEqual(t, "Grout (10 lb bag)", it.Name)
	}
}

func TestBathroomShowerTypes(t *testing.T) {
	t.Run("walk-in shower", func(t *testing.T) {
		dims, opts := bathroomFixture()
		opts.ShowerType = ShowerWalkIn

		calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
		require.NoError(t, err)
		list := calc.Calculate()

		findItem(t, list, "Shower pan")
		findItem(t, list, "Frameless glass shower door")
		// 80 sq ft surround: ceil(80/15) = 6 sheets of backer board.
		backer := findItem(t, list, "Cement backer board (3x5 sheet)")
		assert.Equal(t, 6.0, backer.Quantity)
		membrane := findItem(t, list, "Waterproofing membrane")
		assert.Equal(t, 88.0, membrane.Quantity)
	})

	t.Run("freestanding tub has no surround", func(t *testing.T) {
		dims, opts := bathroomFixture()
		opts.ShowerType = ShowerFreestandingTub

		calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
		require.NoError(t, err)
		list := calc.Calculate()

		findItem(t, list, "Freestanding soaking tub")
		findItem(t, list, "Floor-mounted tub filler")
		for _, it := range list.Items {
			assert.NotEqual(t, "Cement backer board (3x5 sheet)", it.Name)
			assert.NotEqual(t, "Waterproofing membrane", it.Name)
		}
	})
}

func TestBathroomDoubleVanity(t *testing.T) {
	dims, opts := bathroomFixture()
	opts.VanitySize = Vanity60Double

	calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	list := calc.Calculate()

	faucets := findItem(t, list, "Bathroom faucet")
	assert.Equal(t, 2.0, faucets.Quantity)
	lights := findItem(t, list, "Vanity light fixture")
	assert.Equal(t, 2.0, lights.Quantity)
	mirrors := findItem(t, list, "Vanity mirror")
	assert.Equal(t, 2.0, mirrors.Quantity)
}

func TestBathroomWindowReplacement(t *testing.T) {
	dims, opts := bathroomFixture()

	dims.HasWindow = true
	calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	assert.Empty(t, itemsByCategory(calc.Calculate(), domain.CategoryWindows))

	dims.WindowReplacement = true
	calc, err = NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	windows := itemsByCategory(calc.Calculate(), domain.CategoryWindows)
	require.Len(t, windows, 2)
	assert.Equal(t, "Vinyl replacement window", windows[0].Name)
}

func TestBathroomHeatedFloor(t *testing.T) {
	dims, opts := bathroomFixture()
	opts.HeatedFloor = true

	calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	list := calc.Calculate()

	mat := findItem(t, list, "Electric floor heating mat")
	assert.Equal(t, 34.0, mat.Quantity) // ceil(48 * 0.7)
	findItem(t, list, "Floor heating thermostat")
}

func TestBathroomDemolition(t *testing.T) {
	dims, opts := bathroomFixture()

	calc, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	list := calc.Calculate()
	assert.Equal(t, 6.0, list.DemolitionHours) // ceil(48/12) + 2

	opts.Scope = ScopeSurfaceUpdate
	calc, err = NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)
	list = calc.Calculate()
	assert.Empty(t, itemsByCategory(list, domain.CategoryDemolition))
	assert.Zero(t, list.DemolitionHours)
}

func TestBathroomPremiumLabor(t *testing.T) {
	dims, opts := bathroomFixture()

	standard, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)

	opts.BuildQuality = QualityPremium
	premium, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
	require.NoError(t, err)

	assert.Greater(t, premium.Calculate().EstimatedLaborHours, standard.Calculate().EstimatedLaborHours)
}

func TestBathroomValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BathroomDimensions, *BathroomOptions)
		field  string
	}{
		{"zero width", func(d *BathroomDimensions, o *BathroomOptions) { d.WidthFt = 0 }, "dimensions.width"},
		{"unknown floor tile", func(d *BathroomDimensions, o *BathroomOptions) { o.FloorTile = "terrazzo" }, "options.floorTile"},
		{"unknown wall finish", func(d *BathroomDimensions, o *BathroomOptions) { o.WallFinish = "wallpaper" }, "options.wallFinish"},
		{"unknown shower type", func(d *BathroomDimensions, o *BathroomOptions) { o.ShowerType = "steam-room" }, "options.showerType"},
		{"unknown vanity size", func(d *BathroomDimensions, o *BathroomOptions) { o.VanitySize = "72-inch" }, "options.vanitySize"},
		{"negative gfci", func(d *BathroomDimensions, o *BathroomOptions) { o.GFCIOutlets = -1 }, "options.gfciOutlets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims, opts := bathroomFixture()
			tt.mutate(&dims, &opts)

			_, err := NewBathroomCalculator(dims, opts, DefaultCostbook())
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
