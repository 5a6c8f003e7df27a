// Package estimate holds the deterministic material calculators for deck,
// kitchen and bathroom projects. Each calculator is constructed from a
// validated Dimensions+Options pair and derives an ordered bill of materials
// in a fixed phase order: demolition, structure, surface/finish, fixtures,
// electrical, accessories.
package estimate

import (
	"fmt"
	"math"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
)

// BuildQuality scales material grade descriptions and labor hours.
type BuildQuality string

const (
	QualityStandard BuildQuality = "standard"
	QualityPremium  BuildQuality = "premium"
)

func (q BuildQuality) Valid() bool {
	return q == QualityStandard || q == QualityPremium
}

// Scope controls whether a remodel includes demolition work. A
// surface-update touches finishes only and contributes no demolition items.
type Scope string

const (
	ScopeFullRemodel    Scope = "full-remodel"
	ScopePartialRemodel Scope = "partial-remodel"
	ScopeSurfaceUpdate  Scope = "surface-update"
)

func (s Scope) Valid() bool {
	switch s {
	case ScopeFullRemodel, ScopePartialRemodel, ScopeSurfaceUpdate:
		return true
	}
	return false
}

// Side identifies one edge of a rectangular deck.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
	SideLeft  Side = "left"
	SideRight Side = "right"
)

func (s Side) Valid() bool {
	switch s {
	case SideFront, SideBack, SideLeft, SideRight:
		return true
	}
	return false
}

// StairSet is one independent staircase attached to a deck. Materials are
// derived once per set and tagged with the set's index and location.
type StairSet struct {
	ID       string  `json:"id,omitempty"`
	Steps    int     `json:"steps"`
	WidthFt  float64 `json:"width"`
	Location string  `json:"location,omitempty"`
}

// billBuilder accumulates line items in phase order and assigns positional
// IDs. IDs are unique within one MaterialList and carry no meaning outside
// the calculation run that produced them.
type billBuilder struct {
	prefix string
	items  []domain.MaterialItem
}

func newBill(prefix string) *billBuilder {
	return &billBuilder{prefix: prefix, items: make([]domain.MaterialItem, 0, 16)}
}

func (b *billBuilder) add(it domain.MaterialItem) {
	it.ID = fmt.Sprintf("%s-%03d", b.prefix, len(b.items)+1)
	b.items = append(b.items, it)
}

// ceilWaste applies a waste multiplier to a raw quantity and rounds up.
// Rounding is always up: under-ordering is the costlier failure mode.
func ceilWaste(qty, factor float64) float64 {
	return math.Ceil(qty * factor)
}

// spanCount is the number of members across a span at the given on-center
// spacing: ceil(span/spacing) + 1. Both arguments are in feet.
func spanCount(span, spacing float64) float64 {
	return math.Ceil(span/spacing) + 1
}

// supportCount is the number of supports along a dimension at a fixed
// spacing: ceil(dim/spacing).
func supportCount(dim, spacing float64) float64 {
	return math.Ceil(dim / spacing)
}

// inchesToFeet converts an on-center spacing in inches to feet.
func inchesToFeet(in float64) float64 {
	return in / 12.0
}
