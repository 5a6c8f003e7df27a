// Package pricing resolves unit prices for material lists through a tiered
// source chain: persistent cache, AI market-price lookup, static fallback
// table. The fetcher never fails its caller; every failure mode degrades to
// a best-effort priced result with lower confidence.
package pricing

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/pricing/market"
)

const baseDisclaimer = "Prices are estimates based on regional averages and may vary by supplier. Confirm with local suppliers before ordering."

const fallbackDisclaimer = " Some items use estimated wholesale pricing because live market data was unavailable."

// priceCache is the subset of store.PriceStore the fetcher requires. A nil
// cache disables the tier.
type priceCache interface {
	Get(ctx context.Context, name, unit string) (*domain.CachedPrice, error)
	Put(ctx context.Context, name, unit string, unitPrice float64, confidence domain.Confidence, source string) error
}

// marketQuoter is the subset of market.Client the fetcher requires. A nil
// quoter (no API key configured) disables the tier.
type marketQuoter interface {
	QuoteBatch(ctx context.Context, items []domain.MaterialItem, zipCode string) ([]market.Quote, error)
}

type Fetcher struct {
	cache    priceCache
	market   marketQuoter
	fallback FallbackTable
	labor    LaborRates
	cacheTTL time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewFetcher wires the three pricing tiers. cache and quoter may be nil;
// cacheTTL of zero means cache entries never expire.
func NewFetcher(cache priceCache, quoter marketQuoter, fallback FallbackTable, labor LaborRates, cacheTTL time.Duration, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		cache:    cache,
		market:   quoter,
		fallback: fallback,
		labor:    labor,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// FetchPricing resolves a unit price for every item and assembles the final
// priced estimate. It always returns a complete PricingResult; external
// failures surface only as lower confidence and an explanatory disclaimer.
func (f *Fetcher) FetchPricing(ctx context.Context, items []domain.MaterialItem, zipCode string, complexity Complexity) *domain.PricingResult {
	now := f.now()
	priced := make([]domain.PricedMaterial, len(items))
	resolved := make([]bool, len(items))

	f.resolveFromCache(ctx, items, priced, resolved, now)
	f.resolveFromMarket(ctx, items, priced, resolved, zipCode, now)

	usedFallback := false
	for i, it := range items {
		if resolved[i] {
			continue
		}
		price, note := f.fallback.Price(it)
		priced[i] = pricedMaterial(it, price, domain.ConfidenceMedium, note, now)
		usedFallback = true
	}

	var rawSubtotal float64
	for _, m := range priced {
		rawSubtotal += m.TotalPrice
	}
	subtotal := math.Ceil(rawSubtotal)

	laborHours := f.floorArea(items) * f.labor.hoursPerSqft(complexity)
	laborCost := laborHours * f.labor.HourlyRate
	estimatedLabor := math.Ceil(laborCost)

	disclaimer := baseDisclaimer
	if usedFallback {
		disclaimer += fallbackDisclaimer
	}

	return &domain.PricingResult{
		Materials:      priced,
		Subtotal:       subtotal,
		EstimatedLabor: estimatedLabor,
		LaborHours:     laborHours,
		Total:          subtotal + estimatedLabor,
		ZipCode:        zipCode,
		PricingDate:    now,
		Confidence:     aggregateConfidence(priced),
		Disclaimer:     disclaimer,
	}
}

// resolveFromCache fills prices from the persistent cache. Stale entries are
// treated as misses but left in place; lookups are best-effort and a cache
// error never fails the batch.
func (f *Fetcher) resolveFromCache(ctx context.Context, items []domain.MaterialItem, priced []domain.PricedMaterial, resolved []bool, now time.Time) {
	if f.cache == nil {
		return
	}
	for i, it := range items {
		entry, err := f.cache.Get(ctx, it.Name, it.Unit)
		if err != nil {
			f.logger.Warn("price cache lookup failed", "name", it.Name, "error", err)
			continue
		}
		if entry == nil {
			continue
		}
		if f.cacheTTL > 0 && now.Sub(entry.UpdatedAt) > f.cacheTTL {
			continue
		}
		priced[i] = pricedMaterial(it, entry.UnitPrice, entry.Confidence, "cached price", entry.UpdatedAt)
		resolved[i] = true
	}
}

// resolveFromMarket batches every still-unresolved item into one AI lookup.
// A request-level failure sends the whole remaining batch to the fallback
// tier; a well-formed response credits whichever items it matched, so a
// partial answer is preserved. Matching is by item id first, name second.
func (f *Fetcher) resolveFromMarket(ctx context.Context, items []domain.MaterialItem, priced []domain.PricedMaterial, resolved []bool, zipCode string, now time.Time) {
	if f.market == nil {
		return
	}
	var batch []domain.MaterialItem
	for i, it := range items {
		if !resolved[i] {
			batch = append(batch, it)
		}
	}
	if len(batch) == 0 {
		return
	}

	quotes, err := f.market.QuoteBatch(ctx, batch, zipCode)
	if err != nil {
		f.logger.Warn("market price lookup failed, using fallback pricing", "items", len(batch), "error", err)
		return
	}

	byID := make(map[string]market.Quote, len(quotes))
	byName := make(map[string]market.Quote, len(quotes))
	for _, q := range quotes {
		if q.MaterialID != "" {
			byID[q.MaterialID] = q
		}
		if q.MaterialName != "" {
			byName[strings.ToLower(q.MaterialName)] = q
		}
	}

	matched := 0
	for i, it := range items {
		if resolved[i] {
			continue
		}
		q, ok := byID[it.ID]
		if !ok {
			q, ok = byName[strings.ToLower(it.Name)]
		}
		if !ok {
			continue
		}
		conf := domain.ParseConfidence(q.Confidence)
		priced[i] = pricedMaterial(it, q.UnitPrice, conf, q.Notes, now)
		resolved[i] = true
		matched++

		if f.cache != nil {
			if err := f.cache.Put(ctx, it.Name, it.Unit, q.UnitPrice, conf, "market"); err != nil {
				f.logger.Warn("price cache write failed", "name", it.Name, "error", err)
			}
		}
	}
	f.logger.Info("market price lookup complete", "requested", len(batch), "matched", matched)
}

// floorArea is the square footage used for the labor estimate: the quantity
// of the Decking-category line item when one exists, otherwise the
// configured default.
func (f *Fetcher) floorArea(items []domain.MaterialItem) float64 {
	for _, it := range items {
		if it.Category == domain.CategoryDecking && it.Unit == "sq ft" {
			return it.Quantity
		}
	}
	return f.labor.DefaultAreaSqft
}

func pricedMaterial(it domain.MaterialItem, unitPrice float64, conf domain.Confidence, notes string, updated time.Time) domain.PricedMaterial {
	return domain.PricedMaterial{
		MaterialItem: it,
		UnitPrice:    unitPrice,
		TotalPrice:   unitPrice * it.Quantity,
		Confidence:   conf,
		PriceNotes:   notes,
		LastUpdated:  updated,
	}
}
