// Package stats aggregates an owner's seen listings into summary
// buckets. Listing attributes are stored as strings with an Unknown
// sentinel, so every aggregation parses defensively and skips records
// whose grouping attribute is not numeric.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	domain "github.com/kakwa/immowatch/pkg/types"
)

const (
	// Surface bucketing aims for about seven buckets across the
	// observed range, with the step clamped to [1, 5].
	surfaceBucketTarget = 7
	maxSurfaceStep      = 5
)

// ByRoomCount groups listings by room count. Listings without a numeric
// room count are skipped. Buckets come back sorted by room count.
func ByRoomCount(listings []domain.Listing) []domain.RoomBucket {
	type acc struct {
		count        int
		surfaceSum   float64
		surfaceCount int
		priceSum     float64
		priceCount   int
	}

	groups := make(map[int]*acc)
	for i := range listings {
		rooms, err := strconv.Atoi(listings[i].Rooms)
		if err != nil {
			continue
		}

		g := groups[rooms]
		if g == nil {
			g = &acc{}
			groups[rooms] = g
		}
		g.count++

		if surface, err := strconv.ParseFloat(listings[i].Surface, 64); err == nil {
			g.surfaceSum += surface
			g.surfaceCount++
		}
		if price, err := strconv.ParseFloat(listings[i].Price, 64); err == nil {
			g.priceSum += price
			g.priceCount++
		}
	}

	buckets := make([]domain.RoomBucket, 0, len(groups))
	for rooms, g := range groups {
		buckets = append(buckets, domain.RoomBucket{
			Rooms:      rooms,
			Count:      g.count,
			AvgSurface: safeAvg(g.surfaceSum, g.surfaceCount),
			AvgPrice:   safeAvg(g.priceSum, g.priceCount),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Rooms < buckets[j].Rooms
	})
	return buckets
}

// BySurfaceRange groups listings into surface intervals. The step is
// derived from the observed surface spread; a listing with surface s
// lands in the bucket [floor(s/step)*step, +step). Listings without a
// numeric surface are skipped. Buckets come back sorted by lower bound.
func BySurfaceRange(listings []domain.Listing) []domain.SurfaceBucket {
	type entry struct {
		surface float64
		price   float64
		priced  bool
	}

	var entries []entry
	minSurface, maxSurface := math.Inf(1), math.Inf(-1)

	for i := range listings {
		surface, err := strconv.ParseFloat(listings[i].Surface, 64)
		if err != nil {
			continue
		}

		e := entry{surface: surface}
		if price, err := strconv.ParseFloat(listings[i].Price, 64); err == nil {
			e.price = price
			e.priced = true
		}
		entries = append(entries, e)

		minSurface = math.Min(minSurface, surface)
		maxSurface = math.Max(maxSurface, surface)
	}

	if len(entries) == 0 {
		return nil
	}

	step := surfaceStep(minSurface, maxSurface)

	type acc struct {
		count       int
		priceSum    float64
		perAreaSum  float64
		pricedCount int
	}

	groups := make(map[int]*acc)
	for _, e := range entries {
		idx := int(math.Floor(e.surface / float64(step)))

		g := groups[idx]
		if g == nil {
			g = &acc{}
			groups[idx] = g
		}
		g.count++

		if e.priced {
			g.priceSum += e.price
			if e.surface > 0 {
				g.perAreaSum += e.price / e.surface
			}
			g.pricedCount++
		}
	}

	buckets := make([]domain.SurfaceBucket, 0, len(groups))
	for idx, g := range groups {
		low := idx * step
		high := low + step
		buckets = append(buckets, domain.SurfaceBucket{
			Label:           fmt.Sprintf("%d to %d", low, high),
			Low:             low,
			High:            high,
			Count:           g.count,
			AvgPrice:        safeAvg(g.priceSum, g.pricedCount),
			AvgPricePerArea: safeAvg(g.perAreaSum, g.pricedCount),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Low < buckets[j].Low
	})
	return buckets
}

// surfaceStep picks the bucket width for the observed surface spread.
func surfaceStep(minSurface, maxSurface float64) int {
	step := int(math.Floor((maxSurface - minSurface) / surfaceBucketTarget))
	if step < 1 {
		return 1
	}
	if step > maxSurfaceStep {
		return maxSurfaceStep
	}
	return step
}

func safeAvg(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
