package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kakwa/immowatch/pkg/types"
)

func listing(rooms, surface, price string) domain.Listing {
	return domain.Listing{Rooms: rooms, Surface: surface, Price: price}
}

func TestByRoomCount(t *testing.T) {
	listings := []domain.Listing{
		listing("2", "40", "800"),
		listing("2", "50", "900"),
		listing("3", "70", "1200"),
		listing(domain.Unknown, "30", "600"),
	}

	buckets := ByRoomCount(listings)

	require.Len(t, buckets, 2)

	assert.Equal(t, 2, buckets[0].Rooms)
	assert.Equal(t, 2, buckets[0].Count)
	assert.InDelta(t, 45.0, buckets[0].AvgSurface, 0.001)
	assert.InDelta(t, 850.0, buckets[0].AvgPrice, 0.001)

	assert.Equal(t, 3, buckets[1].Rooms)
	assert.Equal(t, 1, buckets[1].Count)
}

func TestByRoomCountUnparseablePrice(t *testing.T) {
	listings := []domain.Listing{
		listing("2", "40", "800"),
		listing("2", domain.Unknown, domain.Unknown),
	}

	buckets := ByRoomCount(listings)

	require.Len(t, buckets, 1)
	// Both listings count; averages only cover parseable values.
	assert.Equal(t, 2, buckets[0].Count)
	assert.InDelta(t, 40.0, buckets[0].AvgSurface, 0.001)
	assert.InDelta(t, 800.0, buckets[0].AvgPrice, 0.001)
}

func TestByRoomCountEmpty(t *testing.T) {
	assert.Empty(t, ByRoomCount(nil))
	assert.Empty(t, ByRoomCount([]domain.Listing{listing(domain.Unknown, "1", "1")}))
}

func TestBySurfaceRange(t *testing.T) {
	listings := []domain.Listing{
		listing("1", "10", "300"),
		listing("1", "15", "450"),
		listing("2", "20", "500"),
		listing("3", "62", "1240"),
	}

	buckets := BySurfaceRange(listings)

	// Spread 52 wants a step above 5; the cap pins it at 5.
	require.Len(t, buckets, 4)

	assert.Equal(t, "10 to 15", buckets[0].Label)
	assert.Equal(t, 10, buckets[0].Low)
	assert.Equal(t, 15, buckets[0].High)
	assert.Equal(t, 1, buckets[0].Count)
	assert.InDelta(t, 300.0, buckets[0].AvgPrice, 0.001)
	assert.InDelta(t, 30.0, buckets[0].AvgPricePerArea, 0.001)

	assert.Equal(t, "15 to 20", buckets[1].Label)
	assert.Equal(t, "20 to 25", buckets[2].Label)

	assert.Equal(t, "60 to 65", buckets[3].Label)
	assert.Equal(t, 60, buckets[3].Low)
	assert.InDelta(t, 20.0, buckets[3].AvgPricePerArea, 0.001)
}

func TestBySurfaceRangeNarrowSpread(t *testing.T) {
	listings := []domain.Listing{
		listing("1", "20", "400"),
		listing("1", "21", "410"),
		listing("1", "22", "420"),
	}

	buckets := BySurfaceRange(listings)

	// Spread below the bucket target forces a unit step.
	require.Len(t, buckets, 3)
	assert.Equal(t, "20 to 21", buckets[0].Label)
	assert.Equal(t, "21 to 22", buckets[1].Label)
	assert.Equal(t, "22 to 23", buckets[2].Label)
}

func TestBySurfaceRangeSkipsUnknownSurface(t *testing.T) {
	listings := []domain.Listing{
		listing("1", domain.Unknown, "400"),
		listing("1", "30", "600"),
	}

	buckets := BySurfaceRange(listings)

	require.Len(t, buckets, 1)
	assert.Equal(t, 1, buckets[0].Count)
}

func TestBySurfaceRangeEmpty(t *testing.T) {
	assert.Empty(t, BySurfaceRange(nil))
	assert.Empty(t, BySurfaceRange([]domain.Listing{listing("1", domain.Unknown, "1")}))
}

func TestSurfaceStep(t *testing.T) {
	tests := []struct {
		name string
		min  float64
		max  float64
		want int
	}{
		{"wide spread capped", 10, 62, 5},
		{"narrow spread floored", 20, 22, 1},
		{"single value", 40, 40, 1},
		{"mid spread", 10, 31, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, surfaceStep(tt.min, tt.max))
		})
	}
}
