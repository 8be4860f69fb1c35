package ranking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"ghorbari-server/models"
)

func f(v float64) *float64 { return &v }

func prop(id string, lat, lng, price float64) models.Property {
	return models.Property{ID: id, Price: price, Latitude: f(lat), Longitude: f(lng)}
}

func TestRankMissingUserLocation(t *testing.T) {
	_, err := Rank(nil, f(90.41), nil, nil, nil, nil)
	require.ErrorIs(t, err, ErrMissingLocation)

	_, err = Rank(f(23.81), nil, nil, nil, nil, nil)
	require.ErrorIs(t, err, ErrMissingLocation)
}

func TestRankEmptyListings(t *testing.T) {
	ranked, err := Rank(f(23.81), f(90.41), nil, nil, nil, nil)
	require.NoError(t, err)
	require.Empty(t, ranked)
}

// User distance dominates the sort even when the farther listing is cheaper.
func TestRankUserDistanceFirst(t *testing.T) {
	props := []models.Property{
		prop("PROP002", 23.90, 90.50, 400000),
		prop("PROP001", 23.80, 90.40, 500000),
	}
	schools := []Coordinate{{Latitude: 23.82, Longitude: 90.42}}

	ranked, err := Rank(f(23.81), f(90.41), props, schools, nil, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	require.Equal(t, "PROP001", ranked[0].ID)
	require.Equal(t, "PROP002", ranked[1].ID)
	require.Less(t, ranked[0].UserDistance, ranked[1].UserDistance)
}

func TestRankSkipsPropertiesWithoutCoordinates(t *testing.T) {
	props := []models.Property{
		prop("PROP001", 23.80, 90.40, 500000),
		{ID: "PROP002", Price: 100},
		{ID: "PROP003", Price: 100, Latitude: f(23.81)},
	}

	ranked, err := Rank(f(23.81), f(90.41), props, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	require.Equal(t, "PROP001", ranked[0].ID)
}

// An empty amenity set yields +Inf for every listing, so the key never
// decides and the comparison falls through.
func TestRankEmptyAmenitySet(t *testing.T) {
	props := []models.Property{
		prop("PROP001", 23.80, 90.40, 500000),
		prop("PROP002", 23.90, 90.50, 400000),
	}

	ranked, err := Rank(f(23.81), f(90.41), props, nil, nil, nil)
	require.NoError(t, err)
	for _, rp := range ranked {
		require.True(t, math.IsInf(rp.SchoolDistance, 1))
		require.True(t, math.IsInf(rp.HospitalDistance, 1))
		require.True(t, math.IsInf(rp.MarketDistance, 1))
	}
	require.Equal(t, "PROP001", ranked[0].ID)
}

// Same coordinates everywhere: price is the final tie-break.
func TestRankPriceTieBreak(t *testing.T) {
	props := []models.Property{
		prop("PROP001", 23.80, 90.40, 500000),
		prop("PROP002", 23.80, 90.40, 400000),
		prop("PROP003", 23.80, 90.40, 450000),
	}

	ranked, err := Rank(f(23.81), f(90.41), props, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "PROP002", ranked[0].ID)
	require.Equal(t, "PROP003", ranked[1].ID)
	require.Equal(t, "PROP001", ranked[2].ID)
}

// Fully identical tuples keep their input order, and repeated runs agree.
func TestRankDeterminism(t *testing.T) {
	props := []models.Property{
		prop("PROP001", 23.80, 90.40, 500000),
		prop("PROP002", 23.80, 90.40, 500000),
		prop("PROP003", 23.80, 90.40, 500000),
	}

	first, err := Rank(f(23.81), f(90.41), props, nil, nil, nil)
	require.NoError(t, err)
	second, err := Rank(f(23.81), f(90.41), props, nil, nil, nil)
	require.NoError(t, err)

	require.Equal(t, "PROP001", first[0].ID)
	require.Equal(t, "PROP002", first[1].ID)
	require.Equal(t, "PROP003", first[2].ID)
	for i := range first {
		require.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestRankOutputSorted(t *testing.T) {
	props := []models.Property{
		prop("PROP001", 23.80, 90.40, 500000),
		prop("PROP002", 23.90, 90.50, 400000),
		prop("PROP003", 23.75, 90.38, 650000),
		prop("PROP004", 23.85, 90.45, 300000),
	}
	schools := []Coordinate{{Latitude: 23.82, Longitude: 90.42}}
	hospitals := []Coordinate{{Latitude: 23.78, Longitude: 90.39}}
	markets := []Coordinate{{Latitude: 23.88, Longitude: 90.47}}

	ranked, err := Rank(f(23.81), f(90.41), props, schools, hospitals, markets)
	require.NoError(t, err)
	require.Len(t, ranked, len(props))

	for i := 1; i < len(ranked); i++ {
		a, b := ranked[i-1], ranked[i]
		aKey := [5]float64{a.UserDistance, a.SchoolDistance, a.HospitalDistance, a.MarketDistance, a.Price}
		bKey := [5]float64{b.UserDistance, b.SchoolDistance, b.HospitalDistance, b.MarketDistance, b.Price}
		less := false
		for k := 0; k < 5; k++ {
			if aKey[k] != bKey[k] {
				less = aKey[k] < bKey[k]
				break
			}
		}
		if aKey != bKey {
			require.True(t, less, "ranked[%d] should not sort after ranked[%d]", i-1, i)
		}
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Dhaka to Chittagong is roughly 215 km great-circle
	d := Haversine(23.8103, 90.4125, 22.3569, 91.7832)
	require.InDelta(t, 215, d, 10)

	require.Zero(t, Haversine(23.81, 90.41, 23.81, 90.41))
}
