package ranking

import (
	"errors"
	"log"
	"math"
	"sort"

	"ghorbari-server/models"
)

// ErrMissingLocation is returned when the user has not set both coordinates.
var ErrMissingLocation = errors.New("user location not set")

const earthRadiusKm = 6371

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// RankedProperty is a property augmented with the four distance features the
// suggestion sort runs on. Field names match the wire format the frontend
// already consumes.
type RankedProperty struct {
	models.Property
	UserDistance     float64 `json:"userPropertyDistance"`
	SchoolDistance   float64 `json:"schoolsDistance"`
	HospitalDistance float64 `json:"hospitalsDistance"`
	MarketDistance   float64 `json:"marketsDistance"`
}

// Rank orders properties best-first for one user location: ascending by
// distance to the user, then distance to the nearest school, hospital and
// market, then price. An empty amenity set contributes +Inf for every
// property, so that key never decides and the sort falls through to the next
// one. Properties without coordinates are dropped from the result.
func Rank(userLat, userLng *float64, properties []models.Property, schools, hospitals, markets []Coordinate) ([]RankedProperty, error) {
	if userLat == nil || userLng == nil {
		return nil, ErrMissingLocation
	}

	ranked := make([]RankedProperty, 0, len(properties))
	for _, p := range properties {
		if p.Latitude == nil || p.Longitude == nil {
			log.Printf("ranking: property %s has no coordinates, skipping", p.ID)
			continue
		}
		lat, lng := *p.Latitude, *p.Longitude
		ranked = append(ranked, RankedProperty{
			Property:         p,
			UserDistance:     Haversine(lat, lng, *userLat, *userLng),
			SchoolDistance:   nearest(lat, lng, schools),
			HospitalDistance: nearest(lat, lng, hospitals),
			MarketDistance:   nearest(lat, lng, markets),
		})
	}

	// Stable so equal tuples keep their input order.
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.UserDistance != b.UserDistance {
			return a.UserDistance < b.UserDistance
		}
		if a.SchoolDistance != b.SchoolDistance {
			return a.SchoolDistance < b.SchoolDistance
		}
		if a.HospitalDistance != b.HospitalDistance {
			return a.HospitalDistance < b.HospitalDistance
		}
		if a.MarketDistance != b.MarketDistance {
			return a.MarketDistance < b.MarketDistance
		}
		return a.Price < b.Price
	})

	return ranked, nil
}

// nearest returns the haversine distance to the closest amenity, or +Inf when
// the set is empty.
func nearest(lat, lng float64, amenities []Coordinate) float64 {
	min := math.Inf(1)
	for _, a := range amenities {
		if d := Haversine(lat, lng, a.Latitude, a.Longitude); d < min {
			min = d
		}
	}
	return min
}

// Haversine computes the great-circle distance in kilometres between two
// points on the Earth sphere.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
