package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

const earthRadiusMeters = 6371000.0

// GeohashPrecision is the cell precision stored alongside driver
// metadata, roughly a 150m x 150m cell.
const GeohashPrecision = 7

// EncodeGeohash converts coordinates to a geohash string
func EncodeGeohash(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, GeohashPrecision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// DistanceMeters calculates the distance between two points in meters
// using the Haversine formula.
func DistanceMeters(point1, point2 GeoPoint) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// DistanceKm calculates the distance between two points in kilometers
func DistanceKm(point1, point2 GeoPoint) float64 {
	return DistanceMeters(point1, point2) / 1000.0
}

// HeadingDelta returns the absolute difference between two compass
// headings along the shortest arc, so 350 and 10 are 20 degrees apart.
func HeadingDelta(h1, h2 float64) float64 {
	diff := math.Mod(math.Abs(h1-h2), 360.0)
	if diff > 180.0 {
		diff = 360.0 - diff
	}
	return diff
}
