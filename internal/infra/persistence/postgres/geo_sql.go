package postgres

import "fmt"

// haversineSQL computes the great circle distance in kilometers between the
// search center and a row's coordinates. The placeholder order is centerLat,
// centerLon, centerLat; least/greatest clamp the acos input against floating
// point drift on near-identical points.
const haversineSQL = `6371 * acos(least(1.0, greatest(-1.0,
		       cos(radians(?)) * cos(radians(%[1]s.latitude)) * cos(radians(%[1]s.longitude) - radians(?)) +
		       sin(radians(?)) * sin(radians(%[1]s.latitude)))))`

var (
	candidateDistanceSQL = fmt.Sprintf(haversineSQL, "c")
	jobDistanceSQL       = fmt.Sprintf(haversineSQL, "j")
)
