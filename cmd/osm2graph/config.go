package main

// Highway (road type) tag values this tool treats as routable, and their
// free-flow speeds in km/h when no more specific surface limit applies.
// Ported from the reference road-network loader's tag vocabulary, pared
// down to the driving profile: this tool emits a single graph file per
// run, not a per-mode family of them.
const (
	highwayKey  = "highway"
	onewayKey   = "oneway"
	surfaceKey  = "surface"
	junctionKey = "junction"

	tagYes        = "yes"
	tagRoundabout = "roundabout"
)

var routableHighways = map[string]float64{
	"motorway":       89,
	"motorway_link":  45,
	"trunk":          73,
	"trunk_link":     40,
	"primary":        30,
	"primary_link":   30,
	"secondary":      49,
	"secondary_link": 25,
	"tertiary":       40,
	"tertiary_link":  20,
	"unclassified":   25,
	"residential":    25,
	"living_street":  10,
	"service":        15,
}

// surfaceSpeedCap holds, for surfaces that are typically slower than the
// highway tag alone implies, the speed limit in km/h that should apply
// instead. A way's effective speed is min(highway speed, surface cap).
var surfaceSpeedCap = map[string]float64{
	"cobblestone":   30,
	"sett":          40,
	"paving_stones": 60,
	"gravel":        40,
	"fine_gravel":   80,
	"compacted":     80,
	"dirt":          40,
	"earth":         20,
	"ground":        40,
	"grass":         40,
	"grass_paver":   40,
	"mud":           10,
	"sand":          20,
	"clay":          30,
	"rocky":         20,
	"pebblestone":   40,
	"wood":          40,
	"tartan":        40,
	"unpaved":       40,
}

const defaultSpeedKMH = 40.0

// speedForWay returns the effective driving speed in km/h for a way given
// its highway and surface tags.
func speedForWay(highway, surface string) float64 {
	speed, ok := routableHighways[highway]
	if !ok {
		speed = defaultSpeedKMH
	}
	if cap, ok := surfaceSpeedCap[surface]; ok && cap < speed {
		speed = cap
	}
	return speed
}
