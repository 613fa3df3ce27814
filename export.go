package roadgraph

import (
	"encoding/json"
	"os"

	geojson "github.com/paulmach/go.geojson"
)

// ReconstructPath walks prev (as produced by Dijkstra) from goal back to
// start and returns the sequence of coordinates along the path, ordered
// from start to goal. It returns an empty slice if goal is unreachable.
func ReconstructPath(g *Graph, prev []int, start, goal int) []Coords {
	if goal < 0 || goal >= len(prev) {
		return nil
	}

	var indices []int
	for at := goal; ; {
		indices = append(indices, at)
		if at == start {
			break
		}
		at = prev[at]
		if at < 0 {
			// goal was never reached; no path to reconstruct.
			return nil
		}
	}

	path := make([]Coords, len(indices))
	for i, idx := range indices {
		path[len(indices)-1-i] = g.Nodes[idx].Coords
	}
	return path
}

// ExportRouteGeoJSON writes path as a single GeoJSON LineString feature to
// destPath, in [longitude, latitude] order per the GeoJSON spec. This is a
// diagnostic export for inspecting a computed route; it is not part of the
// core query contract and persists nothing the core needs to reload.
func ExportRouteGeoJSON(path []Coords, destPath string) error {
	coords := make([][]float64, len(path))
	for i, c := range path {
		coords[i] = []float64{c.Lon, c.Lat}
	}

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(geojson.NewLineStringFeature(coords))

	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}

	return os.WriteFile(destPath, data, 0o644)
}
