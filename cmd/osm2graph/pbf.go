package main

import (
	"io"
	"log"
	"os"
	"runtime"

	"github.com/golang/geo/s2"
	"github.com/qedus/osmpbf"
)

// cellLevel is the S2 cell level node coordinates are quantized to before
// being written out, following the reference loader's Location encoding.
const cellLevel = 30

// wayEdge is one directed edge discovered while scanning ways, before the
// final sort-by-src pass the text format requires.
type wayEdge struct {
	src, trg int32
	cost     int64
}

// extractedGraph is the in-memory result of scanning a PBF file: every
// node that belongs to at least one routable way, quantized to an S2 cell,
// plus every directed edge between consecutive way nodes.
type extractedGraph struct {
	osmID []int64
	cell  []s2.CellID
	edges []wayEdge
}

// buildGraph makes two streaming passes over the PBF file: the first
// collects the set of node IDs referenced by routable ways (assigning each
// a sequential internal index as it is first seen), the second decodes
// node coordinates for that set and builds edges from way node sequences.
// Nodes precede ways in PBF block order, so by the time a Way is decoded
// in the second pass every node it references already has coordinates.
func buildGraph(path string) *extractedGraph {
	validNodes := determineValidNodes(path)
	log.Printf("valid nodes referenced by routable ways: %d", len(validNodes))

	g := &extractedGraph{
		osmID: make([]int64, len(validNodes)),
		cell:  make([]s2.CellID, len(validNodes)),
	}

	decoder, file := openAndDecodePBF(path)
	defer file.Close()

	wayCount := 0
	for {
		obj, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("decoding PBF: %v", err)
		}
		switch obj := obj.(type) {
		case *osmpbf.Node:
			if idx, ok := validNodes[obj.ID]; ok {
				g.osmID[idx] = obj.ID
				g.cell[idx] = coordinatesToCellID(obj.Lat, obj.Lon)
			}
		case *osmpbf.Way:
			if isRoutableWay(obj) {
				buildWayEdges(g, obj, validNodes)
				wayCount++
			}
		}
	}
	log.Printf("routable ways: %d, edges: %d", wayCount, len(g.edges))

	return g
}

// determineValidNodes scans every routable way in a first pass over the
// file and assigns each referenced node ID a sequential internal index in
// first-seen order.
func determineValidNodes(path string) map[int64]int32 {
	decoder, file := openAndDecodePBF(path)
	defer file.Close()

	result := make(map[int64]int32)
	for {
		obj, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("decoding PBF: %v", err)
		}
		way, ok := obj.(*osmpbf.Way)
		if !ok || !isRoutableWay(way) {
			continue
		}
		for _, id := range way.NodeIDs {
			if _, seen := result[id]; !seen {
				result[id] = int32(len(result))
			}
		}
	}
	return result
}

// buildWayEdges appends one edge (two, if the way is bidirectional) for
// every consecutive node pair in way that both belong to validNodes.
func buildWayEdges(g *extractedGraph, way *osmpbf.Way, validNodes map[int64]int32) {
	highway := way.Tags[highwayKey]
	surface := way.Tags[surfaceKey]
	speedKMH := speedForWay(highway, surface)
	bidirectional := !isOneWay(way)

	for i := 0; i < len(way.NodeIDs)-1; i++ {
		a, okA := validNodes[way.NodeIDs[i]]
		b, okB := validNodes[way.NodeIDs[i+1]]
		if !okA || !okB {
			continue
		}

		distanceM := distanceMeters(g.cell[a], g.cell[b])
		cost := travelCostSeconds(distanceM, speedKMH)

		g.edges = append(g.edges, wayEdge{src: a, trg: b, cost: cost})
		if bidirectional {
			g.edges = append(g.edges, wayEdge{src: b, trg: a, cost: cost})
		}
	}
}

// isRoutableWay reports whether a way's highway tag is one this tool
// considers part of the routable road network.
func isRoutableWay(w *osmpbf.Way) bool {
	_, ok := routableHighways[w.Tags[highwayKey]]
	return ok
}

// isOneWay reports whether a way should only be traversed in its stored
// direction: an explicit oneway=yes tag, or a roundabout junction.
func isOneWay(w *osmpbf.Way) bool {
	if w.Tags[onewayKey] == tagYes {
		return true
	}
	return w.Tags[junctionKey] == tagRoundabout
}

// travelCostSeconds converts a distance and a free-flow speed into an
// integer edge cost in seconds, floored at 1 so a cost of zero (which the
// loader would accept but Dijkstra would treat as a free self-loop-like
// shortcut between distinct nodes) never appears.
func travelCostSeconds(distanceM, speedKMH float64) int64 {
	speedMS := speedKMH * 1000.0 / 3600.0
	seconds := int64(distanceM / speedMS)
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

// coordinatesToCellID quantizes a lat/lon pair to an S2 cell at cellLevel,
// mirroring the reference loader's compact node-location encoding.
func coordinatesToCellID(lat, lon float64) s2.CellID {
	return s2.CellFromPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))).ID().Parent(cellLevel)
}

// distanceMeters returns the great-circle distance between two quantized
// cell locations.
func distanceMeters(a, b s2.CellID) float64 {
	return a.LatLng().Distance(b.LatLng()).Radians() * earthRadiusMeters
}

// earthRadiusMeters matches the mean radius the routing engine itself uses
// for great-circle distance, so edge costs derived here are consistent
// with distances computed at query time.
const earthRadiusMeters = 6371000.785

// openAndDecodePBF opens path and starts a PBF decoder sized for parallel
// block decoding across every available core.
func openAndDecodePBF(path string) (*osmpbf.Decoder, *os.File) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening %s: %v", path, err)
	}

	d := osmpbf.NewDecoder(f)
	d.SetBufferSize(osmpbf.MaxBlobSize)
	if err := d.Start(runtime.GOMAXPROCS(-1)); err != nil {
		log.Fatalf("starting PBF decoder: %v", err)
	}

	return d, f
}
