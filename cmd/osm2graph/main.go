// Command osm2graph converts an OpenStreetMap .osm.pbf extract into the
// text graph format the roadgraph engine's loader consumes: it keeps only
// nodes that belong to a routable way, derives edge costs from each way's
// tagged speed and great-circle length, and writes everything out sorted
// by source node as the loader's streaming pass requires.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"
)

func main() {
	input := flag.String("input", "", "path to a .osm.pbf file (required)")
	output := flag.String("output", "graph.txt", "path to write the text graph file")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: osm2graph -input FILE.osm.pbf [-output graph.txt]")
		os.Exit(1)
	}

	start := time.Now()
	g := buildGraph(*input)

	sort.SliceStable(g.edges, func(i, j int) bool { return g.edges[i].src < g.edges[j].src })

	if err := writeGraph(*output, g); err != nil {
		log.Fatalf("writing %s: %v", *output, err)
	}
	log.Printf("wrote %s: %d nodes, %d edges in %s", *output, len(g.osmID), len(g.edges), time.Since(start).Round(time.Second))
}

// writeGraph emits g in the text graph format the loader expects:
// node-count line, edge-count line, one line per node, one line per edge.
func writeGraph(path string, g *extractedGraph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintln(w, len(g.osmID))
	fmt.Fprintln(w, len(g.edges))
	for i, osmID := range g.osmID {
		ll := g.cell[i].LatLng()
		fmt.Fprintf(w, "%d %d %f %f\n", osmID, i, ll.Lat.Degrees(), ll.Lng.Degrees())
	}
	for _, e := range g.edges {
		fmt.Fprintf(w, "%d %d %d\n", e.src, e.trg, e.cost)
	}
	return nil
}
