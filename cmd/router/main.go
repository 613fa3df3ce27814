// Command router is the interactive entry point for the roadgraph engine:
// it loads a graph file, then answers whichever of nearest-node,
// single-pair, one-to-all, or batch queries its flags request.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"roadgraph"
)

func printUsage() {
	fmt.Println("Usage: router -graph PATH [-lat FLOAT -lon FLOAT] [-s INT [-t INT]] [-que PATH] [-naive]")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func main() {
	for _, a := range os.Args[1:] {
		if a == "-help" || a == "--help" || a == "-h" {
			printUsage()
			os.Exit(0)
		}
	}

	graphPath := flag.String("graph", "", "path to a graph file (required)")
	lat := flag.Float64("lat", 0, "query latitude, requires -lon")
	lon := flag.Float64("lon", 0, "query longitude, requires -lat")
	hasLat := false
	hasLon := false
	source := flag.Int("s", -1, "one-to-all Dijkstra source node")
	target := flag.Int("t", -1, "target for the -s query (otherwise read from stdin)")
	queryPath := flag.String("que", "", "batch query file")
	naive := flag.Bool("naive", false, "also report the naive linear-scan nearest-node result")
	exportPath := flag.String("export", "", "write the -s/-t route as GeoJSON to this path (diagnostic only)")

	flag.CommandLine.SetOutput(os.Stdout)
	flag.Usage = printUsage
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			hasLat = true
		case "lon":
			hasLon = true
		}
	})
	if hasLat != hasLon {
		fmt.Println("Error parsing arguments | -lat and -lon must be given together\nUse --help for more infos and examples.")
		os.Exit(1)
	}

	if *graphPath == "" {
		fmt.Println("Error parsing arguments | Missing argument for -graph\nUse --help for more infos and examples.")
		os.Exit(1)
	}

	start := time.Now()
	log.Printf("loading graph from %s...", *graphPath)
	lastPercent := -1
	g, err := roadgraph.LoadGraph(*graphPath, func(percent int) {
		if percent/10 != lastPercent/10 {
			log.Printf("loading: %d%%", percent)
		}
		lastPercent = percent
	})
	if err != nil {
		log.Fatalf("GraphFileError: %v", err)
	}
	log.Printf("loaded %d nodes, %d edges in %s", g.NodeCount(), g.EdgeCount(), time.Since(start).Round(time.Millisecond))

	didWork := false

	if hasLat {
		didWork = true
		coords := roadgraph.CoordsDeg(*lat, *lon)
		tree := roadgraph.BuildNodeTree(g.Nodes, nil)
		idx := tree.NearestNode(coords)
		fmt.Printf("nearest node: %d\n", idx)
		if *naive {
			naiveIdx := roadgraph.NearestNodeNaive(g.Nodes, coords)
			fmt.Printf("nearest node (naive): %d\n", naiveIdx)
		}
	}

	if *source >= 0 {
		didWork = true
		if err := runSourceQuery(g, *source, *target, *exportPath); err != nil {
			log.Fatal(err)
		}
	}

	if *queryPath != "" {
		didWork = true
		if err := runBatch(g, *queryPath); err != nil {
			log.Fatal(err)
		}
	}

	if !didWork {
		fmt.Printf("graph ready: %d nodes, %d edges. Pass -lat/-lon, -s, or -que to query it.\n", g.NodeCount(), g.EdgeCount())
	}
}

// runSourceQuery answers a single -s query. If target is not given (-1),
// it reads one target node index per line from stdin until EOF, printing a
// result line for each, matching the batch executor's "one result line per
// query" output contract (spec §6). exportPath, if non-empty, writes the
// direct -s/-t route as GeoJSON; it has no effect on the stdin-driven loop,
// which answers many targets and has no single route to export.
func runSourceQuery(g *roadgraph.Graph, source, target int, exportPath string) error {
	if source >= g.NodeCount() {
		return fmt.Errorf("source node %d is out of range [0,%d)", source, g.NodeCount())
	}

	if target >= 0 {
		cost, path := roadgraph.Route(g, source, target)
		fmt.Println(cost)
		if exportPath != "" {
			if cost == roadgraph.Unreachable {
				log.Printf("skipping -export: %d is unreachable from %d", target, source)
			} else if err := roadgraph.ExportRouteGeoJSON(path, exportPath); err != nil {
				return fmt.Errorf("exporting route: %w", err)
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		var t int
		if _, err := fmt.Sscanf(scanner.Text(), "%d", &t); err != nil {
			fmt.Println(roadgraph.Unreachable)
			continue
		}
		if t < 0 || t >= g.NodeCount() {
			fmt.Println(roadgraph.Unreachable)
			continue
		}
		fmt.Println(roadgraph.ShortestPath(g, source, t))
	}
	return scanner.Err()
}

func runBatch(g *roadgraph.Graph, path string) error {
	start := time.Now()
	results, err := roadgraph.RunBatchQueries(g, path, func(percent int) {
		log.Printf("batch: %d%%", percent)
	})
	if err != nil {
		return fmt.Errorf("QueryFileError: %w", err)
	}
	log.Printf("batch of %d queries completed in %s", len(results), time.Since(start).Round(time.Millisecond))
	for _, r := range results {
		fmt.Println(r)
	}
	return nil
}
