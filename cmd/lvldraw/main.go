// Command lvldraw runs a layout or scores one, over a JSON node/link
// document:
//
//	lvldraw sgd <input.json> <output.json>
//	lvldraw quality-metrics <input.json> <output.json>
//
// The sgd command lays the graph out by pivot-based sparse SGD and writes
// the document back with updated coordinates. The quality-metrics command
// reads the stored coordinates and writes
// {"numberOfCrossings", "shapeQuality", "stress"}.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/lvldraw/apsp"
	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/graphview"
	"github.com/katalvlaran/lvldraw/quality"
	"github.com/katalvlaran/lvldraw/rng"
	"github.com/katalvlaran/lvldraw/sgd"
	"github.com/katalvlaran/lvldraw/stress"
)

// Layout parameters of the sgd command.
const (
	pivotCount = 50
	epochs     = 100
	unitLength = 30.0
)

type jsonNode struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type jsonLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Links []jsonLink `json:"links"`
}

type jsonMetrics struct {
	NumberOfCrossings int     `json:"numberOfCrossings"`
	ShapeQuality      float64 `json:"shapeQuality"`
	Stress            float64 `json:"stress"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvldraw: ")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 3 {
		usage()
		os.Exit(2)
	}
	command, input, output := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	doc, g, err := readGraph(input)
	if err != nil {
		log.Fatalf("reading %s: %v", input, err)
	}

	switch command {
	case "sgd":
		err = runSgd(doc, g, output)
	case "quality-metrics":
		err = runQualityMetrics(doc, g, output)
	default:
		log.Printf("unknown command %q", command)
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lvldraw <sgd|quality-metrics> <input.json> <output.json>")
}

// readGraph parses the document and builds the adjacency view.
func readGraph(path string) (*jsonGraph, *graphview.AdjGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var doc jsonGraph
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	g := graphview.New()
	for _, node := range doc.Nodes {
		if _, err = g.AddNode(node.ID); err != nil {
			return nil, nil, fmt.Errorf("node %q: %w", node.ID, err)
		}
	}
	for _, link := range doc.Links {
		if _, err = g.AddEdge(link.Source, link.Target, 1); err != nil {
			return nil, nil, fmt.Errorf("link %q-%q: %w", link.Source, link.Target, err)
		}
	}

	return &doc, g, nil
}

// runSgd lays the graph out and writes the updated document.
func runSgd(doc *jsonGraph, g *graphview.AdjGraph, output string) error {
	d := drawing.NewEuclidean2DWithPlacement(g)

	r := rng.New()
	length := func(graphview.Edge) float64 { return unitLength }
	s, err := sgd.NewSparse(g, length, pivotCount, r)
	if err != nil {
		return fmt.Errorf("building terms: %w", err)
	}
	scheduler := s.Scheduler(sgd.SchedulerExponential, epochs)
	scheduler.Run(func(eta float64) {
		s.Shuffle(r)
		s.Apply(d, eta)
	})

	for i := range doc.Nodes {
		if idx, ok := d.IndexOf(doc.Nodes[i].ID); ok {
			doc.Nodes[i].X = d.Coord(idx)[0]
			doc.Nodes[i].Y = d.Coord(idx)[1]
		}
	}

	return writeJSON(output, doc)
}

// runQualityMetrics scores the stored coordinates and writes the summary.
func runQualityMetrics(doc *jsonGraph, g *graphview.AdjGraph, output string) error {
	d := drawing.NewEuclidean2D(g)
	for _, node := range doc.Nodes {
		if idx, ok := d.IndexOf(node.ID); ok {
			d.Coord(idx)[0] = node.X
			d.Coord(idx)[1] = node.Y
		}
	}

	dm, err := apsp.WarshallFloyd(g, graphview.UnitWeight)
	if err != nil {
		return fmt.Errorf("distances: %w", err)
	}

	return writeJSON(output, jsonMetrics{
		NumberOfCrossings: quality.Crossings(g, d),
		ShapeQuality:      quality.Shape(g, d),
		Stress:            stress.Stress(d, dm),
	})
}

// writeJSON marshals v into path.
func writeJSON(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
