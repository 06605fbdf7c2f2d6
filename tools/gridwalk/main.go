package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpfaulkner/gridpoint/point"
	log "github.com/sirupsen/logrus"
)

func main() {
	width := flag.Int("w", 3, "grid width")
	height := flag.Int("h", 3, "grid height")
	start := flag.String("start", "1,1", "starting point x,y")
	steps := flag.String("steps", "", "comma separated steps, eg up,down*2,up_left")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *width <= 0 || *height <= 0 {
		fmt.Printf("width and height must be positive\n")
		os.Exit(1)
	}

	pos, err := parseStart(*start)
	if err != nil {
		log.Fatalf("bad start %v", err)
	}
	path, err := parseSteps(*steps)
	if err != nil {
		log.Fatalf("bad steps %v", err)
	}

	grid, err := point.NewMatrix[int](int32(*height), int32(*width))
	if err != nil {
		log.Fatalf("bad grid size %v", err)
	}
	next := point.RangeIteratorWithPoint(grid.Bounds())
	for p, err := next(); err == nil; p, err = next() {
		grid.MustSet(*p, int(p.Offset(grid.Width)))
	}

	if err := walk(grid, pos, path); err != nil {
		log.Errorf("walk failed: %v", err)
		os.Exit(1)
	}
}

func walk(grid point.Grid[int], pos point.Point, path []point.Point) error {
	v, err := grid.Get(pos)
	if err != nil {
		return err
	}
	fmt.Printf("%v -> %d\n", pos, v)

	for _, step := range path {
		pos = pos.Add(step)
		log.Debugf("step %v now at %v", step, pos)
		if v, err = grid.Get(pos); err != nil {
			return err
		}
		fmt.Printf("%v -> %d\n", pos, v)
	}
	return nil
}
