package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kpfaulkner/gridpoint/point"
)

// parseStart reads "x,y".
func parseStart(s string) (point.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return point.ZERO, fmt.Errorf("start must be x,y, got %q", s)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return point.ZERO, err
	}
	y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return point.ZERO, err
	}
	return point.Pt(x, y), nil
}

// parseSteps reads a comma separated list of direction[*count], eg "up,down_right*2".
func parseSteps(s string) ([]point.Point, error) {
	var steps []point.Point
	for _, field := range strings.Split(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		name, count, found := strings.Cut(field, "*")
		factor := int64(1)
		if found {
			var err error
			factor, err = strconv.ParseInt(strings.TrimSpace(count), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("step %q: %w", field, err)
			}
		}
		d, err := point.ParseDirection(name)
		if err != nil {
			return nil, err
		}
		steps = append(steps, d.Mul(int32(factor)))
	}
	return steps, nil
}
