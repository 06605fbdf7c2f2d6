package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/kpfaulkner/gridpoint/point"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	size := flag.Int("size", 4096, "matrix width and height")
	rounds := flag.Int("rounds", 100, "number of passes")
	flag.Parse()

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	n := int32(*size)
	m, err := point.NewMatrix[int32](n, n)
	if err != nil {
		log.Errorf("Error creating matrix %v", err)
		return
	}
	directions := []point.Point{point.DOWN_RIGHT, point.DOWN, point.RIGHT}

	start := time.Now()
	for r := 0; r < *rounds; r++ {
		for _, d := range directions {
			for k := int32(0); k < n; k++ {
				if _, err := m.Set(d.Mul(k), k); err != nil {
					log.Errorf("Error setting %v %v", d.Mul(k), err)
					return
				}
			}
		}
	}
	fmt.Printf("writes took %d ms\n", time.Since(start).Milliseconds())

	start = time.Now()
	var sum int64
	for y := int32(0); y < n; y++ {
		for x := int32(0); x < n; x++ {
			sum += int64(m.MustGet(point.Point{X: x, Y: y}))
		}
	}
	fmt.Printf("reads took %d ms, sum %d\n", time.Since(start).Milliseconds(), sum)
}
