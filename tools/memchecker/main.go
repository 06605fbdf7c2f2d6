package main

import (
	"flag"
	"fmt"
	"os"
	"reflect"

	"github.com/kpfaulkner/gridpoint/point"
	log "github.com/sirupsen/logrus"
)

// footprint is the memory a Matrix of a given size needs, split by where it lives.
type footprint struct {
	Header int64 // the Matrix struct itself
	Data   int64 // backing row-major storage
	View   int64 // slice headers allocated by Rows()
	Padded int64 // bytes of struct padding in one element
}

func (f footprint) Total() int64 {
	return f.Header + f.Data
}

// padding returns how many bytes of a struct are alignment padding.
func padding(rType reflect.Type) int64 {
	if rType.Kind() != reflect.Struct {
		return 0
	}
	used := int64(0)
	for i := 0; i < rType.NumField(); i++ {
		used += int64(rType.Field(i).Type.Size())
	}
	return int64(rType.Size()) - used
}

func matrixFootprint[T any](height int32, width int32) (footprint, error) {
	// validates the dimensions without allocating storage
	if _, err := point.NewMatrix[T](height, 0); err != nil {
		return footprint{}, err
	}
	if _, err := point.NewMatrix[T](0, width); err != nil {
		return footprint{}, err
	}

	elem := reflect.TypeOf((*T)(nil)).Elem()
	return footprint{
		Header: int64(reflect.TypeOf(point.Matrix[T]{}).Size()),
		Data:   int64(height) * int64(width) * int64(elem.Size()),
		View:   int64(height) * int64(reflect.TypeOf([]T(nil)).Size()),
		Padded: padding(elem),
	}, nil
}

func report(name string, f footprint) {
	fmt.Printf("%s\n", name)
	fmt.Printf("  Header       : %d bytes\n", f.Header)
	fmt.Printf("  Data         : %d bytes\n", f.Data)
	fmt.Printf("  Rows() view  : %d bytes\n", f.View)
	fmt.Printf("  Elem padding : %d bytes\n", f.Padded)
	fmt.Printf("  Total        : %d bytes\n", f.Total())
	fmt.Println()
}

func main() {
	width := flag.Int("w", 1024, "matrix width")
	height := flag.Int("h", 1024, "matrix height")
	flag.Parse()

	h, w := int32(*height), int32(*width)

	byteSize, err := matrixFootprint[byte](h, w)
	if err != nil {
		log.Errorf("Error sizing matrix: %v", err)
		os.Exit(1)
	}
	report(fmt.Sprintf("Matrix[byte] %dx%d", w, h), byteSize)

	intSize, _ := matrixFootprint[int32](h, w)
	report(fmt.Sprintf("Matrix[int32] %dx%d", w, h), intSize)

	pointSize, _ := matrixFootprint[point.Point](h, w)
	report(fmt.Sprintf("Matrix[Point] %dx%d", w, h), pointSize)
}
