package main

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kpfaulkner/gridpoint/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixFootprint(t *testing.T) {
	f, err := matrixFootprint[int32](3, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(48), f.Data)
	assert.Equal(t, int64(reflect.TypeOf(point.Matrix[int32]{}).Size()), f.Header)
	assert.Equal(t, 3*int64(reflect.TypeOf([]int32(nil)).Size()), f.View)
	assert.Equal(t, f.Header+48, f.Total())
	assert.Equal(t, int64(0), f.Padded)
}

func TestMatrixFootprintPoint(t *testing.T) {
	f, err := matrixFootprint[point.Point](2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(80), f.Data)
	assert.Equal(t, int64(0), f.Padded)
}

func TestMatrixFootprintLargeDoesNotAllocate(t *testing.T) {
	f, err := matrixFootprint[byte](65536, 65536)
	require.NoError(t, err)
	assert.Equal(t, int64(65536)*65536, f.Data)
}

func TestMatrixFootprintInvalid(t *testing.T) {
	_, err := matrixFootprint[byte](-1, 3)
	assert.True(t, errors.Is(err, point.ErrInvalidDimensions))
	_, err = matrixFootprint[byte](3, -1)
	assert.True(t, errors.Is(err, point.ErrInvalidDimensions))
}

func TestPadding(t *testing.T) {
	type padded struct {
		A byte
		B int32
	}
	assert.Equal(t, int64(3), padding(reflect.TypeOf(padded{})))
	assert.Equal(t, int64(0), padding(reflect.TypeOf(int64(0))))
}
