package main

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/bluenoise/config"
	"github.com/katalvlaran/bluenoise/torus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextWriter_SeparatesFrames(t *testing.T) {
	var buf bytes.Buffer
	w := newPointWriter(config.FormatText, &buf)
	require.NoError(t, w.WriteFrame(0, []torus.Point{{X: 1.5, Y: 0}}))
	require.NoError(t, w.WriteFrame(1, []torus.Point{{X: 0.1, Y: 15.25}}))
	assert.Equal(t, "1.5, 0\n\n0.1, 15.25\n", buf.String())
}

func TestCSVWriter_HeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := newPointWriter(config.FormatCSV, &buf)
	require.NoError(t, w.WriteFrame(0, []torus.Point{{X: 1, Y: 2}}))
	require.NoError(t, w.WriteFrame(1, []torus.Point{{X: 3, Y: 4}, {X: 5, Y: 6}}))
	assert.Equal(t, "frame,index,x,y\n0,0,1,2\n1,0,3,4\n1,1,5,6\n", buf.String())
}

func TestFormatCoord_RoundTrips(t *testing.T) {
	a, b := 0.1, 0.2
	assert.Equal(t, "0.30000000000000004", formatCoord(a+b))
	assert.Equal(t, "12", formatCoord(12))

	for _, v := range []float64{a + b, 1.0 / 3, 15.999999999999998, math.Nextafter(2, 3)} {
		got, err := strconv.ParseFloat(formatCoord(v), 64)
		require.NoError(t, err)
		assert.Equal(t, v, got, "formatCoord(%v) must round-trip", v)
	}
}
