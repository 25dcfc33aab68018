package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/bluenoise/config"
	"github.com/katalvlaran/bluenoise/torus"
)

// pointWriter renders the points of one frame.
type pointWriter interface {
	WriteFrame(frame int, pts []torus.Point) error
}

// newPointWriter returns the writer for a validated format name.
func newPointWriter(format string, w io.Writer) pointWriter {
	if format == config.FormatCSV {
		return &csvWriter{w: w}
	}

	return &textWriter{w: w}
}

// textWriter prints "x, y" per line, with a blank line between frames.
type textWriter struct {
	w       io.Writer
	written bool
}

func (t *textWriter) WriteFrame(_ int, pts []torus.Point) error {
	if t.written {
		if _, err := io.WriteString(t.w, "\n"); err != nil {
			return err
		}
	}
	t.written = true
	for _, p := range pts {
		if _, err := fmt.Fprintf(t.w, "%s, %s\n", formatCoord(p.X), formatCoord(p.Y)); err != nil {
			return err
		}
	}

	return nil
}

// formatCoord prints the shortest decimal that round-trips.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// pointRecord is one CSV row.
type pointRecord struct {
	Frame int     `csv:"frame"`
	Index int     `csv:"index"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
}

// csvWriter emits a header once, then one row per point across all frames.
type csvWriter struct {
	w             io.Writer
	headerWritten bool
}

func (c *csvWriter) WriteFrame(frame int, pts []torus.Point) error {
	records := make([]pointRecord, len(pts))
	for i, p := range pts {
		records[i] = pointRecord{Frame: frame, Index: i, X: p.X, Y: p.Y}
	}

	if !c.headerWritten {
		if err := gocsv.Marshal(records, c.w); err != nil {
			return fmt.Errorf("writing points: %w", err)
		}
		c.headerWritten = true

		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, c.w); err != nil {
		return fmt.Errorf("writing points: %w", err)
	}

	return nil
}
