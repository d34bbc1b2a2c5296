package analytics

import (
	"strconv"
	"strings"
)

const (
	_fullCircleDegrees = 360.0

	// _placeholderColor fills the donut when there is nothing to chart.
	_placeholderColor = "#374151"

	// _minVisibleValue keeps a polyline visible when a series is all zero.
	_minVisibleValue = 1.0
)

// Arc is one angular slice of a conic-gradient donut chart, in degrees.
type Arc struct {
	Color      string  `json:"color"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// GradientArcs partitions the full circle proportionally to segment
// values. No segments, or a zero total, yields a single placeholder arc
// spanning the whole circle.
func GradientArcs(segments []Segment) []Arc {
	var total int64
	for _, seg := range segments {
		total += seg.Value
	}
	if total == 0 {
		return []Arc{{Color: _placeholderColor, StartAngle: 0, EndAngle: _fullCircleDegrees}}
	}

	arcs := make([]Arc, 0, len(segments))
	start := 0.0
	for _, seg := range segments {
		sweep := float64(seg.Value) / float64(total) * _fullCircleDegrees
		arcs = append(arcs, Arc{
			Color:      seg.Color,
			StartAngle: start,
			EndAngle:   start + sweep,
		})
		start += sweep
	}
	// Absorb float drift so the partition always closes the circle.
	arcs[len(arcs)-1].EndAngle = _fullCircleDegrees
	return arcs
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polyline maps a value series to (x,y) coordinates inside a width x
// height box with uniform padding: x positions are spaced linearly, y is
// normalized against the series maximum, and the scaled value is floored
// at 1 so flat-zero series still draw a visible line.
func Polyline(series []int64, width, height, padding float64) []Point {
	if len(series) == 0 {
		return nil
	}

	innerWidth := width - 2*padding
	innerHeight := height - 2*padding

	maxValue := _minVisibleValue
	for _, v := range series {
		if float64(v) > maxValue {
			maxValue = float64(v)
		}
	}

	step := 0.0
	if len(series) > 1 {
		step = innerWidth / float64(len(series)-1)
	}

	points := make([]Point, 0, len(series))
	for i, v := range series {
		scaled := float64(v) / maxValue * innerHeight
		if scaled < _minVisibleValue {
			scaled = _minVisibleValue
		}
		points = append(points, Point{
			X: padding + float64(i)*step,
			Y: height - padding - scaled,
		})
	}
	return points
}

// PathString renders points as an SVG path ("M x,y L x,y ...").
func PathString(points []Point) string {
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(strconv.FormatFloat(p.X, 'f', 1, 64))
		b.WriteString(",")
		b.WriteString(strconv.FormatFloat(p.Y, 'f', 1, 64))
	}
	return b.String()
}
