package core

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

// Layer is the tagged variant of renderable map geometry: a single
// polyline, or a group of layers. The start/end operations recurse
// uniformly over both shapes so callers never inspect concrete types.
type Layer interface {
	// StartPoint returns the first point of the layer, or false for an
	// empty layer.
	StartPoint() (Point, bool)
	// EndPoint returns the last point of the layer, or false for an
	// empty layer.
	EndPoint() (Point, bool)
	// Segments flattens the layer into ordered point sequences.
	Segments() [][]Point
}

// Polyline is a contiguous sequence of track points (one <trkseg>).
type Polyline struct {
	Points []Point
}

func (p *Polyline) StartPoint() (Point, bool) {
	if len(p.Points) == 0 {
		return Point{}, false
	}
	return p.Points[0], true
}

func (p *Polyline) EndPoint() (Point, bool) {
	if len(p.Points) == 0 {
		return Point{}, false
	}
	return p.Points[len(p.Points)-1], true
}

func (p *Polyline) Segments() [][]Point {
	if len(p.Points) == 0 {
		return nil
	}
	return [][]Point{p.Points}
}

// LayerGroup is an ordered collection of layers, used for tracks recorded
// in several segments.
type LayerGroup struct {
	Layers []Layer
}

func (g *LayerGroup) StartPoint() (Point, bool) {
	for _, l := range g.Layers {
		if pt, ok := l.StartPoint(); ok {
			return pt, true
		}
	}
	return Point{}, false
}

func (g *LayerGroup) EndPoint() (Point, bool) {
	for i := len(g.Layers) - 1; i >= 0; i-- {
		if pt, ok := g.Layers[i].EndPoint(); ok {
			return pt, true
		}
	}
	return Point{}, false
}

func (g *LayerGroup) Segments() [][]Point {
	var out [][]Point
	for _, l := range g.Layers {
		out = append(out, l.Segments()...)
	}
	return out
}

// ExtractLayer parses full GPX geometry for map rendering. Unlike the
// lenient stats scanner, rendering needs every point in segment order, so
// this path uses a strict GPX decoder and reports malformed input.
func ExtractLayer(gpxText string) (Layer, error) {
	data, err := gpx.ParseBytes([]byte(gpxText))
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	var lines []Layer
	for _, track := range data.Tracks {
		for _, segment := range track.Segments {
			points := make([]Point, 0, len(segment.Points))
			for _, pt := range segment.Points {
				points = append(points, Point{Lat: pt.Latitude, Lon: pt.Longitude})
			}
			if len(points) > 0 {
				lines = append(lines, &Polyline{Points: points})
			}
		}
	}

	if len(lines) == 1 {
		return lines[0], nil
	}
	return &LayerGroup{Layers: lines}, nil
}
