package core

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// earthRadiusMeters is the mean Earth radius used for great-circle math.
const earthRadiusMeters = 6371000.0

// TrackInfo summarizes a single GPX track. Values are recomputed on demand
// and never cached.
type TrackInfo struct {
	DurationSeconds float64 `json:"duration_seconds"`
	DistanceMeters  float64 `json:"distance_meters"`
}

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

var (
	timeTagPattern = regexp.MustCompile(`<time>([^<]+)</time>`)
	trackPtPattern = regexp.MustCompile(`<trkpt[^>]*\slat="([^"]+)"[^>]*\slon="([^"]+)"`)
)

// ParseTrackInfo extracts elapsed duration and polyline distance from raw
// GPX text. It scans the text rather than decoding it as XML so that a
// truncated or malformed file degrades to zero values instead of failing:
// a single bad track must never abort processing of its siblings.
//
// Duration is last timestamp minus first and may be negative when the
// source records timestamps out of order; the value is reported as-is.
func ParseTrackInfo(gpxText string) TrackInfo {
	var info TrackInfo

	times := scanTimestamps(gpxText)
	if len(times) >= 2 {
		info.DurationSeconds = times[len(times)-1].Sub(times[0]).Seconds()
	}

	points := ScanTrackPoints(gpxText)
	for i := 1; i < len(points); i++ {
		info.DistanceMeters += haversineMeters(points[i-1], points[i])
	}

	return info
}

// FirstTimestamp returns the instant of the first parseable <time> tag, or
// the Unix epoch when the text contains none. Files without a usable
// timestamp therefore sort as "oldest".
func FirstTimestamp(gpxText string) time.Time {
	for _, m := range timeTagPattern.FindAllStringSubmatch(gpxText, -1) {
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(m[1])); err == nil {
			return t.UTC()
		}
	}
	return Epoch()
}

// Epoch is the zero reference date for tracks with no usable timestamp.
func Epoch() time.Time {
	return time.Unix(0, 0).UTC()
}

// scanTimestamps collects every parseable <time> element in document order.
func scanTimestamps(gpxText string) []time.Time {
	matches := timeTagPattern.FindAllStringSubmatch(gpxText, -1)
	times := make([]time.Time, 0, len(matches))
	for _, m := range matches {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(m[1]))
		if err != nil {
			continue
		}
		times = append(times, t.UTC())
	}
	return times
}

// ScanTrackPoints collects every <trkpt lat="..." lon="..."> pair in
// document order, skipping points whose coordinates do not parse.
func ScanTrackPoints(gpxText string) []Point {
	matches := trackPtPattern.FindAllStringSubmatch(gpxText, -1)
	points := make([]Point, 0, len(matches))
	for _, m := range matches {
		lat, latErr := strconv.ParseFloat(m[1], 64)
		lon, lonErr := strconv.ParseFloat(m[2], 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		points = append(points, Point{Lat: lat, Lon: lon})
	}
	return points
}

// haversineMeters computes the great-circle distance between two points.
func haversineMeters(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
