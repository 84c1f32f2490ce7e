package core

import (
	"math"
	"testing"
	"time"
)

const sampleTrack = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
  <trk><trkseg>
    <trkpt lat="0" lon="0"><time>2024-01-01T00:00:00Z</time></trkpt>
    <trkpt lat="0" lon="1"><time>2024-01-01T01:30:00Z</time></trkpt>
  </trkseg></trk>
</gpx>`

func approxEqual(t *testing.T, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("expected %v (±%v), got %v", want, tolerance, got)
	}
}

func TestParseTrackInfo(t *testing.T) {
	t.Run("duration and distance from a simple track", func(t *testing.T) {
		info := ParseTrackInfo(sampleTrack)

		approxEqual(t, info.DurationSeconds, 5400, 0.001)
		// One degree of longitude at the equator.
		approxEqual(t, info.DistanceMeters, 111194.9, 0.1)
	})

	t.Run("fewer than two timestamps means zero duration", func(t *testing.T) {
		gpx := `<trkpt lat="1" lon="1"><time>2024-01-01T00:00:00Z</time></trkpt>
		        <trkpt lat="2" lon="2"/>`

		info := ParseTrackInfo(gpx)

		if info.DurationSeconds != 0 {
			t.Errorf("expected zero duration, got %v", info.DurationSeconds)
		}
		if info.DistanceMeters <= 0 {
			t.Errorf("expected positive distance, got %v", info.DistanceMeters)
		}
	})

	t.Run("fewer than two points means zero distance", func(t *testing.T) {
		gpx := `<time>2024-01-01T00:00:00Z</time>
		        <time>2024-01-01T02:00:00Z</time>
		        <trkpt lat="1" lon="1"/>`

		info := ParseTrackInfo(gpx)

		if info.DistanceMeters != 0 {
			t.Errorf("expected zero distance, got %v", info.DistanceMeters)
		}
		approxEqual(t, info.DurationSeconds, 7200, 0.001)
	})

	t.Run("out of order timestamps yield a negative duration", func(t *testing.T) {
		gpx := `<time>2024-01-01T02:00:00Z</time>
		        <time>2024-01-01T01:00:00Z</time>`

		info := ParseTrackInfo(gpx)

		approxEqual(t, info.DurationSeconds, -3600, 0.001)
	})

	t.Run("malformed input degrades to zero values", func(t *testing.T) {
		tests := []struct {
			name string
			text string
		}{
			{"empty", ""},
			{"not xml", "just some text"},
			{"truncated", `<gpx><trk><trkseg><trkpt lat="1`},
			{"bad timestamps", `<time>yesterday</time><time>today</time>`},
			{"bad coordinates", `<trkpt lat="north" lon="west"/><trkpt lat="x" lon="y"/>`},
			{"lon before lat", `<trkpt lon="1" lat="0"/><trkpt lon="2" lat="0"/>`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				info := ParseTrackInfo(tt.text)
				if info.DurationSeconds != 0 || info.DistanceMeters != 0 {
					t.Errorf("expected zero values, got %+v", info)
				}
			})
		}
	})

	t.Run("distance accumulates pairwise in document order", func(t *testing.T) {
		gpx := `<trkpt lat="0" lon="0"/><trkpt lat="0" lon="1"/><trkpt lat="0" lon="2"/>`

		info := ParseTrackInfo(gpx)

		approxEqual(t, info.DistanceMeters, 2*111194.9, 0.2)
	})
}

func TestFirstTimestamp(t *testing.T) {
	t.Run("returns the first parseable time", func(t *testing.T) {
		got := FirstTimestamp(sampleTrack)
		want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("skips unparseable tags", func(t *testing.T) {
		gpx := `<time>garbage</time><time>2023-06-15T12:00:00Z</time>`
		want := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
		if got := FirstTimestamp(gpx); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("defaults to the epoch", func(t *testing.T) {
		if got := FirstTimestamp("<gpx></gpx>"); !got.Equal(Epoch()) {
			t.Errorf("expected epoch, got %v", got)
		}
	})
}
