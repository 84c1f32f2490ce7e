package service

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// trackColors is the palette cycled through as tracks are loaded onto the
// map. Colors repeat once the palette is exhausted.
var trackColors = []string{
	"#e6194b", "#3cb44b", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#9a6324",
	"#008080", "#800000",
}

// MapSession owns the per-map mutable state that the original UI kept in
// module-level globals: the color-assignment cursor and the registry of
// tracks currently loaded on the map. It is safe for concurrent use.
type MapSession struct {
	ID uuid.UUID

	mu     sync.Mutex
	colors map[string]string
	next   int
	loaded map[string]struct{}
}

// NewMapSession creates an empty session with a fresh identity.
func NewMapSession() *MapSession {
	return &MapSession{
		ID:     uuid.New(),
		colors: map[string]string{},
		loaded: map[string]struct{}{},
	}
}

// AssignColor returns the color for a track, assigning the next palette
// entry on first use. Repeated calls for the same track are stable.
func (s *MapSession) AssignColor(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if color, ok := s.colors[id]; ok {
		return color
	}
	color := trackColors[s.next%len(trackColors)]
	s.next++
	s.colors[id] = color
	return color
}

// RegisterTrack records a track as loaded on the map.
func (s *MapSession) RegisterTrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded[id] = struct{}{}
}

// UnregisterTrack removes a track from the loaded registry. Unknown ids
// are ignored.
func (s *MapSession) UnregisterTrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.loaded, id)
}

// Selected returns the loaded track ids in lexical order.
func (s *MapSession) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.loaded))
	for id := range s.loaded {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
