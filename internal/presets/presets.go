// Package presets stores per-track practice presets in a JSON document.
//
// The document maps a track key to its speed presets and three range
// slots:
//
//	{
//	  "Artist - Title": {
//	    "speed_presets": [20, 50, 80],
//	    "range_presets": [["00:30", "01:00"], ["", ""], ["", ""]]
//	  }
//	}
//
// Every edit is written through immediately.
package presets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/llehouerou/practicehard/internal/timecode"
)

// Slots is the number of range presets per track.
const Slots = 3

// Speed bounds accepted by SetSpeedPresets.
const (
	MinSpeed = 1
	MaxSpeed = 200
)

var (
	// ErrPersistence wraps read and write failures of the preset file.
	ErrPersistence = errors.New("preset storage")
	// ErrInvalidSpeed is returned for speeds outside MinSpeed..MaxSpeed.
	ErrInvalidSpeed = errors.New("invalid speed preset")
	// ErrSlotsFull is returned by SaveRange when every slot is in use and
	// no chooser was given.
	ErrSlotsFull = errors.New("all range slots are in use")
	// ErrCanceled is returned when the chooser declines to pick a slot.
	ErrCanceled = errors.New("canceled")
	// ErrInvalidSlot is returned for slot numbers outside 1..Slots.
	ErrInvalidSlot = errors.New("invalid slot")
)

// DefaultSpeeds are the speed presets of a track with no stored entry.
func DefaultSpeeds() []int {
	return []int{20, 50, 80}
}

// RangePreset is a stored loop range as the user typed it. Both fields
// empty means the slot is unused.
type RangePreset struct {
	Start string
	End   string
}

// Empty reports whether either field is blank.
func (r RangePreset) Empty() bool {
	return strings.TrimSpace(r.Start) == "" || strings.TrimSpace(r.End) == ""
}

// MarshalJSON encodes the preset as a [start, end] pair.
func (r RangePreset) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{r.Start, r.End})
}

// UnmarshalJSON accepts a [start, end] pair. Anything else decodes to an
// empty slot rather than failing the whole document.
func (r *RangePreset) UnmarshalJSON(data []byte) error {
	var pair []any
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) != 2 {
		*r = RangePreset{}
		return nil //nolint:nilerr // malformed slots degrade to empty
	}
	start, ok1 := pair[0].(string)
	end, ok2 := pair[1].(string)
	if !ok1 || !ok2 {
		*r = RangePreset{}
		return nil
	}
	*r = RangePreset{Start: start, End: end}
	return nil
}

// Ranges is the fixed set of range slots of a track.
type Ranges [Slots]RangePreset

// entry is one track's stored presets.
type entry struct {
	SpeedPresets speeds        `json:"speed_presets"`
	RangePresets []RangePreset `json:"range_presets"`
}

// speeds decodes either a list or a single legacy integer.
type speeds []int

func (s *speeds) UnmarshalJSON(data []byte) error {
	var list []int
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single int
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = speeds{single}
	return nil
}

// Store holds every track's presets and mirrors them to a file.
type Store struct {
	path    string
	entries map[string]entry
	// kept holds entries that failed to decode. They are written back
	// untouched until the track's presets are edited.
	kept map[string]json.RawMessage
}

// DefaultPath is <Documents>/Practice Hard/presets.json.
func DefaultPath() string {
	docs := xdg.UserDirs.Documents
	if docs == "" {
		home, _ := os.UserHomeDir()
		docs = filepath.Join(home, "Documents")
	}
	return filepath.Join(docs, "Practice Hard", "presets.json")
}

// Open loads the document at path. A missing or unreadable document gives
// an empty store; the returned error, wrapping ErrPersistence, is only
// informational and the store is always usable.
func Open(path string) (*Store, error) {
	s := &Store{path: path, entries: make(map[string]entry), kept: make(map[string]json.RawMessage)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("%w: read %s: %w", ErrPersistence, path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return s, fmt.Errorf("%w: parse %s: %w", ErrPersistence, path, err)
	}
	var bad []string
	for key, msg := range raw {
		var e entry
		if err := json.Unmarshal(msg, &e); err != nil {
			bad = append(bad, key)
			s.kept[key] = msg
			continue
		}
		s.entries[key] = e
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return s, fmt.Errorf("%w: skipped malformed entries %q", ErrPersistence, bad)
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Keys lists the stored track keys in order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the presets for key, falling back to defaults.
func (s *Store) Get(key string) ([]int, Ranges) {
	e, ok := s.entries[key]
	sp := DefaultSpeeds()
	if ok && e.SpeedPresets != nil {
		sp = slices.Clone([]int(e.SpeedPresets))
	}
	return sp, e.ranges()
}

// ranges pads or truncates the stored slots to exactly Slots.
func (e entry) ranges() Ranges {
	var r Ranges
	copy(r[:], e.RangePresets)
	return r
}

// SetSpeedPresets replaces the speed presets of key.
func (s *Store) SetSpeedPresets(key string, values []int) error {
	for _, v := range values {
		if v < MinSpeed || v > MaxSpeed {
			return fmt.Errorf("%w: %d not in %d..%d", ErrInvalidSpeed, v, MinSpeed, MaxSpeed)
		}
	}
	e := s.entry(key)
	e.SpeedPresets = slices.Clone(values)
	if e.SpeedPresets == nil {
		e.SpeedPresets = speeds{}
	}
	s.entries[key] = e
	return s.save()
}

// SetRangePresets replaces all range slots of key. Filled slots must hold
// two parseable times.
func (s *Store) SetRangePresets(key string, values Ranges) error {
	for i := range values {
		values[i].Start = strings.TrimSpace(values[i].Start)
		values[i].End = strings.TrimSpace(values[i].End)
		if values[i].Start == "" && values[i].End == "" {
			continue
		}
		if err := validate(values[i].Start, values[i].End); err != nil {
			return fmt.Errorf("slot %d: %w", i+1, err)
		}
	}
	e := s.entry(key)
	e.RangePresets = values[:]
	s.entries[key] = e
	return s.save()
}

// SlotChooser picks a slot (1..Slots) to overwrite when all are in use.
type SlotChooser func(current Ranges) (slot int, ok bool)

// SaveRange stores start/end into the first slot with an empty field.
// When every slot is filled, choose decides which one to overwrite. It
// returns the written slot index, starting at 0.
func (s *Store) SaveRange(key, start, end string, choose SlotChooser) (int, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if err := validate(start, end); err != nil {
		return 0, err
	}
	ranges := s.entry(key).ranges()
	idx := -1
	for i, r := range ranges {
		if r.Empty() {
			idx = i
			break
		}
	}
	if idx < 0 {
		if choose == nil {
			return 0, ErrSlotsFull
		}
		slot, ok := choose(ranges)
		if !ok {
			return 0, ErrCanceled
		}
		return s.Overwrite(key, slot, start, end)
	}
	return idx, s.write(key, idx, start, end)
}

// Overwrite stores start/end into the 1-based slot.
func (s *Store) Overwrite(key string, slot int, start, end string) (int, error) {
	if slot < 1 || slot > Slots {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if err := validate(start, end); err != nil {
		return 0, err
	}
	return slot - 1, s.write(key, slot-1, start, end)
}

func (s *Store) write(key string, idx int, start, end string) error {
	e := s.entry(key)
	r := e.ranges()
	r[idx] = RangePreset{Start: start, End: end}
	e.RangePresets = r[:]
	s.entries[key] = e
	return s.save()
}

// entry returns the stored entry or a fresh one with defaults.
func (s *Store) entry(key string) entry {
	e, ok := s.entries[key]
	if !ok {
		e = entry{SpeedPresets: DefaultSpeeds()}
	}
	if e.SpeedPresets == nil {
		e.SpeedPresets = DefaultSpeeds()
	}
	r := e.ranges()
	e.RangePresets = r[:]
	return e
}

func validate(start, end string) error {
	if _, err := timecode.ParseStrict(start); err != nil {
		return err
	}
	if _, err := timecode.ParseStrict(end); err != nil {
		return err
	}
	return nil
}

// save writes the whole document atomically.
func (s *Store) save() error {
	doc := make(map[string]any, len(s.entries)+len(s.kept))
	for key, msg := range s.kept {
		if _, edited := s.entries[key]; edited {
			delete(s.kept, key)
			continue
		}
		doc[key] = msg
	}
	for key, e := range s.entries {
		doc[key] = e
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".presets-*.json")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	_, werr := tmp.Write(append(data, '\n'))
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// SpeedCeiling is the top of the speed control: 100, or the largest
// preset when one exceeds it.
func SpeedCeiling(values []int) int {
	ceiling := 100
	for _, v := range values {
		ceiling = max(ceiling, v)
	}
	return ceiling
}
