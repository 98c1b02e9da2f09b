package presets

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/practicehard/internal/timecode"
)

const key = "Artist - Song"

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Practice Hard", "presets.json")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	s, _ := openTemp(t)
	assert.Empty(t, s.Keys())

	sp, ranges := s.Get(key)
	assert.Equal(t, []int{20, 50, 80}, sp)
	assert.Equal(t, Ranges{}, ranges)
}

func TestOpen_CorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open(path)
	assert.True(t, errors.Is(err, ErrPersistence), "err = %v", err)
	require.NotNil(t, s)
	sp, _ := s.Get(key)
	assert.Equal(t, DefaultSpeeds(), sp)
}

func TestOpen_LegacyAndShortEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	doc := `{
  "Old - Entry": {"speed_presets": 60, "range_presets": [["00:10", "00:20"]]},
  "Odd - Slots": {"speed_presets": [70], "range_presets": [[1, 2], ["00:05", "00:09"], ["", ""], ["00:01", "00:02"]]}
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Open(path)
	require.NoError(t, err)

	sp, ranges := s.Get("Old - Entry")
	assert.Equal(t, []int{60}, sp)
	assert.Equal(t, RangePreset{Start: "00:10", End: "00:20"}, ranges[0])
	assert.True(t, ranges[1].Empty())
	assert.True(t, ranges[2].Empty())

	sp, ranges = s.Get("Odd - Slots")
	assert.Equal(t, []int{70}, sp)
	assert.True(t, ranges[0].Empty(), "non-string pair degrades to empty")
	assert.Equal(t, RangePreset{Start: "00:05", End: "00:09"}, ranges[1])
}

func TestOpen_SkipsMalformedEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	doc := `{"Good - One": {"speed_presets": [90]}, "Bad - One": {"speed_presets": "fast"}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Open(path)
	assert.True(t, errors.Is(err, ErrPersistence))
	assert.Equal(t, []string{"Good - One"}, s.Keys())
}

func TestSave_KeepsMalformedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	doc := `{"A - B": {"speed_presets": "fast", "range_presets": []}, "C - D": {"speed_presets": [50]}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Open(path)
	require.ErrorIs(t, err, ErrPersistence)
	require.NoError(t, s.SetSpeedPresets("C - D", []int{60}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &onDisk))
	require.Contains(t, onDisk, "A - B")
	assert.JSONEq(t, `{"speed_presets": "fast", "range_presets": []}`, string(onDisk["A - B"]))

	reopened, err := Open(path)
	require.ErrorIs(t, err, ErrPersistence, "entry is still malformed")
	sp, _ := reopened.Get("C - D")
	assert.Equal(t, []int{60}, sp)
}

func TestSave_EditReplacesMalformedEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"A - B": {"speed_presets": "fast"}}`), 0o644))

	s, _ := Open(path)
	require.NoError(t, s.SetSpeedPresets("A - B", []int{70}))

	reopened, err := Open(path)
	require.NoError(t, err)
	sp, _ := reopened.Get("A - B")
	assert.Equal(t, []int{70}, sp)
}

func TestSetSpeedPresets_WritesThrough(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.SetSpeedPresets(key, []int{40, 75, 110}))

	reopened, err := Open(path)
	require.NoError(t, err)
	sp, _ := reopened.Get(key)
	assert.Equal(t, []int{40, 75, 110}, sp)
}

func TestSetSpeedPresets_Invalid(t *testing.T) {
	s, path := openTemp(t)
	err := s.SetSpeedPresets(key, []int{50, 0})
	assert.True(t, errors.Is(err, ErrInvalidSpeed))
	err = s.SetSpeedPresets(key, []int{201})
	assert.True(t, errors.Is(err, ErrInvalidSpeed))

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "nothing written")
}

func TestFileShape(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.SetRangePresets(key, Ranges{{Start: "00:30", End: "01:00"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	entry := doc[key]
	assert.JSONEq(t, `[20, 50, 80]`, string(entry["speed_presets"]))
	assert.JSONEq(t, `[["00:30", "01:00"], ["", ""], ["", ""]]`, string(entry["range_presets"]))
}

func TestSetRangePresets_Validates(t *testing.T) {
	s, _ := openTemp(t)
	err := s.SetRangePresets(key, Ranges{{}, {Start: "00:10", End: "soon"}})
	assert.True(t, errors.Is(err, timecode.ErrMalformed))

	require.NoError(t, s.SetRangePresets(key, Ranges{{Start: " 00:10 ", End: "20 "}}))
	_, ranges := s.Get(key)
	assert.Equal(t, RangePreset{Start: "00:10", End: "20"}, ranges[0])
}

func TestSaveRange_FirstEmptySlot(t *testing.T) {
	s, _ := openTemp(t)

	idx, err := s.SaveRange(key, "00:30", "01:00", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, idx, "all slots empty writes slot 0")

	idx, err = s.SaveRange(key, "01:00", "01:30", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestSaveRange_HalfFilledSlotCountsAsEmpty(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.SetRangePresets(key, Ranges{
		{Start: "00:01", End: "00:02"},
		{Start: "00:03", End: "00:04"},
		{Start: "00:05", End: "00:06"},
	}))
	// SetRangePresets rejects half-filled slots, so plant one directly.
	e := s.entries[key]
	e.RangePresets[2] = RangePreset{Start: "00:05"}
	s.entries[key] = e

	idx, err := s.SaveRange(key, "00:10", "00:20", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestSaveRange_AllFull(t *testing.T) {
	s, _ := openTemp(t)
	full := Ranges{
		{Start: "00:01", End: "00:02"},
		{Start: "00:03", End: "00:04"},
		{Start: "00:05", End: "00:06"},
	}
	require.NoError(t, s.SetRangePresets(key, full))

	_, err := s.SaveRange(key, "00:10", "00:20", nil)
	assert.True(t, errors.Is(err, ErrSlotsFull))

	_, err = s.SaveRange(key, "00:10", "00:20", func(Ranges) (int, bool) { return 0, false })
	assert.True(t, errors.Is(err, ErrCanceled))

	var offered Ranges
	idx, err := s.SaveRange(key, "00:10", "00:20", func(current Ranges) (int, bool) {
		offered = current
		return 2, true
	})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, full, offered)

	_, ranges := s.Get(key)
	assert.Equal(t, RangePreset{Start: "00:10", End: "00:20"}, ranges[1])
	assert.Equal(t, full[0], ranges[0])
}

func TestSaveRange_RejectsBadTimes(t *testing.T) {
	s, _ := openTemp(t)
	_, err := s.SaveRange(key, "00:10.5", "00:20", nil)
	assert.True(t, errors.Is(err, timecode.ErrMalformed))
	assert.Empty(t, s.Keys())
}

func TestOverwrite_InvalidSlot(t *testing.T) {
	s, _ := openTemp(t)
	for _, slot := range []int{0, 4} {
		_, err := s.Overwrite(key, slot, "00:01", "00:02")
		assert.True(t, errors.Is(err, ErrInvalidSlot))
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// The parent of the document is a regular file, so writes fail.
	s, err := Open(filepath.Join(blocker, "presets.json"))
	require.Error(t, err)

	err = s.SetSpeedPresets(key, []int{33})
	assert.True(t, errors.Is(err, ErrPersistence))
	sp, _ := s.Get(key)
	assert.Equal(t, []int{33}, sp)
}

func TestSpeedCeiling(t *testing.T) {
	assert.Equal(t, 100, SpeedCeiling(nil))
	assert.Equal(t, 100, SpeedCeiling([]int{20, 50, 80}))
	assert.Equal(t, 150, SpeedCeiling([]int{20, 150, 120}))
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	assert.Equal(t, "presets.json", filepath.Base(p))
	assert.Equal(t, "Practice Hard", filepath.Base(filepath.Dir(p)))
}
