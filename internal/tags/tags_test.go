package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_Key(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		want string
	}{
		{"artist and title", Tag{Path: "/m/x.mp3", Artist: "Rush", Title: "YYZ"}, "Rush - YYZ"},
		{"missing artist", Tag{Path: "/m/x.mp3", Title: "YYZ"}, "Unknown - YYZ"},
		{"missing title", Tag{Path: "/m/02 yyz.flac", Artist: "Rush"}, "Rush - 02 yyz"},
		{"blank tags", Tag{Path: "/m/solo.wav", Artist: "  ", Title: " "}, "Unknown - solo"},
		{"trims", Tag{Path: "/m/x.mp3", Artist: " Rush ", Title: " YYZ "}, "Rush - YYZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tag.Key())
		})
	}
}

func TestTrackKey_UnreadableFallsBackToStem(t *testing.T) {
	assert.Equal(t, "Unknown - missing", TrackKey("/does/not/exist/missing.mp3"))
}

func TestTrackKey_UntaggedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exercise.wav")
	require.NoError(t, os.WriteFile(path, []byte("not really audio"), 0o600))

	assert.Equal(t, "Unknown - exercise", TrackKey(path))
}

func TestTag_Year(t *testing.T) {
	assert.Equal(t, 1981, (&Tag{Date: "1981-02-12"}).Year())
	assert.Equal(t, 1981, (&Tag{Date: "1981"}).Year())
	assert.Equal(t, 0, (&Tag{Date: "81"}).Year())
	assert.Equal(t, 0, (&Tag{}).Year())
}

func TestNumber(t *testing.T) {
	assert.Equal(t, 3, number("3"))
	assert.Equal(t, 3, number("3/12"))
	assert.Equal(t, 0, number(""))
	assert.Equal(t, 0, number("x"))
}

func TestTaglibTags_Get(t *testing.T) {
	tags := taglibTags{"DATE": {"2001"}, "EMPTY": {}}
	assert.Equal(t, "2001", tags.get("ORIGINALDATE", "DATE"))
	assert.Empty(t, tags.get("EMPTY"))
	assert.Empty(t, tags.get("NOPE"))
}

func TestReadCover_FolderArt(t *testing.T) {
	dir := t.TempDir()
	png := []byte("\x89PNG\r\n\x1a\n0000")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folder.png"), png, 0o600))
	track := filepath.Join(dir, "take.wav")
	require.NoError(t, os.WriteFile(track, []byte("RIFF"), 0o600))

	data, mime, err := ReadCover(track)
	require.NoError(t, err)
	assert.Equal(t, png, data)
	assert.Equal(t, "image/png", mime)
}

func TestReadCover_NoArt(t *testing.T) {
	track := filepath.Join(t.TempDir(), "take.wav")
	require.NoError(t, os.WriteFile(track, []byte("RIFF"), 0o600))

	data, mime, err := ReadCover(track)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Empty(t, mime)
}
