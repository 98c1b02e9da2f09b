// Package tags reads the metadata and artwork of the track being practiced.
package tags

import (
	"path/filepath"
	"strconv"
	"strings"
)

// File extensions with tag support.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// UnknownArtist is used in track keys when the artist tag is missing.
const UnknownArtist = "Unknown"

// Tag is the metadata shown for the loaded track.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string
	Date        string
	TrackNumber int
	DiscNumber  int
}

// Year derives the year from Date, 0 if absent.
func (t *Tag) Year() int {
	if len(t.Date) < 4 {
		return 0
	}
	y, _ := strconv.Atoi(t.Date[:4])
	return y
}

// Key identifies the track for preset storage: "artist - title".
// Different files with the same artist and title share presets.
func (t *Tag) Key() string {
	artist := strings.TrimSpace(t.Artist)
	if artist == "" {
		artist = UnknownArtist
	}
	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = Stem(t.Path)
	}
	return artist + " - " + title
}

// Stem is the file name without directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TrackKey reads path's tags and returns its preset key. Unreadable tags
// fall back to "Unknown - <file stem>".
func TrackKey(path string) string {
	t, err := Read(path)
	if err != nil {
		t = &Tag{Path: path}
	}
	return t.Key()
}

// taglibTags wraps a taglib result map.
type taglibTags map[string][]string

// get returns the first value for any of the given keys.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// number parses "N" or "N/M" and returns N.
func number(s string) int {
	if idx := strings.Index(s, "/"); idx >= 0 {
		s = s[:idx]
	}
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
