package tags

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
)

// Read returns the tags of path. dhowden/tag handles most files; a
// format-specific reader takes over when it fails.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch strings.ToLower(filepath.Ext(path)) {
		case ExtMP3:
			// dhowden/tag trips over some UTF-16 ID3 frames
			return readMP3(path)
		case ExtFLAC:
			return readFLAC(path)
		case ExtM4A, ExtMP4, ExtOPUS, ExtOGG, ExtOGA:
			return readTaglib(path)
		}
		return nil, err
	}

	track, _ := m.Track()
	disc, _ := m.Disc()
	albumArtist := m.AlbumArtist()
	if albumArtist == "" {
		albumArtist = m.Artist()
	}
	var date string
	if m.Year() > 0 {
		date = strconv.Itoa(m.Year())
	}

	return &Tag{
		Path:        path,
		Title:       m.Title(),
		Artist:      m.Artist(),
		AlbumArtist: albumArtist,
		Album:       m.Album(),
		Genre:       m.Genre(),
		Date:        date,
		TrackNumber: track,
		DiscNumber:  disc,
	}, nil
}
