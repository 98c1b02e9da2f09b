package tags

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Common cover art filenames to look for next to the track.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"album.jpg", "album.jpeg", "album.png",
	"front.jpg", "front.jpeg", "front.png",
}

// ReadCover returns the track's artwork and its MIME type. Embedded art
// wins over images in the track's folder. No art is not an error.
func ReadCover(path string) ([]byte, string, error) {
	data, mime, err := embeddedArt(path)
	if err == nil && len(data) > 0 {
		return data, mime, nil
	}
	data, mime = folderArt(filepath.Dir(path))
	return data, mime, nil
}

func embeddedArt(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	m, err := tag.ReadFrom(f)
	f.Close()
	if err == nil {
		if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
			return pic.Data, pic.MIMEType, nil
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3:
		return mp3Picture(path)
	case ExtFLAC:
		return flacPicture(path)
	case ExtM4A, ExtMP4:
		return m4aPicture(path)
	case ExtOPUS, ExtOGG, ExtOGA:
		return taglibPicture(path)
	}
	return nil, "", nil
}

func folderArt(dir string) ([]byte, string) {
	for _, name := range coverArtFilenames {
		for _, candidate := range []string{name, strings.ToUpper(name)} {
			data, err := os.ReadFile(filepath.Join(dir, candidate))
			if err != nil {
				continue
			}
			return data, http.DetectContentType(data)
		}
	}
	return nil, ""
}
