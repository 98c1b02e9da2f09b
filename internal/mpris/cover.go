//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/google/uuid"

	"github.com/llehouerou/practicehard/internal/tags"
)

// artNamespace scopes the cache names of extracted artwork.
var artNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("practicehard:art"))

// ArtPath returns a file holding the track's artwork, the same picture
// the TUI shows, or "" when the track has none. Pictures are written to
// the cache directory once per track version.
func ArtPath(track string) string {
	info, err := os.Stat(track)
	if err != nil {
		return ""
	}
	version := track + "@" + strconv.FormatInt(info.ModTime().UnixNano(), 10)
	name := uuid.NewSHA1(artNamespace, []byte(version)).String()
	rel := filepath.Join("practicehard", "art", name)

	if cached, err := xdg.SearchCacheFile(rel); err == nil {
		return cached
	}
	data, _, err := tags.ReadCover(track)
	if err != nil || len(data) == 0 {
		return ""
	}
	path, err := xdg.CacheFile(rel)
	if err != nil {
		return ""
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ""
	}
	return path
}
