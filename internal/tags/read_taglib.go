package tags

import (
	"net/http"

	"github.com/Sorrow446/go-mp4tag"
	"go.senan.xyz/taglib"
)

// readTaglib reads M4A and Ogg tags through TagLib.
func readTaglib(path string) (*Tag, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(raw)

	artist := tags.get(taglib.Artist)
	albumArtist := tags.get(taglib.AlbumArtist)
	if albumArtist == "" {
		albumArtist = artist
	}
	return &Tag{
		Path:        path,
		Title:       tags.get(taglib.Title),
		Artist:      artist,
		AlbumArtist: albumArtist,
		Album:       tags.get(taglib.Album),
		Genre:       tags.get(taglib.Genre),
		Date:        tags.get(taglib.Date, taglib.OriginalDate),
		TrackNumber: number(tags.get(taglib.TrackNumber)),
		DiscNumber:  number(tags.get(taglib.DiscNumber)),
	}, nil
}

// m4aPicture reads the covr atom.
func m4aPicture(path string) ([]byte, string, error) {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer mp4.Close()

	tags, err := mp4.Read()
	if err != nil {
		return nil, "", err
	}
	for _, pic := range tags.Pictures {
		if pic != nil && len(pic.Data) > 0 {
			return pic.Data, http.DetectContentType(pic.Data), nil
		}
	}
	return nil, "", nil
}

// taglibPicture covers Ogg files, whose art lives in METADATA_BLOCK_PICTURE.
func taglibPicture(path string) ([]byte, string, error) {
	data, err := taglib.ReadImage(path)
	if err != nil || len(data) == 0 {
		return nil, "", err
	}
	return data, http.DetectContentType(data), nil
}
