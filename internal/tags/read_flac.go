package tags

import (
	"errors"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

// readFLAC reads the Vorbis comment block directly.
func readFLAC(path string) (*Tag, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, err
	}

	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, err
		}
		get := func(key string) string {
			values, err := cmts.Get(key)
			if err != nil || len(values) == 0 {
				return ""
			}
			return values[0]
		}
		artist := get(flacvorbis.FIELD_ARTIST)
		albumArtist := get("ALBUMARTIST")
		if albumArtist == "" {
			albumArtist = artist
		}
		date := get(flacvorbis.FIELD_DATE)
		if date == "" {
			date = get("YEAR")
		}
		return &Tag{
			Path:        path,
			Title:       get(flacvorbis.FIELD_TITLE),
			Artist:      artist,
			AlbumArtist: albumArtist,
			Album:       get(flacvorbis.FIELD_ALBUM),
			Genre:       get(flacvorbis.FIELD_GENRE),
			Date:        date,
			TrackNumber: number(get(flacvorbis.FIELD_TRACKNUMBER)),
			DiscNumber:  number(get("DISCNUMBER")),
		}, nil
	}
	return nil, errors.New("flac: no vorbis comment block")
}

// flacPicture returns the front cover picture block, or the first one.
func flacPicture(path string) ([]byte, string, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, "", err
	}

	var found *flacpicture.MetadataBlockPicture
	for _, meta := range f.Meta {
		if meta.Type != goflac.Picture {
			continue
		}
		pic, err := flacpicture.ParseFromMetaDataBlock(*meta)
		if err != nil {
			continue
		}
		if found == nil || pic.PictureType == flacpicture.PictureTypeFrontCover {
			found = pic
		}
	}
	if found == nil {
		return nil, "", nil
	}
	return found.ImageData, found.MIME, nil
}
