package tags

import (
	"github.com/bogem/id3v2/v2"
)

// readMP3 reads ID3v2 frames directly.
func readMP3(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	artist := id3tag.Artist()
	albumArtist := textFrame(id3tag, "TPE2")
	if albumArtist == "" {
		albumArtist = artist
	}
	date := textFrame(id3tag, "TDRC")
	if date == "" {
		date = id3tag.Year()
	}

	return &Tag{
		Path:        path,
		Title:       id3tag.Title(),
		Artist:      artist,
		AlbumArtist: albumArtist,
		Album:       id3tag.Album(),
		Genre:       id3tag.Genre(),
		Date:        date,
		TrackNumber: number(textFrame(id3tag, "TRCK")),
		DiscNumber:  number(textFrame(id3tag, "TPOS")),
	}, nil
}

func textFrame(id3tag *id3v2.Tag, id string) string {
	frames := id3tag.GetFrames(id)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}

// mp3Picture returns the front cover APIC frame, or the first one.
func mp3Picture(path string) ([]byte, string, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Attached picture"}})
	if err != nil {
		return nil, "", err
	}
	defer id3tag.Close()

	var found *id3v2.PictureFrame
	for _, f := range id3tag.GetFrames(id3tag.CommonID("Attached picture")) {
		pic, ok := f.(id3v2.PictureFrame)
		if !ok {
			continue
		}
		if found == nil || pic.PictureType == id3v2.PTFrontCover {
			found = &pic
		}
	}
	if found == nil {
		return nil, "", nil
	}
	return found.Picture, found.MimeType, nil
}
