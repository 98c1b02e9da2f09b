package player

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oggPageBytes builds a raw page. Checksums are not verified by the reader.
func oggPageBytes(flags byte, granule int64, segments []byte) []byte {
	var b bytes.Buffer
	b.WriteString("OggS")
	b.WriteByte(0)
	b.WriteByte(flags)
	var g [8]byte
	binary.LittleEndian.PutUint64(g[:], uint64(granule))
	b.Write(g[:])
	b.Write(make([]byte, 12)) // serial, sequence, checksum
	b.WriteByte(byte(len(segments)))
	b.Write(segments)
	size := 0
	for _, s := range segments {
		size += int(s)
	}
	for i := range size {
		b.WriteByte(byte(i))
	}
	return b.Bytes()
}

func TestReadOggPage(t *testing.T) {
	raw := oggPageBytes(0, 960, []byte{255, 10, 3})
	page, err := readOggPage(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, int64(960), page.granule)
	assert.False(t, page.continued)
	require.Len(t, page.packets, 2)
	assert.Len(t, page.packets[0], 265)
	assert.Len(t, page.packets[1], 3)
	assert.Nil(t, page.tail)
}

func TestReadOggPage_Tail(t *testing.T) {
	raw := oggPageBytes(0, granuleNone, []byte{4, 255})
	page, err := readOggPage(bytes.NewReader(raw))
	require.NoError(t, err)

	require.Len(t, page.packets, 1)
	assert.Len(t, page.tail, 255)
	assert.Equal(t, int64(granuleNone), page.granule)
}

func TestReadOggPage_BadMagic(t *testing.T) {
	raw := oggPageBytes(0, 0, []byte{1})
	raw[0] = 'X'
	_, err := readOggPage(bytes.NewReader(raw))
	assert.True(t, errors.Is(err, errOggMagic))
}

func TestReadOggPage_BadVersion(t *testing.T) {
	raw := oggPageBytes(0, 0, []byte{1})
	raw[4] = 1
	_, err := readOggPage(bytes.NewReader(raw))
	assert.True(t, errors.Is(err, errOggVersion))
}

func TestPacketJoiner(t *testing.T) {
	var j packetJoiner

	first := &oggPage{packets: [][]byte{[]byte("head")}, tail: []byte("ab")}
	got := j.add(first)
	require.Len(t, got, 1)
	assert.Equal(t, "head", string(got[0]))

	// A page with only a continuation keeps accumulating.
	middle := &oggPage{continued: true, tail: []byte("cd")}
	assert.Empty(t, j.add(middle))

	last := &oggPage{continued: true, packets: [][]byte{[]byte("ef"), []byte("next")}}
	got = j.add(last)
	require.Len(t, got, 2)
	assert.Equal(t, "abcdef", string(got[0]))
	assert.Equal(t, "next", string(got[1]))
}

func TestPacketJoiner_DropsOrphanedTail(t *testing.T) {
	var j packetJoiner
	j.add(&oggPage{tail: []byte("lost")})
	got := j.add(&oggPage{packets: [][]byte{[]byte("fresh")}})
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", string(got[0]))
}

func TestLastOggGranule(t *testing.T) {
	var stream []byte
	stream = append(stream, oggPageBytes(0, 0, []byte{20})...)
	stream = append(stream, oggPageBytes(0, 4800, []byte{50})...)
	stream = append(stream, oggPageBytes(oggFlagContinued, granuleNone, []byte{255})...)

	g, err := lastOggGranule(bytes.NewReader(stream))
	require.NoError(t, err)
	assert.Equal(t, int64(4800), g)
}

func TestDetectOggCodec_Unknown(t *testing.T) {
	_, err := detectOggCodec([]byte("FLAC stream"))
	assert.True(t, errors.Is(err, errUnknownOggCodec))
}

func TestNewVorbisCodec(t *testing.T) {
	ident := make([]byte, 30)
	ident[0] = 0x01
	copy(ident[1:], "vorbis")
	ident[11] = 2
	binary.LittleEndian.PutUint32(ident[12:16], 44100)

	c, err := detectOggCodec(ident)
	require.NoError(t, err)
	assert.Equal(t, 44100, c.sampleRate())
	assert.Equal(t, 2, c.channels())
	assert.Equal(t, 0, c.preSkip())

	ready, err := c.header([]byte("comment"))
	require.NoError(t, err)
	assert.False(t, ready)
}

func TestNewVorbisCodec_BadVersion(t *testing.T) {
	ident := make([]byte, 30)
	ident[0] = 0x01
	copy(ident[1:], "vorbis")
	ident[7] = 1
	_, err := detectOggCodec(ident)
	assert.True(t, errors.Is(err, errVorbisHeader))
}

func TestNewOpusCodec_Short(t *testing.T) {
	_, err := detectOggCodec([]byte("OpusHead"))
	assert.True(t, errors.Is(err, errOpusHead))
}
