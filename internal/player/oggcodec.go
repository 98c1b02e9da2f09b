package player

import (
	"encoding/binary"
	"errors"

	"github.com/jfreymuth/vorbis"
	"github.com/jj11hh/opus"
)

const opusSampleRate = 48000

var (
	errUnknownOggCodec = errors.New("ogg: not an Opus or Vorbis stream")
	errOpusHead        = errors.New("opus: invalid OpusHead")
	errVorbisHeader    = errors.New("vorbis: invalid identification header")
	errVorbisNotReady  = errors.New("vorbis: headers incomplete")
)

// oggCodec is the codec half of an Ogg stream.
type oggCodec interface {
	sampleRate() int
	channels() int
	// preSkip is the number of leading samples the encoder asks to discard.
	preSkip() int
	// header consumes one header packet after the identification packet.
	// It returns true once the codec is ready for audio.
	header(packet []byte) (bool, error)
	// decode writes interleaved float32 samples and returns samples per channel.
	decode(packet []byte, pcm []float32) (int, error)
	// maxFrame is the largest number of samples per channel one packet yields.
	maxFrame() int
	reset()
}

func detectOggCodec(first []byte) (oggCodec, error) {
	switch {
	case len(first) >= 8 && string(first[:8]) == "OpusHead":
		return newOpusCodec(first)
	case len(first) >= 7 && first[0] == 0x01 && string(first[1:7]) == "vorbis":
		return newVorbisCodec(first)
	}
	return nil, errUnknownOggCodec
}

type opusCodec struct {
	dec  *opus.Decoder
	nch  int
	skip int
}

func newOpusCodec(head []byte) (*opusCodec, error) {
	if len(head) < 19 || head[8] != 1 {
		return nil, errOpusHead
	}
	nch := int(head[9])
	dec, err := opus.NewDecoder(opusSampleRate, nch)
	if err != nil {
		return nil, err
	}
	return &opusCodec{
		dec:  dec,
		nch:  nch,
		skip: int(binary.LittleEndian.Uint16(head[10:12])),
	}, nil
}

func (c *opusCodec) sampleRate() int { return opusSampleRate }
func (c *opusCodec) channels() int   { return c.nch }
func (c *opusCodec) preSkip() int    { return c.skip }
func (c *opusCodec) maxFrame() int   { return 5760 }
func (c *opusCodec) reset()          {}

// header swallows the OpusTags packet.
func (c *opusCodec) header(_ []byte) (bool, error) {
	return true, nil
}

func (c *opusCodec) decode(packet []byte, pcm []float32) (int, error) {
	return c.dec.DecodeFloat32(packet, pcm)
}

type vorbisCodec struct {
	dec     *vorbis.Decoder
	nch     int
	rate    int
	headers [][]byte
}

func newVorbisCodec(ident []byte) (*vorbisCodec, error) {
	// [7:11] version, [11] channels, [12:16] sample rate
	if len(ident) < 16 || binary.LittleEndian.Uint32(ident[7:11]) != 0 {
		return nil, errVorbisHeader
	}
	return &vorbisCodec{
		nch:     int(ident[11]),
		rate:    int(binary.LittleEndian.Uint32(ident[12:16])),
		headers: [][]byte{append([]byte(nil), ident...)},
	}, nil
}

func (c *vorbisCodec) sampleRate() int { return c.rate }
func (c *vorbisCodec) channels() int   { return c.nch }
func (c *vorbisCodec) preSkip() int    { return 0 }
func (c *vorbisCodec) maxFrame() int   { return 8192 }

// header collects the comment and setup packets, then builds the decoder.
func (c *vorbisCodec) header(packet []byte) (bool, error) {
	if c.dec != nil {
		return true, nil
	}
	c.headers = append(c.headers, append([]byte(nil), packet...))
	if len(c.headers) < 3 {
		return false, nil
	}
	dec := &vorbis.Decoder{}
	for _, h := range c.headers {
		if err := dec.ReadHeader(h); err != nil {
			return false, err
		}
	}
	c.dec = dec
	c.headers = nil
	return true, nil
}

func (c *vorbisCodec) decode(packet []byte, pcm []float32) (int, error) {
	if c.dec == nil {
		return 0, errVorbisNotReady
	}
	out, err := c.dec.Decode(packet)
	if err != nil {
		return 0, err
	}
	n := copy(pcm, out)
	return n / c.nch, nil
}

func (c *vorbisCodec) reset() {
	if c.dec != nil {
		c.dec.Clear()
	}
}
