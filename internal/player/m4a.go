package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/alac"
	"github.com/llehouerou/go-faad2"
	"github.com/llehouerou/go-m4a"
)

// m4aDecoder reads access units out of an MP4 container and decodes them
// with faad2 (AAC) or the pure Go ALAC decoder.
type m4aDecoder struct {
	container *m4a.Reader
	closer    io.Closer
	codec     m4a.CodecType
	rate      int
	channels  int
	bits      int
	total     int

	aac  *faad2.Decoder
	alac *alac.Alac

	unit    int
	frames  [][2]float64
	offset  int
	discard int
	err     error
}

func decodeM4A(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	container, err := m4a.Open(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}

	d := &m4aDecoder{
		container: container,
		closer:    rc,
		codec:     container.Codec(),
		rate:      int(container.SampleRate()),
		channels:  int(container.Channels()),
		bits:      int(container.SampleSize()),
	}
	d.total = int(container.Duration().Seconds() * float64(d.rate))

	ctx := context.Background()
	switch d.codec {
	case m4a.CodecAAC:
		dec, err := faad2.NewDecoder(ctx)
		if err != nil {
			return nil, beep.Format{}, err
		}
		if err := dec.Init(ctx, container.CodecConfig()); err != nil {
			dec.Close(ctx)
			return nil, beep.Format{}, err
		}
		d.aac = dec
	case m4a.CodecALAC:
		dec, err := alac.NewWithConfig(alac.Config{
			SampleRate:  d.rate,
			SampleSize:  d.bits,
			NumChannels: d.channels,
			FrameSize:   4096,
		})
		if err != nil {
			return nil, beep.Format{}, err
		}
		d.alac = dec
	default:
		return nil, beep.Format{}, fmt.Errorf("m4a: unsupported codec %s", d.codec)
	}

	precision := 2
	if d.codec == m4a.CodecALAC && d.bits == 24 {
		precision = 3
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(d.rate),
		NumChannels: 2,
		Precision:   precision,
	}
	return d, format, nil
}

func (d *m4aDecoder) Stream(samples [][2]float64) (n int, ok bool) {
	if d.err != nil {
		return 0, false
	}

	for n < len(samples) {
		if d.offset < len(d.frames) {
			if d.discard > 0 {
				drop := min(d.discard, len(d.frames)-d.offset)
				d.offset += drop
				d.discard -= drop
				continue
			}
			c := copy(samples[n:], d.frames[d.offset:])
			d.offset += c
			n += c
			continue
		}

		if d.unit >= d.container.SampleCount() {
			return n, n > 0
		}
		if err := d.decodeUnit(); err != nil {
			d.err = err
			return n, n > 0
		}
	}
	return n, true
}

func (d *m4aDecoder) decodeUnit() error {
	data, err := d.container.ReadSample(d.unit)
	if err != nil {
		return err
	}
	d.unit++
	d.offset = 0

	switch d.codec {
	case m4a.CodecAAC:
		pcm, err := d.aac.Decode(context.Background(), data)
		if err != nil {
			return err
		}
		d.frames = int16Frames(pcm, d.channels)
	case m4a.CodecALAC:
		d.frames = alacFrames(d.alac.Decode(data), d.channels, d.bits)
	default:
		return errors.New("m4a: unsupported codec")
	}
	return nil
}

func int16Frames(pcm []int16, channels int) [][2]float64 {
	channels = max(channels, 1)
	frames := make([][2]float64, len(pcm)/channels)
	for i := range frames {
		l := float64(pcm[i*channels]) / 32768.0
		r := l
		if channels > 1 {
			r = float64(pcm[i*channels+1]) / 32768.0
		}
		frames[i] = [2]float64{l, r}
	}
	return frames
}

// alacFrames converts little-endian interleaved 16 or 24-bit PCM.
func alacFrames(data []byte, channels, bits int) [][2]float64 {
	channels = max(channels, 1)
	width := 2
	scale := 32768.0
	if bits == 24 {
		width = 3
		scale = 8388608.0
	}
	stride := width * channels
	frames := make([][2]float64, len(data)/stride)
	for i := range frames {
		off := i * stride
		l := float64(pcmSample(data[off:], width)) / scale
		r := l
		if channels > 1 {
			r = float64(pcmSample(data[off+width:], width)) / scale
		}
		frames[i] = [2]float64{l, r}
	}
	return frames
}

func pcmSample(b []byte, width int) int32 {
	if width == 2 {
		return int32(int16(uint16(b[0]) | uint16(b[1])<<8))
	}
	v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	if v&0x800000 != 0 {
		v |= ^0xFFFFFF
	}
	return v
}

func (d *m4aDecoder) Err() error { return d.err }
func (d *m4aDecoder) Len() int   { return d.total }

func (d *m4aDecoder) Position() int {
	t := d.container.SampleTime(d.unit)
	pos := int(t.Seconds()*float64(d.rate)) - (len(d.frames) - d.offset) + d.discard
	return max(pos, 0)
}

// Seek jumps to the access unit holding p and drops the samples before p.
func (d *m4aDecoder) Seek(p int) error {
	p = max(0, min(p, d.total))
	target := time.Duration(float64(p) / float64(d.rate) * float64(time.Second))

	d.unit = d.container.SeekToTime(target)
	unitStart := int(d.container.SampleTime(d.unit).Seconds() * float64(d.rate))
	d.frames = nil
	d.offset = 0
	d.discard = max(p-unitStart, 0)
	d.err = nil
	return nil
}

func (d *m4aDecoder) Close() error {
	if d.aac != nil {
		d.aac.Close(context.Background())
	}
	return d.closer.Close()
}
