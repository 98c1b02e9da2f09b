package player

import (
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
)

// oggDecoder streams Opus or Vorbis audio out of an Ogg container.
type oggDecoder struct {
	r         io.ReadSeekCloser
	codec     oggCodec
	joiner    packetJoiner
	dataStart int64
	total     int

	queue  [][]byte
	pcm    []float32
	pcmLen int
	pcmPos int

	pos  int // next output sample
	skip int // samples still to discard before output
	err  error
}

func decodeOgg(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	d := &oggDecoder{r: rc}
	if err := d.readHeaders(); err != nil {
		return nil, beep.Format{}, err
	}

	var err error
	if d.dataStart, err = rc.Seek(0, io.SeekCurrent); err != nil {
		return nil, beep.Format{}, err
	}
	last, err := lastOggGranule(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	d.total = max(int(last)-d.codec.preSkip(), 0)
	if _, err := rc.Seek(d.dataStart, io.SeekStart); err != nil {
		return nil, beep.Format{}, err
	}

	d.pcm = make([]float32, d.codec.maxFrame()*d.codec.channels())
	d.skip = d.codec.preSkip()

	format := beep.Format{
		SampleRate:  beep.SampleRate(d.codec.sampleRate()),
		NumChannels: 2,
		Precision:   2,
	}
	return d, format, nil
}

// readHeaders detects the codec and feeds it header packets until ready.
// Audio packets sharing the last header page are queued.
func (d *oggDecoder) readHeaders() error {
	for {
		page, err := readOggPage(d.r)
		if err != nil {
			return err
		}
		packets := d.joiner.add(page)
		for i, pkt := range packets {
			if d.codec == nil {
				if d.codec, err = detectOggCodec(pkt); err != nil {
					return err
				}
				continue
			}
			ready, err := d.codec.header(pkt)
			if err != nil {
				return err
			}
			if ready {
				d.queue = append(d.queue, packets[i+1:]...)
				return nil
			}
		}
	}
}

func (d *oggDecoder) Stream(samples [][2]float64) (n int, ok bool) {
	if d.err != nil {
		return 0, false
	}
	nch := d.codec.channels()

	for n < len(samples) {
		if d.pcmPos < d.pcmLen {
			if d.skip > 0 {
				drop := min(d.skip, d.pcmLen-d.pcmPos)
				d.pcmPos += drop
				d.skip -= drop
				continue
			}
			i := d.pcmPos * nch
			samples[n][0] = float64(d.pcm[i])
			if nch > 1 {
				samples[n][1] = float64(d.pcm[i+1])
			} else {
				samples[n][1] = samples[n][0]
			}
			d.pcmPos++
			d.pos++
			n++
			continue
		}

		pkt, err := d.nextPacket()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				d.err = err
			}
			return n, n > 0
		}
		frames, err := d.codec.decode(pkt, d.pcm)
		if err != nil {
			// Corrupt packets are skipped, not fatal.
			continue
		}
		d.pcmLen = frames
		d.pcmPos = 0
	}
	return n, true
}

func (d *oggDecoder) nextPacket() ([]byte, error) {
	for len(d.queue) == 0 {
		page, err := readOggPage(d.r)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, io.EOF
			}
			return nil, err
		}
		d.queue = d.joiner.add(page)
	}
	pkt := d.queue[0]
	d.queue = d.queue[1:]
	return pkt, nil
}

func (d *oggDecoder) Err() error    { return d.err }
func (d *oggDecoder) Len() int      { return d.total }
func (d *oggDecoder) Position() int { return d.pos }

// Seek scans page headers for the last page ending before p, resumes
// decoding right after it and discards samples up to p.
func (d *oggDecoder) Seek(p int) error {
	p = max(0, min(p, d.total))
	target := int64(p + d.codec.preSkip())

	if _, err := d.r.Seek(d.dataStart, io.SeekStart); err != nil {
		return err
	}
	resumeAt := d.dataStart
	var before int64
	for {
		offset, err := d.r.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
		granule, _, _, size, err := oggPageHeader(d.r)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return err
		}
		if granule != granuleNone {
			if granule >= target {
				break
			}
			before = granule
			resumeAt = offset
		}
		if _, err := d.r.Seek(int64(size), io.SeekCurrent); err != nil {
			return err
		}
	}

	// resumeAt is the page holding the last packet ending before target;
	// skip over it so decoding starts on a packet boundary.
	if _, err := d.r.Seek(resumeAt, io.SeekStart); err != nil {
		return err
	}
	if resumeAt != d.dataStart {
		if _, err := readOggPage(d.r); err != nil {
			return err
		}
	} else {
		before = 0
	}

	d.joiner.reset()
	d.queue = nil
	d.pcmLen, d.pcmPos = 0, 0
	d.codec.reset()
	d.err = nil
	d.pos = p
	d.skip = int(target - before)
	return nil
}

func (d *oggDecoder) Close() error {
	return d.r.Close()
}
