package player

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

var (
	errOggMagic   = errors.New("ogg: invalid capture pattern")
	errOggVersion = errors.New("ogg: unsupported version")
)

const (
	oggHeaderSize    = 27
	oggFlagContinued = 0x01
	// granuleNone marks a page on which no packet ends.
	granuleNone = -1
)

// oggPage is one decoded Ogg page. Packets are complete as far as this page
// is concerned; tail is a packet that continues on the next page.
type oggPage struct {
	granule   int64
	continued bool
	packets   [][]byte
	tail      []byte
}

// oggPageHeader reads the fixed header and segment table, leaving r at the
// start of the page body. It returns the body size.
func oggPageHeader(r io.Reader) (granule int64, flags byte, table []byte, bodySize int, err error) {
	var hdr [oggHeaderSize]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, nil, 0, err
	}
	if string(hdr[0:4]) != "OggS" {
		return 0, 0, nil, 0, errOggMagic
	}
	if hdr[4] != 0 {
		return 0, 0, nil, 0, errOggVersion
	}

	table = make([]byte, hdr[26])
	if _, err = io.ReadFull(r, table); err != nil {
		return 0, 0, nil, 0, err
	}
	for _, l := range table {
		bodySize += int(l)
	}
	granule = int64(binary.LittleEndian.Uint64(hdr[6:14])) //nolint:gosec // -1 is meaningful
	return granule, hdr[5], table, bodySize, nil
}

// readOggPage reads a full page and splits its body into packets.
func readOggPage(r io.Reader) (*oggPage, error) {
	granule, flags, table, size, err := oggPageHeader(r)
	if err != nil {
		return nil, err
	}
	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}

	page := &oggPage{granule: granule, continued: flags&oggFlagContinued != 0}
	start, end := 0, 0
	for _, l := range table {
		end += int(l)
		if l < 255 {
			page.packets = append(page.packets, body[start:end])
			start = end
		}
	}
	if start < end {
		page.tail = body[start:end]
	}
	return page, nil
}

// packetJoiner reassembles packets that span page boundaries.
type packetJoiner struct {
	pending []byte
}

// add returns the complete packets of page, prefixed by any carried data.
func (j *packetJoiner) add(page *oggPage) [][]byte {
	packets := page.packets
	tail := page.tail
	if j.pending != nil && page.continued {
		if len(packets) > 0 {
			first := append(j.pending, packets[0]...)
			packets = append([][]byte{first}, packets[1:]...)
		} else {
			tail = append(j.pending, tail...)
		}
	}
	j.pending = nil
	if tail != nil {
		j.pending = append([]byte(nil), tail...)
	}
	return packets
}

func (j *packetJoiner) reset() {
	j.pending = nil
}

// lastOggGranule finds the granule position of the last page in the
// stream by scanning backwards from the end.
func lastOggGranule(r io.ReadSeeker) (int64, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	const window = 64 * 1024
	from := max(size-window, 0)
	if _, err := r.Seek(from, io.SeekStart); err != nil {
		return 0, err
	}
	buf := make([]byte, size-from)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}

	for i := bytes.LastIndex(buf, []byte("OggS")); i >= 0; i = bytes.LastIndex(buf[:i], []byte("OggS")) {
		if len(buf)-i < oggHeaderSize || buf[i+4] != 0 {
			continue
		}
		g := int64(binary.LittleEndian.Uint64(buf[i+6 : i+14])) //nolint:gosec // -1 is meaningful
		if g != granuleNone {
			return g, nil
		}
	}
	return 0, errors.New("ogg: no granule position found")
}
