package sortedlist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/xgzlucario/sortedlist/option"
)

const magicNumber uint64 = 0x736f72746c697374

var (
	order = binary.LittleEndian

	footerSize = binary.Size(footer{})
)

// footer closes a snapshot image.
// +-----------------+
// |  sorted prefix  | <--+
// +-----------------+    | zstd payload
// |  shadow prefix  | ---+
// +-----------------+
// |     footer      |
// +-----------------+
type footer struct {
	Size        uint64
	Capacity    uint64
	InitialCap  uint64
	PayloadSize uint64
	Ascending   uint32
	GrowLocked  uint32
	CRC         uint32
	Pad         uint32
	MagicNumber uint64
}

// Dump serializes the list to a snapshot image: both valid prefixes
// length-prefix encoded with enc, zstd compressed, closed by a fixed
// footer carrying a crc32 of the payload.
func (l *List[T]) Dump(enc func(dst []byte, v T) []byte) []byte {
	payload := make([]byte, 0, l.size*8*2)
	elem := make([]byte, 0, 64)

	appendPrefix := func(src []T) {
		for i := 0; i < l.size; i++ {
			elem = enc(elem[:0], src[i])
			payload = binary.AppendUvarint(payload, uint64(len(elem)))
			payload = append(payload, elem...)
		}
	}
	appendPrefix(l.sorted)
	appendPrefix(l.shadow)

	dst := compress(payload, make([]byte, 0, len(payload)/2+footerSize))

	f := footer{
		Size:        uint64(l.size),
		Capacity:    uint64(len(l.sorted)),
		InitialCap:  uint64(l.initialCap),
		PayloadSize: uint64(len(dst)),
		CRC:         crc32.ChecksumIEEE(dst),
		MagicNumber: magicNumber,
	}
	if l.ascending {
		f.Ascending = 1
	}
	if l.growLocked {
		f.GrowLocked = 1
	}

	buf := bytes.NewBuffer(dst)
	binary.Write(buf, order, f)
	return buf.Bytes()
}

// Load rebuilds a list from a snapshot image produced by Dump. Both
// prefixes are restored byte-exactly; no re-sorting happens.
func Load[T any](data []byte, cmp func(a, b T) int, dec func(src []byte) (T, error)) (*List[T], error) {
	if len(data) < footerSize {
		return nil, fmt.Errorf("%w: image too short", ErrBadMagic)
	}

	var f footer
	r := bytes.NewReader(data[len(data)-footerSize:])
	if err := binary.Read(r, order, &f); err != nil {
		return nil, err
	}
	if f.MagicNumber != magicNumber {
		return nil, ErrBadMagic
	}

	if uint64(len(data)-footerSize) != f.PayloadSize {
		return nil, fmt.Errorf("%w: payload size mismatch", ErrChecksum)
	}
	compressed := data[:len(data)-footerSize]
	if crc32.ChecksumIEEE(compressed) != f.CRC {
		return nil, ErrChecksum
	}

	payload, err := decompress(compressed, nil)
	if err != nil {
		return nil, err
	}

	l := New[T](cmp, &option.Option{
		Ascending: f.Ascending == 1,
		Capacity:  int(f.InitialCap),
	})
	l.sorted = make([]T, f.Capacity)
	l.shadow = make([]T, f.Capacity)
	l.size = int(f.Size)
	l.growLocked = f.GrowLocked == 1

	readPrefix := func(dst []T) error {
		for i := 0; i < l.size; i++ {
			n, used := binary.Uvarint(payload)
			if used <= 0 || uint64(len(payload)-used) < n {
				return fmt.Errorf("%w: truncated element", ErrChecksum)
			}
			v, err := dec(payload[used : used+int(n)])
			if err != nil {
				return err
			}
			dst[i] = v
			payload = payload[used+int(n):]
		}
		return nil
	}
	if err := readPrefix(l.sorted); err != nil {
		return nil, err
	}
	if err := readPrefix(l.shadow); err != nil {
		return nil, err
	}

	return l, nil
}
