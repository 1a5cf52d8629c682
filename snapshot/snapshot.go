// Package snapshot persists a sieve result so runs can be compared offline.
//
// Format (little endian):
//
//	[4]byte  magic "SVBM"
//	uint8    format version
//	uint8    codec
//	uint64   cell count
//	uint64   stored payload length (0 = stored uncompressed)
//	[]byte   payload: the marks packed 1 bit per cell, block-compressed
//
// The codec byte makes the file self-describing; Read does not need to be
// told how the snapshot was written. A compressed payload that would not
// shrink is stored raw, signalled by a zero stored length.
package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/sievebench/sieve"
)

var magic = [4]byte{'S', 'V', 'B', 'M'}

const formatVersion = 1

// Codec selects the payload compression algorithm.
type Codec uint8

const (
	// CodecNone stores the packed marks uncompressed.
	CodecNone Codec = 0
	// CodecLZ4 uses LZ4 block compression (fast).
	CodecLZ4 Codec = 1
	// CodecZstd uses zstd block compression (better ratio).
	CodecZstd Codec = 2
)

// String returns the canonical lowercase codec name.
func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecLZ4:
		return "lz4"
	case CodecZstd:
		return "zstd"
	default:
		return fmt.Sprintf("codec(%d)", uint8(c))
	}
}

// ParseCodec parses a canonical codec name.
func ParseCodec(s string) (Codec, error) {
	switch s {
	case "none":
		return CodecNone, nil
	case "lz4":
		return CodecLZ4, nil
	case "zstd":
		return CodecZstd, nil
	default:
		return 0, fmt.Errorf("unknown snapshot codec: %q", s)
	}
}

// Marks is a decoded snapshot. It satisfies sieve.Tester, so a snapshot can
// be fed back into verification or diffed against a later run.
type Marks struct {
	words []uint64
	n     int64
}

// Test reports whether cell i was marked in the snapshot.
func (m *Marks) Test(i int64) bool {
	return m.words[i>>6]&(1<<(uint64(i)&63)) != 0
}

// Len returns the number of cells in the snapshot.
func (m *Marks) Len() int64 { return m.n }

// Write packs the marks in t and writes a snapshot to w using the given
// codec.
func Write(w io.Writer, t sieve.Tester, codec Codec) error {
	raw := pack(t)

	stored, storedLen, err := compress(raw, codec)
	if err != nil {
		return fmt.Errorf("snapshot compress: %w", err)
	}

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	header := []any{uint8(formatVersion), uint8(codec), uint64(t.Len()), storedLen}
	for _, v := range header {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	if _, err := w.Write(stored); err != nil {
		return err
	}
	return nil
}

// Read decodes a snapshot written by Write.
func Read(r io.Reader) (*Marks, error) {
	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return nil, err
	}
	if m != magic {
		return nil, fmt.Errorf("not a sieve snapshot (bad magic %q)", m[:])
	}

	var version, codecByte uint8
	var cells, storedLen uint64
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", version)
	}
	if err := binary.Read(r, binary.LittleEndian, &codecByte); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &cells); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &storedLen); err != nil {
		return nil, err
	}

	rawSize := packedSize(int64(cells))
	readLen := storedLen
	if readLen == 0 {
		readLen = uint64(rawSize)
	}
	stored := make([]byte, readLen)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, err
	}

	raw := stored
	if storedLen != 0 {
		var err error
		raw, err = decompress(stored, Codec(codecByte), rawSize)
		if err != nil {
			return nil, fmt.Errorf("snapshot decompress: %w", err)
		}
	}
	if len(raw) != rawSize {
		return nil, fmt.Errorf("snapshot payload is %d bytes, expected %d", len(raw), rawSize)
	}

	words := make([]uint64, (cells+63)/64)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(raw[i*8:])
	}
	return &Marks{words: words, n: int64(cells)}, nil
}

// packedSize returns the byte length of the packed mark payload for n cells,
// padded to whole uint64 words.
func packedSize(n int64) int {
	return int((n + 63) / 64 * 8)
}

func pack(t sieve.Tester) []byte {
	n := t.Len()
	raw := make([]byte, packedSize(n))
	var word uint64
	for i := int64(0); i < n; i++ {
		if t.Test(i) {
			word |= 1 << (uint64(i) & 63)
		}
		if i&63 == 63 {
			binary.LittleEndian.PutUint64(raw[(i>>6)*8:], word)
			word = 0
		}
	}
	if n&63 != 0 {
		binary.LittleEndian.PutUint64(raw[len(raw)-8:], word)
	}
	return raw
}

// compress returns the stored payload and its length field. A zero length
// means the payload is stored raw because compression did not help.
func compress(raw []byte, codec Codec) ([]byte, uint64, error) {
	switch codec {
	case CodecNone:
		return raw, 0, nil

	case CodecLZ4:
		var c lz4.Compressor
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := c.CompressBlock(raw, buf)
		if err != nil {
			return nil, 0, err
		}
		if n == 0 || n >= len(raw) {
			return raw, 0, nil // incompressible
		}
		return buf[:n], uint64(n), nil

	case CodecZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, 0, err
		}
		defer enc.Close()
		out := enc.EncodeAll(raw, nil)
		if len(out) >= len(raw) {
			return raw, 0, nil
		}
		return out, uint64(len(out)), nil

	default:
		return nil, 0, fmt.Errorf("unknown snapshot codec: %q", codec)
	}
}

func decompress(stored []byte, codec Codec, rawSize int) ([]byte, error) {
	switch codec {
	case CodecLZ4:
		raw := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(stored, raw)
		if err != nil {
			return nil, err
		}
		return raw[:n], nil

	case CodecZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(stored, make([]byte, 0, rawSize))

	default:
		return nil, fmt.Errorf("unknown snapshot codec: %q", codec)
	}
}
