package bitseq

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/genebits/internal/blockcodec"
	"github.com/hupe1980/genebits/internal/conv"
	"github.com/hupe1980/genebits/internal/hash"
)

// Compression selects how Encode compresses the packed words.
type Compression uint8

const (
	// CompressionNone stores the words as is.
	CompressionNone Compression = Compression(blockcodec.None)
	// CompressionLZ4 favours speed.
	CompressionLZ4 Compression = Compression(blockcodec.LZ4)
	// CompressionZSTD favours ratio.
	CompressionZSTD Compression = Compression(blockcodec.ZSTD)
)

// String returns the name of the compression.
func (c Compression) String() string { return blockcodec.Type(c).String() }

// Encoded layout (little endian header):
//
//	[magic "GBS1"][compression uint8][bitLen uint64][crc32c uint32][block...]
//
// The block holds the big-endian bytes of the words, framed by blockcodec.
const (
	magic      = "GBS1"
	headerSize = len(magic) + 1 + 8 + 4
)

// Encode serializes s, compressing the words with c.
func Encode(s *Sequence, c Compression) ([]byte, error) {
	if s == nil {
		return nil, ErrNullSequence
	}
	bitLen, err := conv.IntToUint64(s.bitLen)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, 8*len(s.words))
	for i, w := range s.words {
		binary.BigEndian.PutUint64(raw[8*i:], w)
	}

	block, err := blockcodec.Compress(raw, blockcodec.Type(c))
	if err != nil {
		return nil, fmt.Errorf("encode sequence: %w", err)
	}

	out := make([]byte, headerSize, headerSize+len(block))
	copy(out, magic)
	out[4] = byte(c)
	binary.LittleEndian.PutUint64(out[5:], bitLen)
	binary.LittleEndian.PutUint32(out[13:], hash.Words(s.words))
	return append(out, block...), nil
}

// Decode parses the output of Encode.
func Decode(data []byte) (*Sequence, error) {
	if len(data) < headerSize || string(data[:len(magic)]) != magic {
		return nil, fmt.Errorf("%w: bad header", ErrCorrupt)
	}
	c := blockcodec.Type(data[4])
	bitLen, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(data[5:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if bitLen > math.MaxInt/2 {
		return nil, fmt.Errorf("%w: bit length %d", ErrCorrupt, bitLen)
	}
	sum := binary.LittleEndian.Uint32(data[13:])

	raw, err := blockcodec.Decompress(data[headerSize:], c, 8*wordsFor(bitLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if hash.CRC32C(raw) != sum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}

	words := make([]uint64, len(raw)/8)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(raw[8*i:])
	}
	return FromWords(words, bitLen)
}

// MarshalBinary implements encoding.BinaryMarshaler without compression.
func (s *Sequence) MarshalBinary() ([]byte, error) {
	return Encode(s, CompressionNone)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Sequence) UnmarshalBinary(data []byte) error {
	d, err := Decode(data)
	if err != nil {
		return err
	}
	*s = *d
	return nil
}
