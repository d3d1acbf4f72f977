// Package blockcodec compresses a single byte block with LZ4 or ZSTD.
//
// Block format: [UncompressedSize uint32][CompressedSize uint32][Data...].
// CompressedSize == 0 means the data is stored as is, which also happens
// when compression does not save at least 10%.
package blockcodec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/genebits/internal/conv"
)

// Type selects the compression algorithm.
type Type uint8

const (
	// None stores the block uncompressed.
	None Type = 0
	// LZ4 uses LZ4 block compression (fast).
	LZ4 Type = 1
	// ZSTD uses Zstandard (better ratio).
	ZSTD Type = 2
)

// String returns the name of the compression type.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

const headerSize = 8

var (
	// ErrShortBlock is returned when a block is smaller than its header claims.
	ErrShortBlock = errors.New("blockcodec: block too small")
	// ErrSizeMismatch is returned when decompression yields an unexpected size.
	ErrSizeMismatch = errors.New("blockcodec: decompressed size mismatch")
	// ErrUnknownType is returned for an unsupported compression type.
	ErrUnknownType = errors.New("blockcodec: unknown compression type")
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// Compress returns data framed with a block header, compressed with t when
// that saves space.
func Compress(data []byte, t Type) ([]byte, error) {
	size, err := conv.IntToUint32(len(data))
	if err != nil {
		return nil, fmt.Errorf("blockcodec: %w", err)
	}

	var compressed []byte
	switch {
	case t > ZSTD:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	case len(data) == 0:
	case t == LZ4:
		compressed, err = compressLZ4(data)
	case t == ZSTD:
		compressed, err = compressZSTD(data)
	}
	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		out := make([]byte, headerSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], size)
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[headerSize:], data)
		return out, nil
	}

	out := make([]byte, headerSize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], size)
	binary.LittleEndian.PutUint32(out[4:], uint32(len(compressed))) // < size
	copy(out[headerSize:], compressed)
	return out, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, buf, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return buf[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Maximum expansion per compressed byte. An LZ4 length byte adds at most
// 255 bytes of output; a 4-byte ZSTD RLE block yields at most 128 KiB.
const (
	maxRatioLZ4  = 255
	maxRatioZSTD = 1 << 15
)

// Decompress reverses Compress. t must match the type used to compress and
// size is the decompressed length the caller expects. A block whose header
// claims any other size, or more output than its payload can encode, is
// rejected before anything is allocated.
func Decompress(block []byte, t Type, size int) ([]byte, error) {
	if len(block) < headerSize {
		return nil, ErrShortBlock
	}

	uncompressedSize := binary.LittleEndian.Uint32(block[0:])
	compressedSize := binary.LittleEndian.Uint32(block[4:])
	payload := block[headerSize:]

	if size < 0 || uint64(size) != uint64(uncompressedSize) {
		return nil, fmt.Errorf("%w: header claims %d bytes, want %d", ErrSizeMismatch, uncompressedSize, size)
	}

	if compressedSize == 0 {
		if uint64(len(payload)) < uint64(uncompressedSize) {
			return nil, ErrShortBlock
		}
		out := make([]byte, uncompressedSize)
		copy(out, payload)
		return out, nil
	}

	if uint64(len(payload)) < uint64(compressedSize) {
		return nil, ErrShortBlock
	}
	payload = payload[:compressedSize]

	var ratio uint64
	switch t {
	case LZ4:
		ratio = maxRatioLZ4
	case ZSTD:
		ratio = maxRatioZSTD
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	if uint64(uncompressedSize) > ratio*uint64(compressedSize) {
		return nil, fmt.Errorf("%w: %d bytes cannot hold %d", ErrSizeMismatch, compressedSize, uncompressedSize)
	}

	out := make([]byte, uncompressedSize)

	if t == LZ4 {
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, ErrSizeMismatch
		}
		return out, nil
	}

	dec, err := getZstdDecoder()
	if err != nil {
		return nil, err
	}
	defer zstdDecoderPool.Put(dec)

	decoded, err := dec.DecodeAll(payload, out[:0])
	if err != nil {
		return nil, err
	}
	if uint32(len(decoded)) != uncompressedSize {
		return nil, ErrSizeMismatch
	}
	return decoded, nil
}
