package csr

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the snapshot body codec.
type Compression uint8

const (
	// CompressionNone stores the body uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 stores the body as an LZ4 frame (fast, hot data).
	CompressionLZ4 Compression = 1
	// CompressionZSTD stores the body as a ZSTD stream (better ratio).
	CompressionZSTD Compression = 2
)

// Snapshot stream layout, all little-endian:
//
//	magic   uint32  "CSRG"
//	version uint8   currently 1
//	codec   uint8   Compression
//	n       uint64  vertices
//	m       uint64  edges
//	body            rowOffsets[0..n] (int64), columnIndices[0..m-1] (int32),
//	                wrapped by the codec
const (
	snapshotMagic   uint32 = 0x43535247
	snapshotVersion uint8  = 1
)

// WriteOption configures snapshot encoding.
type WriteOption func(*writeConfig)

type writeConfig struct {
	codec Compression
}

// WithCompression selects the body codec (default CompressionNone).
func WithCompression(c Compression) WriteOption {
	return func(cfg *writeConfig) { cfg.codec = c }
}

// WriteTo encodes the Graph as a snapshot stream on w.
func (g *Graph) WriteTo(w io.Writer, opts ...WriteOption) error {
	cfg := writeConfig{codec: CompressionNone}
	for _, opt := range opts {
		opt(&cfg)
	}

	hdr := []any{
		snapshotMagic,
		snapshotVersion,
		uint8(cfg.codec),
		uint64(g.NumVertices()),
		uint64(g.NumEdges()),
	}
	for _, v := range hdr {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("csr: write snapshot header: %w", err)
		}
	}

	body, closeBody, err := wrapWriter(w, cfg.codec)
	if err != nil {
		return err
	}
	if err = binary.Write(body, binary.LittleEndian, g.rowOffsets); err != nil {
		return fmt.Errorf("csr: write row offsets: %w", err)
	}
	if err = binary.Write(body, binary.LittleEndian, g.columnIndices); err != nil {
		return fmt.Errorf("csr: write column indices: %w", err)
	}
	return closeBody()
}

// ReadFrom decodes a snapshot stream produced by WriteTo and validates
// the resulting Graph as New does.
func ReadFrom(r io.Reader) (*Graph, error) {
	var (
		magic   uint32
		version uint8
		codec   uint8
		n, m    uint64
	)
	for _, v := range []any{&magic, &version, &codec, &n, &m} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("%w: header: %v", ErrBadSnapshot, err)
		}
	}
	if magic != snapshotMagic {
		return nil, fmt.Errorf("%w: magic 0x%08x", ErrBadSnapshot, magic)
	}
	if version != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadSnapshot, version)
	}

	body, closeBody, err := wrapReader(r, Compression(codec))
	if err != nil {
		return nil, err
	}
	defer closeBody()

	offsets := make([]int64, n+1)
	if err = binary.Read(body, binary.LittleEndian, &offsets); err != nil {
		return nil, fmt.Errorf("%w: row offsets: %v", ErrBadSnapshot, err)
	}
	columns := make([]int32, m)
	if err = binary.Read(body, binary.LittleEndian, &columns); err != nil {
		return nil, fmt.Errorf("%w: column indices: %v", ErrBadSnapshot, err)
	}
	return New(offsets, columns)
}

// wrapWriter wraps w with the requested codec and returns the body writer
// plus a flush/close func.
func wrapWriter(w io.Writer, codec Compression) (io.Writer, func() error, error) {
	switch codec {
	case CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		return lw, lw.Close, nil
	case CompressionZSTD:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("csr: zstd writer: %w", err)
		}
		return zw, zw.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrBadCodec, codec)
	}
}

// wrapReader mirrors wrapWriter for decoding.
func wrapReader(r io.Reader, codec Compression) (io.Reader, func(), error) {
	switch codec {
	case CompressionNone:
		return r, func() {}, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	case CompressionZSTD:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: zstd reader: %v", ErrBadSnapshot, err)
		}
		return zr, zr.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrBadCodec, codec)
	}
}
