package seqgo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/seqgo/codec"
	"github.com/hupe1980/seqgo/internal/hash"
	"github.com/hupe1980/seqgo/sequence"
)

// Snapshot layout: magic, format version, codec name, compression name,
// payload checksum, then the codec-encoded levels run through the
// compressor. The header is self-describing so LoadLevels needs no
// configuration.
var snapshotMagic = [4]byte{'S', 'Q', 'G', 'O'}

const snapshotVersion = 1

// ErrInvalidSnapshot tags all snapshot decoding failures: bad magic,
// unsupported version, unknown codec or compression.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Compression names the byte-stream compression applied to a snapshot
// payload.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionLZ4  Compression = "lz4"
	CompressionZstd Compression = "zstd"
)

type snapshotConfig struct {
	codec       codec.Codec
	compression Compression
}

// SnapshotOption configures SaveLevels.
type SnapshotOption func(*snapshotConfig)

// WithSnapshotCodec selects the payload encoding. Default is gob.
func WithSnapshotCodec(c codec.Codec) SnapshotOption {
	return func(cfg *snapshotConfig) {
		if c != nil {
			cfg.codec = c
		}
	}
}

// WithSnapshotCompression selects the payload compression.
// Default is CompressionNone.
func WithSnapshotCompression(c Compression) SnapshotOption {
	return func(cfg *snapshotConfig) {
		cfg.compression = c
	}
}

// SaveLevels writes a mined result to w as a self-describing snapshot
// that LoadLevels can read back without knowing how it was written.
func SaveLevels[I comparable](w io.Writer, levels []sequence.Level[I], optFns ...SnapshotOption) error {
	cfg := snapshotConfig{
		codec:       codec.Default,
		compression: CompressionNone,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&cfg)
		}
	}

	switch cfg.compression {
	case CompressionNone, CompressionLZ4, CompressionZstd:
	default:
		return fmt.Errorf("unknown compression %q", cfg.compression)
	}

	payload, err := cfg.codec.Marshal(levels)
	if err != nil {
		return fmt.Errorf("encoding snapshot payload: %w", err)
	}

	if _, err := w.Write(snapshotMagic[:]); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}
	if _, err := w.Write([]byte{snapshotVersion}); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}
	if err := writeHeaderString(w, cfg.codec.Name()); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}
	if err := writeHeaderString(w, string(cfg.compression)); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}

	var checksum [4]byte
	binary.BigEndian.PutUint32(checksum[:], hash.CRC32C(payload))
	if _, err := w.Write(checksum[:]); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}

	cw, closeFn, err := compressedWriter(w, cfg.compression)
	if err != nil {
		return err
	}
	if _, err := cw.Write(payload); err != nil {
		return fmt.Errorf("writing snapshot payload: %w", err)
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("flushing snapshot payload: %w", err)
	}
	return nil
}

// LoadLevels reads a snapshot written by SaveLevels. The item type must
// match the one the snapshot was written with.
func LoadLevels[I comparable](r io.Reader) ([]sequence.Level[I], error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: reading magic: %v", ErrInvalidSnapshot, err)
	}
	if magic != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidSnapshot, magic[:])
	}

	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return nil, fmt.Errorf("%w: reading version: %v", ErrInvalidSnapshot, err)
	}
	if version[0] != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, version[0])
	}

	codecName, err := readHeaderString(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading codec name: %v", ErrInvalidSnapshot, err)
	}
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown codec %q", ErrInvalidSnapshot, codecName)
	}

	compressionName, err := readHeaderString(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading compression name: %v", ErrInvalidSnapshot, err)
	}

	var checksum [4]byte
	if _, err := io.ReadFull(r, checksum[:]); err != nil {
		return nil, fmt.Errorf("%w: reading checksum: %v", ErrInvalidSnapshot, err)
	}

	cr, closeFn, err := compressedReader(r, Compression(compressionName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	defer closeFn()

	payload, err := io.ReadAll(cr)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot payload: %w", err)
	}
	if got := hash.CRC32C(payload); got != binary.BigEndian.Uint32(checksum[:]) {
		return nil, fmt.Errorf("%w: payload checksum mismatch", ErrInvalidSnapshot)
	}

	var levels []sequence.Level[I]
	if err := c.Unmarshal(payload, &levels); err != nil {
		return nil, fmt.Errorf("decoding snapshot payload: %w", err)
	}
	return levels, nil
}

func compressedWriter(w io.Writer, c Compression) (io.Writer, func() error, error) {
	switch c {
	case CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		return lw, lw.Close, nil
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("creating zstd writer: %w", err)
		}
		return zw, zw.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown compression %q", c)
	}
}

func compressedReader(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case CompressionNone:
		return r, func() {}, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		return zr.IOReadCloser(), zr.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown compression %q", c)
	}
}

func writeHeaderString(w io.Writer, s string) error {
	if len(s) > 255 {
		return fmt.Errorf("header string too long: %d bytes", len(s))
	}
	if _, err := w.Write([]byte{byte(len(s))}); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readHeaderString(r io.Reader) (string, error) {
	var n [1]byte
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return "", err
	}
	buf := make([]byte, n[0])
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
