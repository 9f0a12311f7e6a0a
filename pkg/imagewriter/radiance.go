package imagewriter

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Radiance is an unclamped color buffer in row-major order
type Radiance struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewRadiance creates a black buffer
func NewRadiance(width, height int) *Radiance {
	return &Radiance{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color of pixel (x, y)
func (r *Radiance) At(x, y int) core.Color {
	return r.Pixels[y*r.Width+x]
}

// Set stores the color of pixel (x, y)
func (r *Radiance) Set(x, y int, c core.Color) {
	r.Pixels[y*r.Width+x] = c
}

// Codec selects the compression of a radiance dump body
type Codec string

const (
	CodecNone   Codec = "none"
	CodecZstd   Codec = "zstd"
	CodecSnappy Codec = "snappy"
)

var codecIDs = map[Codec]uint8{CodecNone: 0, CodecZstd: 1, CodecSnappy: 2}

var (
	// ErrUnknownCodec is returned for codec names or IDs that are not supported
	ErrUnknownCodec = errors.New("unknown radiance codec")
	// ErrInvalidRadiance is returned when a dump header is malformed
	ErrInvalidRadiance = errors.New("invalid radiance dump")
)

const (
	radianceMagic   = "RGBF"
	radianceVersion = 1
	// Upper bound on width*height accepted when reading a dump
	maxRadiancePixels = 1 << 26
)

// ParseCodec converts a codec name to a Codec
func ParseCodec(name string) (Codec, error) {
	c := Codec(name)
	if _, ok := codecIDs[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

type radianceHeader struct {
	Magic   [4]byte
	Version uint8
	Codec   uint8
	Width   uint32
	Height  uint32
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// WriteRadiance writes the buffer as a header followed by little-endian float32 RGB
// triples compressed with codec
func WriteRadiance(w io.Writer, r *Radiance, codec Codec) error {
	id, ok := codecIDs[codec]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
	}

	header := radianceHeader{Version: radianceVersion, Codec: id, Width: uint32(r.Width), Height: uint32(r.Height)}
	copy(header.Magic[:], radianceMagic)
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("failed to write radiance header: %w", err)
	}

	var body io.WriteCloser
	switch codec {
	case CodecZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		body = enc
	case CodecSnappy:
		body = snappy.NewBufferedWriter(w)
	default:
		body = nopWriteCloser{w}
	}

	buffered := bufio.NewWriter(body)
	var triple [3]float32
	for _, c := range r.Pixels {
		triple[0], triple[1], triple[2] = float32(c.R), float32(c.G), float32(c.B)
		if err := binary.Write(buffered, binary.LittleEndian, triple); err != nil {
			body.Close()
			return fmt.Errorf("failed to write radiance body: %w", err)
		}
	}
	if err := buffered.Flush(); err != nil {
		body.Close()
		return fmt.Errorf("failed to write radiance body: %w", err)
	}
	return body.Close()
}

// ReadRadiance reads a dump written by WriteRadiance and reports the codec it used
func ReadRadiance(rd io.Reader) (*Radiance, Codec, error) {
	var header radianceHeader
	if err := binary.Read(rd, binary.LittleEndian, &header); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidRadiance, err)
	}
	if string(header.Magic[:]) != radianceMagic {
		return nil, "", fmt.Errorf("%w: bad magic %q", ErrInvalidRadiance, header.Magic[:])
	}
	if header.Version != radianceVersion {
		return nil, "", fmt.Errorf("%w: unsupported version %d", ErrInvalidRadiance, header.Version)
	}
	pixels := uint64(header.Width) * uint64(header.Height)
	if pixels > maxRadiancePixels {
		return nil, "", fmt.Errorf("%w: %dx%d is too large", ErrInvalidRadiance, header.Width, header.Height)
	}

	var codec Codec
	for c, id := range codecIDs {
		if id == header.Codec {
			codec = c
		}
	}

	var body io.Reader
	switch codec {
	case CodecZstd:
		dec, err := zstd.NewReader(rd)
		if err != nil {
			return nil, "", err
		}
		defer dec.Close()
		body = dec
	case CodecSnappy:
		body = snappy.NewReader(rd)
	case CodecNone:
		body = rd
	default:
		return nil, "", fmt.Errorf("%w: id %d", ErrUnknownCodec, header.Codec)
	}

	r := NewRadiance(int(header.Width), int(header.Height))
	buffered := bufio.NewReader(body)
	var triple [3]float32
	for i := range r.Pixels {
		if err := binary.Read(buffered, binary.LittleEndian, &triple); err != nil {
			return nil, "", fmt.Errorf("%w: truncated body: %w", ErrInvalidRadiance, err)
		}
		r.Pixels[i] = core.NewColor(float64(triple[0]), float64(triple[1]), float64(triple[2]))
	}
	return r, codec, nil
}
