package imagewriter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func testRadiance() *Radiance {
	r := NewRadiance(3, 2)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			r.Set(x, y, core.NewColor(float64(x)*100.5, float64(y)*0.25, 1000))
		}
	}
	return r
}

func TestRadiance_RoundTrip(t *testing.T) {
	for _, codec := range []Codec{CodecNone, CodecZstd, CodecSnappy} {
		t.Run(string(codec), func(t *testing.T) {
			original := testRadiance()
			var buf bytes.Buffer
			if err := WriteRadiance(&buf, original, codec); err != nil {
				t.Fatalf("WriteRadiance: %v", err)
			}

			decoded, gotCodec, err := ReadRadiance(&buf)
			if err != nil {
				t.Fatalf("ReadRadiance: %v", err)
			}
			if gotCodec != codec {
				t.Errorf("Expected codec %s, got %s", codec, gotCodec)
			}
			if decoded.Width != original.Width || decoded.Height != original.Height {
				t.Fatalf("Expected %dx%d, got %dx%d", original.Width, original.Height, decoded.Width, decoded.Height)
			}
			for i := range original.Pixels {
				if !decoded.Pixels[i].Equals(original.Pixels[i]) {
					t.Errorf("pixel %d: expected %v, got %v", i, original.Pixels[i], decoded.Pixels[i])
				}
			}
		})
	}
}

func TestReadRadiance_Invalid(t *testing.T) {
	var valid bytes.Buffer
	if err := WriteRadiance(&valid, testRadiance(), CodecNone); err != nil {
		t.Fatalf("WriteRadiance: %v", err)
	}
	data := valid.Bytes()

	badMagic := append([]byte("XXXX"), data[4:]...)
	truncated := data[:len(data)-5]
	badCodec := append([]byte(nil), data...)
	badCodec[5] = 9

	tests := []struct {
		name     string
		data     []byte
		expected error
	}{
		{"empty", nil, ErrInvalidRadiance},
		{"bad magic", badMagic, ErrInvalidRadiance},
		{"truncated body", truncated, ErrInvalidRadiance},
		{"unknown codec", badCodec, ErrUnknownCodec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ReadRadiance(bytes.NewReader(tt.data)); !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestParseCodec(t *testing.T) {
	for _, name := range []string{"none", "zstd", "snappy"} {
		if c, err := ParseCodec(name); err != nil || string(c) != name {
			t.Errorf("ParseCodec(%q) = %q, %v", name, c, err)
		}
	}
	if _, err := ParseCodec("gzip"); !errors.Is(err, ErrUnknownCodec) {
		t.Errorf("Expected ErrUnknownCodec, got %v", err)
	}
	if err := WriteRadiance(&bytes.Buffer{}, testRadiance(), Codec("gzip")); !errors.Is(err, ErrUnknownCodec) {
		t.Errorf("Expected ErrUnknownCodec from WriteRadiance, got %v", err)
	}
}
