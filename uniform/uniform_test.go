package uniform

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/vecmath"
)

func TestPackLayout(t *testing.T) {
	m := vecmath.FromRows[float32](
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	buf := Pack(m)

	// Column j starts at byte 16*j; the fourth float of each column is padding.
	want := []float32{
		1, 4, 7, 0,
		2, 5, 8, 0,
		3, 6, 9, 0,
	}
	got := make([]float32, len(want))
	for i := range got {
		got[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pack layout mismatch (-want +got):\n%s", diff)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    vecmath.FMat3
	}{
		{"identity", vecmath.Identity3[float32]()},
		{"translation", vecmath.Translation3[float32](3, -4)},
		{"rotation", vecmath.Rotation3[float32](33)},
		{"null", vecmath.Null3[float32]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Pack(tt.m)
			got, err := Unpack(buf[:])
			if err != nil {
				t.Fatalf("Unpack() error = %v", err)
			}
			if got != tt.m {
				t.Errorf("Unpack(Pack(m)) = %v, want %v", got, tt.m)
			}
		})
	}
}

func TestPackInto(t *testing.T) {
	m := vecmath.Scaling3[float32](2, 3)

	dst := make([]byte, Size+8)
	for i := range dst {
		dst[i] = 0xff
	}
	if err := PackInto(dst, m); err != nil {
		t.Fatalf("PackInto() error = %v", err)
	}
	want := Pack(m)
	if diff := cmp.Diff(want[:], dst[:Size]); diff != "" {
		t.Errorf("PackInto mismatch (-want +got):\n%s", diff)
	}
	for i := Size; i < len(dst); i++ {
		if dst[i] != 0xff {
			t.Fatalf("PackInto wrote past Size at byte %d", i)
		}
	}
}

func TestShortBuffer(t *testing.T) {
	short := make([]byte, Size-1)
	if err := PackInto(short, vecmath.Identity3[float32]()); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("PackInto(short) error = %v, want ErrShortBuffer", err)
	}
	if _, err := Unpack(short); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Unpack(short) error = %v, want ErrShortBuffer", err)
	}
}

func BenchmarkPack(b *testing.B) {
	m := vecmath.Rotation3[float32](45)
	var dst [Size]byte
	b.ReportAllocs()
	for b.Loop() {
		_ = PackInto(dst[:], m)
	}
}
