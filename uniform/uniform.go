package uniform

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/gogpu/vecmath"
)

// Size is the byte size of a WGSL mat3x3<f32>: three columns with a
// 16-byte stride.
const Size = 48

// columnStride is the distance in bytes between matrix columns.
const columnStride = 16

// ErrShortBuffer is returned when a buffer is smaller than Size.
var ErrShortBuffer = errors.New("uniform: buffer shorter than mat3x3<f32>")

// Pack returns m in WGSL mat3x3<f32> layout: little-endian float32
// columns, each followed by 4 bytes of zero padding.
func Pack(m vecmath.FMat3) [Size]byte {
	var buf [Size]byte
	packColumns(buf[:], m)
	return buf
}

// PackInto writes m into the first Size bytes of dst.
func PackInto(dst []byte, m vecmath.FMat3) error {
	if len(dst) < Size {
		return ErrShortBuffer
	}
	packColumns(dst[:Size], m)
	return nil
}

// Unpack reads a matrix written by Pack. Padding bytes are ignored.
func Unpack(src []byte) (vecmath.FMat3, error) {
	var m vecmath.FMat3
	if len(src) < Size {
		return m, ErrShortBuffer
	}
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			off := j*columnStride + i*4
			m.Set(i, j, math.Float32frombits(binary.LittleEndian.Uint32(src[off:])))
		}
	}
	return m, nil
}

func packColumns(dst []byte, m vecmath.FMat3) {
	for j := 0; j < 3; j++ {
		col := dst[j*columnStride : (j+1)*columnStride]
		binary.LittleEndian.PutUint32(col[0:], math.Float32bits(m.At(0, j)))
		binary.LittleEndian.PutUint32(col[4:], math.Float32bits(m.At(1, j)))
		binary.LittleEndian.PutUint32(col[8:], math.Float32bits(m.At(2, j)))
		binary.LittleEndian.PutUint32(col[12:], 0)
	}
}
