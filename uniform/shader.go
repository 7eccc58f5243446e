package uniform

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/naga"

	"github.com/gogpu/vecmath"
)

//go:embed transform.wgsl
var transformShaderSource string

// ErrInvalidSPIRV is returned when the compiler output is not a whole
// number of 32-bit words.
var ErrInvalidSPIRV = errors.New("uniform: SPIR-V output not word aligned")

// ShaderWGSL returns the WGSL source of the transform shader with its
// uniform declared at the layout's group and binding.
//
// Entry points: vs_main takes @location(0) vec2<f32> positions and applies
// the matrix as a point transform; fs_main is a debug fill.
func ShaderWGSL(l Layout) string {
	r := strings.NewReplacer(
		"{{group}}", strconv.FormatUint(uint64(l.group), 10),
		"{{binding}}", strconv.FormatUint(uint64(l.binding), 10),
	)
	return r.Replace(transformShaderSource)
}

// CompileShader compiles the transform shader for l to SPIR-V words.
func CompileShader(l Layout) ([]uint32, error) {
	spirvBytes, err := naga.Compile(ShaderWGSL(l))
	if err != nil {
		return nil, fmt.Errorf("uniform: failed to compile transform shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	vecmath.Logger().Debug("uniform: compiled transform shader",
		"group", l.group, "binding", l.binding, "words", len(spirvCode))
	return spirvCode, nil
}
