// Package uniform moves vecmath matrices onto the GPU.
//
// WGSL lays out mat3x3<f32> as three vec3 columns padded to 16 bytes, so
// a uniform holding one matrix is 48 bytes, not 36. [Pack] produces that
// layout from a [vecmath.FMat3]; [Layout] describes the matching
// bind-group entry; [CompileShader] compiles a vertex shader that reads it.
//
//	l := uniform.NewLayout(uniform.WithBinding(1), uniform.WithFragment())
//	entry := l.Entry()            // gputypes.BindGroupLayoutEntry
//	data := uniform.Pack(m)       // write to a Uniform|CopyDst buffer
//	spirv, err := uniform.CompileShader(l)
//
// Creating buffers and pipelines is left to the caller's device.
package uniform
