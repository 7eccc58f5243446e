package uniform

import "github.com/gogpu/gputypes"

// Layout describes where a transform uniform is bound.
// Build one with NewLayout and functional options.
type Layout struct {
	group   uint32
	binding uint32
	entry   gputypes.BindGroupLayoutEntry
}

// Option configures a Layout.
//
// Example:
//
//	l := uniform.NewLayout(uniform.WithGroup(1), uniform.WithBinding(2))
type Option func(*Layout)

// WithGroup sets the bind group index (@group in WGSL). Default 0.
func WithGroup(group uint32) Option {
	return func(l *Layout) {
		l.group = group
	}
}

// WithBinding sets the binding index (@binding in WGSL). Default 0.
func WithBinding(binding uint32) Option {
	return func(l *Layout) {
		l.binding = binding
		l.entry.Binding = binding
	}
}

// WithFragment makes the uniform visible to the fragment stage as well.
func WithFragment() Option {
	return func(l *Layout) {
		l.entry.Visibility |= gputypes.ShaderStageFragment
	}
}

// WithCompute makes the uniform visible to compute shaders as well.
func WithCompute() Option {
	return func(l *Layout) {
		l.entry.Visibility |= gputypes.ShaderStageCompute
	}
}

// NewLayout returns a layout for one mat3x3<f32> uniform, visible to the
// vertex stage at @group(0) @binding(0) unless options say otherwise.
func NewLayout(opts ...Option) Layout {
	l := Layout{
		entry: gputypes.BindGroupLayoutEntry{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: Size,
			},
		},
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Group returns the bind group index.
func (l Layout) Group() uint32 { return l.group }

// Binding returns the binding index.
func (l Layout) Binding() uint32 { return l.binding }

// Entry returns the bind-group layout entry for the uniform buffer.
// The returned entry does not share its BufferBindingLayout with l.
func (l Layout) Entry() gputypes.BindGroupLayoutEntry {
	e := l.entry
	buf := *l.entry.Buffer
	e.Buffer = &buf
	return e
}

// BufferUsage returns the usage flags for a buffer holding the uniform:
// bound as a uniform and updated with queue writes.
func BufferUsage() gputypes.BufferUsage {
	return gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst
}
