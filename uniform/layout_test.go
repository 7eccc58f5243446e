package uniform

import (
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewLayoutDefaults(t *testing.T) {
	l := NewLayout()
	if l.Group() != 0 || l.Binding() != 0 {
		t.Errorf("default group/binding = %d/%d, want 0/0", l.Group(), l.Binding())
	}

	e := l.Entry()
	if e.Binding != 0 {
		t.Errorf("Entry().Binding = %d, want 0", e.Binding)
	}
	if e.Visibility != gputypes.ShaderStageVertex {
		t.Errorf("Entry().Visibility = %v, want vertex only", e.Visibility)
	}
	if e.Buffer == nil {
		t.Fatal("Entry().Buffer = nil")
	}
	if e.Buffer.Type != gputypes.BufferBindingTypeUniform {
		t.Errorf("Entry().Buffer.Type = %v, want uniform", e.Buffer.Type)
	}
	if e.Buffer.MinBindingSize != Size {
		t.Errorf("Entry().Buffer.MinBindingSize = %d, want %d", e.Buffer.MinBindingSize, Size)
	}
}

func TestLayoutOptions(t *testing.T) {
	l := NewLayout(WithGroup(2), WithBinding(3), WithFragment(), WithCompute())
	if l.Group() != 2 || l.Binding() != 3 {
		t.Errorf("group/binding = %d/%d, want 2/3", l.Group(), l.Binding())
	}

	e := l.Entry()
	if e.Binding != 3 {
		t.Errorf("Entry().Binding = %d, want 3", e.Binding)
	}
	want := gputypes.ShaderStageVertex | gputypes.ShaderStageFragment | gputypes.ShaderStageCompute
	if e.Visibility != want {
		t.Errorf("Entry().Visibility = %v, want %v", e.Visibility, want)
	}
}

func TestLayoutEntryIsCopy(t *testing.T) {
	l := NewLayout()
	e := l.Entry()
	e.Buffer.MinBindingSize = 0
	if l.Entry().Buffer.MinBindingSize != Size {
		t.Error("modifying a returned Entry changed the Layout")
	}
}

func TestBufferUsage(t *testing.T) {
	u := BufferUsage()
	if u&gputypes.BufferUsageUniform == 0 {
		t.Error("BufferUsage() missing Uniform")
	}
	if u&gputypes.BufferUsageCopyDst == 0 {
		t.Error("BufferUsage() missing CopyDst")
	}
	if u&gputypes.BufferUsageStorage != 0 {
		t.Error("BufferUsage() has Storage")
	}
}

func TestShaderWGSL(t *testing.T) {
	src := ShaderWGSL(NewLayout(WithGroup(1), WithBinding(4)))
	if !strings.Contains(src, "@group(1) @binding(4)") {
		t.Errorf("shader source missing binding declaration:\n%s", src)
	}
	if strings.Contains(src, "{{") {
		t.Errorf("shader source has unreplaced placeholders:\n%s", src)
	}
	if !strings.Contains(src, "mat3x3<f32>") {
		t.Error("shader source does not declare a mat3x3<f32> uniform")
	}
}
