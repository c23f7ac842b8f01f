package prototype_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopatterns/prototype"
)

func TestCircle_CloneIsIndependentCopy(t *testing.T) {
	proto := prototype.NewCircle(10)
	clone := proto.Clone()

	circle, ok := clone.(*prototype.Circle)
	require.True(t, ok, "cloning a Circle yields a Circle")
	assert.NotSame(t, proto, circle)
	assert.Equal(t, proto.Radius(), circle.Radius())
}

func TestRectangle_CloneIsIndependentCopy(t *testing.T) {
	proto := prototype.NewRectangle(5, 8)
	clone := proto.Clone()

	rect, ok := clone.(*prototype.Rectangle)
	require.True(t, ok, "cloning a Rectangle yields a Rectangle")
	assert.NotSame(t, proto, rect)
	assert.Equal(t, 5, rect.Width())
	assert.Equal(t, 8, rect.Height())
}

func TestDraw_Narration(t *testing.T) {
	tests := []struct {
		name  string
		shape prototype.Shape
		want  string
	}{
		{"circle", prototype.NewCircle(10), "Drawing a Circle with radius 10\n"},
		{"rectangle", prototype.NewRectangle(5, 8), "Drawing a Rectangle with width 5 and height 8\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.shape.Draw(&buf)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestClone_DrawsSameLineAsPrototype(t *testing.T) {
	for _, proto := range []prototype.Shape{
		prototype.NewCircle(3),
		prototype.NewRectangle(2, 9),
	} {
		var a, b bytes.Buffer
		proto.Draw(&a)
		proto.Clone().Draw(&b)
		assert.Equal(t, a.String(), b.String())
	}
}
