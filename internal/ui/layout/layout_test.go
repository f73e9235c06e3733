package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "enter", Description: "submit"}, {Key: "esc", Description: "quit"}})
	assert.Contains(t, out, "enter")
	assert.Contains(t, out, "submit")
	assert.Contains(t, out, "quit")
}

func TestRenderFrame(t *testing.T) {
	t.Run("unsized", func(t *testing.T) {
		out := RenderFrame("HEADER", "body", "footer", 0)
		assert.NotContains(t, out, "HEADER")
		assert.Contains(t, out, "body")
		assert.Contains(t, out, "footer")
	})
	t.Run("sized", func(t *testing.T) {
		out := RenderFrame(RenderHeader("1 pt", 60), "body", "footer", 60)
		assert.Contains(t, out, "quizcraft")
		assert.Contains(t, out, "1 pt")
		assert.Contains(t, out, "body")
	})
}
