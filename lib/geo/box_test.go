package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxUnion(t *testing.T) {
	t.Parallel()

	a := NewBox(0, 2, 0, 2)
	b := NewBox(-1, 1, 1, 5)
	assert.Equal(t, NewBox(-1, 2, 0, 5), a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))
}

func TestBoxPad(t *testing.T) {
	t.Parallel()

	b := NewBox(3, 3, 4, 4).Pad(1)
	assert.Equal(t, NewBox(2, 4, 3, 5), b)
	assert.Equal(t, 2., b.Width())
	assert.Equal(t, 2., b.Height())
	assert.Equal(t, NewPoint(2, 5), b.TopLeft())
}
