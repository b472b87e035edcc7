package iconconv

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	requested []int
	failAt    int
	closed    bool
}

func (f *fakeSource) Fit(size int) (image.Image, error) {
	f.requested = append(f.requested, size)
	if size == f.failAt {
		return nil, errors.New("boom")
	}
	return solid(size, color.NRGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff}), nil
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

func TestNormalizeSizes(t *testing.T) {
	sizes, err := NormalizeSizes(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSizes, sizes)

	// the default list is not shared
	sizes[0] = 1
	assert.Equal(t, 16, DefaultSizes[0])

	sizes, err = NormalizeSizes([]int{64, 16, 64, 32})
	require.NoError(t, err)
	assert.Equal(t, []int{16, 32, 64}, sizes)

	_, err = NormalizeSizes([]int{16, 512})
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NormalizeSizes([]int{0})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestConvertRendersEverySize(t *testing.T) {
	src := &fakeSource{}
	var buf bytes.Buffer

	written, err := Convert(src, []int{48, 16}, &buf)
	require.NoError(t, err)
	assert.Equal(t, []int{16, 48}, written)
	assert.Equal(t, []int{16, 48}, src.requested)

	entries, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 16, entries[0].Width)
	assert.Equal(t, 48, entries[1].Width)
}

func TestConvertStopsOnSourceError(t *testing.T) {
	src := &fakeSource{failAt: 32}
	var buf bytes.Buffer

	_, err := Convert(src, []int{16, 32, 64}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render 32px")
	assert.Zero(t, buf.Len())
}
