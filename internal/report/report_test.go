package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/alexiusacademia/goinertia/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(t *testing.T, n int) section.Result {
	t.Helper()
	sec := section.New("cm")
	for i := 0; i < n; i++ {
		sec.Add(figure.NewRectangle(2, 1, figure.At(0, float64(i)), figure.Named(fmt.Sprintf("layer %d", i+1))))
	}
	res, err := sec.Compute()
	require.NoError(t, err)
	return res
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for x := 0; x < 40; x++ {
		img.Set(x, 15, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, result(t, 3), Options{
		Author:  "J. Doe",
		Section: "stack",
		Angles:  section.AnglesClockwise,
		Diagram: pngBytes(t),
		Date:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "%%EOF")
}

func TestBytes_ManyFiguresSpanPages(t *testing.T) {
	short, err := Bytes(result(t, 2), Options{})
	require.NoError(t, err)

	long, err := Bytes(result(t, 80), Options{Title: "Stacked plates"})
	require.NoError(t, err)

	assert.Greater(t, bytes.Count(long, []byte("/Type /Page\n")), bytes.Count(short, []byte("/Type /Page\n")))
}

func TestWrite_InvalidDiagram(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, result(t, 1), Options{Diagram: []byte("not a png")})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "web", truncate(" web ", 10))
	assert.Equal(t, "abc~", truncate("abcdefgh", 4))
}
