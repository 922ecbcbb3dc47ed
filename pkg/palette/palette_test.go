package palette

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 0xFF}
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 76.245, Luminance(color.RGBA{R: 255, A: 255}), 1e-9)
	assert.InDelta(t, 149.685, Luminance(color.RGBA{G: 255, A: 255}), 1e-9)
	assert.InDelta(t, 29.07, Luminance(color.RGBA{B: 255, A: 255}), 1e-9)
	assert.InDelta(t, 255, Luminance(color.White), 1e-9)
	assert.InDelta(t, 0, Luminance(color.Black), 1e-9)
}

func TestAdjust(t *testing.T) {
	assert.Equal(t, 100.0, Adjust(100, 1.0))
	assert.InDelta(t, 255*math.Sqrt(100.0/255), Adjust(100, 2), 1e-9)
	assert.Equal(t, 0.0, Adjust(0, 2))
	assert.InDelta(t, 255, Adjust(255, 0.5), 1e-9)
	assert.LessOrEqual(t, Adjust(254, 0.1), 255.0)
}

func TestClassifyPureRedIsBlack(t *testing.T) {
	masks, err := Classify(solid(1, 1, color.RGBA{R: 255, A: 255}), DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, Black, masks.InkAt(0, 0))
	assert.Equal(t, 0, masks.Red.Count())
}

func TestClassifyThresholds(t *testing.T) {
	p := Params{BlackThreshold: 100, WhiteThreshold: 200, Contrast: 1}

	for _, tc := range []struct {
		name string
		c    color.Color
		want Ink
	}{
		{name: "dark", c: gray(40), want: Black},
		{name: "mid", c: gray(150), want: Red},
		{name: "light", c: gray(230), want: White},
		{name: "white", c: color.White, want: White},
		{name: "black", c: color.Black, want: Black},
	} {
		t.Run(tc.name, func(t *testing.T) {
			masks, err := Classify(solid(2, 2, tc.c), p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, masks.InkAt(1, 1))
			assert.Equal(t, 4, masks.Mask(tc.want).Count())
		})
	}
}

func TestClassifyInvertedThresholds(t *testing.T) {
	p := Params{BlackThreshold: 200, WhiteThreshold: 50, Contrast: 1}

	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, gray(20))
	img.Set(1, 0, gray(150))
	img.Set(2, 0, gray(250))

	masks, err := Classify(img, p)
	require.NoError(t, err)

	assert.Equal(t, Black, masks.InkAt(0, 0))
	assert.Equal(t, Black, masks.InkAt(1, 0))
	assert.Equal(t, White, masks.InkAt(2, 0))
	assert.Equal(t, 0, masks.Red.Count())
	assert.False(t, masks.White.At(1, 0))
}

func TestClassifyContrast(t *testing.T) {
	src := solid(1, 1, gray(100))

	flat, err := Classify(src, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, Black, flat.InkAt(0, 0))

	p := DefaultParams()
	p.Contrast = 2
	bright, err := Classify(src, p)
	require.NoError(t, err)
	assert.Equal(t, White, bright.InkAt(0, 0))
}

func TestClassifyChroma(t *testing.T) {
	p := DefaultParams()
	p.Mode = ModeChroma

	for _, tc := range []struct {
		name string
		c    color.Color
		want Ink
	}{
		{name: "pure red", c: color.RGBA{R: 255, A: 255}, want: Red},
		{name: "red edge", c: color.RGBA{R: 190, G: 100, B: 100, A: 255}, want: Red},
		{name: "pink", c: color.RGBA{R: 230, G: 150, B: 150, A: 255}, want: White},
		{name: "orange", c: color.RGBA{R: 255, G: 165, A: 255}, want: White},
		{name: "dark", c: gray(10), want: Black},
		{name: "light", c: gray(200), want: White},
	} {
		t.Run(tc.name, func(t *testing.T) {
			masks, err := Classify(solid(1, 1, tc.c), p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, masks.InkAt(0, 0))
		})
	}
}

func TestClassifyChromaIgnoresContrast(t *testing.T) {
	p := DefaultParams()
	p.Mode = ModeChroma
	p.Contrast = 2

	// Adjusted, gray 100 becomes about 160 and would be white.
	masks, err := Classify(solid(1, 1, gray(100)), p)
	require.NoError(t, err)
	assert.Equal(t, Black, masks.InkAt(0, 0))

	p.Contrast = 0.5
	masks, err = Classify(solid(1, 1, gray(150)), p)
	require.NoError(t, err)
	assert.Equal(t, White, masks.InkAt(0, 0))

	p.Mode = ModeLuminance
	p.Contrast = 2
	masks, err = Classify(solid(1, 1, gray(100)), p)
	require.NoError(t, err)
	assert.Equal(t, White, masks.InkAt(0, 0))
}

func TestClassifyCoversEveryPixelOnce(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	img := image.NewNRGBA(image.Rect(0, 0, 37, 23))
	rnd.Read(img.Pix)

	for _, p := range []Params{
		DefaultParams(),
		{BlackThreshold: 60, WhiteThreshold: 190, Contrast: 1.4},
		{BlackThreshold: 190, WhiteThreshold: 60, Contrast: 0.7},
		{BlackThreshold: 128, WhiteThreshold: 128, Contrast: 1, Mode: ModeChroma},
	} {
		masks, err := Classify(img, p)
		require.NoError(t, err)

		for y := 0; y < 23; y++ {
			for x := 0; x < 37; x++ {
				n := 0
				for _, ink := range []Ink{Black, White, Red} {
					if masks.Mask(ink).At(x, y) {
						n++
					}
				}
				require.Equal(t, 1, n, "pixel (%d,%d) with %+v", x, y, p)
			}
		}

		counts := masks.Counts()
		assert.Equal(t, 37*23, counts[Black]+counts[White]+counts[Red])
	}
}

func TestClassifyOffsetBounds(t *testing.T) {
	img := solid(4, 4, color.White)
	img.Set(2, 2, color.Black)

	sub := img.SubImage(image.Rect(2, 2, 4, 4))
	masks, err := Classify(sub, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 2, masks.Width())
	assert.Equal(t, 2, masks.Height())
	assert.Equal(t, Black, masks.InkAt(0, 0))
	assert.Equal(t, White, masks.InkAt(1, 1))
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	for _, tc := range []struct {
		field string
		p     Params
	}{
		{field: "contrast", p: Params{BlackThreshold: 128, WhiteThreshold: 128, Contrast: 0}},
		{field: "contrast", p: Params{BlackThreshold: 128, WhiteThreshold: 128, Contrast: -1}},
		{field: "contrast", p: Params{BlackThreshold: 128, WhiteThreshold: 128, Contrast: math.NaN()}},
		{field: "blackThreshold", p: Params{BlackThreshold: -1, WhiteThreshold: 128, Contrast: 1}},
		{field: "whiteThreshold", p: Params{BlackThreshold: 128, WhiteThreshold: 256, Contrast: 1}},
		{field: "mode", p: Params{BlackThreshold: 128, WhiteThreshold: 128, Contrast: 1, Mode: 9}},
	} {
		t.Run(tc.field, func(t *testing.T) {
			_, err := Classify(solid(1, 1, color.White), tc.p)

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tc.field, cerr.Field)
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("chroma")
	require.NoError(t, err)
	assert.Equal(t, ModeChroma, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeLuminance, m)

	_, err = ParseMode("hue")
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.White)
	img.Set(2, 0, gray(128))

	p := Params{BlackThreshold: 100, WhiteThreshold: 200, Contrast: 1}
	masks, err := Classify(img, p)
	require.NoError(t, err)

	dst := Preview(masks)
	assert.Equal(t, Black.Color(), dst.At(0, 0))
	assert.Equal(t, White.Color(), dst.At(1, 0))
	assert.Equal(t, Red.Color(), dst.At(2, 0))

	assert.Equal(t, White.Color(), Preview(newMasks(1, 1)).At(0, 0))
}
