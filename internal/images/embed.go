package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"strings"

	// register decoders for the formats the uploader accepts
	_ "image/gif"
	_ "image/png"
)

// EncodeDataURL validates, downscales and re-encodes an image into a JPEG
// data URL suitable for inline storage on a task. Images already within
// the 800x600 box keep their dimensions but are still re-encoded.
func EncodeDataURL(data []byte) (string, error) {
	if err := Validate(data); err != nil {
		return "", err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", ErrNotImage
	}

	resized := scaleToFit(src, maxWidth, maxHeight)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}

	url := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	if len(url) > MaxEncodedBytes {
		return "", ErrEncodeLimit
	}
	return url, nil
}

// Thumbnail produces a square center-cropped preview from an inline data
// URL, used on board cards
func Thumbnail(dataURL string, size int) (string, error) {
	idx := strings.Index(dataURL, ",")
	if idx < 0 {
		return "", ErrNotImage
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
	if err != nil {
		return "", ErrNotImage
	}
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", ErrNotImage
	}

	b := src.Bounds()
	edge := b.Dx()
	if b.Dy() < edge {
		edge = b.Dy()
	}
	sx := b.Min.X + (b.Dx()-edge)/2
	sy := b.Min.Y + (b.Dy()-edge)/2
	crop := image.Rect(sx, sy, sx+edge, sy+edge)

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			out.Set(x, y, src.At(crop.Min.X+x*edge/size, crop.Min.Y+y*edge/size))
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// scaleToFit downscales src to fit inside w x h preserving aspect ratio.
// Upscaling never happens. Nearest-neighbor sampling is good enough for
// attachment previews and avoids pulling in a graphics dependency.
func scaleToFit(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	sw, sh := b.Dx(), b.Dy()
	if sw <= w && sh <= h {
		return src
	}

	scale := float64(w) / float64(sw)
	if s := float64(h) / float64(sh); s < scale {
		scale = s
	}
	dw := int(float64(sw) * scale)
	dh := int(float64(sh) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, dw, dh))
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			out.Set(x, y, src.At(b.Min.X+x*sw/dw, b.Min.Y+y*sh/dh))
		}
	}
	return out
}
