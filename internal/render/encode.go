package render

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
)

// Quality floor for the size guard; below this the image is unusable on
// the panel anyway.
const minJPEGQuality = 40

// EncodePNG encodes the canvas as PNG. Used for the preview endpoint.
func (r *Renderer) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Image()); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeJPEG encodes the canvas as JPEG at the given quality. When the
// result exceeds maxBytes (>0), quality is stepped down until the image
// fits or the quality floor is reached; the floor result is returned
// with an error so the caller can decide whether to upload anyway.
func (r *Renderer) EncodeJPEG(quality, maxBytes int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = 92
	}
	for {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, r.Image(), &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("render: encode jpeg: %w", err)
		}
		if maxBytes <= 0 || buf.Len() <= maxBytes {
			return buf.Bytes(), nil
		}
		if quality <= minJPEGQuality {
			return buf.Bytes(), fmt.Errorf("render: jpeg is %d bytes at quality %d, exceeds limit %d", buf.Len(), quality, maxBytes)
		}
		quality -= 10
		if quality < minJPEGQuality {
			quality = minJPEGQuality
		}
	}
}

// ScalePNG re-encodes a rendered PNG at an integer scale factor. Used by
// the preview endpoint; the panel itself always receives native size.
func ScalePNG(data []byte, scale int) ([]byte, error) {
	if scale <= 1 {
		return data, nil
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("render: decode preview png: %w", err)
	}
	bounds := img.Bounds()
	scaled := imaging.Resize(img, bounds.Dx()*scale, bounds.Dy()*scale, imaging.NearestNeighbor)
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("render: encode scaled png: %w", err)
	}
	return buf.Bytes(), nil
}
