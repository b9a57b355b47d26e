// Package imaging turns uploaded pictures into bounded, base64 encoded JPEGs.
package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strconv"

	"trustbites/config"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/domain/service"
	"trustbites/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
)

const (
	mimePNG  = "image/png"
	mimeJPEG = "image/jpeg"
)

type processor struct {
	maxDimension int
	quality      int
	maxPixels    int
}

// NewProcessor creates an image processor from the image section of the config.
func NewProcessor(cfg *config.Config) service.ImageProcessor {
	return &processor{
		maxDimension: cfg.Image.MaxDimension,
		quality:      cfg.Image.JPEGQuality,
		maxPixels:    cfg.Image.MaxPixels,
	}
}

// Encode sniffs the content type, shrinks the picture into the bounding box and re-encodes it.
func (p *processor) Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", domainerrors.ErrUnsupportedImage.WithDetails("empty upload")
	}

	var decode func(r io.Reader) (image.Image, error)
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is(mimePNG):
		decode = png.Decode
	case mtype.Is(mimeJPEG):
		decode = jpeg.Decode
	default:
		return "", domainerrors.ErrUnsupportedImage.WithDetails("got " + mtype.String())
	}

	// the header is checked first so a forged size never reaches the pixel allocation
	header, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", domainerrors.ErrUnsupportedImage.WithDetails("corrupt image: " + err.Error())
	}
	if header.Width <= 0 || header.Height <= 0 || int64(header.Width)*int64(header.Height) > int64(p.maxPixels) {
		return "", domainerrors.ErrUnsupportedImage.WithDetails(
			"image too large: " + strconv.Itoa(header.Width) + "x" + strconv.Itoa(header.Height))
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return "", domainerrors.ErrUnsupportedImage.WithDetails("corrupt image: " + err.Error())
	}

	img = p.fit(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return "", errors.Wrap(err, "failed to encode jpeg")
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// fit scales the image down to the bounding box, keeping its aspect ratio. Smaller images are kept as is.
func (p *processor) fit(img image.Image) image.Image {
	bounds := img.Bounds()
	width, height := FitDimensions(bounds.Dx(), bounds.Dy(), p.maxDimension)
	if width == bounds.Dx() && height == bounds.Dy() {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// FitDimensions returns the size of a width x height picture shrunk to fit a max x max box.
func FitDimensions(width, height, maxDimension int) (int, int) {
	if maxDimension <= 0 || (width <= maxDimension && height <= maxDimension) {
		return width, height
	}

	if width >= height {
		return maxDimension, max(1, height*maxDimension/width)
	}

	return max(1, width*maxDimension/height), maxDimension
}
