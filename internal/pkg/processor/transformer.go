package processor

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/image-transform-service/internal/entity"
	"github.com/sirupsen/logrus"
)

const DefaultJPEGQuality = 90

type Transformer interface {
	Transform(req *entity.TransformRequest) (string, error)
}

type imageTransformer struct {
	log         *logrus.Logger
	jpegQuality int
}

func NewTransformer(log *logrus.Logger, jpegQuality int) Transformer {
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	return &imageTransformer{log: log, jpegQuality: jpegQuality}
}

// Transform runs the full pipeline on a validated request: base64 decode,
// image parse, the requested transformation, JPEG re-encode, base64 encode.
// The output is always JPEG no matter what format came in, so alpha channels
// are dropped and the pixels are recompressed.
func (t *imageTransformer) Transform(req *entity.TransformRequest) (string, error) {
	t.log.WithField("transformation_type", req.TransformationType).Info("Transformation requested")

	data, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		// Malformed base64 gets no dedicated classification and falls through
		// to the generic 500 path. See DESIGN.md before changing this.
		return "", &entity.InternalError{Err: err}
	}
	t.log.Debug("Base64 image decoded")

	img, err := t.parseImage(data)
	if err != nil {
		return "", err
	}
	t.log.Debug("Image opened")

	transformed, err := t.apply(img, req)
	if err != nil {
		return "", err
	}
	t.log.Debug("Image transformation completed")

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, transformed, &jpeg.Options{Quality: t.jpegQuality}); err != nil {
		return "", &entity.InternalError{Err: err}
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// parseImage decodes raster bytes in two steps: header first, then full pixel
// data. A payload whose header matches no known image format (including an
// empty payload) gets the "Invalid image file" message; a recognized header
// with a broken body gets the "Invalid image provided" message.
func (t *imageTransformer) parseImage(data []byte) (image.Image, error) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		t.log.WithError(err).Error("Invalid image file")
		return nil, &entity.BadImageError{Message: entity.MsgInvalidImageFile}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.log.WithError(err).Error("Invalid image provided")
		return nil, &entity.BadImageError{Message: entity.MsgInvalidImage}
	}

	return img, nil
}

func (t *imageTransformer) apply(img image.Image, req *entity.TransformRequest) (image.Image, error) {
	switch req.TransformationType {
	case entity.TransformGrayscale:
		return grayscale(img), nil
	case entity.TransformRotate:
		// Counter-clockwise for positive angles, expanding the canvas so no
		// corner is cropped. The exposed background is black, which is what
		// the JPEG output would show anyway.
		return imaging.Rotate(img, float64(req.RotationAngle), color.Black), nil
	case entity.TransformResize:
		if req.Width <= 0 || req.Height <= 0 {
			return nil, &entity.BadParameterError{Detail: entity.ErrNonPositiveResize}
		}
		return imaging.Resize(img, req.Width, req.Height, imaging.Lanczos), nil
	default:
		return nil, &entity.BadParameterError{Detail: entity.ErrInvalidTransformationType}
	}
}

// grayscale reduces the image to a single luminance channel so the JPEG
// encoder emits a one-component image.
func grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	dst := image.NewGray(bounds)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Src)
	return dst
}
