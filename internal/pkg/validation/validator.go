package validation

import (
	"encoding/json"
	"fmt"

	"github.com/ds124wfegd/image-transform-service/internal/entity"
)

var requiredFields = []string{"image", "transformation_type"}

// Validate checks the raw request body for the fields the requested
// transformation needs and binds it into a TransformRequest. The value of
// transformation_type and the positivity of resize dimensions are checked
// later by the transform engine, not here; an unknown type or a zero width
// passes through untouched and surfaces as a different error.
func Validate(data map[string]any) (*entity.TransformRequest, error) {
	var missing []string
	for _, field := range requiredFields {
		if _, ok := data[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &entity.ValidationError{
			Message:       fmt.Sprintf("Missing required fields: %v", missing),
			CorrectFormat: entity.FullCorrectFormat(),
		}
	}

	transformationType, _ := data["transformation_type"].(string)

	if transformationType == entity.TransformResize && (data["width"] == nil || data["height"] == nil) {
		return nil, &entity.ValidationError{
			Message:       "Width and height must be provided for resize transformation.",
			CorrectFormat: entity.ResizeCorrectFormat(),
		}
	}

	if transformationType == entity.TransformRotate && data["rotation_angle"] == nil {
		return nil, &entity.ValidationError{
			Message:       "Rotation angle must be provided for rotate transformation.",
			CorrectFormat: entity.RotateCorrectFormat(),
		}
	}

	return bind(data, transformationType)
}

// bind copies the untyped fields into a TransformRequest. Type mismatches on
// already-validated fields are not client shape errors, they are treated the
// same as any other unexpected failure.
func bind(data map[string]any, transformationType string) (*entity.TransformRequest, error) {
	image, ok := data["image"].(string)
	if !ok {
		return nil, &entity.InternalError{Err: fmt.Errorf("image must be a base64 string, got %T", data["image"])}
	}

	req := &entity.TransformRequest{
		Image:              image,
		TransformationType: transformationType,
	}

	var err error
	if req.RotationAngle, err = asInt(data["rotation_angle"]); err != nil {
		return nil, &entity.InternalError{Err: fmt.Errorf("rotation_angle: %w", err)}
	}
	if req.Width, err = asInt(data["width"]); err != nil {
		return nil, &entity.InternalError{Err: fmt.Errorf("width: %w", err)}
	}
	if req.Height, err = asInt(data["height"]); err != nil {
		return nil, &entity.InternalError{Err: fmt.Errorf("height: %w", err)}
	}

	return req, nil
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}
