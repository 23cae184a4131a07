package entity

const (
	TransformGrayscale = "grayscale"
	TransformRotate    = "rotate"
	TransformResize    = "resize"
)

type TransformRequest struct {
	Image              string `json:"image"`
	TransformationType string `json:"transformation_type"`
	RotationAngle      int    `json:"rotation_angle,omitempty"`
	Width              int    `json:"width,omitempty"`
	Height             int    `json:"height,omitempty"`
}

type TransformResponse struct {
	TransformedImage string `json:"transformed_image"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// AuditEvent is published to the broker after every transform attempt.
// It never carries image data.
type AuditEvent struct {
	RequestID          string `json:"request_id"`
	TransformationType string `json:"transformation_type"`
	Outcome            string `json:"outcome"`
	DurationMs         int64  `json:"duration_ms"`
	Error              string `json:"error,omitempty"`
}

// FullCorrectFormat is returned when required top-level fields are missing.
func FullCorrectFormat() map[string]string {
	return map[string]string{
		"image":               "<Base64-encoded-image>",
		"transformation_type": "<grayscale|rotate|resize>",
		"rotation_angle":      "<integer>",
		"width":               "<positive integer>",
		"height":              "<positive integer>",
	}
}

// ResizeCorrectFormat is returned when a resize request lacks dimensions.
func ResizeCorrectFormat() map[string]string {
	return map[string]string{
		"image":               "<Base64-encoded-image>",
		"transformation_type": "resize",
		"width":               "<positive integer>",
		"height":              "<positive integer>",
	}
}

// RotateCorrectFormat is returned when a rotate request lacks an angle.
func RotateCorrectFormat() map[string]string {
	return map[string]string{
		"image":               "<Base64-encoded-image>",
		"transformation_type": "rotate",
		"rotation_angle":      "<integer>",
	}
}
