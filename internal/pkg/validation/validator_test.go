package validation

import (
	"testing"

	"github.com/ds124wfegd/image-transform-service/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMissingRequiredFields проверяет отсутствие обязательных полей
func TestMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name            string
		data            map[string]any
		expectedMissing []string
	}{
		{
			name:            "empty body",
			data:            map[string]any{},
			expectedMissing: []string{"image", "transformation_type"},
		},
		{
			name:            "missing image",
			data:            map[string]any{"transformation_type": "grayscale"},
			expectedMissing: []string{"image"},
		},
		{
			name:            "missing transformation_type",
			data:            map[string]any{"image": "aGVsbG8="},
			expectedMissing: []string{"transformation_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Validate(tt.data)
			require.Nil(t, req)

			var vErr *entity.ValidationError
			require.ErrorAs(t, err, &vErr)

			for _, field := range tt.expectedMissing {
				assert.Contains(t, vErr.Message, field)
			}
			assert.Equal(t, entity.FullCorrectFormat(), vErr.CorrectFormat)
		})
	}
}

// TestConditionalFields проверяет зависящие от типа трансформации поля
func TestConditionalFields(t *testing.T) {
	tests := []struct {
		name           string
		data           map[string]any
		expectedFormat map[string]string
	}{
		{
			name: "resize without width",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "resize",
				"height":              float64(10),
			},
			expectedFormat: entity.ResizeCorrectFormat(),
		},
		{
			name: "resize without height",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "resize",
				"width":               float64(10),
			},
			expectedFormat: entity.ResizeCorrectFormat(),
		},
		{
			name: "resize with null dimensions",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "resize",
				"width":               nil,
				"height":              nil,
			},
			expectedFormat: entity.ResizeCorrectFormat(),
		},
		{
			name: "rotate without angle",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "rotate",
			},
			expectedFormat: entity.RotateCorrectFormat(),
		},
		{
			name: "rotate with null angle",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "rotate",
				"rotation_angle":      nil,
			},
			expectedFormat: entity.RotateCorrectFormat(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Validate(tt.data)
			require.Nil(t, req)

			var vErr *entity.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.expectedFormat, vErr.CorrectFormat)
		})
	}
}

// TestValidRequests проверяет корректные запросы
func TestValidRequests(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		expected entity.TransformRequest
	}{
		{
			name: "grayscale",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "grayscale",
			},
			expected: entity.TransformRequest{
				Image:              "aGVsbG8=",
				TransformationType: "grayscale",
			},
		},
		{
			name: "rotate with negative angle",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "rotate",
				"rotation_angle":      float64(-90),
			},
			expected: entity.TransformRequest{
				Image:              "aGVsbG8=",
				TransformationType: "rotate",
				RotationAngle:      -90,
			},
		},
		{
			name: "resize",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "resize",
				"width":               float64(5),
				"height":              float64(20),
			},
			expected: entity.TransformRequest{
				Image:              "aGVsbG8=",
				TransformationType: "resize",
				Width:              5,
				Height:             20,
			},
		},
		{
			name: "resize with zero dimensions passes validation",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "resize",
				"width":               float64(0),
				"height":              float64(5),
			},
			expected: entity.TransformRequest{
				Image:              "aGVsbG8=",
				TransformationType: "resize",
				Width:              0,
				Height:             5,
			},
		},
		{
			name: "unknown type passes validation untouched",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "sepia",
			},
			expected: entity.TransformRequest{
				Image:              "aGVsbG8=",
				TransformationType: "sepia",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Validate(tt.data)
			require.NoError(t, err)
			require.NotNil(t, req)
			assert.Equal(t, tt.expected, *req)
		})
	}
}

// TestBindTypeMismatch проверяет, что несовпадение типов не считается
// ошибкой валидации
func TestBindTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{
			name: "image is null",
			data: map[string]any{
				"image":               nil,
				"transformation_type": "grayscale",
			},
		},
		{
			name: "image is a number",
			data: map[string]any{
				"image":               float64(42),
				"transformation_type": "grayscale",
			},
		},
		{
			name: "rotation_angle is a string",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "rotate",
				"rotation_angle":      "ninety",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Validate(tt.data)
			require.Nil(t, req)

			var intErr *entity.InternalError
			assert.ErrorAs(t, err, &intErr)
		})
	}
}
