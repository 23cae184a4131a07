package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ds124wfegd/image-transform-service/internal/entity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransformer struct {
	result string
	err    error
}

func (s *stubTransformer) Transform(_ *entity.TransformRequest) (string, error) {
	return s.result, s.err
}

type captureProducer struct {
	events chan entity.AuditEvent
}

func (p *captureProducer) SendEvent(_ context.Context, event interface{}) error {
	p.events <- event.(entity.AuditEvent)
	return nil
}

func (p *captureProducer) Close() error {
	return nil
}

// TestAuditOutcomes тестирует классификацию исходов в audit-событиях
func TestAuditOutcomes(t *testing.T) {
	tests := []struct {
		name            string
		data            map[string]any
		transformErr    error
		expectedOutcome string
		expectErr       bool
	}{
		{
			name: "success",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "grayscale",
			},
			expectedOutcome: "success",
		},
		{
			name:            "validation error",
			data:            map[string]any{},
			expectedOutcome: "validation_error",
			expectErr:       true,
		},
		{
			name: "bad image",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "grayscale",
			},
			transformErr:    &entity.BadImageError{Message: entity.MsgInvalidImageFile},
			expectedOutcome: "bad_image",
			expectErr:       true,
		},
		{
			name: "bad parameter",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "sepia",
			},
			transformErr:    &entity.BadParameterError{Detail: entity.ErrInvalidTransformationType},
			expectedOutcome: "bad_parameter",
			expectErr:       true,
		},
		{
			name: "internal error",
			data: map[string]any{
				"image":               "aGVsbG8=",
				"transformation_type": "grayscale",
			},
			transformErr:    &entity.InternalError{Err: errors.New("boom")},
			expectedOutcome: "internal_error",
			expectErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := logrus.New()
			log.SetOutput(io.Discard)

			producer := &captureProducer{events: make(chan entity.AuditEvent, 1)}
			svc := NewTransformService(&stubTransformer{result: "ZGF0YQ==", err: tt.transformErr}, producer, log)

			response, err := svc.Transform(context.Background(), "req-1", tt.data)
			if tt.expectErr {
				require.Error(t, err)
				require.Nil(t, response)
			} else {
				require.NoError(t, err)
				require.Equal(t, "ZGF0YQ==", response.TransformedImage)
			}

			select {
			case event := <-producer.events:
				assert.Equal(t, "req-1", event.RequestID)
				assert.Equal(t, tt.expectedOutcome, event.Outcome)
				if tt.expectErr {
					assert.NotEmpty(t, event.Error)
				}
			case <-time.After(time.Second):
				t.Fatal("audit event was not published")
			}
		})
	}
}
