package service

import (
	"context"
	"errors"
	"time"

	"github.com/ds124wfegd/image-transform-service/internal/entity"
	"github.com/ds124wfegd/image-transform-service/internal/pkg/validation"
)

// Transform validates the raw request body, runs the transform pipeline and
// publishes an audit event with the outcome. The returned error is always one
// of the entity error types; the transport layer maps it to a status code.
func (s *transformService) Transform(ctx context.Context, requestID string, data map[string]any) (*entity.TransformResponse, error) {
	start := time.Now()
	transformationType, _ := data["transformation_type"].(string)

	req, err := validation.Validate(data)
	if err != nil {
		s.audit(requestID, transformationType, start, err)
		return nil, err
	}

	encoded, err := s.transformer.Transform(req)
	s.audit(requestID, req.TransformationType, start, err)
	if err != nil {
		return nil, err
	}

	s.log.WithField("request_id", requestID).Info("Returning transformed image to user")
	return &entity.TransformResponse{TransformedImage: encoded}, nil
}

func (s *transformService) audit(requestID, transformationType string, start time.Time, terr error) {
	event := entity.AuditEvent{
		RequestID:          requestID,
		TransformationType: transformationType,
		Outcome:            outcomeOf(terr),
		DurationMs:         time.Since(start).Milliseconds(),
	}
	if terr != nil {
		event.Error = terr.Error()
	}

	// Fire-and-forget: audit delivery never delays or fails the request.
	go func() {
		_ = s.producer.SendEvent(context.Background(), event)
	}()
}

func outcomeOf(err error) string {
	var (
		vErr     *entity.ValidationError
		imgErr   *entity.BadImageError
		paramErr *entity.BadParameterError
	)
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &vErr):
		return "validation_error"
	case errors.As(err, &imgErr):
		return "bad_image"
	case errors.As(err, &paramErr):
		return "bad_parameter"
	default:
		return "internal_error"
	}
}
