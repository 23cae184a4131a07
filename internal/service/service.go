package service

import (
	"context"

	"github.com/ds124wfegd/image-transform-service/internal/entity"
	"github.com/ds124wfegd/image-transform-service/internal/pkg/kafka"
	"github.com/ds124wfegd/image-transform-service/internal/pkg/processor"
	"github.com/sirupsen/logrus"
)

type TransformService interface {
	Transform(ctx context.Context, requestID string, data map[string]any) (*entity.TransformResponse, error)
}

type transformService struct {
	transformer processor.Transformer
	producer    kafka.Producer
	log         *logrus.Logger
}

func NewTransformService(transformer processor.Transformer, producer kafka.Producer, log *logrus.Logger) TransformService {
	return &transformService{
		transformer: transformer,
		producer:    producer,
		log:         log,
	}
}
