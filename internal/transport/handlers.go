package transport

import (
	"github.com/ds124wfegd/image-transform-service/internal/service"
	"github.com/sirupsen/logrus"
)

type TransformHandler struct {
	service service.TransformService
	log     *logrus.Logger
}

func NewTransformHandler(service service.TransformService, log *logrus.Logger) *TransformHandler {
	return &TransformHandler{service: service, log: log}
}
