// launching the server, logging, kafka
package appServer

import (
	"context"
	"crypto/tls"
	"log"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/image-transform-service/config"
	"github.com/ds124wfegd/image-transform-service/internal/pkg/kafka"
	"github.com/ds124wfegd/image-transform-service/internal/pkg/logging"
	"github.com/ds124wfegd/image-transform-service/internal/pkg/processor"
	"github.com/ds124wfegd/image-transform-service/internal/pkg/storage"
	"github.com/ds124wfegd/image-transform-service/internal/service"
	"github.com/ds124wfegd/image-transform-service/internal/transport"
	"github.com/gin-gonic/gin"

	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logStore := storage.NewLogStorage(cfg.Logging.Dir)
	logg, err := logging.New(logStore, cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		logrus.Fatalf("error occured while opening log sink: %s", err.Error())
	}

	producer := newProducer(cfg, logg.Logger)
	transformer := processor.NewTransformer(logg.Logger, cfg.Transform.JPEGQuality)
	transformService := service.NewTransformService(transformer, producer, logg.Logger)
	transformHandler := transport.NewTransformHandler(transformService, logg.Logger)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		routes := transport.InitRoutes(logg.Logger, transformHandler, cfg.Transform.TimeoutSeconds, cfg.Logging.MaxBodyLog)
		if err := srv.Run(cfg, routes); err != nil && err != http.ErrServerClosed {
			logg.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logg.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logg.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logg.Errorf("error occured on server shutting down: %s", err.Error())
	}

	if err := producer.Close(); err != nil {
		logg.Errorf("error occured on closing audit producer: %s", err.Error())
	}

	if err := logg.Close(); err != nil {
		logrus.Errorf("error occured on closing log sink: %s", err.Error())
	}
}

func newProducer(cfg *config.Config, log *logrus.Logger) kafka.Producer {
	if !cfg.Kafka.Enabled {
		return kafka.NewNoopProducer(log)
	}
	return kafka.NewProducer(
		log,
		config.GetEnv("KAFKA_BROKERS", cfg.Kafka.Brokers),
		config.GetEnv("KAFKA_TOPIC", cfg.Kafka.Topic),
	)
}
