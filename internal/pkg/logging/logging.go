package logging

import (
	"io"
	"os"

	"github.com/ds124wfegd/image-transform-service/internal/pkg/storage"
	"github.com/sirupsen/logrus"
)

// Logger bundles the process logger with the file sink it writes to, so the
// caller owns an explicit init/flush lifecycle instead of package-global
// state. Every entry goes to both the console and the append-only log file.
type Logger struct {
	*logrus.Logger
	file io.WriteCloser
}

func New(store storage.LogStorage, fileName, level string) (*Logger, error) {
	log := logrus.New()
	log.SetFormatter(new(logrus.JSONFormatter))

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	file, err := store.OpenAppend(fileName)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stdout, file))

	return &Logger{Logger: log, file: file}, nil
}

func (l *Logger) Close() error {
	return l.file.Close()
}
