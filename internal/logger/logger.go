package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер. В продакшн (GIN_MODE=release) пишет JSON с уровнем Info, в остальных окружениях
// текст с уровнем Debug. LOG_LEVEL переопределяет уровень в любом окружении.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(new(logrus.TextFormatter))
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			l.WithError(err).Warnf("unknown LOG_LEVEL %q, keeping %s", raw, l.GetLevel())
		} else {
			l.SetLevel(level)
		}
	}

	return l
}

// Module возвращает запись лога с полем module. Так подписываются логи отдельных подсистем (http, sms, batch).
func Module(l logrus.FieldLogger, name string) *logrus.Entry {
	return l.WithField("module", name)
}
