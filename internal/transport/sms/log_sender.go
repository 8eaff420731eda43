package sms

import (
	"context"

	"github.com/fsdevblog/ecoledger/internal/logger"
	"github.com/sirupsen/logrus"
)

// LogSender пишет сообщения в лог вместо отправки. Используется, когда адрес SMS шлюза не задан.
type LogSender struct {
	l *logrus.Entry
}

func NewLogSender(l *logrus.Logger) *LogSender {
	return &LogSender{l: logger.Module(l, "sms")}
}

func (s *LogSender) Send(_ context.Context, phone, message string) error {
	s.l.WithField("phone", phone).Infof("sms: %s", message)
	return nil
}
