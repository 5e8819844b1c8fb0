package main

import (
	syslog "github.com/RackSec/srslog"
	"github.com/sirupsen/logrus"
)

// syslogHook forwards log entries to a syslog server.
type syslogHook struct {
	writer *syslog.Writer
}

func newSyslogHook(network, addr, tag string) (*syslogHook, error) {
	writer, err := syslog.Dial(network, addr, syslog.LOG_INFO|syslog.LOG_DAEMON, tag)
	if err != nil {
		return nil, err
	}
	return &syslogHook{writer: writer}, nil
}

func (h *syslogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *syslogHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return h.writer.Crit(line)
	case logrus.ErrorLevel:
		return h.writer.Err(line)
	case logrus.WarnLevel:
		return h.writer.Warning(line)
	case logrus.InfoLevel:
		return h.writer.Info(line)
	default:
		return h.writer.Debug(line)
	}
}
