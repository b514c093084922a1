package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{entry: logrus.NewEntry(logrus.StandardLogger())}

type Logger struct {
	entry   *logrus.Entry
	// Console echoes every message to stdout as well.
	Console bool
}

type properties struct {
	logFilename  string
	maxSize      int
	maxBackups   int
	maxAge       int
	compressFlag bool
	level        string
}

func readLoggerProperties(dir string) (properties, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return properties{}, fmt.Errorf("read logger.properties: %w", err)
		}
	}

	maxSize, err := cast.ToIntE(v.Get("maxSize"))
	if err != nil {
		return properties{}, fmt.Errorf("logger maxSize: %w", err)
	}
	maxBackups, err := cast.ToIntE(v.Get("maxBackups"))
	if err != nil {
		return properties{}, fmt.Errorf("logger maxBackups: %w", err)
	}
	maxAge, err := cast.ToIntE(v.Get("maxAge"))
	if err != nil {
		return properties{}, fmt.Errorf("logger maxAge: %w", err)
	}
	compress, err := cast.ToBoolE(v.Get("compress"))
	if err != nil {
		return properties{}, fmt.Errorf("logger compress: %w", err)
	}

	return properties{
		logFilename:  cast.ToString(v.Get("logFilename")),
		maxSize:      maxSize,
		maxBackups:   maxBackups,
		maxAge:       maxAge,
		compressFlag: compress,
		level:        cast.ToString(v.Get("level")),
	}, nil
}

// Init points the logger at the rolling file described by
// <dir>/logger.properties.
func (l *Logger) Init(dir string) error {
	p, err := readLoggerProperties(dir)
	if err != nil {
		return err
	}

	loggerConfig := &lumberjack.Logger{
		Filename:   p.logFilename,
		MaxSize:    p.maxSize,
		MaxBackups: p.maxBackups,
		MaxAge:     p.maxAge,
		Compress:   p.compressFlag,
	}

	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(loggerConfig)
	base.SetLevel(parseLevel(p.level))

	l.entry = logrus.NewEntry(base)
	return nil
}

// SetSession tags every following entry with the game session id.
func (l *Logger) SetSession(session string) {
	l.entry = l.entry.WithField("session", session)
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {

	case "trace":
		return logrus.TraceLevel

	case "debug":
		return logrus.DebugLevel

	case "info":
		return logrus.InfoLevel

	case "warn":
		return logrus.WarnLevel

	case "error":
		return logrus.ErrorLevel

	case "fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// SetOutput redirects the logger, mostly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

func (l *Logger) Level() logrus.Level {
	return l.entry.Logger.GetLevel()
}

func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.entry.WithFields(fields)
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
	l.echo("Info:", message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
	l.echo("Error:", message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
	l.echo("Debug:", message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
	l.echo("Warn:", message)
}

func (l *Logger) Fatal(message string) {
	l.echo("Fatal:", message)
	l.entry.Fatal(message)
}

func (l *Logger) echo(prefix, message string) {
	if l.Console {
		fmt.Println(prefix, message)
	}
}
