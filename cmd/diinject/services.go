package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/arthur-debert/diinject/pkg/container"
)

// Logger is the capability resolved by the demo as a singleton
type Logger interface {
	Log(msg string)
	InstanceID() string
}

type consoleLogger struct {
	out io.Writer
	id  string
}

func (l *consoleLogger) Log(msg string) {
	fmt.Fprintf(l.out, "[%s] %s\n", l.id[:8], msg)
}

func (l *consoleLogger) InstanceID() string { return l.id }

var (
	LoggerKey       = container.NewKey[Logger]("Logger")
	RequestIDKey    = container.NewKey[string]("RequestId")
	UnregisteredKey = container.NewKey[string]("Unregistered")
)

// registerServices binds the demo services on c
func registerServices(c *container.Container, out io.Writer) {
	container.Register(c, LoggerKey, container.Singleton, func() Logger {
		return &consoleLogger{out: out, id: uuid.NewString()}
	})
	container.Register(c, RequestIDKey, container.Transient, uuid.NewString)
}
