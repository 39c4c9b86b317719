package logging

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"strings"
)

// ChiLogWriter sends the lines of chi's default request logger to logrus.
type ChiLogWriter struct {
}

func (lw *ChiLogWriter) Print(a ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprint(a...), "\n")
	logrus.Info(msg)
}
