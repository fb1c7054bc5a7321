package main

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bayleafwalker/plugdeps/internal/cli"
)

func main() {
	_ = godotenv.Load()

	cli.Execute(newLogger())
}

// newLogger builds the diagnostic logger. Output goes to stderr so the
// report itself stays clean; PLUGDEPS_DEBUG turns on the chatter.
func newLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	if os.Getenv("PLUGDEPS_DEBUG") == "" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(zl)
}
