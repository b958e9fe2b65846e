package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdpage/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, runtime tuning, and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader

	// SetMaxProcs adjusts GOMAXPROCS to the container CPU quota and returns
	// a function restoring the previous value. Nil skips the adjustment.
	SetMaxProcs func(logf func(string, ...interface{})) (undo func())
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		SetMaxProcs: setMaxProcs,
	}
}

func setMaxProcs(logf func(string, ...interface{})) func() {
	undo, err := maxprocs.Set(maxprocs.Logger(logf))
	if err != nil {
		return func() {}
	}
	return undo
}
