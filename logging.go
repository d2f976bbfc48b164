package main

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// newLogger returns the diagnostic logger. Nothing is emitted unless
// verbosity is raised above zero.
func newLogger(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(w, "docgen ", log.Ltime))
}
