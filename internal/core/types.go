package core

import (
	"fmt"
	"strings"
)

// BuildRequest describes a single one-shot bundle invocation. It is
// immutable and consumed once.
type BuildRequest struct {
	EntryPatterns   []string
	OutputDirectory string
	UIAliasMode     bool
}

// ServeSession holds the addresses of a running dev proxy. It is created at
// startup, owned by the dev server for the process lifetime and never
// mutated afterwards.
type ServeSession struct {
	InternalHost string
	InternalPort int
	PublicPort   int
	EntryPoints  []string
}

// InternalAddr returns the host:port of the internal bundler server.
func (s ServeSession) InternalAddr() string {
	return fmt.Sprintf("%s:%d", s.InternalHost, s.InternalPort)
}

// ErrorDetail is one bundler diagnostic with its source position.
type ErrorDetail struct {
	Message  string
	File     string
	Line     int
	Column   int
	LineText string
}

// BuildError aggregates the diagnostics of a failed bundle.
type BuildError struct {
	Message string
	Errors  []ErrorDetail
}

func (e *BuildError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}

	var sb strings.Builder
	sb.WriteString(e.Message)
	for i, detail := range e.Errors {
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, detail.Message))
		if detail.File != "" {
			sb.WriteString(fmt.Sprintf(" (%s:%d:%d)", detail.File, detail.Line, detail.Column))
		}
	}
	return sb.String()
}
