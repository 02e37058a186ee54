// Package heimdall is a development-time build and serve tool for browser
// plugins. Build bundles entry points into ES modules through esbuild;
// Serve runs a local proxy in front of esbuild's incremental serve mode
// and injects a hot-reload bootstrap module for dev-flagged requests.
package heimdall

import (
	"github.com/3-lines-studio/heimdall/internal/bundler"
	"github.com/3-lines-studio/heimdall/internal/core"
	"github.com/3-lines-studio/heimdall/internal/devserver"
)

type BuildRequest = core.BuildRequest

type BuildError = core.BuildError

type ServeSession = core.ServeSession

type ServeConfig = devserver.Config

type Server = devserver.Server

// Report summarizes the files a successful build wrote.
type Report = bundler.Report

// Build expands the request's entry patterns and runs a one-shot bundle
// into the output directory. A build failure returns a *BuildError; no
// partial output is treated as complete.
func Build(req BuildRequest) (*Report, error) {
	return bundler.Bundle(req)
}

// Serve starts the dev proxy server and returns once it is accepting
// requests on its public port.
func Serve(cfg ServeConfig) (*Server, error) {
	return devserver.Start(cfg)
}
