// Package bundler wraps the esbuild API: one-shot bundles for the build
// command and incremental serve mode for the dev proxy.
package bundler

import (
	"os"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/3-lines-studio/heimdall/internal/core"
	"github.com/3-lines-studio/heimdall/internal/rewrite"
)

const (
	jsxFactory  = "h"
	jsxFragment = "Fragment"
)

// Options assembles the shared esbuild settings for a set of entry points:
// bundling enabled, ES module output, ES2020 baseline, with the import
// rewrite policy installed as a resolution hook. Alias mode additionally
// redirects the JSX runtime to preact's hooks.
func Options(entryPoints []string, outdir string, aliasMode bool) api.BuildOptions {
	projectRoot, err := os.Getwd()
	if err != nil {
		projectRoot = "."
	}
	policy := rewrite.NewPolicy(aliasMode, projectRoot)

	opts := api.BuildOptions{
		EntryPoints: entryPoints,
		Bundle:      true,
		Format:      api.FormatESModule,
		Target:      api.ES2020,
		Outdir:      outdir,
		Plugins:     []api.Plugin{policy.EsbuildPlugin()},
		LogLevel:    api.LogLevelSilent,
	}

	if aliasMode {
		opts.JSXFactory = jsxFactory
		opts.JSXFragment = jsxFragment
	}

	return opts
}

// Bundle runs a one-shot build and writes the output under the request's
// output directory. A failed build never leaves output that should be
// treated as complete; the caller is expected to exit non-zero.
func Bundle(req core.BuildRequest) (*Report, error) {
	entries, err := ExpandPatterns(req.EntryPatterns)
	if err != nil {
		return nil, err
	}

	opts := Options(entries, req.OutputDirectory, req.UIAliasMode)
	opts.Write = true
	opts.Metafile = true

	result := api.Build(opts)
	if len(result.Errors) > 0 {
		return nil, buildError(result.Errors)
	}

	report := ParseMetafile(result.Metafile)
	report.Entries = entries
	return report, nil
}

// ServeHandle is the running incremental serve mode of the bundler. Host
// and Port are the address actually bound, which may differ from the
// requested port.
type ServeHandle struct {
	Host string
	Port int
	stop func()
}

func (h *ServeHandle) Stop() {
	if h.stop != nil {
		h.stop()
	}
}

// Serve starts the bundler's incremental serve mode on the given internal
// port with source maps enabled.
func Serve(host string, port int, entryPoints []string, aliasMode bool) (*ServeHandle, error) {
	opts := Options(entryPoints, "", aliasMode)
	opts.Sourcemap = api.SourceMapLinked

	result, err := api.Serve(api.ServeOptions{
		Host: host,
		Port: uint16(port),
	}, opts)
	if err != nil {
		return nil, err
	}

	return &ServeHandle{
		Host: result.Host,
		Port: int(result.Port),
		stop: result.Stop,
	}, nil
}

func buildError(messages []api.Message) *core.BuildError {
	details := make([]core.ErrorDetail, len(messages))
	for i, msg := range messages {
		detail := core.ErrorDetail{Message: msg.Text}
		if msg.Location != nil {
			detail.File = msg.Location.File
			detail.Line = msg.Location.Line
			detail.Column = msg.Location.Column
			detail.LineText = msg.Location.LineText
		}
		details[i] = detail
	}
	return &core.BuildError{
		Message: "build failed",
		Errors:  details,
	}
}
