package cli

import (
	"fmt"
	"time"
)

// BundleReport renders the outcome of a one-shot bundle: entry count,
// written outputs with sizes, total duration.
type BundleReport struct {
	out        *Output
	outputDir  string
	entryCount int
	outputs    []reportLine
	startTime  time.Time
}

type reportLine struct {
	path  string
	bytes int64
}

func NewBundleReport(out *Output, outputDir string) *BundleReport {
	return &BundleReport{
		out:       out,
		outputDir: outputDir,
		startTime: time.Now(),
	}
}

func (r *BundleReport) SetEntryCount(count int) {
	r.entryCount = count
}

func (r *BundleReport) AddOutput(path string, bytes int64) {
	r.outputs = append(r.outputs, reportLine{path: path, bytes: bytes})
}

func (r *BundleReport) Render() {
	duration := time.Since(r.startTime)

	r.out.PrintSuccess("%d entry point(s)", r.entryCount)
	for _, line := range r.outputs {
		r.out.PrintFile(fmt.Sprintf("%s  %s", line.path, r.out.Gray(formatBytes(line.bytes))))
	}
	r.out.PrintSuccess("Build complete in %s", formatDuration(duration))

	if r.outputDir != "" {
		fmt.Printf("\n  %s\n", r.out.Gray("Output: "+r.outputDir))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fmb", float64(n)/float64(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fkb", float64(n)/float64(1<<10))
	default:
		return fmt.Sprintf("%db", n)
	}
}
