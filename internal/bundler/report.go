package bundler

import (
	"github.com/tidwall/gjson"
)

// OutputStat is one written bundle file as reported by the metafile.
type OutputStat struct {
	Path  string
	Bytes int64
}

// Report summarizes a successful build for the CLI.
type Report struct {
	Entries []string
	Outputs []OutputStat
}

// TotalBytes sums the written output sizes.
func (r *Report) TotalBytes() int64 {
	var total int64
	for _, out := range r.Outputs {
		total += out.Bytes
	}
	return total
}

// ParseMetafile extracts the per-output sizes from the bundler's metafile
// JSON. A missing or malformed metafile yields an empty report rather than
// an error; the report is informational only.
func ParseMetafile(metafile string) *Report {
	report := &Report{}
	if metafile == "" {
		return report
	}

	gjson.Get(metafile, "outputs").ForEach(func(key, value gjson.Result) bool {
		report.Outputs = append(report.Outputs, OutputStat{
			Path:  key.String(),
			Bytes: value.Get("bytes").Int(),
		})
		return true
	})

	return report
}
