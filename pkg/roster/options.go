// Package roster converts weekly shift roster spreadsheets into structured schedules.
package roster

import (
	"time"

	"github.com/ukaji3/roster-go/pkg/roster/output"
	"github.com/ukaji3/roster-go/pkg/roster/parser"
)

// Options configures parsing and output behavior.
type Options struct {
	// Parser holds the sheet layout heuristics.
	Parser parser.Config
	// Now supplies the parse timestamp and archive file suffix.
	// If nil, time.Now is used.
	Now func() time.Time
	// Writer persists the serialized document. Required by Run only.
	Writer *output.Writer
	// Pretty indents the JSON output.
	Pretty bool
}

// DefaultOptions returns default parsing options without a writer.
func DefaultOptions() Options {
	return Options{
		Parser: parser.DefaultConfig(),
		Pretty: true,
	}
}

// now returns the current time from the configured clock.
func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
