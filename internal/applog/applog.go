// Package applog wires the completion driver's progress output to
// hashicorp/go-hclog, a structured logger. kbcomplete itself takes an
// hclog.Logger from its caller (NewSystem substitutes
// hclog.NewNullLogger() for nil) and uses this package only for the
// field names its log lines carry; this wrapper also supplies the CLI's
// default logger construction.
package applog

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// New builds the default CLI logger: human-readable output to stderr at
// the given level, named "kbcomplete".
func New(level string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "kbcomplete",
		Level:      hclog.LevelFromString(level),
		Output:     os.Stderr,
		JSONFormat: false,
	})
}

// Field names used consistently across the completion driver's log
// lines, so a JSON-mode consumer can filter on them reliably.
const (
	FieldStep     = "step"
	FieldRule     = "rule"
	FieldPair     = "pair"
	FieldRules    = "rule_count"
	FieldQueueLen = "queue_len"
)
