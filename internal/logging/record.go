package logging

import (
	"fmt"
	"time"
)

const (
	lineTimeLayout  = "2006-01-02 15:04:05,000"
	tableTimeLayout = "15:04:05.000"
)

// Record is one logged message. Records are values and never change once
// the bridge stamped them.
type Record struct {
	Time    time.Time
	Level   Level
	Source  string
	Message string
}

// Clock returns the time of day with milliseconds, as shown in tables.
func (r Record) Clock() string { return r.Time.Format(tableTimeLayout) }

// Line formats the record as written to log files. Newlines in the message
// are kept.
func (r Record) Line() string {
	return fmt.Sprintf("[%s] [%s] [%s]: %s", r.Time.Format(lineTimeLayout), r.Source, r.Level, r.Message)
}
