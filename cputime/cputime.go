// Package cputime provides a slg.TimeSource backed by the user CPU time of
// the current process, for log lines that should report compute time instead
// of wall-clock time.
package cputime

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/abyssdigger/slg"
)

// Source returns a time source reporting the accumulated user CPU time of
// the calling process. Construction fails if the process handle cannot be
// obtained; a per-call read failure yields zero rather than an error, since
// a time field is decoration, not data.
//
// Typical wiring:
//
//	src, err := cputime.Source()
//	if err == nil {
//	    log.SetTimeSource(src).SetTimePrinting(true)
//	}
func Source() (slg.TimeSource, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return func() time.Duration {
		times, err := proc.Times()
		if err != nil {
			return 0
		}
		return time.Duration(times.User * float64(time.Second))
	}, nil
}
