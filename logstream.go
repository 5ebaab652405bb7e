// A hierarchical, depth-filtered execution log stream for Go. Nested phases
// of a program push and pop named scopes; every emitted line is prefixed with
// the active scope chain and duplicated to a console sink and an optional
// file sink, each with its own depth ceiling.
package slg

/*
logstream.go

Construction and configuration of the stream:
 - Init / InitWithParams constructors
 - file sink attach/detach and sink accessors
 - prefix stack push/pop
 - per-sink depth ceilings and time-printing switches
 - memory footprint estimation
*/

import (
	"io"
	"os"
	"time"
	"unsafe"
)

// Init creates a log stream with default parameters: console output to
// [os.Stderr] with unlimited depth, no file sink attached and the file depth
// ceiling at zero.
//
// Preferred usage example:
//
//	func main() {
//	    log := slg.Init()
//	    log.Push("init")
//	    log.Print("ready").Endl()
//	    log.Pop()
//	    ...
//	}
//
// The typical deployment constructs a single stream at startup and passes it
// by reference to all call sites.
func Init() *LogStream {
	return InitWithParams(os.Stderr, DEFAULT_CONSOLE_DEPTH, DEFAULT_FILE_DEPTH)
}

// InitWithParams constructs a log stream with an explicit console sink and
// initial depth ceilings. A nil console falls back to [os.Stderr] so the
// console binding is never absent. The file sink starts detached.
func InitWithParams(console io.Writer, consoleDepth, fileDepth uint) *LogStream {
	l := new(LogStream)
	if console == nil {
		console = os.Stderr
	}
	l.console = console
	l.consoleDepth = consoleDepth
	l.fileDepth = fileDepth
	l.atLineStart = true
	start := time.Now()
	l.elapsed = func() time.Duration { return time.Since(start) }
	return l
}

// Attach binds the file sink to the provided destination, replacing any
// previous binding without closing it. The stream never owns its sinks:
// opening, flushing and closing the destination stay with the caller.
//
// Attaching nil is equivalent to Detach.
func (l *LogStream) Attach(file io.Writer) *LogStream {
	l.file = file
	return l
}

// Detach clears the file sink binding. Subsequent output to the file sink is
// silently suppressed until a new destination is attached. The previously
// attached destination is left as is (you may want to close it yourself).
func (l *LogStream) Detach() *LogStream {
	l.file = nil
	return l
}

// Console returns the console sink destination. Always available.
func (l *LogStream) Console() io.Writer {
	return l.console
}

// FileStream returns the file sink destination, or ErrNoFileStream while no
// file sink is attached. Callers that need the raw destination are told
// explicitly instead of dereferencing nothing; normal output through Print
// and Endl never needs this accessor.
func (l *LogStream) FileStream() (io.Writer, error) {
	if l.file == nil {
		return nil, ErrNoFileStream
	}
	return l.file, nil
}

// Push appends a scope name to the prefix stack. Prefixes are separated by a
// colon in line heads, with a double colon after the deepest one. Any text is
// accepted, including the empty string.
func (l *LogStream) Push(name string) *LogStream {
	l.prefixes = append(l.prefixes, name)
	return l
}

// Pop removes the most recently pushed scope name. Popping an empty stack
// returns ErrStackUnderflow and leaves the stream untouched; ignoring that
// error would let a push/pop mismatch silently corrupt every following line
// head.
func (l *LogStream) Pop() error {
	if len(l.prefixes) == 0 {
		return ErrStackUnderflow
	}
	l.prefixes = l.prefixes[:len(l.prefixes)-1]
	return nil
}

// Depth returns the number of currently pushed scope names.
func (l *LogStream) Depth() uint {
	return uint(len(l.prefixes))
}

// SetConsoleDepth sets the maximum nesting depth admitted to the console
// sink. A line is written to the console only while Depth() <= n, checked
// anew for every write. Zero still admits depth-0 output (no scopes pushed);
// it does not silence the sink completely.
func (l *LogStream) SetConsoleDepth(n uint) *LogStream {
	l.consoleDepth = n
	return l
}

// SetFileDepth sets the maximum nesting depth admitted to the file sink,
// with the same inclusive semantics as SetConsoleDepth. Use with care: a
// lowered ceiling thins out the log file for everything written afterwards.
func (l *LogStream) SetFileDepth(n uint) *LogStream {
	l.fileDepth = n
	return l
}

// SetTimePrinting toggles whether line heads start with the elapsed time
// reported by the stream's time source. Takes effect from the next line head;
// the current line is never rewritten.
func (l *LogStream) SetTimePrinting(enabled bool) *LogStream {
	l.printTime = enabled
	return l
}

// SetTimeSource replaces the elapsed-time provider used for timed line
// heads. A nil source restores the default (wall-clock time since the call).
func (l *LogStream) SetTimeSource(f TimeSource) *LogStream {
	if f != nil {
		l.elapsed = f
	} else {
		start := time.Now()
		l.elapsed = func() time.Duration { return time.Since(start) }
	}
	return l
}

// MemoryConsumption returns an estimate of the memory, in bytes, held by the
// stream and the contents of its prefix stack. An estimate by contract: the
// exact footprint of the sink bindings is unknowable from here, but the
// result tracks the dominant term (the stacked prefix text) closely enough
// for diagnostics.
func (l *LogStream) MemoryConsumption() uint {
	size := uint(unsafe.Sizeof(*l))
	size += uint(cap(l.prefixes)) * uint(unsafe.Sizeof(""))
	for _, p := range l.prefixes {
		size += uint(len(p))
	}
	return size
}
