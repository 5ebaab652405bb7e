package slg

/*
Defines the core data types used by the log stream:
  - LogStream: the central state object owning the prefix stack, the two
    sink bindings and the line-start flag
  - TimeSource: injectable elapsed-time provider for the optional head field

Also defines package-wide constants and the two error kinds surfaced to
callers.
*/

import (
	"errors"
	"io"
	"time"
)

// TimeSource reports the elapsed time to be printed in line heads when time
// printing is enabled. The default source measures wall-clock time since the
// stream was constructed; see the cputime subpackage for a user-CPU-time
// source.
type TimeSource func() time.Duration

// LogStream is the central state holder. It owns the stack of scope prefixes,
// the console and file sink bindings with their independent depth ceilings,
// and the line-start flag that defers head emission to the first fragment of
// each line.
//
// A LogStream is not safe for concurrent use. When shared between goroutines
// the caller must hold one external mutex around Push/Pop/Print/Endl for the
// whole logical line, otherwise interleaved fragments corrupt line heads.
type LogStream struct {
	prefixes     []string  // stack of scope names, rendered at each line head
	console      io.Writer // default sink, never nil
	file         io.Writer // optional second sink, nil when detached
	consoleDepth uint      // max stack depth admitted to the console sink
	fileDepth    uint      // max stack depth admitted to the file sink
	atLineStart  bool      // true until the first fragment of the next line
	printTime    bool      // whether line heads carry an elapsed-time field
	elapsed      TimeSource
}

const (
	// DEPTH_UNLIMITED admits output at any nesting depth.
	DEPTH_UNLIMITED = ^uint(0)

	// Default depth ceilings for Init(): everything on the console, nothing
	// to the file until the caller raises its ceiling.
	DEFAULT_CONSOLE_DEPTH = DEPTH_UNLIMITED
	DEFAULT_FILE_DEPTH    = uint(0)

	// PREFIX_SEPARATOR follows every stacked prefix; PREFIX_TERMINATOR is
	// appended once more after the deepest one, so a stack [a b] renders as
	// "a:b::".
	PREFIX_SEPARATOR  = ":"
	PREFIX_TERMINATOR = ":"
)

const (
	// Error messages used across stream operations (used for testing).
	_ERROR_MESSAGE_STACK_UNDERFLOW = "pop on empty prefix stack"
	_ERROR_MESSAGE_NO_FILE_STREAM  = "no file stream given"
)

var (
	// ErrStackUnderflow is returned by Pop when no prefix is on the stack.
	// It always indicates a push/pop mismatch at the call site.
	ErrStackUnderflow = errors.New(_ERROR_MESSAGE_STACK_UNDERFLOW)

	// ErrNoFileStream is returned by FileStream while no file sink is
	// attached. Writing in that state is a silent no-op; only the accessor
	// fails.
	ErrNoFileStream = errors.New(_ERROR_MESSAGE_NO_FILE_STREAM)
)
