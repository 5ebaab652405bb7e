package slg

/*
stream.go

The line assembler. Converts streamed fragments into physical output lines:
 - Print renders fragments and lazily emits the line head at the first
   fragment of each line
 - Endl terminates the line and re-arms the head for the next one
 - admission to each sink is re-evaluated against the current stack depth on
   every single write
*/

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print renders each value with the fmt package and streams it as a fragment
// of the current line. Anything fmt can render is accepted: strings, numbers,
// [fmt.Stringer] implementations, errors, composites.
//
// The first fragment after a line start first triggers the line head (the
// optional elapsed-time field and the rendered prefix chain); further
// fragments append to the same logical line until Endl is called. Each write
// goes to every sink whose depth ceiling admits the current stack depth; the
// depth is checked at the moment of writing, so a line assembled across a
// Push or Pop may legitimately change sinks mid-line.
//
// Returns the stream for chaining:
//
//	log.Print("residual=").Print(res).Endl()
func (l *LogStream) Print(values ...any) *LogStream {
	for _, v := range values {
		if l.atLineStart {
			l.printLineHead()
			l.atLineStart = false
		}
		l.writeText(fmt.Sprint(v))
	}
	return l
}

// Endl terminates the current logical line: a line terminator is written to
// every admitted sink and the next fragment will start a fresh line with a
// fresh head. Lines never terminate themselves — callers must call Endl, and
// a line with zero fragments produces a bare terminator with no head.
func (l *LogStream) Endl() *LogStream {
	l.writeText("\n")
	l.atLineStart = true
	return l
}

// Println streams the provided values as one complete line. Shorthand for
//
//	Print(values...).Endl()
func (l *LogStream) Println(values ...any) *LogStream {
	return l.Print(values...).Endl()
}

// Prefix renders the current contents of the prefix stack as it appears in
// line heads: every name followed by PREFIX_SEPARATOR, with PREFIX_TERMINATOR
// appended after the deepest one. An empty stack renders as an empty string.
func (l *LogStream) Prefix() string {
	if len(l.prefixes) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range l.prefixes {
		b.WriteString(p)
		b.WriteString(PREFIX_SEPARATOR)
	}
	b.WriteString(PREFIX_TERMINATOR)
	return b.String()
}

// printLineHead emits the head of a new line: the elapsed-time field when
// time printing is enabled, then the prefix chain. Invoked exactly once per
// line, lazily at the first fragment, never at Endl time.
func (l *LogStream) printLineHead() {
	if l.printTime {
		sec := l.elapsed().Seconds()
		l.writeText(strconv.FormatFloat(sec, 'f', 3, 64) + PREFIX_SEPARATOR)
	}
	l.writeText(l.Prefix())
}

// writeText writes a chunk of text to every sink admitted at the current
// stack depth. The ceiling check is inclusive: depth 0 passes a ceiling of 0.
// An unattached file sink receives nothing and raises nothing.
func (l *LogStream) writeText(s string) {
	depth := uint(len(l.prefixes))
	if depth <= l.consoleDepth {
		io.WriteString(l.console, s)
	}
	if l.file != nil && depth <= l.fileDepth {
		io.WriteString(l.file, s)
	}
}
