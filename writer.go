package slg

/*********************************************************************************
io.Writer interface implementation

The LogStream implements io.Writer so it can be used with fmt.Fprintf and
other formatting helpers. The semantics are:
 - newline bytes in the payload are translated into Endl calls, so the
   line-buffering protocol (lazy head, explicit termination) is preserved
 - everything between newlines is streamed as one fragment

This allows patterns like:
  fmt.Fprintf(log, "step %d: residual=%g\n", step, res)
But remember that fmt is not thread-safe!
*/

import "bytes"

// Write implements io.Writer. The payload is split on '\n': each segment is
// streamed as a fragment and each newline terminates the line via Endl. A
// trailing segment without a newline stays buffered as an open line, exactly
// as a Print call would leave it. A nil payload is treated as a zero-length
// write with no error.
//
// Write always reports the full payload length as written, even when the
// current depth ceilings suppress both sinks — suppression is filtering, not
// failure.
func (l *LogStream) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	rest := p
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			break
		}
		if i > 0 {
			l.Print(string(rest[:i]))
		}
		l.Endl()
		rest = rest[i+1:]
	}
	if len(rest) > 0 {
		l.Print(string(rest))
	}
	return len(p), nil
}
