package slg

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Init_Defaults(t *testing.T) {
	l := Init()
	assert.Equal(t, os.Stderr, l.Console(), "console must default to stderr")
	assert.Equal(t, DEFAULT_CONSOLE_DEPTH, l.consoleDepth)
	assert.Equal(t, DEFAULT_FILE_DEPTH, l.fileDepth)
	assert.Equal(t, uint(0), l.Depth(), "fresh stream has no scopes")
	assert.True(t, l.atLineStart, "fresh stream starts at line start")
	_, err := l.FileStream()
	assert.ErrorIs(t, err, ErrNoFileStream, "no file sink attached by default")
}

func Test_InitWithParams(t *testing.T) {
	out := &FakeWriter{}
	t.Run("explicit_console", func(t *testing.T) {
		l := InitWithParams(out, 3, 7)
		assert.Equal(t, out, l.Console())
		assert.Equal(t, uint(3), l.consoleDepth)
		assert.Equal(t, uint(7), l.fileDepth)
	})
	t.Run("nil_console_fallback", func(t *testing.T) {
		l := InitWithParams(nil, 0, 0)
		assert.Equal(t, os.Stderr, l.Console(), "nil console must fall back to stderr")
	})
}

func Test_LogStream_AttachDetach(t *testing.T) {
	file := &FakeWriter{}
	l := InitWithParams(&FakeWriter{}, DEPTH_UNLIMITED, DEPTH_UNLIMITED)

	t.Run("attach", func(t *testing.T) {
		lres := l.Attach(file)
		assert.Equal(t, l, lres, "result is another stream")
		got, err := l.FileStream()
		assert.NoError(t, err)
		assert.Equal(t, file, got)
	})
	t.Run("replace_without_closing", func(t *testing.T) {
		file2 := &FakeWriter{}
		l.Attach(file2)
		got, err := l.FileStream()
		assert.NoError(t, err)
		assert.Equal(t, file2, got, "new binding must replace the old one")
		l.Println("after replace")
		assert.Empty(t, file.buffer, "old binding must receive nothing")
	})
	t.Run("detach", func(t *testing.T) {
		l.Detach()
		_, err := l.FileStream()
		assert.ErrorIs(t, err, ErrNoFileStream)
		assert.NotPanics(t, func() {
			l.Print("to nowhere").Endl()
		}, "writes to a detached file sink must be silent no-ops")
	})
	t.Run("attach_nil_is_detach", func(t *testing.T) {
		l.Attach(file).Attach(nil)
		_, err := l.FileStream()
		assert.ErrorIs(t, err, ErrNoFileStream)
	})
}

func Test_LogStream_PushPop(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{"single", []string{"outer"}},
		{"nested", []string{"outer", "inner", "solver"}},
		{"empty_names", []string{"", "", ""}},
		{"utf8", []string{testlogstr, "ascii"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := InitWithParams(&FakeWriter{}, DEPTH_UNLIMITED, 0)
			before := l.Prefix()
			for i, name := range tt.names {
				l.Push(name)
				assert.Equal(t, uint(i+1), l.Depth(), "depth must follow pushes")
			}
			for range tt.names {
				assert.NoError(t, l.Pop())
			}
			assert.Equal(t, uint(0), l.Depth(), "matched pops must empty the stack")
			assert.Equal(t, before, l.Prefix(), "prefix must return to its pre-sequence value")
		})
	}
}

func Test_LogStream_PopUnderflow(t *testing.T) {
	out := &FakeWriter{}
	l := InitWithParams(out, DEPTH_UNLIMITED, 0)

	assert.ErrorIs(t, l.Pop(), ErrStackUnderflow, "pop on empty stack must fail")
	assert.ErrorIs(t, l.Pop(), ErrStackUnderflow, "underflow must fail every time, not only once")

	// The failed pops must not corrupt later state.
	l.Push("alive")
	assert.Equal(t, uint(1), l.Depth())
	l.Println("still works")
	assert.Equal(t, "alive::still works\n", out.String())
	assert.NoError(t, l.Pop())
	assert.ErrorIs(t, l.Pop(), ErrStackUnderflow)
}

func Test_LogStream_DepthSetters(t *testing.T) {
	l := InitWithParams(&FakeWriter{}, 0, 0)
	for _, n := range []uint{0, 1, 5, DEPTH_UNLIMITED} {
		t.Run("n="+strconv.FormatUint(uint64(n), 10), func(t *testing.T) {
			assert.Equal(t, l, l.SetConsoleDepth(n))
			assert.Equal(t, n, l.consoleDepth)
			assert.Equal(t, l, l.SetFileDepth(n))
			assert.Equal(t, n, l.fileDepth)
		})
	}
}

func Test_LogStream_SetTimeSource(t *testing.T) {
	l := InitWithParams(&FakeWriter{}, DEPTH_UNLIMITED, 0)
	t.Run("custom", func(t *testing.T) {
		l.SetTimeSource(func() time.Duration { return 42 * time.Second })
		assert.Equal(t, 42*time.Second, l.elapsed())
	})
	t.Run("nil_restores_default", func(t *testing.T) {
		l.SetTimeSource(nil)
		assert.GreaterOrEqual(t, l.elapsed(), time.Duration(0))
		assert.Less(t, l.elapsed(), time.Minute, "default source must restart from now")
	})
}

func Test_LogStream_MemoryConsumption(t *testing.T) {
	l := InitWithParams(&FakeWriter{}, DEPTH_UNLIMITED, 0)
	base := l.MemoryConsumption()
	assert.Greater(t, base, uint(0))

	l.Push("0123456789")
	withOne := l.MemoryConsumption()
	assert.GreaterOrEqual(t, withOne, base+10, "estimate must account for stacked text")

	l.Push(testlogstr)
	assert.GreaterOrEqual(t, l.MemoryConsumption(), withOne+uint(len(testlogstr)))
}
