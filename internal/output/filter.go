package output

import (
	"bytes"
	"io"
	"regexp"
)

// NoisyFetchLines matches diagnostic lines that template fetchers print but
// users never need to see.
var NoisyFetchLines = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Using git version`),
	regexp.MustCompile(`(?i)GitHub API rate limit reached, continuing without connectivity check`),
}

// LineFilter is a writer decorator that drops whole lines matching any of
// its patterns. A line ends at '\n' or '\r'; the unterminated tail is held
// until more data arrives or Flush is called.
type LineFilter struct {
	w    io.Writer
	drop []*regexp.Regexp
	buf  []byte
}

// FilterLines returns a LineFilter writing surviving lines to w.
func FilterLines(w io.Writer, drop ...*regexp.Regexp) *LineFilter {
	return &LineFilter{w: w, drop: drop}
}

// Write implements io.Writer. When the underlying writer fails, the count
// covers the bytes of p that belonged to lines already handled, and the
// held tail is discarded.
func (f *LineFilter) Write(p []byte) (int, error) {
	held := len(f.buf)
	f.buf = append(f.buf, p...)

	start := 0
	for {
		i := bytes.IndexAny(f.buf[start:], "\r\n")
		if i < 0 {
			break
		}
		end := start + i + 1
		if err := f.emit(f.buf[start:end]); err != nil {
			f.buf = nil
			return max(start-held, 0), err
		}
		start = end
	}

	f.buf = append(f.buf[:0], f.buf[start:]...)
	return len(p), nil
}

// Flush writes any buffered partial line.
func (f *LineFilter) Flush() error {
	if len(f.buf) == 0 {
		return nil
	}
	tail := f.buf
	f.buf = nil
	return f.emit(tail)
}

func (f *LineFilter) emit(line []byte) error {
	content := bytes.TrimRight(line, "\r\n")
	for _, re := range f.drop {
		if re.Match(content) {
			return nil
		}
	}
	_, err := f.w.Write(line)
	return err
}

// WithFilteredOutput runs fn with stdout and stderr wrapped in line filters.
// The filters are flushed on every exit path, including a panic inside fn,
// and the original writers are never modified.
func WithFilteredOutput(stdout, stderr io.Writer, drop []*regexp.Regexp, fn func(stdout, stderr io.Writer) error) (err error) {
	out := FilterLines(stdout, drop...)
	errOut := FilterLines(stderr, drop...)

	defer func() {
		outErr := out.Flush()
		errErr := errOut.Flush()
		if err == nil {
			if outErr != nil {
				err = outErr
			} else {
				err = errErr
			}
		}
	}()

	return fn(out, errOut)
}
