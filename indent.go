package indent

import (
	"bytes"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Writer wraps an io.Writer and prefixes each non-empty line with the current
// indentation. It does not own the underlying writer: it never closes it, and
// the writer must outlive the Writer.
//
// Depth starts at zero. [Writer.More] and [Writer.Less] move it by one step,
// saturating at 0 and 255 symbol units. The indentation in effect when a line
// begins is the one written for that line; adjusting depth mid-line takes
// effect on the next line.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	out         io.Writer
	step        uint8
	symbol      rune
	depth       uint8
	atLineStart bool
}

// New returns a Writer that indents by step copies of symbol per level.
// A step of zero is valid: depth still moves, but indentation is empty.
func New(w io.Writer, step uint8, symbol rune) *Writer {
	return &Writer{
		out:         w,
		step:        step,
		symbol:      symbol,
		atLineStart: true,
	}
}

// Default returns a Writer with the default style: four spaces per level.
func Default(w io.Writer) *Writer {
	return New(w, 4, ' ')
}

// More increases depth by one step, saturating at 255 symbol units.
// It returns the Writer for chaining.
func (w *Writer) More() *Writer {
	next := uint16(w.depth) + uint16(w.step)
	if next > 255 {
		next = 255
	}
	w.depth = uint8(next)
	return w
}

// Less decreases depth by one step, saturating at zero. Calling Less at
// depth zero is a no-op. It returns the Writer for chaining.
func (w *Writer) Less() *Writer {
	if w.depth < w.step {
		w.depth = 0
	} else {
		w.depth -= w.step
	}
	return w
}

// Depth returns the current depth in symbol units.
func (w *Writer) Depth() uint8 { return w.depth }

// Prefix returns the indentation that will precede the next non-empty line:
// Depth() copies of the indent symbol.
func (w *Writer) Prefix() string {
	return strings.Repeat(string(w.symbol), int(w.depth))
}

// Width returns the display width of [Writer.Prefix] in terminal columns.
// For full-width symbols this is larger than Depth().
func (w *Writer) Width() int {
	return int(w.depth) * runewidth.RuneWidth(w.symbol)
}

// Write writes p to the underlying writer, inserting the current indentation
// before the first byte of every non-empty line. Lines may span multiple
// calls: a call that ends mid-line leaves the line open, and the next call
// continues it without re-indenting. Blank lines are written as bare
// newlines, never as trailing indentation.
//
// The returned count covers bytes of p; indentation bytes are not counted.
// Errors from the underlying writer are returned unchanged, and bytes
// written before the failure stay written.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if w.atLineStart {
		if err := w.writeIndent(); err != nil {
			return 0, err
		}
		w.atLineStart = false
	}

	written := 0
	rest := p
	first := true
	for {
		i := bytes.IndexByte(rest, '\n')
		seg := rest
		if i >= 0 {
			seg = rest[:i]
		}
		if !first {
			n, err := w.out.Write(newline)
			written += n
			if err != nil {
				return written, err
			}
			if len(seg) == 0 {
				// Blank line, or the input ends right after a newline.
				// Defer indentation until content arrives.
				w.atLineStart = true
			} else {
				if err := w.writeIndent(); err != nil {
					return written, err
				}
				w.atLineStart = false
			}
		}
		if len(seg) > 0 {
			n, err := w.out.Write(seg)
			written += n
			if err != nil {
				return written, err
			}
		}
		first = false
		if i < 0 {
			return written, nil
		}
		rest = rest[i+1:]
	}
}

var newline = []byte{'\n'}

// WriteString writes s like [Writer.Write].
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Flush forwards to the underlying writer's Flush if it has one
// (e.g. *bufio.Writer). The Writer buffers nothing itself, so there is no
// other state to flush; without an underlying Flush this is a no-op.
func (w *Writer) Flush() error {
	if f, ok := w.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (w *Writer) writeIndent() error {
	if w.depth == 0 {
		return nil
	}
	_, err := io.WriteString(w.out, w.Prefix())
	return err
}
