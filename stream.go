package indent

import "iter"

// WriteLines writes each string yielded by seq as one line at the current
// depth: indentation, the string, then a newline. Empty strings produce
// blank lines with no indentation. Writing stops at the first error from the
// underlying writer, which is returned unchanged.
func (w *Writer) WriteLines(seq iter.Seq[string]) error {
	var writeErr error
	seq(func(line string) bool {
		var err error
		if line == "" && w.atLineStart {
			// Keep blank lines truly blank instead of indent-then-newline.
			_, err = w.out.Write(newline)
		} else {
			_, err = w.WriteString(line + "\n")
		}
		if err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}

// WriteLinesChan writes each string received from ch as one line.
// It is a thin wrapper around [WriteLines].
func (w *Writer) WriteLinesChan(ch <-chan string) error {
	return w.WriteLines(func(yield func(string) bool) {
		for line := range ch {
			if !yield(line) {
				return
			}
		}
	})
}
