// Package indent provides an io.Writer that prefixes lines with indentation.
//
// The central type is [Writer], which wraps any io.Writer and inserts the
// current indentation before the first byte of every non-empty line. Depth
// is adjusted between writes with [Writer.More] and [Writer.Less], so code
// generators and hierarchical printers can nest output without prepending
// whitespace at every call site:
//
//	w := indent.Default(os.Stdout)
//	fmt.Fprintln(w, "func main() {")
//	w.More()
//	fmt.Fprintln(w, `fmt.Println("hello")`)
//	w.Less()
//	fmt.Fprintln(w, "}")
//
// # Line Splitting
//
// A Writer understands nothing about the bytes it forwards except newlines.
// Writes may carry whole lines, many lines, or a fragment of one; the Writer
// tracks where lines begin across calls and indents exactly once per
// non-empty line. Blank lines are written as bare newlines so that no
// trailing whitespace is injected.
//
// # Depth
//
// Depth is measured in symbol units and saturates: [Writer.More] clamps at
// 255 and [Writer.Less] clamps at 0, never wrapping or failing. Both return
// the Writer, so adjustments chain:
//
//	w.More().More()
//
// A step of zero is valid and indents by nothing while depth bookkeeping
// still applies.
//
// # Styles
//
// [Style] carries a step width and indent symbol. [ParseStyle] converts a
// CLI flag string such as "tab" or "dot=3" into a Style, and [DecodeStyle]
// reads one from YAML configuration:
//
//	style, err := indent.ParseStyle(flagValue)
//	w := style.Writer(os.Stdout)
//
// # Convenience
//
// [String] and [Style.Apply] indent a whole string in memory, and
// [Writer.WriteLines] feeds an iterator of lines through a Writer.
//
// # Ownership and Errors
//
// A Writer borrows its underlying writer: it never closes it, and [Writer.Flush]
// forwards only if the underlying writer has a Flush method. I/O errors from
// the underlying writer propagate unchanged the moment they occur. The style
// surface reports [ErrUnknownStyle] and [ErrInvalidStyle] for programmatic
// handling.
//
// A Writer is not safe for concurrent use; callers needing concurrent output
// must use separate sinks or serialize access externally.
package indent
