package util

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Terminal control sequences
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

// GetDisplayWidth calculates the actual display width of a string
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight fills text with spaces on the right up to width cells.
// Text already wider than width is returned unchanged.
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}

// PadLeft fills text with spaces on the left up to width cells.
func PadLeft(text string, width int) string {
	return runewidth.FillLeft(text, width)
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Notifier prints progress notices, colored when writing to a terminal.
type Notifier struct {
	w     io.Writer
	color bool
}

// NewNotifier creates a notifier for w.
func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w, color: IsTerminal(w)}
}

// Writer returns the underlying writer.
func (n *Notifier) Writer() io.Writer {
	return n.w
}

// Plain prints msg as is.
func (n *Notifier) Plain(msg string) {
	fmt.Fprintln(n.w, msg)
}

// Success prints msg in green.
func (n *Notifier) Success(msg string) {
	fmt.Fprintln(n.w, n.paint(ColorGreen, msg))
}

// Notice prints msg in yellow.
func (n *Notifier) Notice(msg string) {
	fmt.Fprintln(n.w, n.paint(ColorYellow, msg))
}

// Title prints msg in bold cyan.
func (n *Notifier) Title(msg string) {
	fmt.Fprintln(n.w, n.paint(ColorBold+ColorCyan, msg))
}

func (n *Notifier) paint(code, msg string) string {
	if !n.color || msg == "" {
		return msg
	}
	return code + msg + ColorReset
}
