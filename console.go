package climenu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console is the pair of text channels a menu talks to. Menus only ever
// write whole lines and read one answer per prompt, so any line-oriented
// transport can implement it.
type Console interface {
	// Prompt writes label without a trailing newline, then blocks until
	// one line of input is available and returns it with surrounding
	// whitespace removed.
	Prompt(label string) (string, error)

	// WriteLine writes text followed by a newline.
	WriteLine(text string)
}

// LineConsole implements Console over a buffered reader and a writer.
type LineConsole struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a LineConsole reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *LineConsole {
	return &LineConsole{in: bufio.NewReader(in), out: out}
}

// Stdio returns a LineConsole attached to os.Stdin and os.Stdout.
func Stdio() *LineConsole {
	return NewConsole(os.Stdin, os.Stdout)
}

func (c *LineConsole) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline is still an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *LineConsole) WriteLine(text string) {
	fmt.Fprintln(c.out, text)
}
