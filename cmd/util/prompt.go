package util

import (
	"bufio"
	"errors"
	"fmt"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
)

var (
	// ReadPasswordFunc reads a password from a terminal without echo
	ReadPasswordFunc = term.ReadPassword // mockable

	// IsTerminalFunc reports whether fd is a terminal
	IsTerminalFunc = term.IsTerminal // mockable
)

// Prompter reads answers to prompts line by line
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // file descriptor of in if it is a terminal, -1 otherwise
}

// NewPrompter creates a prompter reading from in and printing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
	if f, ok := in.(*os.File); ok && IsTerminalFunc(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

// Printf writes to the output of the prompter
func (p *Prompter) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the output of the prompter
func (p *Prompter) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(p.out, args...)
}

// Out returns the output writer
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Ask prints prompt and returns the next input line without surrounding blanks.
// io.EOF is returned once the input is exhausted.
func (p *Prompter) Ask(prompt string) (string, error) {
	p.Printf("%s", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskPassword is like Ask but does not echo the input on a terminal
func (p *Prompter) AskPassword(prompt string) (string, error) {
	if p.fd < 0 {
		return p.Ask(prompt)
	}
	p.Printf("%s", prompt)
	pwd, err := ReadPasswordFunc(p.fd)
	p.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pwd)), nil
}
