package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// passwordReader prompts for secrets. On a terminal the input is not echoed;
// otherwise one line is read, so passwords can be piped in by scripts.
type passwordReader struct {
	in  *bufio.Reader
	fd  int
	out io.Writer
}

func newPasswordReader(in *os.File, prompts io.Writer) *passwordReader {
	return &passwordReader{in: bufio.NewReader(in), fd: int(in.Fd()), out: prompts}
}

func (p *passwordReader) read(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}

	if p.fd >= 0 && term.IsTerminal(p.fd) {
		pw, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
