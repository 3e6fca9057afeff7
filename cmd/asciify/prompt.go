package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter asks for missing settings on an interactive terminal.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints label and returns the trimmed answer, or def when the answer
// is empty. EOF with no answer also yields def.
func (p *prompter) ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err == io.EOF {
		p.eof = true
	}
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return def, nil
		}

		return "", fmt.Errorf("reading answer: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}

	return answer, nil
}

// askInt is ask for integer answers. It asks again until the answer
// parses and passes validate, or input runs out.
func (p *prompter) askInt(label string, def int, validate func(int) error) (int, error) {
	for {
		answer, err := p.ask(label, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err != nil {
			err = fmt.Errorf("%q is not a whole number", answer)
		} else {
			err = validate(n)
		}

		if err == nil {
			return n, nil
		}

		// Input is exhausted.
		if p.eof {
			return 0, err
		}

		fmt.Fprintf(p.out, "%v\n", err)
	}
}
