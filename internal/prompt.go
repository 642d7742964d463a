package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrTooManyTries = errors.New("too many tries")

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// Terminal is a line oriented view of a connection. It keeps a single
// buffered reader so input typed ahead of a prompt is not lost.
type Terminal struct {
	r *bufio.Reader
	w io.Writer
}

func NewTerminal(rw io.ReadWriter) *Terminal {
	return &Terminal{
		r: bufio.NewReader(rw),
		w: rw,
	}
}

// Printf writes formatted output to the connection.
func (t *Terminal) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(t.w, format, args...)
	return err
}

// Println writes s followed by a newline.
func (t *Terminal) Println(s string) error {
	_, err := io.WriteString(t.w, s+"\n")
	return err
}

// ReadLine returns the next line of input without its line ending. A final
// unterminated line is returned before io.EOF.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt writes prompt and reads a line, repeating while the validator
// rejects the input.
func (t *Terminal) Prompt(prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	tries := 0
	for {
		if _, err := io.WriteString(t.w, prompt); err != nil {
			return "", err
		}

		input, err := t.ReadLine()
		if err != nil {
			return "", err
		}

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				if _, err := io.WriteString(t.w, msg); err != nil {
					return "", err
				}

				tries++
				if config.tries > 0 && config.tries == tries {
					return "", ErrTooManyTries
				}

				continue
			}
		}

		return input, nil
	}
}

func (t *Terminal) PromptYN(prompt string) (bool, error) {
	str, err := t.Prompt(prompt, WithValidator(
		func(str string) (bool, string) {
			switch strings.ToLower(strings.TrimSpace(str)) {
			case "y", "yes", "n", "no":
				return true, ""
			default:
				return false, "enter 'yes' or 'no'\n"
			}
		},
	))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(str)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
