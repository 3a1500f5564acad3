// Package prompt drives the interactive parts of contract creation: column
// and partition assembly and the SLA questions.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Prompter is the interaction surface the assembly functions need. Console
// is the terminal implementation; tests use scripted ones.
type Prompter interface {
	// Ask returns the trimmed answer, or def when the answer is empty.
	Ask(question, def string) (string, error)
	Confirm(question string, def bool) (bool, error)
	// Select returns the chosen item, an unlisted answer as typed, or ""
	// when the answer is empty.
	Select(question string, choices []string) (string, error)
	Warn(msg string)
	Success(msg string)
}

// Console reads one answer per line from in and writes questions to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	questionStyle lipgloss.Style
	hintStyle     lipgloss.Style
	warnStyle     lipgloss.Style
	successStyle  lipgloss.Style
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	renderer := lipgloss.NewRenderer(out)
	return &Console{
		in:            bufio.NewReader(in),
		out:           out,
		questionStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		hintStyle:     renderer.NewStyle().Foreground(lipgloss.Color("8")),
		warnStyle:     renderer.NewStyle().Foreground(lipgloss.Color("11")),
		successStyle:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

// readLine returns io.EOF only when the input is exhausted and nothing was
// typed on the last line.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) Ask(question, def string) (string, error) {
	prompt := c.questionStyle.Render(question)
	if def != "" {
		prompt += " " + c.hintStyle.Render("["+def+"]")
	}
	fmt.Fprint(c.out, prompt+": ")

	answer, err := c.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (c *Console) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		fmt.Fprint(c.out, c.questionStyle.Render(question)+" "+c.hintStyle.Render(hint)+": ")
		answer, err := c.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Warn(fmt.Sprintf("Please answer y or n, got %q.", answer))
	}
}

func (c *Console) Select(question string, choices []string) (string, error) {
	fmt.Fprintln(c.out, c.questionStyle.Render(question))
	for i, choice := range choices {
		fmt.Fprintf(c.out, "  %s %s\n", c.hintStyle.Render(strconv.Itoa(i+1)+")"), choice)
	}
	fmt.Fprint(c.out, "> ")

	answer, err := c.readLine()
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1], nil
	}
	return answer, nil
}

func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.warnStyle.Render(msg))
}

func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, c.successStyle.Render(msg))
}
