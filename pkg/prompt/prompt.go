package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/travigo/bikeshare/pkg/tripdata"
	"github.com/travigo/bikeshare/pkg/util"
	"golang.org/x/exp/slices"
)

var ErrInputClosed = errors.New("input closed before a valid answer was given")

var yesNo = []string{"y", "yes", "n", "no"}

type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Ask repeats the question until the answer, trimmed and lower-cased, is one
// of valid.
func (p *Prompter) Ask(question string, valid []string) (string, error) {
	for {
		fmt.Fprintf(p.out, "\n%s\n>>> ", question)

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", err
			}
			return "", ErrInputClosed
		}

		answer := strings.ToLower(strings.TrimSpace(p.scanner.Text()))
		if slices.Contains(valid, answer) {
			return answer, nil
		}

		fmt.Fprintln(p.out, "\nSorry, you chose an invalid option. Please try again.")
	}
}

func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question+" (Y/N)?", yesNo)
	if err != nil {
		return false, err
	}

	return answer == "y" || answer == "yes", nil
}

// Filters asks for a city and, optionally, a month and a day.
func (p *Prompter) Filters(cities []string) (tripdata.Criteria, error) {
	var criteria tripdata.Criteria
	var err error

	criteria.City, err = p.Ask(fmt.Sprintf("Would you like to see data for %s?", choices(cities)), cities)
	if err != nil {
		return criteria, err
	}
	fmt.Fprintf(p.out, "\nYou chose %s. If this is not your choice, restart the program.\n", util.TitleCase(criteria.City))

	criteria.Month, err = p.optional("month", "Which month (%s)?", tripdata.Months, "OK. You want to see data from all months.")
	if err != nil {
		return criteria, err
	}

	criteria.Day, err = p.optional("day", "Which day (%s)?", tripdata.Days, "OK. You want to see data from all days.")
	if err != nil {
		return criteria, err
	}

	return criteria, nil
}

func (p *Prompter) optional(name string, question string, valid []string, skipped string) (string, error) {
	filter, err := p.Confirm(fmt.Sprintf("Would you like to filter the data by %s", name))
	if err != nil {
		return "", err
	}

	if !filter {
		fmt.Fprintf(p.out, "\n%s\n", skipped)
		return "", nil
	}

	answer, err := p.Ask(fmt.Sprintf(question, choices(valid)), valid)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "\nYou chose %s. If this is not your choice, restart the program.\n", util.TitleCase(answer))

	return answer, nil
}

// choices renders ["a", "b", "c"] as "A, B, or C".
func choices(values []string) string {
	titled := make([]string, len(values))
	for i, value := range values {
		titled[i] = util.TitleCase(value)
	}

	switch len(titled) {
	case 0:
		return ""
	case 1:
		return titled[0]
	case 2:
		return titled[0] + " or " + titled[1]
	}

	return strings.Join(titled[:len(titled)-1], ", ") + ", or " + titled[len(titled)-1]
}
