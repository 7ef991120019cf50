package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question and reads one line from r. Only an explicit
// "y"/"yes" counts as approval; EOF or an empty line declines. Destructive
// commands call this before touching the store.
func Confirm(r io.Reader, w io.Writer, question string) (bool, error) {
	fmt.Fprint(w, PromptStyle.Render(question+" [y/N] "))

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
