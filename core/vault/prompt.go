package vault

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PromptPassword reads the vault password from the controlling terminal
// without echoing it. The prompt is written to w.
func PromptPassword(w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("vault password prompt requires a terminal")
	}

	fmt.Fprint(w, "Vault password: ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read vault password: %w", err)
	}
	return string(secret), nil
}
