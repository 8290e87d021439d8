package cli

import (
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/dmitrijs2005/sn/internal/secret"
)

// readPassword and isTerminal are test seams for the x/term calls, so tests
// never touch a real terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// terminalFd returns the descriptor behind r and whether it is a terminal.
// Readers without a descriptor (pipes wrapped in bufio, strings.Reader) are
// never terminals.
func terminalFd(r io.Reader) (int, bool) {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, isTerminal(fd)
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal fd without echo. A newline is printed after the read to keep the
// UI tidy. The bytes read are wiped once copied into the secret.
func GetPassword(fd int, w io.Writer) (secret.String, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return secret.String{}, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return secret.String{}, fmt.Errorf("error reading password: %w", err)
	}
	return secret.FromBytes(pw), nil
}
