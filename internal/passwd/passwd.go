// Package passwd implements the hash helper used to prepare the seeded admin
// password (BANKPORTAL_ADMIN_PASSWORD_HASH or -p) without storing plaintext
// in configuration.
package passwd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/cryptox"
	"golang.org/x/term"
)

var (
	ErrEmptyPassword = errors.New("password must not be empty")
	ErrMismatch      = errors.New("passwords do not match")
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// prompt prints label to w and reads a password from the terminal without
// echo.
func prompt(w io.Writer, label string) ([]byte, error) {
	if _, err := fmt.Fprint(w, label); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// Run asks for a password twice, hashes it with the given bcrypt cost and
// writes the hash to out. Prompts go to w.
func Run(w, out io.Writer, cost int) error {
	first, err := prompt(w, "Enter password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(first)

	if len(first) == 0 {
		return ErrEmptyPassword
	}

	second, err := prompt(w, "Repeat password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(second)

	if !bytes.Equal(first, second) {
		return ErrMismatch
	}

	hash, err := cryptox.NewBcryptHasher(cost).Hash(string(first))
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = fmt.Fprintln(out, hash)
	return err
}
