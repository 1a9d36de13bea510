// Command hash-password prints bcrypt hashes for the given passwords, in the
// format stored in users.password_hash. It is used to seed accounts directly
// in the database.
//
// Usage:
//
//	hash-password [-cost N] password [password...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hash-password", flag.ContinueOnError)
	fs.SetOutput(out)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("usage: hash-password [-cost N] password [password...]")
	}

	hasher := auth.NewBcryptVerifier(*cost)
	for _, password := range fs.Args() {
		if len(password) < domain.MinPasswordLength {
			return fmt.Errorf("password %q is shorter than %d characters", password, domain.MinPasswordLength)
		}

		hash, err := hasher.Hash(password)
		if err != nil {
			return err
		}
		if err := hasher.Compare(hash, password); err != nil {
			return fmt.Errorf("generated hash does not verify: %w", err)
		}
		fmt.Fprintf(out, "Password: %s\nHash: %s\n\n", password, hash)
	}
	return nil
}
