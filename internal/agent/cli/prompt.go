package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword возвращает пароль для команды.
//
// Если пароль передан флагом — используется он. Иначе пароль запрашивается
// скрытым вводом с терминала (без эха). Если stdin не терминал — ошибка:
// в скриптах пароль надо передавать флагом.
func readPassword(cmd *cobra.Command, fromFlag string) (string, error) {
	if fromFlag != "" {
		return fromFlag, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	pw := strings.TrimSpace(string(pwBytes))
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
