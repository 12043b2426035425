package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/miaudota/internal/session"
	"github.com/heartmarshall/miaudota/internal/tui"
)

// PasswordEnv lets scripts log in without a prompt.
const PasswordEnv = "MIAUDOTA_PASSWORD"

func newLoginCmd(e *env) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the shelter API and remember the session",
		Long: "Log in with e-mail and password. The password is read from $" + PasswordEnv +
			" when set, otherwise from a masked prompt on a terminal or the first line of piped standard input.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.TrimSpace(email)
			if email == "" {
				return errors.New("login: --email is required")
			}

			password, err := readPassword(cmd.Context(), cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			resp, err := e.client.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			sess, err := e.store.Save(resp.Token, session.Profile{
				ID:    resp.User.UserID(),
				Name:  resp.User.DisplayName(),
				Email: resp.User.Email,
			})
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Bem-vindo(a), %s!\n", displayName(sess))
			return err
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account e-mail")
	return cmd
}

// readPassword takes the password from $MIAUDOTA_PASSWORD, then from a
// masked prompt when in is a terminal, otherwise from the first line of in.
func readPassword(ctx context.Context, in io.Reader, prompt io.Writer) (string, error) {
	if p, ok := os.LookupEnv(PasswordEnv); ok {
		return p, nil
	}

	if isTerminal(in) {
		p, err := tui.ReadPassword(ctx, in, prompt, "Senha: ")
		if err != nil {
			return "", err
		}
		if p == "" {
			return "", errors.New("empty password")
		}
		return p, nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("empty password")
	}
	return line, nil
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func newLogoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.store.Clear(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Sessão encerrada.")
			return err
		},
	}
}

func newWhoamiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := e.store.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", displayName(sess), sess.Email)
			if sess.IsAdmin() {
				fmt.Fprintln(out, "role: administrador")
			} else if sess.Role != "" {
				fmt.Fprintf(out, "role: %s\n", strings.ToLower(sess.Role))
			}
			if sess.Expired(time.Now()) {
				fmt.Fprintln(out, "session expired: run `miaudota login` again")
			}
			return nil
		},
	}
}

func displayName(s session.Session) string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Email != "":
		return s.Email
	default:
		return s.Subject
	}
}
