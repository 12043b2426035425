package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/miaudota/internal/service/account"
)

func newRegisterCmd(e *env) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user account on the shelter API",
		Long: "Create a regular user account. The password is read the same way as for login: from $" +
			PasswordEnv + " when set, otherwise from a prompt or the first line of standard input.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd.Context(), cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}

			acc, err := account.NewService(e.log, e.client).Register(cmd.Context(), account.RegisterInput{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"Conta criada para %s. Use `miaudota login --email %s` para entrar.\n", acc.Name, acc.Email)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account e-mail")
	return cmd
}
