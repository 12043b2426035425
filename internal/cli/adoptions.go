package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/service/adoption"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
	"github.com/heartmarshall/miaudota/internal/session"
)

type adoptionsOptions struct {
	query   string
	status  string
	species string
	sex     string
	asJSON  bool
}

func newAdoptionsCmd(e *env) *cobra.Command {
	var opts adoptionsOptions

	cmd := &cobra.Command{
		Use:   "adoptions",
		Short: "List adoption requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := adoption.NewService(e.log, e.client)
			criteria := domain.NewFilterCriteria(opts.query, opts.status, opts.species, opts.sex)

			list, err := svc.List(cmd.Context(), criteria)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), rawAdoptions(list))
			}
			return renderAdoptions(cmd.OutOrStdout(), list)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.query, "q", "", "free text matched against the pet's name and description")
	f.StringVar(&opts.status, "status", "", "request status (PENDENTE, APROVADA, REJEITADA)")
	f.StringVar(&opts.species, "species", "", "pet species")
	f.StringVar(&opts.sex, "sex", "", "pet sex")
	f.BoolVar(&opts.asJSON, "json", false, "print the raw adoption objects as JSON")
	return cmd
}

func newAdoptionCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adoption",
		Short: "Inspect, review or withdraw one adoption request",
	}

	var asJSON bool
	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one adoption request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := adoption.NewService(e.log, e.client).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), a.Raw)
			}
			return renderAdoption(cmd.OutOrStdout(), a)
		},
	}
	get.Flags().BoolVar(&asJSON, "json", false, "print the raw adoption object as JSON")

	setStatus := &cobra.Command{
		Use:   "set-status <id> <PENDENTE|APROVADA|REJEITADA>",
		Short: "Approve or reject an adoption request (administrators only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(e.store); err != nil {
				return err
			}
			a, err := adoption.NewService(e.log, e.client).SetStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Adoção %s: %s\n", args[0], a.Status)
			return err
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Withdraw an adoption request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.store.Load(); err != nil {
				return err
			}
			if err := adoption.NewService(e.log, e.client).Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Adoção %s removida.\n", args[0])
			return err
		},
	}

	cmd.AddCommand(get, setStatus, del)
	return cmd
}

func requireAdmin(store *session.Store) error {
	sess, err := store.Load()
	if err != nil {
		return err
	}
	if !sess.IsAdmin() {
		return fmt.Errorf("%w: %s is not an administrator", domain.ErrForbidden, sess.Email)
	}
	return nil
}

func rawAdoptions(list []domain.Adoption) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, a := range list {
		out = append(out, a.Raw)
	}
	return out
}

func petName(a domain.Adoption) string {
	if c, ok := gallery.Ingest(a.Pet); ok && c.Name != "" {
		return c.Name
	}
	if a.PetID != "" {
		return "#" + a.PetID
	}
	return "-"
}

func renderAdoptions(w io.Writer, list []domain.Adoption) error {
	if len(list) == 0 {
		return renderFooter(w, "Nenhuma solicitação encontrada.")
	}

	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{a.ID, petName(a), a.Applicant.Name, a.Status.String(), a.Date})
	}
	if err := renderTable(w, []string{"ID", "Pet", "Solicitante", "Status", "Data"}, rows); err != nil {
		return err
	}
	return renderFooter(w, fmt.Sprintf("%d solicitações", len(list)))
}

func renderAdoption(w io.Writer, a domain.Adoption) error {
	accepted := "não"
	if a.AcceptedTerms {
		accepted = "sim"
	}
	rows := [][]string{
		{"ID", a.ID},
		{"Pet", petName(a)},
		{"Solicitante", a.Applicant.Name},
		{"E-mail", a.Applicant.Email},
		{"Status", a.Status.String()},
		{"Data", a.Date},
		{"Motivo", a.Reason},
		{"Aceitou o termo", accepted},
	}
	if err := renderTable(w, []string{"Campo", "Valor"}, rows); err != nil {
		return err
	}
	return renderFooter(w, a.Status.Message())
}
