package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/miaudota/internal/service/adoption"
)

type adoptOptions struct {
	reason      string
	date        string
	acceptTerms bool
	address     adoption.AddressInput
}

func newAdoptCmd(e *env) *cobra.Command {
	var opts adoptOptions

	cmd := &cobra.Command{
		Use:   "adopt <pet-id>",
		Short: "Request the adoption of a pet",
		Example: `  miaudota adopt 12 --reason "Tenho quintal" --accept-terms \
    --cep 01310-100 --street "Av. Paulista" --number 1000 \
    --district "Bela Vista" --city "São Paulo" --state SP --phone 11999990000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := e.store.Load()
			if err != nil {
				return err
			}

			date := time.Now()
			if opts.date != "" {
				date, err = time.Parse(time.DateOnly, opts.date)
				if err != nil {
					return fmt.Errorf("adopt: --date must be YYYY-MM-DD: %w", err)
				}
			}

			a, err := adoption.NewService(e.log, e.client).Submit(cmd.Context(), adoption.SubmitInput{
				PetID:         args[0],
				UserID:        sess.UserID,
				Date:          date,
				Reason:        opts.reason,
				AcceptedTerms: opts.acceptTerms,
				Address:       opts.address,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.ID != "" {
				fmt.Fprintf(out, "Solicitação %s enviada para o pet %s.\n", a.ID, args[0])
			} else {
				fmt.Fprintf(out, "Solicitação enviada para o pet %s.\n", args[0])
			}
			return renderFooter(out, a.Status.Message())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.reason, "reason", "", "why you want to adopt")
	f.StringVar(&opts.date, "date", "", "request date, YYYY-MM-DD (default today)")
	f.BoolVar(&opts.acceptTerms, "accept-terms", false, "accept the adoption terms")
	f.StringVar(&opts.address.ZipCode, "cep", "", "zip code (CEP)")
	f.StringVar(&opts.address.Street, "street", "", "street")
	f.StringVar(&opts.address.Number, "number", "", "street number")
	f.StringVar(&opts.address.Complement, "complement", "", "address complement")
	f.StringVar(&opts.address.District, "district", "", "district (bairro)")
	f.StringVar(&opts.address.City, "city", "", "city")
	f.StringVar(&opts.address.State, "state", "", "state, two letters")
	f.StringVar(&opts.address.Phone, "phone", "", "contact phone")
	return cmd
}
