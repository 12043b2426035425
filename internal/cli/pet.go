package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/heartmarshall/miaudota/internal/service/pet"
)

func newPetCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Manage pet listings (administrators only)",
	}
	cmd.AddCommand(newPetCreateCmd(e), newPetUpdateCmd(e), newPetDeleteCmd(e))
	return cmd
}

func petFlags(f *pflag.FlagSet, in *pet.CreateInput) {
	f.StringVar(&in.Name, "name", "", "pet name")
	f.StringVar(&in.BirthDate, "birth-date", "", "birth date, YYYY-MM-DD")
	f.StringVar(&in.Species, "species", "", "species (CAO, GATO)")
	f.StringVar(&in.Sex, "sex", "", "sex (MACHO, FEMEA)")
	f.StringVar(&in.Status, "status", "", "availability (DISPONIVEL, EM_ANALISE, ADOTADO, INDISPONIVEL)")
	f.StringVar(&in.Description, "description", "", "description shown in the gallery")
}

func newPetCreateCmd(e *env) *cobra.Command {
	var in pet.CreateInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a pet to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireAdmin(e.store); err != nil {
				return err
			}
			c, err := pet.NewService(e.log, e.client).Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Pet %s cadastrado (id %s).\n", c.Name, c.ID)
			return err
		},
	}
	petFlags(cmd.Flags(), &in)
	return cmd
}

func newPetUpdateCmd(e *env) *cobra.Command {
	var in pet.CreateInput

	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Change the given fields of a pet",
		Example: `  miaudota pet update 12 --status ADOTADO`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(e.store); err != nil {
				return err
			}
			d, err := pet.NewService(e.log, e.client).Update(cmd.Context(), args[0], changedFields(cmd.Flags(), in))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Pet %s atualizado (%s).\n", args[0], d.Status.Label())
			return err
		},
	}
	petFlags(cmd.Flags(), &in)
	return cmd
}

// changedFields keeps only the flags given on the command line.
func changedFields(f *pflag.FlagSet, in pet.CreateInput) pet.UpdateInput {
	pick := func(name string, v string) *string {
		if !f.Changed(name) {
			return nil
		}
		return &v
	}
	return pet.UpdateInput{
		Name:        pick("name", in.Name),
		BirthDate:   pick("birth-date", in.BirthDate),
		Species:     pick("species", in.Species),
		Sex:         pick("sex", in.Sex),
		Status:      pick("status", in.Status),
		Description: pick("description", in.Description),
	}
}

func newPetDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a pet from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(e.store); err != nil {
				return err
			}
			if err := pet.NewService(e.log, e.client).Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Pet %s removido.\n", args[0])
			return err
		},
	}
}
