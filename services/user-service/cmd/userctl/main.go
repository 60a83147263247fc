// Command userctl administers learner accounts directly against the user
// database.
package main

import (
	"fmt"
	"os"

	"github.com/chooselife/strongfoundations/pkg/database"
	"github.com/chooselife/strongfoundations/services/user-service/config"
	"github.com/chooselife/strongfoundations/services/user-service/internal/domain"
	"github.com/chooselife/strongfoundations/services/user-service/internal/infrastructure/repository"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "userctl",
		Short:         "Strong Foundations account administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", ".", "directory holding app.env")

	setType := func(t domain.ProfileType) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			repo, err := openProfiles(configPath)
			if err != nil {
				return err
			}
			if err := repo.SetType(cmd.Context(), args[0], t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", args[0], t)
			return nil
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "promote <user-id>",
			Short: "Grant a user the Admin profile type",
			Args:  cobra.ExactArgs(1),
			RunE:  setType(domain.ProfileAdmin),
		},
		&cobra.Command{
			Use:   "demote <user-id>",
			Short: "Return a user to the Learner profile type",
			Args:  cobra.ExactArgs(1),
			RunE:  setType(domain.ProfileLearner),
		},
		&cobra.Command{
			Use:   "progress <user-id>",
			Short: "List the lesson ids a user has completed",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.LoadConfig(configPath)
				if err != nil {
					return err
				}
				db, err := database.Open(cfg.Database())
				if err != nil {
					return err
				}
				ids, err := repository.NewProgressRepository(db).ListLessonIDs(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			},
		},
	)
	return root
}

func openProfiles(configPath string) (*repository.ProfileRepository, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	db, err := database.Open(cfg.Database())
	if err != nil {
		return nil, err
	}
	return repository.NewProfileRepository(db), nil
}
