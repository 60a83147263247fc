// Command coursectl inspects and seeds the Strong Foundations lesson catalog.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/chooselife/strongfoundations/pkg/database"
	"github.com/chooselife/strongfoundations/pkg/lesson"
	"github.com/chooselife/strongfoundations/services/course-service/config"
	"github.com/chooselife/strongfoundations/services/course-service/internal/catalog"
	"github.com/chooselife/strongfoundations/services/course-service/internal/domain"
	"github.com/chooselife/strongfoundations/services/course-service/internal/infrastructure/repository"

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
		Use:           "coursectl",
		Short:         "Strong Foundations catalog tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", ".", "directory holding app.env")

	root.AddCommand(newSlugifyCmd(), newListCmd(&configPath), newSeedCmd(&configPath))
	return root
}

func newSlugifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slugify <title>...",
		Short: "Print the slug a lesson title would be given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, title := range args {
				fmt.Fprintln(cmd.OutOrStdout(), lesson.Slugify(title))
			}
			return nil
		},
	}
}

func newListCmd(configPath *string) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog as learners see it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var repo catalog.PublishedLister
			if source == catalog.SourceDatabase {
				r, err := openRepo(*configPath)
				if err != nil {
					return err
				}
				repo = r
			}
			src, err := catalog.New(source, repo)
			if err != nil {
				return err
			}
			c, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ORDER\tSLUG\tTITLE")
			for _, l := range c {
				fmt.Fprintf(w, "%d\t%s\t%s\n", l.Order, l.Slug, l.Title)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&source, "source", catalog.SourceStatic, "catalog source: static or database")
	return cmd
}

func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the built-in course into an empty lessons table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := openRepo(*configPath)
			if err != nil {
				return err
			}
			lessons, err := catalog.Fixture()
			if err != nil {
				return err
			}
			n, err := repo.SeedIfEmpty(cmd.Context(), lessons)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "lessons table already populated, nothing to do")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d lessons\n", n)
			return nil
		},
	}
}

func openRepo(configPath string) (*repository.LessonRepository, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	db, err := database.Open(cfg.Database(), &domain.Lesson{})
	if err != nil {
		return nil, err
	}
	return repository.NewLessonRepository(db), nil
}
