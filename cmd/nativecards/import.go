package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/nativecards/internal/card"
	"github.com/at-ishikawa/nativecards/internal/database"
	"github.com/at-ishikawa/nativecards/internal/datasync"
)

func newImportCommand() *cobra.Command {
	var dryRun bool
	var userID int64

	cmd := &cobra.Command{
		Use:   "import <deck.yml>...",
		Short: "Import YAML decks into the database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			uid := userID
			if uid == 0 {
				uid = cfg.Client.UserID
			}
			if uid <= 0 {
				return fmt.Errorf("a user is required: use --user or client.user_id")
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()
			if err := database.WaitReady(ctx, db, cfg.Database.ConnectAttempts, time.Duration(cfg.Database.ConnectDelayMs)*time.Millisecond); err != nil {
				return fmt.Errorf("wait for database: %w", err)
			}

			out := cmd.OutOrStdout()
			importer := datasync.NewImporter(card.NewDBCardRepository(db), out)
			opts := datasync.ImportOptions{DryRun: dryRun}

			var total datasync.ImportResult
			for _, path := range args {
				deck, err := datasync.ReadDeckFile(path)
				if err != nil {
					return fmt.Errorf("read deck %s: %w", path, err)
				}
				fmt.Fprintf(out, "%s:\n", path)
				result, err := importer.ImportDeck(ctx, uid, deck, opts)
				if err != nil {
					return fmt.Errorf("import deck %s: %w", path, err)
				}
				total.CardsNew += result.CardsNew
				total.CardsSkipped += result.CardsSkipped
			}

			fmt.Fprintln(out, "\nImport Summary:")
			if opts.DryRun {
				fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			fmt.Fprintf(out, "  Cards:  %d new, %d skipped\n", total.CardsNew, total.CardsSkipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be imported without writing")
	cmd.Flags().Int64Var(&userID, "user", 0, "owner of the imported cards (default client.user_id)")
	return cmd
}
