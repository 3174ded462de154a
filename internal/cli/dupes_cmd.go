package cli

import (
	"context"
	"fmt"

	"github.com/avelacorte/moneta/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDupesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dupes",
		Short: "Find and resolve duplicate purchases",
	}

	cmd.AddCommand(
		newDupesScanCmd(app),
		newDupesMergeCmd(app),
		newDupesArchiveCmd(app),
		newDupesKeepCmd(app),
	)

	return cmd
}

func newDupesScanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List unresolved duplicate and overlap pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := app.Dupes.Scan(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatMatches(matches))
			return nil
		},
	}
}

// resolveDupePair maps the two purchase arguments to full IDs against the
// complete purchase list, archived included so already-resolved pairs can
// still be referenced.
func resolveDupePair(ctx context.Context, app *App, a, b string) (string, string, error) {
	purchases, err := app.Ledger.ListPurchases(ctx, true)
	if err != nil {
		return "", "", err
	}
	refs := make([]ref, 0, len(purchases))
	for _, p := range purchases {
		refs = append(refs, ref{ID: p.ID, Name: p.Item})
	}
	aID, err := resolveRef("purchase", a, refs)
	if err != nil {
		return "", "", err
	}
	bID, err := resolveRef("purchase", b, refs)
	if err != nil {
		return "", "", err
	}
	return aID, bID, nil
}

func newDupesMergeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "merge KEEP_ID DUPLICATE_ID",
		Short: "Merge the duplicate's notes into the kept record and delete it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			primaryID, secondaryID, err := resolveDupePair(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			if err := app.Dupes.Merge(ctx, primaryID, secondaryID); err != nil {
				return err
			}
			fmt.Printf("Merged purchase %s into %s\n", secondaryID, primaryID)
			return nil
		},
	}
}

func newDupesArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive KEEP_ID DUPLICATE_ID",
		Short: "Archive the duplicate, keeping it tagged for audit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			primaryID, secondaryID, err := resolveDupePair(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			if err := app.Dupes.ArchiveDuplicate(ctx, primaryID, secondaryID); err != nil {
				return err
			}
			fmt.Printf("Archived purchase %s as a duplicate of %s\n", secondaryID, primaryID)
			return nil
		},
	}
}

func newDupesKeepCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keep ID ID",
		Short: "Mark a flagged pair as intentionally separate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			aID, bID, err := resolveDupePair(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			if err := app.Dupes.MarkIntentional(ctx, aID, bID); err != nil {
				return err
			}
			fmt.Printf("Marked purchases %s and %s as intentional\n", aID, bID)
			return nil
		},
	}
}
