package cli

import (
	"fmt"
	"io"

	"wardrobeapi/app"
	"wardrobeapi/closet"
	"wardrobeapi/controllers"
	"wardrobeapi/models"

	"github.com/spf13/cobra"
)

func newPlanCmd(factory AppFactory) *cobra.Command {
	var (
		generate    bool
		style       string
		repeatLimit int
	)
	defaults := models.DefaultPreferences()

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show or regenerate the weekly outfit plan",
		Example: `  # Show the saved plan
  wardrobe plan

  # Ask for a new plan
  wardrobe plan --generate --style business --repeat-limit 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := models.Preferences{Style: style, RepeatLimit: repeatLimit}
			if err := controllers.NewValidator().Validate(prefs); err != nil {
				return fmt.Errorf("invalid preferences: %w", err)
			}
			return withApp(cmd, factory, func(a *app.App) error {
				out := cmd.OutOrStdout()
				if generate {
					view, err := a.Closet.GeneratePlan(cmd.Context(), prefs)
					if err != nil {
						return err
					}
					printPlan(out, view.Days)
					return nil
				}

				view, err := a.Closet.Plan(cmd.Context())
				if err != nil {
					return err
				}
				if !view.HasPlan {
					fmt.Fprintln(out, "No plan yet")
					if !view.CanGenerate {
						fmt.Fprintf(out, "%s (closet has %d)\n", models.ErrWardrobeTooSmall, view.ItemCount)
					} else {
						fmt.Fprintln(out, "Run with --generate to create one")
					}
					return nil
				}
				printPlan(out, view.Days)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "Generate a new plan, replacing the saved one")
	cmd.Flags().StringVar(&style, "style", defaults.Style, "Preferred style")
	cmd.Flags().IntVar(&repeatLimit, "repeat-limit", defaults.RepeatLimit, "How often a single item may repeat (0 to 7)")

	return cmd
}

func printPlan(out io.Writer, days []closet.ResolvedDay) {
	for _, day := range days {
		fmt.Fprintf(out, "%s: %s + %s", day.Day, slotLabel(day.Top), slotLabel(day.Bottom))
		if day.Outer != nil {
			fmt.Fprintf(out, " + %s", slotLabel(day.Outer))
		}
		fmt.Fprintln(out)
		if day.Reason != "" {
			fmt.Fprintf(out, "     %s\n", day.Reason)
		}
	}
}

func slotLabel(item *models.ClothingItem) string {
	if item == nil {
		return "(missing)"
	}
	if item.Notes != "" {
		return fmt.Sprintf("%s [%s]", item.Notes, item.ID)
	}
	return item.ID
}
