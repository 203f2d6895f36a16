package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"wardrobeapi/app"
	"wardrobeapi/closet"
	"wardrobeapi/models"

	"github.com/spf13/cobra"
)

func newAddCmd(factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "add <image>...",
		Short: "Classify photos and add them to the closet",
		Long: `Reads the given image files, sends them to the AI service in one batch and
appends the recognised items to the closet. Nothing is saved when the
classification fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			images, err := ReadImages(cmd.Context(), args)
			if err != nil {
				return err
			}
			return withApp(cmd, factory, func(a *app.App) error {
				added, err := a.Closet.Upload(cmd.Context(), images)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %d item(s)\n", len(added))
				return printItems(cmd.OutOrStdout(), added)
			})
		},
	}
}

func newListCmd(factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the closet grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(a *app.App) error {
				items, err := a.Closet.Items(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(items) == 0 {
					fmt.Fprintln(out, "The closet is empty")
					return nil
				}
				fmt.Fprintf(out, "%d item(s)\n", len(items))
				for _, bucket := range closet.Group(items) {
					fmt.Fprintf(out, "\n%s (%d)\n", bucket.Category, len(bucket.Items))
					if err := printItems(out, bucket.Items); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newRecategorizeCmd(factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:       "recategorize <id> <category>",
		Short:     "Move an item to another closet category",
		Args:      cobra.ExactArgs(2),
		ValidArgs: categoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(a *app.App) error {
				item, err := a.Closet.Recategorize(cmd.Context(), args[0], models.Category(args[1]))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", item.ID, item.Category)
				return nil
			})
		},
	}
}

func newRemoveCmd(factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an item from the closet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(a *app.App) error {
				if err := a.Closet.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	}
}

func newClearCmd(factory AppFactory) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole closet and the saved plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear without --yes")
			}
			return withApp(cmd, factory, func(a *app.App) error {
				if err := a.Closet.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Closet and plan cleared")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the deletion")
	return cmd
}

func printItems(out io.Writer, items []models.ClothingItem) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tTYPE\tSEASONS\tCOLORS\tNOTES")
	for _, item := range items {
		seasons := make([]string, 0, len(item.Seasons))
		for _, season := range item.Seasons {
			seasons = append(seasons, string(season))
		}
		fmt.Fprintf(w, "%s\t%s\t%s/%s\t%s\t%s\t%s\n",
			item.ID,
			displayCategory(item.Category),
			item.Primary, item.Secondary,
			strings.Join(seasons, ","),
			strings.Join(item.Colors, ","),
			item.Notes,
		)
	}
	return w.Flush()
}

func displayCategory(c models.Category) models.Category {
	if !c.Valid() {
		return models.CategoryUnknown
	}
	return c
}

func categoryNames() []string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return names
}
