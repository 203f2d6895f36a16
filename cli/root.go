package cli

import (
	"context"

	"wardrobeapi/app"
	"wardrobeapi/config"

	"github.com/spf13/cobra"
)

// AppFactory builds the application for one command run.
type AppFactory func(ctx context.Context) (*app.App, error)

// LoadApp reads the configuration from .env and the environment.
func LoadApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.SetupLogging(cfg)
	return app.New(ctx, cfg)
}

func NewRootCmd(factory AppFactory) *cobra.Command {
	if factory == nil {
		factory = LoadApp
	}
	cmd := &cobra.Command{
		Use:   "wardrobe",
		Short: "Weekly outfit planner backed by a multimodal LLM",
		Long: `Wardrobe keeps a closet of classified clothing photos and asks an LLM
for a seven day outfit plan built from it.

Run "wardrobe serve" for the HTTP API or use the other commands to manage the
closet from the terminal.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newServeCmd(factory))
	cmd.AddCommand(newAddCmd(factory))
	cmd.AddCommand(newListCmd(factory))
	cmd.AddCommand(newRecategorizeCmd(factory))
	cmd.AddCommand(newRemoveCmd(factory))
	cmd.AddCommand(newClearCmd(factory))
	cmd.AddCommand(newPlanCmd(factory))

	return cmd
}

// withApp runs fn with a freshly built app and closes it afterwards.
func withApp(cmd *cobra.Command, factory AppFactory, fn func(a *app.App) error) error {
	a, err := factory(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
