package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"wardrobeapi/app"
	"wardrobeapi/controllers"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd(factory AppFactory) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Example: `  # Start on the configured PORT (8083 by default)
  wardrobe serve

  # Start on a custom port
  wardrobe serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(a *app.App) error {
				flush, err := app.InitSentry(a.Config)
				if err != nil {
					return err
				}
				defer flush()

				e := controllers.SetupServer(controllers.Dependencies{
					Classifier: a.Classifier,
					Planner:    a.Planner,
					Closet:     a.Closet,
					BodyLimit:  a.Config.BodyLimit,
				})
				controllers.UseProductionMiddleware(e, a.Config.RateLimit)

				if port == "" {
					port = a.Config.Port
				}
				addr := ":" + port

				serverErr := make(chan error, 1)
				go func() {
					logrus.WithField("addr", addr).Info("wardrobe API listening")
					if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
						serverErr <- err
					}
				}()

				select {
				case <-cmd.Context().Done():
					logrus.Info("shutting down server")
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					return e.Shutdown(shutdownCtx)
				case err := <-serverErr:
					return err
				}
			})
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (defaults to PORT)")

	return cmd
}
