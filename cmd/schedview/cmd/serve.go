package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/umleo/schedview/internal/config"
	"github.com/umleo/schedview/internal/server"
	"github.com/umleo/schedview/pkg/constants"
	"github.com/umleo/schedview/pkg/logging"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the schedule views as a JSON API",
	Long: `Serve the reconciled schedule views over HTTP. Endpoints:

  GET /v1/campuses                         known campuses
  GET /v1/schedule?campus=&day=&subject=   filtered lecturer schedule
  GET /v1/subjects?campus=&day=            distinct subject codes
  GET /healthz                             liveness and source status`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		explorer, err := newExplorer()
		if err != nil {
			return err
		}

		s := server.New(config.ServerAddr(), explorer)

		errCh := make(chan error, 1)
		go func() { errCh <- s.ListenAndServe() }()

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
		}

		// Signal received; drain in-flight requests before exiting.
		logging.Info().Msg("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
		defer cancel()
		return s.Shutdown(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default "+constants.DefaultServerAddr+")")
	if err := viper.BindPFlag(config.KeyServerAddr, serveCmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(serveCmd)
}
