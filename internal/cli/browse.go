package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/miaudota/internal/adapter/shelterapi"
	"github.com/heartmarshall/miaudota/internal/app"
	"github.com/heartmarshall/miaudota/internal/config"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
	"github.com/heartmarshall/miaudota/internal/tui"
)

func newBrowseCmd(e *env) *cobra.Command {
	var (
		remote  bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive pet gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The screen belongs to the gallery: log to a file or nowhere.
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("browse: open log file: %w", err)
				}
				defer f.Close()
				logger = app.NewLoggerTo(f, config.LogConfig{Level: "debug", Format: "text"})
			}

			client := shelterapi.NewClient(e.cfg.Upstream, e.store, logger)

			var source gallery.Source
			if remote || e.cfg.Filter.IsRemote() {
				source = gallery.RemoteSource{Query: client}
			} else {
				items, err := client.ListPets(cmd.Context())
				if err != nil {
					return err
				}
				source = gallery.LocalCollection{Items: items}
			}

			return tui.Run(cmd.Context(), "MiAuDota · Galeria", func(onResult gallery.ResultFunc) tui.Filter {
				return gallery.NewController(logger, source, onResult,
					gallery.WithDebounce(e.cfg.Filter.Debounce),
				)
			})
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "query the shelter API on every change instead of filtering locally")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append debug logs to this file")
	return cmd
}
