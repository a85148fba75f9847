package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"midiwire/internal/app"
)

var (
	home   string
	hubURL string
	appCtx *app.Wire

	port string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "midiwire",
		Short: "MIDI wire codec and stream tool",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".midiwire")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			wire, err := app.NewWire(app.Config{Home: home, HubURL: hubURL})
			if err != nil {
				return err
			}
			appCtx = wire
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "take dir (default ~/.midiwire)")
	root.PersistentFlags().StringVar(&hubURL, "hub", "", "hub base URL (e.g. http://127.0.0.1:8080)")

	root.AddCommand(
		decodeCmd(), encodeCmd(), monitorCmd(), sendCmd(),
		recordCmd(), playCmd(), takesCmd(),
	)
	return root.Execute()
}
