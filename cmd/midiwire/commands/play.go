package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"midiwire/internal/domain"
)

// play <take-id>: replay a stored take to stdout or a hub port.
func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <take-id>",
		Short: "Play a stored take to stdout or a hub port",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			take, err := appCtx.Takes.LoadTake(args[0])
			if err != nil {
				return err
			}

			if appCtx.Hub == nil {
				return appCtx.Capture.Replay(take, os.Stdout)
			}

			dest := port
			if dest == "" {
				dest = take.Port
			}
			for i, m := range take.Messages {
				ev := domain.Event{
					Port:   dest,
					Data:   m.Data,
					Origin: "midiwire",
					At:     time.Now().UTC(),
				}
				if err := appCtx.Hub.Publish(cmd.Context(), ev); err != nil {
					return fmt.Errorf("publishing message %d of take %s: %w", i, take.ID, err)
				}
			}
			fmt.Printf("Played %d messages to port %q\n", len(take.Messages), dest)
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "hub port to play to (default: the take's port)")
	return cmd
}
