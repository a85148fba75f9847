package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// record: capture a raw stream from stdin into a stored take.
func recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Capture a raw stream from stdin into a stored take",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				return fmt.Errorf("--port required")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			take, err := appCtx.Capture.Record(ctx, os.Stdin, port)
			if err != nil {
				return err
			}
			fmt.Printf("Take %s recorded: %d messages on port %q\n", take.ID, len(take.Messages), take.Port)
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "port name to record under")
	_ = cmd.MarkFlagRequired("port")
	return cmd
}
