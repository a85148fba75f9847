package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"midiwire/internal/domain"
	"midiwire/internal/protocol/render"
)

// send <message> [args...]: render a message and publish it to a hub port.
func sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <message> [args...]",
		Short: "Render a message and publish it to a hub port",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Hub == nil {
				return fmt.Errorf("no hub configured. use --hub")
			}
			if port == "" {
				return fmt.Errorf("--port required")
			}
			msg, err := buildMessage(args[0], args[1:])
			if err != nil {
				return err
			}

			ev := domain.Event{
				Port:   port,
				Data:   render.Append(msg, nil),
				Origin: "midiwire",
				At:     time.Now().UTC(),
			}
			if err := appCtx.Hub.Publish(cmd.Context(), ev); err != nil {
				return fmt.Errorf("publishing to port %q: %w", port, err)
			}
			fmt.Println("sent", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "hub port to publish to")
	_ = cmd.MarkFlagRequired("port")
	return cmd
}
