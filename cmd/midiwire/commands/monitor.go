package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"midiwire/internal/domain"
	"midiwire/internal/protocol/parse"
)

// monitor: print messages from stdin, or follow a hub port with --port.
func monitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Print messages from a raw stream or a hub port",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if port != "" {
				if appCtx.Hub == nil {
					return fmt.Errorf("--port requires --hub")
				}
				events, err := appCtx.Hub.Subscribe(ctx, port)
				if err != nil {
					return err
				}
				for ev := range events {
					msg, err := parse.Slice(ev.Data)
					if err != nil {
						fmt.Printf("[%s] invalid event: % x\n", ev.Port, ev.Data)
						continue
					}
					fmt.Printf("[%s] %s\n", ev.Port, msg)
				}
				return nil
			}

			return appCtx.Streams.Pump(ctx, os.Stdin, func(m domain.Message) {
				fmt.Println(m)
			})
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "hub port to follow instead of stdin")
	return cmd
}
