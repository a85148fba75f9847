package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"midiwire/internal/protocol/render"
)

// encode <message> [args...]: build a message and print its wire bytes.
func encodeCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "encode <message> [args...]",
		Short: "Build a message and print its wire bytes",
		Long: "Build a message and print its wire bytes as hex.\n" +
			"Examples:\n" +
			"  midiwire encode note-on 0 60 100\n" +
			"  midiwire encode pitch-bend 3 8192\n" +
			"  midiwire encode timing-clock",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := buildMessage(args[0], args[1:])
			if err != nil {
				return err
			}
			wire := render.Append(msg, nil)
			if raw {
				_, err := os.Stdout.Write(wire)
				return err
			}
			fmt.Println(hex.EncodeToString(wire))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "write raw bytes instead of hex")
	return cmd
}
