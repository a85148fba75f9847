package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"midiwire/internal/protocol/parse"
)

// decode <hex...>: decode wire bytes into readable messages.
func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex...>",
		Short: "Decode hex wire bytes into readable messages",
		Long: "Decode hex wire bytes into readable messages.\n" +
			"Bytes stream through the parser, so running status and\n" +
			"interleaved realtime messages decode correctly.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			joined := strings.ToLower(strings.Join(args, ""))
			joined = strings.NewReplacer(" ", "", ",", "", "0x", "").Replace(joined)
			raw, err := hex.DecodeString(joined)
			if err != nil {
				return fmt.Errorf("decoding hex input: %w", err)
			}

			p := parse.New()
			count := 0
			for _, b := range raw {
				if msg, ok := p.Feed(b); ok {
					count++
					fmt.Println(msg)
				}
			}
			if count == 0 {
				return fmt.Errorf("no complete messages in % x", raw)
			}
			return nil
		},
	}
}
