package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// takes: list stored takes, newest first.
func takesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "takes",
		Short: "List stored takes",
		RunE: func(cmd *cobra.Command, args []string) error {
			takes, err := appCtx.Takes.ListTakes()
			if err != nil {
				return err
			}
			if len(takes) == 0 {
				fmt.Println("no takes recorded")
				return nil
			}
			for _, t := range takes {
				fmt.Printf("%s  %s  port=%q  %d messages\n",
					t.ID, t.CreatedAt.Format("2006-01-02 15:04:05"), t.Port, len(t.Messages))
			}
			return nil
		},
	}
}
