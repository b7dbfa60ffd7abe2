package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop every queued paging record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := subsystemFromContext(cmd.Context())
			if err != nil {
				return err
			}
			dropped := s.Reset(cmd.Context())
			fmt.Printf("dropped %d queued records\n", dropped)
			return nil
		},
	}
}
