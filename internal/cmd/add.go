package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCommand() *cobra.Command {
	var group int
	var identityHex string
	var chanNeeded uint8

	c := &cobra.Command{
		Use:   "add",
		Short: "Enqueue a paging attempt for a group",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := subsystemFromContext(cmd.Context())
			if err != nil {
				return err
			}
			identityLV, err := hex.DecodeString(identityHex)
			if err != nil {
				return fmt.Errorf("invalid --identity hex: %w", err)
			}
			if err := s.Add(cmd.Context(), group, identityLV, chanNeeded); err != nil {
				return fmt.Errorf("add rejected: %w", err)
			}
			fmt.Printf("queued (queue_length=%d)\n", s.QueueLength())
			return nil
		},
	}

	c.Flags().IntVar(&group, "group", 0, "paging group index")
	c.Flags().StringVar(&identityHex, "identity", "", "mobile identity LV as hex, e.g. 05f400112233")
	c.Flags().Uint8Var(&chanNeeded, "chan-needed", 0, "channel needed value (0..3)")
	_ = c.MarkFlagRequired("identity")
	return c
}
