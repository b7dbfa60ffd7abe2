package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gsm-bts/pager/internal/pagingconst"
)

func newGenerateCommand() *cobra.Command {
	var frame uint32

	c := &cobra.Command{
		Use:   "generate",
		Short: "Produce the CCCH MAC block for a given frame number",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := subsystemFromContext(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]byte, pagingconst.MACBlockLen)
			n, err := s.Generate(cmd.Context(), frame, out)
			if err != nil {
				return fmt.Errorf("generate failed: %w", err)
			}
			fmt.Println(hex.EncodeToString(out[:n]))
			return nil
		},
	}

	c.Flags().Uint32Var(&frame, "frame", 0, "absolute GSM frame number")
	return c
}
