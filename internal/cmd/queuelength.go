package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQueueLengthCommand() *cobra.Command {
	var group int
	var checkGroup bool

	c := &cobra.Command{
		Use:   "queue-length",
		Short: "Report the total queued record count, or one group's empty state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := subsystemFromContext(cmd.Context())
			if err != nil {
				return err
			}
			if checkGroup {
				fmt.Printf("group %d empty: %t\n", group, s.GroupEmpty(group))
				return nil
			}
			fmt.Println(s.QueueLength())
			return nil
		},
	}

	c.Flags().IntVar(&group, "group", 0, "paging group index")
	c.Flags().BoolVar(&checkGroup, "group-empty", false, "report whether --group is empty instead of the total length")
	return c
}
