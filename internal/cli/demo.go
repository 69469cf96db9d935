package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/fitness/internal/tracker"
)

// NewDemoCmd создаёт команду обработки демонстрационного набора пакетов.
func NewDemoCmd(trackerFn func() *tracker.Tracker, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Summarise the demonstration sensor packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := trackerFn().Run(cmd.Context(), tracker.DemoPackages())
			if err != nil {
				return err
			}

			for i := 0; i < res.Skipped; i++ {
				outputFn().Warn(kindNotSet)
			}
			return nil
		},
	}
}
