package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/fitness/internal/tracker"
	"github.com/shaiso/fitness/internal/workout"
)

// kindNotSet — сообщение для пользователя о неизвестном виде тренировки.
const kindNotSet = "Не задан вид тренировки."

// NewSummaryCmd создаёт команду итога одной тренировки.
//
// Значения разбираются только для известного вида: пакет с неизвестным
// видом пропускается, даже если значения не являются числами.
func NewSummaryCmd(trackerFn func() *tracker.Tracker, registryFn func() *workout.Registry, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "summary KIND VALUE...",
		Short: "Summarise one workout from sensor values",
		Long: `Summarise one workout from sensor values.

Values follow the parameter order of the kind (see "fitness kinds"):
  RUN action duration weight
  WLK action duration weight height
  SWM action duration weight pool_length pool_count`,
		Example: "  fitness summary RUN 15000 1 75",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []float64
			if registryFn().Has(args[0]) {
				var err error
				if data, err = parseValues(args[1:]); err != nil {
					return err
				}
			}

			res, err := trackerFn().Run(cmd.Context(), []tracker.Package{
				{Kind: args[0], Data: data},
			})
			if err != nil {
				return err
			}

			if res.Skipped > 0 {
				outputFn().Warn(kindNotSet)
			}
			return nil
		},
	}
}

// parseValues парсит значения датчиков из аргументов.
func parseValues(args []string) ([]float64, error) {
	data := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %q is not a number", i+1, arg)
		}
		data[i] = v
	}
	return data, nil
}
