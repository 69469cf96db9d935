package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaiso/fitness/internal/workout"
)

// kindView — вид тренировки для вывода.
type kindView struct {
	Kind   string   `json:"kind"`
	Title  string   `json:"title"`
	Params []string `json:"params"`
}

// NewKindsCmd создаёт команду списка видов тренировок.
func NewKindsCmd(registryFn func() *workout.Registry, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List workout kinds and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			kinds := registryFn().Kinds()
			views := make([]kindView, len(kinds))
			rows := make([][]string, len(kinds))
			for i, c := range kinds {
				views[i] = kindView{Kind: c.Kind.String(), Title: c.Kind.Title(), Params: c.Params}
				rows[i] = []string{
					c.Kind.String(),
					c.Kind.Title(),
					strconv.Itoa(c.Arity()),
					strings.Join(c.Params, " "),
				}
			}

			return out.Print([]string{"KIND", "NAME", "ARITY", "PARAMS"}, rows, views)
		},
	}
}
