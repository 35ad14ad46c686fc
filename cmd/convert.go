package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/units"
)

var (
	convertQuantity string
	convertValue    float64
	convertFrom     string
	convertTo       string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a value between supported units",
	Long: `Convert a value between any two units of the same quantity.

Quantities:
  length, force, moment, distributed, modulus, inertia, rotation

Examples:
  gobeam convert --quantity length --value 5 --from ft --to m
  gobeam convert -q moment --value 12 --from kip.ft --to kn.m`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := units.Convert(convertQuantity, convertValue, convertFrom, convertTo)
		if err != nil {
			return err
		}
		fmt.Printf("%g %s = %.6g %s\n", convertValue, convertFrom, out, convertTo)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertQuantity, "quantity", "q", "length", "Quantity to convert")
	convertCmd.Flags().Float64Var(&convertValue, "value", 0, "Value to convert [required]")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Unit of the value [required]")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Target unit [required]")
	convertCmd.MarkFlagRequired("value")
	convertCmd.MarkFlagRequired("from")
	convertCmd.MarkFlagRequired("to")
}
