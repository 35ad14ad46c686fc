package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

var (
	validateFile string
	validateJSON bool
)

var beamValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a beam definition and show the resolved model",
	Long: `Validate a beam JSON file, resolve every quantity to the units of
its system and print the preprocessed nodes and element rigidities.

Examples:
  gobeam beam validate -f two-span.json
  gobeam beam validate -f two-span.json --json`,
	Run: runBeamValidate,
}

func init() {
	beamCmd.AddCommand(beamValidateCmd)

	beamValidateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to beam JSON file [required]")
	beamValidateCmd.MarkFlagRequired("file")
	beamValidateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print the resolved model as JSON")
}

func runBeamValidate(cmd *cobra.Command, args []string) {
	in, err := beam.LoadFromFile(validateFile)
	if err != nil {
		fmt.Printf("Invalid beam: %v\n", err)
		return
	}
	m, err := beam.Resolve(in)
	if err != nil {
		fmt.Printf("Invalid beam: %v\n", err)
		return
	}
	m = beam.Preprocess(m)

	if validateJSON {
		if err := printJSON(m); err != nil {
			fmt.Printf("Error encoding model: %v\n", err)
		}
		return
	}

	fmt.Println()
	fmt.Printf("  %s is valid: %d spans, %d nodes after preprocessing\n",
		validateFile, in.Spans(), len(m.Boundaries))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Element\tStart\tEnd\tEI\n")
	fmt.Fprintf(w, "  ───────\t─────\t───\t──\n")
	for _, e := range beam.Elements(m) {
		fmt.Fprintf(w, "  %d\t%g (%s)\t%g (%s)\t%.6g\n",
			e.Index, e.Start, e.StartBoundary.Kind, e.End, e.EndBoundary.Kind, e.EI)
	}
	w.Flush()
	fmt.Println()
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
