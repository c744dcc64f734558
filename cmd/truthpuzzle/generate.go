package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/truthpuzzle/internal/render"
)

var (
	genSeed int64
	genJSON bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a freshly generated puzzle",
	Long: `Generates one shuffled puzzle. With --json the puzzle is printed in the
format accepted by "solve" and "check".`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "puzzle seed (0 picks one)")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "print the puzzle as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	uc, err := newService()
	if err != nil {
		return err
	}
	seed := genSeed
	if seed == 0 {
		seed = uc.NextSeed()
	}
	p, _, err := uc.Generate(cmd.Context(), seed)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if genJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}
	fmt.Fprintf(out, "seed %d\n", seed)
	for _, line := range render.Lines(p) {
		fmt.Fprintln(out, line)
	}
	return nil
}
