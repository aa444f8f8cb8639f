package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uclh-criu/synthetic-llm-medical-text/stats"
)

func init() {
	cmd := &cobra.Command{
		Use:   "analyze [csv]",
		Short: "Compute text statistics from a CSV dataset",
		Args:  cobra.ExactArgs(1),
		Run:   runAnalyze,
	}
	cmd.Flags().String("column", "note", "Text column to analyze")
	cmd.Flags().StringSlice("analyses", nil, "Analyses to run: basic, vocabulary (default all)")
	cmd.Flags().Bool("guidance", false, "Print prompt guidance text instead of JSON")
	RootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	column, _ := cmd.Flags().GetString("column")
	analyses, _ := cmd.Flags().GetStringSlice("analyses")
	guidance, _ := cmd.Flags().GetBool("guidance")

	texts, err := stats.LoadColumn(args[0], column)
	if err != nil {
		exitErr("analyze", err)
	}

	kinds := make([]stats.Kind, 0, len(analyses))
	for _, a := range analyses {
		kinds = append(kinds, stats.Kind(a))
	}
	report := stats.Analyze(texts, kinds...)

	if guidance {
		fmt.Print(stats.Guidance(report))
		return
	}
	b, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(b))
}
