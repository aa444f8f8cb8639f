package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "batch [prompt]",
		Short: "Generate multiple notes from the same prompt",
		Run:   runBatch,
	}
	addSpecFlags(cmd)
	cmd.Flags().IntP("count", "n", 1, "Number of notes to generate")
	RootCmd.AddCommand(cmd)
}

func runBatch(cmd *cobra.Command, args []string) {
	spec, err := specFromFlags(cmd, args)
	if err != nil {
		exitErr("batch", err)
	}
	n, _ := cmd.Flags().GetInt("count")
	agent, _, err := newAgent()
	if err != nil {
		exitErr("batch", err)
	}

	notes, err := agent.GenerateBatch(cmd.Context(), spec, n)
	if err != nil {
		exitErr("batch", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		b, _ := json.MarshalIndent(notes, "", "  ")
		fmt.Println(string(b))
		return
	}
	for i, note := range notes {
		if i > 0 {
			fmt.Println("---")
		}
		fmt.Println(note.Text)
	}
}
