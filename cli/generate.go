package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate [prompt]",
		Short: "Generate a single synthetic note",
		Long:  "Generate one note. The prompt can be a positional arg or piped via stdin.",
		Run:   runGenerate,
	}
	addSpecFlags(cmd)
	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	spec, err := specFromFlags(cmd, args)
	if err != nil {
		exitErr("generate", err)
	}
	agent, _, err := newAgent()
	if err != nil {
		exitErr("generate", err)
	}

	note, err := agent.Generate(cmd.Context(), spec, nil, nil, "")
	if err != nil {
		exitErr("generate", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		b, _ := json.MarshalIndent(note, "", "  ")
		fmt.Println(string(b))
		return
	}
	fmt.Println(note.Text)
}
