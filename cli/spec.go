package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uclh-criu/synthetic-llm-medical-text/generator"
	"github.com/uclh-criu/synthetic-llm-medical-text/stats"
)

// addSpecFlags registers the flags shared by generate and batch.
func addSpecFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("system", "s", "", "System prompt")
	cmd.Flags().StringArrayP("instruction", "i", nil, "Extra instruction (repeatable)")
	cmd.Flags().StringP("entities", "e", "", "Comma-separated entity types to mark up")
	cmd.Flags().StringP("relation", "r", "", "Relation name to list between marked entities")
	cmd.Flags().String("stats-csv", "", "CSV file whose text column biases the prompt")
	cmd.Flags().String("column", "note", "Text column in --stats-csv")
	cmd.Flags().Float64P("temperature", "t", 0, "Sampling temperature (overrides config)")
	cmd.Flags().Bool("json", false, "Print full notes as JSON")
}

// specFromFlags assembles a NoteSpec. The prompt text comes from the
// positional args or, failing that, from stdin.
func specFromFlags(cmd *cobra.Command, args []string) (generator.NoteSpec, error) {
	prompt := strings.Join(args, " ")
	if strings.TrimSpace(prompt) == "" {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				return generator.NoteSpec{}, err
			}
			prompt = string(b)
		}
	}
	if strings.TrimSpace(prompt) == "" {
		return generator.NoteSpec{}, fmt.Errorf("prompt is required (positional arg or stdin)")
	}

	system, _ := cmd.Flags().GetString("system")
	instructions, _ := cmd.Flags().GetStringArray("instruction")
	entities, _ := cmd.Flags().GetString("entities")
	relation, _ := cmd.Flags().GetString("relation")
	statsCSV, _ := cmd.Flags().GetString("stats-csv")
	column, _ := cmd.Flags().GetString("column")
	temperature, _ := cmd.Flags().GetFloat64("temperature")

	spec := generator.NoteSpec{
		Prompt:       strings.TrimSpace(prompt),
		SystemPrompt: system,
		Instructions: instructions,
		Temperature:  temperature,
	}

	if entities != "" {
		var types []string
		for _, t := range strings.Split(entities, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		if len(types) > 0 {
			spec.Markup = &generator.MarkupOptions{
				EntityTypes:  types,
				RelationName: relation,
			}
		}
	}

	if statsCSV != "" {
		texts, err := stats.LoadColumn(statsCSV, column)
		if err != nil {
			return generator.NoteSpec{}, err
		}
		spec.StatsGuidance = stats.Guidance(stats.Analyze(texts))
	}

	return spec, nil
}
