// Package cli implements the synthnote CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uclh-criu/synthetic-llm-medical-text/config"
	"github.com/uclh-criu/synthetic-llm-medical-text/generator"
)

var (
	configPath string
	mockLLM    bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "synthnote",
	Short: "Synthesize fake medical notes with an LLM",
	Long:  "Generate synthetic clinical notes from prompts, optionally biased by statistics of a real dataset and annotated with entity/relation markup.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.json", "Path to config.json")
	RootCmd.PersistentFlags().BoolVar(&mockLLM, "mock", false, "Use the offline mock model")
}

func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	if mockLLM {
		return generator.MockLLM{}, nil
	}
	llm := cfg.LLM
	if llm == nil || llm.Provider == "" {
		return nil, fmt.Errorf("llm config missing; set llm.provider/model/api_key in config")
	}
	settings := &generator.LLMSettings{
		Provider:    llm.Provider,
		Model:       llm.Model,
		APIKey:      llm.APIKey,
		BaseURL:     llm.BaseURL,
		Temperature: llm.Temperature,
	}
	switch llm.Provider {
	case "openai":
		return generator.NewOpenAILLMFromConfig(settings)
	case "deepseek":
		// OpenAI-compatible endpoint; base_url is mandatory.
		if llm.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(settings)
	default:
		return nil, fmt.Errorf("llm provider %s not supported", llm.Provider)
	}
}

func newAgent() (*generator.Agent, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	llm, err := buildLLM(cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		return nil, config.Config{}, err
	}
	return agent, cfg, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
