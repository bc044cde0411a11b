package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"chat/internal/agent"
	"chat/internal/config"
	"chat/internal/llm"
	"chat/internal/prompt"
	"chat/internal/tui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	printSchema := flag.Bool("config-schema", false, "print the JSON schema for the configuration file and exit")
	flag.Parse()

	if *printSchema {
		schema, err := config.Schema()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(schema))
		return
	}

	// Try to load .env, but do not fail if missing
	_ = godotenv.Load()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	apiKey, err := config.APIKey()
	if err != nil {
		return err
	}

	systemPrompt := prompt.Load(cfg.PromptPath())

	client, err := llm.NewClient(context.Background(), apiKey)
	if err != nil {
		return err
	}

	ag, err := agent.New(client.Models, cfg.Agent, systemPrompt)
	if err != nil {
		return err
	}

	return tui.Start(cfg, ag)
}
