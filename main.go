package main

import (
	"log"
	"os"

	"github.com/uclh-criu/synthetic-llm-medical-text/cli"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
