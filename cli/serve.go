package cli

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/uclh-criu/synthetic-llm-medical-text/server"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Run:   runServe,
	}
	cmd.Flags().String("addr", "", "Listen address (overrides config.server_addr)")
	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	agent, cfg, err := newAgent()
	if err != nil {
		exitErr("serve", err)
	}
	srv, err := server.New(agent)
	if err != nil {
		exitErr("serve", err)
	}

	listen := cfg.ServerAddr
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		listen = addr
	}
	if listen == "" {
		listen = ":8080"
	}

	log.Printf("Starting web server on %s", listen)
	if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
		exitErr("serve", err)
	}
}
