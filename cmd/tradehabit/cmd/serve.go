package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradehabit/correlation"
	"tradehabit/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve insights and journal reads over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	engine, err := correlation.NewEngine(cfg.Analysis.Params())
	if err != nil {
		return err
	}

	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	s := server.New(j, engine, cfg.Analysis.Limit, cfg.Server.Mode)

	fmt.Printf("Listening on %s\n", addr)
	return s.Run(addr)
}
