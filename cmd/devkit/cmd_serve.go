package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/shopfront/backend/internal/config"
	"github.com/zhouzirui/shopfront/backend/internal/handler/pages"
	"github.com/zhouzirui/shopfront/backend/internal/handler/whoami"
	"github.com/zhouzirui/shopfront/backend/internal/server"
)

var serveAddr string

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Serve the static site (/, /about, /contact, /greet)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd, pages.NewRouter(logger))
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Serve the caller's IP address on every path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd, whoami.NewRouter(logger))
	},
}

func init() {
	for _, c := range []*cobra.Command{pagesCmd, whoamiCmd} {
		c.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from PORT, else :3000)")
	}
}

// serverConfig applies --addr over the environment configuration.
func serverConfig() (config.ServerConfig, error) {
	serverCfg := cfg.Server
	if serveAddr != "" {
		addr, err := config.ParseAddr(serveAddr)
		if err != nil {
			return config.ServerConfig{}, err
		}
		serverCfg.Addr = addr
	}
	return serverCfg, nil
}

func serve(cmd *cobra.Command, h http.Handler) error {
	serverCfg, err := serverConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, server.New(serverCfg, h), serverCfg.ShutdownTimeout, logger)
}
