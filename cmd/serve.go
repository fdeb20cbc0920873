package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/viant/devkit/fileserver"
)

const shutdownTimeout = 5 * time.Second

// ServeCmd serves a directory (the current one by default) over HTTP until the
// process receives SIGINT or SIGTERM.  It fails right away when the port is
// already bound.
type ServeCmd struct {
	Port           int    `short:"p" long:"port" description:"TCP port, 8080 unless configured otherwise"`
	Dir            string `short:"d" long:"dir" description:"directory to serve"`
	MetricsAddress string `long:"metrics-address" description:"expose Prometheus metrics on this address (disabled when empty)"`
	Args           struct {
		Port int `positional-arg-name:"port"`
	} `positional-args:"yes"`
}

func (c *ServeCmd) Execute(_ []string) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}

	port := cfg.Server.Port
	switch {
	case c.Port != 0:
		port = c.Port
	case c.Args.Port != 0:
		port = c.Args.Port
	}
	root := cfg.Server.Root
	if c.Dir != "" {
		root = c.Dir
	}
	metricsAddress := cfg.Server.MetricsAddress
	if c.MetricsAddress != "" {
		metricsAddress = c.MetricsAddress
	}

	srv := fileserver.New(
		fileserver.WithRoot(root),
		fileserver.WithPort(port),
		fileserver.WithAddress(cfg.Server.Address),
		fileserver.WithMetrics(metricsAddress),
	)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	if err := srv.Listen(); err != nil {
		return err
	}
	fmt.Println("serving at port", srv.Port())

	errs := make(chan error, 1)
	go func() { errs <- srv.Serve() }()

	// Wait for SIGINT/SIGTERM
	select {
	case err := <-errs:
		return err
	case <-sigs:
	}
	fmt.Println("shutting down…")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
