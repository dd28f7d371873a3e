// Command xprd runs the expression evaluation service.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/mattn/go-isatty"
	"src.xpr.dev/pkg/logutil"
	"src.xpr.dev/pkg/service"
	"src.xpr.dev/pkg/store"
)

var logger = logutil.GetLogger("[xprd] ")

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	logPath := flag.String("log", "", "a file to write debug log to")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to open log file:", err)
			os.Exit(2)
		}
		defer f.Close()
		logutil.SetOutput(f)
	}

	cfg, err := readConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read config:", err)
		os.Exit(2)
	}

	var opts service.ServeOpts
	if cfg.DB != "" {
		st, err := store.NewStore(cfg.DB)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to open result store:", err)
			os.Exit(2)
		}
		defer st.Close()
		opts.Results = st
	}

	listener, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to listen:", err)
		os.Exit(2)
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Printf("xprd serving on %s\n", listener.Addr())
	}
	logger.Println("pid is", os.Getpid())

	if err := service.Serve(listener, opts); err != nil {
		logger.Println("server stopped:", err)
	}
}
