package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/fourterm/pkg"
)

func main() {
	cfg := pkg.LoadConfig(".env")

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "ssh listen address")
	flag.StringVar(&cfg.HostKey, "hostkey", cfg.HostKey, "path to the ssh host key, generated when empty")
	flag.StringVar(&cfg.Binary, "bin", cfg.Binary, "fourterm binary run for each session")
	flag.StringVar(&cfg.Log, "log", cfg.Log, "path to log file")
	flag.StringVar(&cfg.ClientLog, "client-log", cfg.ClientLog, "log file passed to each fourterm session")
	flag.DurationVar(&cfg.IdleTimeout, "idle", cfg.IdleTimeout, "disconnect idle sessions after")
	flag.IntVar(&cfg.MaxSessions, "max-sessions", cfg.MaxSessions, "maximum concurrent sessions, 0 for no limit")
	flag.Parse()

	pkg.InitLog(cfg.Log, "SERVER: ")
	log.Println("Server started")

	s, err := pkg.NewServer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		log.Printf("Listening at %s", cfg.Addr)
		if err := s.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Panic(err)
		}
	}()

	// Wait for teminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}
