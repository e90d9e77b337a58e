package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/qnkhuat/tetristerm/pkg"
)

var (
	done = make(chan bool)
)

func main() {
	cfg := pkg.DefaultServerConfig()
	logPath := flag.String("log", "", "path to log file, stderr when empty")
	flag.StringVar(&cfg.SshAddr, "ssh", cfg.SshAddr, "SSH listen address")
	flag.StringVar(&cfg.HttpAddr, "http", cfg.HttpAddr, "account service listen address")
	flag.StringVar(&cfg.HostKeyFile, "host-key", cfg.HostKeyFile, "SSH host key file, a key is generated when empty")
	flag.StringVar(&cfg.Binary, "client", cfg.Binary, "client binary spawned per SSH session")
	flag.StringVar(&cfg.LogDir, "client-logs", cfg.LogDir, "directory for client logs")
	flag.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "password hashing cost, 0 for the default")
	flag.Parse()

	logFile := pkg.InitLog(*logPath, "SERVER: ")
	defer logFile.Close()

	s, err := pkg.NewServer(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Println(color.GreenString("Server started"))

	go func() {
		if err := s.ListenAndServe(); err != nil {
			log.Println(color.RedString("Server stopped: %v", err))
			done <- true
		}
	}()

	// Keep the server run
	sigc := make(chan os.Signal, 1)
	// Wait for teminate signal
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}
