package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg"
)

func main() {
	cfg := pkg.DefaultConfig()
	flag.StringVar(&cfg.LogPath, "log", cfg.LogPath, "path to log file")
	flag.StringVar(&cfg.Server, "server", cfg.Server, "account service URL")
	flag.StringVar(&cfg.Username, "user", cfg.Username, "username to log in with")
	flag.BoolVar(&cfg.Offline, "offline", cfg.Offline, "play without logging in")
	flag.StringVar(&cfg.ThemeFile, "theme-file", cfg.ThemeFile, "JSON file with themes")
	flag.StringVar(&cfg.ThemeName, "theme", cfg.ThemeName, "theme name")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "piece sequence seed")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "non-interactive terminals are not supported")
		os.Exit(1)
	}

	logFile := pkg.InitLog(cfg.LogPath, "CLIENT: ")
	defer logFile.Close()

	log.Println("New Client")
	cl := pkg.NewClient(cfg)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() { // Down when receive killed signal
		<-sigc
		cl.Stop()
	}()

	if err := cl.Run(); err != nil {
		log.Fatalf("Client stopped: %v", err)
	}
	log.Println("Client exited")
}
