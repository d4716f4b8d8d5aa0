package main

import (
	"flag"
	"log"

	"raycaster/internal/app"
	_ "raycaster/internal/maps"
	"raycaster/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	scene, err := cfg.Build()
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	term.NewViewer(screen, scene, cfg.Controls(), cfg.Workers).Run()
}
