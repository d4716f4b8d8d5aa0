//go:build ebiten

package main

import (
	"flag"
	"log"

	"raycaster/internal/app"
	_ "raycaster/internal/maps"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	scene, err := cfg.Build()
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}
	if err := app.Run(scene, cfg); err != nil {
		log.Fatal(err)
	}
}
