package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	"raycaster/internal/app"
	_ "raycaster/internal/maps"
	"raycaster/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "output", "directory the images are written to")
	format := flag.String("format", "png", "image format (png, bmp, tiff)")
	noMap := flag.Bool("no-map", false, "skip the top-down map image")
	flag.Parse()

	scene, err := cfg.Build()
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}

	start := time.Now()
	frame := render.RenderFrame(scene.Map, scene.Camera, scene.Size, cfg.Workers)
	log.Printf("cast %d columns in %s", len(frame.View), time.Since(start).Round(time.Microsecond))

	path := filepath.Join(*out, "render."+*format)
	if err := render.Save(path, frame.Scene); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", path)

	if *noMap {
		return
	}
	path = filepath.Join(*out, "map."+*format)
	if err := render.Save(path, render.RenderMap(scene.Map, scene.Camera, frame.View)); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", path)
}
