package app

import (
	"flag"
	"fmt"
	"math"
	"runtime"
	"strings"

	"raycaster/internal/core"
	"raycaster/internal/raycast"
)

// Config represents the command-line parameters shared by the viewers and the
// headless renderer.
type Config struct {
	Map     string
	MapW    int
	MapH    int
	MapOpts map[string]string

	X, Y        int
	HeadingDeg  float64
	FOVDeg      float64
	MaxDistance float64
	Steps       int

	RenderW int
	RenderH int
	Scale   int
	TPS     int
	Workers int

	MoveSpeed float64
	TurnDeg   float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Map:         "classic",
		MapW:        512,
		MapH:        512,
		MapOpts:     map[string]string{},
		X:           380,
		Y:           340,
		HeadingDeg:  54,
		FOVDeg:      90,
		MaxDistance: 512,
		Steps:       256,
		RenderW:     raycast.RenderWidth,
		RenderH:     512,
		Scale:       1,
		TPS:         60,
		Workers:     runtime.NumCPU(),
		MoveSpeed:   4,
		TurnDeg:     3,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Map, "map", c.Map, "map generator ("+strings.Join(core.GeneratorNames(), ", ")+")")
	fs.IntVar(&c.MapW, "map-w", c.MapW, "map width in cells")
	fs.IntVar(&c.MapH, "map-h", c.MapH, "map height in cells")
	fs.Func("opt", "map generator option key=value (repeatable)", func(s string) error {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return fmt.Errorf("expected key=value, got %q", s)
		}
		if c.MapOpts == nil {
			c.MapOpts = map[string]string{}
		}
		c.MapOpts[key] = value
		return nil
	})
	fs.IntVar(&c.X, "x", c.X, "camera x")
	fs.IntVar(&c.Y, "y", c.Y, "camera y")
	fs.Float64Var(&c.HeadingDeg, "heading", c.HeadingDeg, "camera heading in degrees, counter-clockwise from +x")
	fs.Float64Var(&c.FOVDeg, "fov", c.FOVDeg, "field of view in degrees")
	fs.Float64Var(&c.MaxDistance, "max-distance", c.MaxDistance, "ray march ceiling")
	fs.IntVar(&c.Steps, "steps", c.Steps, "samples per ray")
	fs.IntVar(&c.RenderW, "width", c.RenderW, "render width in pixels (one ray per column)")
	fs.IntVar(&c.RenderH, "height", c.RenderH, "render height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to cast a frame")
	fs.Float64Var(&c.MoveSpeed, "move", c.MoveSpeed, "cells moved per tick")
	fs.Float64Var(&c.TurnDeg, "turn", c.TurnDeg, "degrees turned per tick")
}

// Camera builds and validates the initial camera.
func (c *Config) Camera() (raycast.Camera, error) {
	cam := raycast.Camera{
		X:           c.X,
		Y:           c.Y,
		Radians:     raycast.NormalizeAngle(c.HeadingDeg * math.Pi / 180),
		FOV:         c.FOVDeg * math.Pi / 180,
		MaxDistance: c.MaxDistance,
		RaySteps:    c.Steps,
	}
	if err := cam.Validate(); err != nil {
		return raycast.Camera{}, err
	}
	return cam, nil
}

// RenderSize returns the output image size.
func (c *Config) RenderSize() (core.Size, error) {
	if c.RenderW <= 0 || c.RenderH <= 0 {
		return core.Size{}, fmt.Errorf("render size %dx%d must be positive", c.RenderW, c.RenderH)
	}
	return core.Size{W: c.RenderW, H: c.RenderH}, nil
}

// TurnRadians returns the per-tick turn step in radians.
func (c *Config) TurnRadians() float64 { return c.TurnDeg * math.Pi / 180 }

// Scene is everything a frame is rendered from.
type Scene struct {
	Name   string
	Map    *core.Map
	Camera raycast.Camera
	Size   core.Size
}

// Build generates the map and camera described by the config. It fails when
// the camera starts outside the map or inside a wall.
func (c *Config) Build() (*Scene, error) {
	cam, err := c.Camera()
	if err != nil {
		return nil, err
	}
	size, err := c.RenderSize()
	if err != nil {
		return nil, err
	}
	m, err := core.Generate(c.Map, core.Size{W: c.MapW, H: c.MapH}, c.MapOpts)
	if err != nil {
		return nil, err
	}
	if !m.Contains(cam.X, cam.Y) {
		return nil, fmt.Errorf("camera (%d,%d) outside %dx%d map", cam.X, cam.Y, m.W, m.H)
	}
	if mat, hit := m.Occupied(cam.X, cam.Y); hit {
		return nil, fmt.Errorf("camera (%d,%d) inside %s wall", cam.X, cam.Y, mat)
	}
	return &Scene{Name: c.Map, Map: m, Camera: cam, Size: size}, nil
}

// Parameters describes the scene for the HUD.
func (s *Scene) Parameters() core.ParameterSnapshot {
	return s.Camera.Parameters().Merge(core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Map",
		Params: []core.Parameter{
			{Key: "map", Label: "map", Value: s.Name},
			{Key: "size", Label: "size", Value: fmt.Sprintf("%dx%d", s.Map.W, s.Map.H)},
		},
	}}})
}
