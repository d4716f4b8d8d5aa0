package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"raycaster/internal/app"
	"raycaster/internal/core"
	_ "raycaster/internal/maps"
	"raycaster/internal/raycast"
)

type scenarioResult struct {
	steps      int
	perFrame   time.Duration
	mismatched int
	meanError  float64
	maxError   float64
	hits       int
}

func (r scenarioResult) String() string {
	return fmt.Sprintf("steps=%-5d frame=%-10s hits=%-4d mismatched=%-4d meanErr=%.2f maxErr=%.2f",
		r.steps, r.perFrame.Round(time.Microsecond), r.hits, r.mismatched, r.meanError, r.maxError)
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	stepList := flag.String("sweep", "16,32,64,128,256,512,1024", "comma separated ray step counts")
	repeat := flag.Int("repeat", 5, "frames cast per setting")
	workers := flag.Int("sweep-workers", runtime.NumCPU(), "settings evaluated concurrently")
	flag.Parse()

	scene, err := cfg.Build()
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}
	settings, err := parseSteps(*stepList)
	if err != nil {
		log.Fatal(err)
	}

	finest := settings[len(settings)-1]
	refCam := scene.Camera
	refCam.RaySteps = finest
	reference := raycast.CastFOV(scene.Map, refCam, scene.Size.W)

	log.Printf("sweeping %d settings on %s (%d workers, %d frames each, reference steps=%d)",
		len(settings), scene.Name, *workers, *repeat, finest)

	jobs := make(chan int)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for steps := range jobs {
				results <- runScenario(scene.Map, scene.Camera, scene.Size.W, steps, *repeat, reference)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, steps := range settings {
			jobs <- steps
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].steps < all[j].steps })

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Println(res)
	}
}

func runScenario(m *core.Map, cam raycast.Camera, width, steps, repeat int, reference raycast.View) scenarioResult {
	cam.RaySteps = steps
	var view raycast.View
	start := time.Now()
	for i := 0; i < max(repeat, 1); i++ {
		view = raycast.CastFOV(m, cam, width)
	}
	elapsed := time.Since(start) / time.Duration(max(repeat, 1))

	res := scenarioResult{steps: steps, perFrame: elapsed}
	var total float64
	for i, ray := range view {
		if ray.Hit() {
			res.hits++
		}
		ref := reference[i]
		if ray.Material != ref.Material {
			res.mismatched++
		}
		diff := math.Abs(ray.Distance - ref.Distance)
		total += diff
		res.maxError = max(res.maxError, diff)
	}
	if len(view) > 0 {
		res.meanError = total / float64(len(view))
	}
	return res
}

func parseSteps(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid step count %q", part)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no step counts given")
	}
	sort.Ints(out)
	return out, nil
}
