package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// createScene builds a scene and its camera configuration by name
func createScene(sceneType string) (*scene.Scene, renderer.CameraConfig, error) {
	switch sceneType {
	case "snowman":
		return scene.NewSnowmanScene(), renderer.CameraConfig{
			Center:      core.NewVec3(3, 1, 5),
			LookAt:      core.NewVec3(0, -0.4, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        24,
			AspectRatio: 16.0 / 9.0,
		}, nil
	case "mirrors":
		return scene.NewMirrorBoxScene(), renderer.CameraConfig{
			Center:      core.NewVec3(0.8, 0.7, 1.6),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        60,
			AspectRatio: 16.0 / 9.0,
		}, nil
	default:
		return nil, renderer.CameraConfig{}, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "snowman", "Scene type: 'snowman' or 'mirrors'")
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels (0 = derive from scene aspect ratio)")
	workers := flag.Int("workers", 1, "Scanline workers (1 = sequential, 0 = CPU count)")
	gamma := flag.Float64("gamma", 1.0, "Gamma correction applied when writing the image")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  snowman - Snowman built from mirrored spheres on a ground sphere")
		fmt.Println("  mirrors - Two facing mirror walls with a shiny sphere between them")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	selectedScene, cameraConfig, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("%v. Using snowman scene.\n", err)
		selectedScene, cameraConfig, _ = createScene("snowman")
		*sceneType = "snowman" // Normalize the scene type for directory creation
	}

	if *height <= 0 {
		*height = int(float64(*width) / cameraConfig.AspectRatio)
	}

	// Create output directory for this scene type
	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	config := renderer.DefaultRenderConfig()
	config.NumWorkers = *workers

	camera := renderer.NewCamera(cameraConfig)
	raytracer, err := renderer.NewRaytracer(selectedScene, camera, *width, *height, config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error creating raytracer: %v\n", err)
		return
	}

	img := raytracer.RenderImage()

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, img.RGBA(*gamma)); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}
