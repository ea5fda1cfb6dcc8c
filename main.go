package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	out       string
	seed      int64
	quiet     bool
	override  renderer.CameraConfig
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.sceneName, "scene", "basic", "Scene to render: "+strings.Join(scene.Names(), ", "))
	fs.StringVar(&opts.out, "out", "-", "Output path: '-' for PPM on stdout, or a .ppm or .png file")
	fs.Int64Var(&opts.seed, "seed", 42, "Random seed for sampling and scene layout")
	fs.BoolVar(&opts.quiet, "quiet", false, "Suppress progress output")
	fs.IntVar(&opts.override.ImageWidth, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.override.SamplesPerPixel, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.override.MaxDepth, "depth", 0, "Maximum ray bounces (0 = scene default)")
	fs.Float64Var(&opts.override.VFov, "fov", 0, "Vertical field of view in degrees (0 = scene default)")
	fs.Float64Var(&opts.override.DefocusAngle, "defocus", 0, "Defocus angle in degrees (0 = scene default)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Weekend Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Available scenes:")
		for _, name := range scene.Names() {
			def, _ := scene.Lookup(name)
			fmt.Fprintf(stderr, "  %-10s %s\n", name, def.Description)
		}
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, errors.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	s, err := scene.Build(opts.sceneName, opts.seed, opts.override)
	if err != nil {
		return errors.Wrap(err, "failed to build scene")
	}

	var logger core.Logger
	if !opts.quiet {
		logger = log.New(stderr, "", log.LstdFlags)
		logger.Printf("Rendering scene %q (%d objects)", s.Name, s.World.Len())
	}

	sampler := core.NewSeededSampler(opts.seed)

	if opts.out == "-" {
		_, err := s.Camera.Render(s.World, sampler, renderer.NewPPMWriter(stdout), logger)
		return err
	}

	ext := strings.ToLower(filepath.Ext(opts.out))
	if ext != ".png" && ext != ".ppm" {
		return errors.Errorf("unsupported output format %q: use .ppm or .png", filepath.Ext(opts.out))
	}

	if dir := filepath.Dir(opts.out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}
	}

	file, err := os.Create(opts.out)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}
	defer file.Close()

	if ext == ".png" {
		sink := renderer.NewImageSink()
		if _, err := s.Camera.Render(s.World, sampler, sink, logger); err != nil {
			return err
		}
		if err := png.Encode(file, sink.Image()); err != nil {
			return errors.Wrap(err, "failed to encode PNG")
		}
	} else if _, err := s.Camera.Render(s.World, sampler, renderer.NewPPMWriter(file), logger); err != nil {
		return err
	}

	if err := file.Close(); err != nil {
		return errors.Wrap(err, "failed to close output file")
	}
	if logger != nil {
		logger.Printf("Render saved as %s", opts.out)
	}
	return nil
}
