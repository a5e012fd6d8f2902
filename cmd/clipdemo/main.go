// Command clipdemo clips line lists and polygons and reports the results.
//
// Segments come from a line list file (-input), are generated (-random N),
// or default to a built-in example. They are clipped to the file's window
// with one of the rectangle algorithms, or to a convex polygon when
// -polygon is given:
//
//	clipdemo -random 1000 -algorithm all
//	clipdemo -input lines.txt -algorithm liang-barsky -export out.txt -png out.png
//	clipdemo -polygon random -polygons 8 -png polygons.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/clip"
	"github.com/gogpu/clip/lineio"
	"github.com/gogpu/clip/render"
)

// example is the line list used when neither -input nor -random is set.
const example = `5
-15 -5 15 5
-10 10 10 -10
5 -15 5 15
-8 -8 8 8
-12 0 12 0
-10 -8 10 8
`

type config struct {
	input     string
	random    int
	seed      uint64
	algorithm string
	polygon   string
	polygons  int
	workers   int
	export    string
	png       string
	scale     float64
	verbose   bool
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("clipdemo: %v", err)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("clipdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.input, "input", "", "line list file to clip")
	fs.IntVar(&cfg.random, "random", 0, "generate `N` random segments instead of reading -input")
	fs.Uint64Var(&cfg.seed, "seed", 1, "random seed")
	fs.StringVar(&cfg.algorithm, "algorithm", clip.AlgorithmCohenSutherland.String(),
		"cohen-sutherland, liang-barsky, midpoint or all")
	fs.StringVar(&cfg.polygon, "polygon", "", "clip to a convex polygon: a vertex file, \"default\" or \"random\"")
	fs.IntVar(&cfg.polygons, "polygons", 0, "also clip `K` random polygons (requires -polygon)")
	fs.IntVar(&cfg.workers, "workers", 0, "batch goroutines (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.export, "export", "", "write input and clipped segments to `file`")
	fs.StringVar(&cfg.png, "png", "", "render the scene to `file`")
	fs.Float64Var(&cfg.scale, "scale", 1, "preview zoom")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if cfg.input != "" && cfg.random > 0 {
		return cfg, errors.New("-input and -random are mutually exclusive")
	}
	if cfg.random < 0 || cfg.polygons < 0 {
		return cfg, errors.New("-random and -polygons must not be negative")
	}
	if cfg.polygons > 0 && cfg.polygon == "" {
		return cfg, errors.New("-polygons requires -polygon")
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	clip.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer clip.SetLogger(nil)

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15))
	f, err := loadLines(cfg, rng)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	scene := render.Scene{Lines: f.Segments}
	var visible []clip.Segment

	if cfg.polygon != "" {
		visible, err = clipByPolygon(p, stdout, cfg, rng, f, &scene)
	} else {
		visible, err = clipByWindow(p, stdout, cfg, f)
		scene.Window = &f.Window
	}
	if err != nil {
		return err
	}
	scene.ClippedLines = visible

	if cfg.export != "" {
		if err := exportResults(cfg.export, f, visible); err != nil {
			return err
		}
		p.Fprintf(stdout, "Exported %d segments to %s\n", len(visible), cfg.export)
	}
	if cfg.png != "" {
		o := render.DefaultOptions()
		o.Scale = cfg.scale
		if err := render.SavePNG(cfg.png, scene, o); err != nil {
			return err
		}
		p.Fprintf(stdout, "Preview saved to %s (%dx%d)\n", cfg.png, o.Width, o.Height)
	}
	return nil
}

func loadLines(cfg config, rng *rand.Rand) (*lineio.File, error) {
	switch {
	case cfg.input != "":
		fh, err := os.Open(cfg.input)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		f, err := lineio.Decode(fh)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.input, err)
		}
		return f, nil
	case cfg.random > 0:
		return &lineio.File{
			Segments: clip.RandomSegments(rng, cfg.random, clip.DefaultRandomArea),
			Window:   clip.DefaultWindow,
		}, nil
	default:
		return lineio.Decode(strings.NewReader(example))
	}
}

func loadClipPolygon(name string, rng *rand.Rand) (clip.Polygon, error) {
	switch name {
	case "default":
		return clip.DefaultClipPolygon(), nil
	case "random":
		return clip.RandomConvexPolygon(rng), nil
	}
	fh, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	pg, err := lineio.DecodePolygon(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return pg, nil
}

func clipByWindow(p *message.Printer, w io.Writer, cfg config, f *lineio.File) ([]clip.Segment, error) {
	algs, err := selectAlgorithms(cfg.algorithm)
	if err != nil {
		return nil, err
	}

	batches := make([]*clip.LineBatch, len(algs))
	for i, a := range algs {
		b, err := clip.ClipSegments(f.Segments, f.Window,
			clip.WithAlgorithm(a), clip.WithWorkers(cfg.workers))
		if err != nil {
			return nil, err
		}
		batches[i] = b
		if i > 0 {
			fmt.Fprintln(w)
		}
		reportLines(p, w, a.String(), formatWindow(p, f.Window), b)
	}

	if len(algs) > 1 {
		fmt.Fprintln(w)
		reportAgreement(p, w, algs, batches)
	}
	return batches[0].Visible(), nil
}

func clipByPolygon(p *message.Printer, w io.Writer, cfg config, rng *rand.Rand,
	f *lineio.File, scene *render.Scene) ([]clip.Segment, error) {
	pg, err := loadClipPolygon(cfg.polygon, rng)
	if err != nil {
		return nil, err
	}
	scene.ClipPolygon = pg

	b, err := clip.ClipSegmentsByPolygon(f.Segments, pg, clip.WithWorkers(cfg.workers))
	if err != nil {
		return nil, err
	}
	reportLines(p, w, "cyrus-beck", formatPolygon(p, pg), b)

	if cfg.polygons > 0 {
		subjects := clip.RandomPolygons(rng, cfg.polygons)
		pb, err := clip.ClipPolygons(subjects, pg, clip.WithWorkers(cfg.workers))
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(w)
		reportPolygons(p, w, pb)
		scene.Polygons = subjects
		scene.ClippedPolygons = pb.Clipped()
	}
	return b.Visible(), nil
}

// selectAlgorithms resolves the -algorithm flag; "all" selects every
// rectangle algorithm.
func selectAlgorithms(name string) ([]clip.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return clip.Algorithms(), nil
	}
	a, err := clip.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []clip.Algorithm{a}, nil
}

func exportResults(path string, f *lineio.File, visible []clip.Segment) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()
	return lineio.EncodeResults(fh, f, visible)
}
