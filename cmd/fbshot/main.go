// Command fbshot renders a single frame without opening a window and writes
// it as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	"fbdemo/app"
	"fbdemo/geom"
	"fbdemo/hal"
	"fbdemo/screen"
)

func main() {
	var (
		outPath = flag.String("out", "", "Output PNG file.")
		which   = flag.String("screen", "main", "main|options.")
		ms      = flag.Uint64("ms", 0, "Milliseconds since start (drives the exit button phase).")
		hover   = flag.String("hover", "", "Pointer position as x,y for the hover highlight.")
		width   = flag.Int("w", 500, "Frame width.")
		height  = flag.Int("h", 500, "Frame height.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: fbshot -out frame.png [-screen main|options] [-ms 0] [-hover x,y] [-w 500 -h 500]")
	}
	if *width < 10 || *height < 10 {
		fatalf("frame too small: %dx%d", *width, *height)
	}

	s, err := parseScreen(*which)
	if err != nil {
		fatalf("%v", err)
	}
	var hp *geom.Point
	if *hover != "" {
		p, err := parsePoint(*hover)
		if err != nil {
			fatalf("hover: %v", err)
		}
		hp = &p
	}

	st := app.NewState(*width, *height)
	st.Screen.Current = s
	st.Phase = app.PhaseAt(*ms)

	fb := hal.NewFramebuffer(*width, *height)
	app.RenderFrame(fb.Pixels(), fb.Width(), fb.Height(), st, hp)

	if err := writePNG(*outPath, fb); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func parseScreen(s string) (screen.Screen, error) {
	switch strings.ToLower(s) {
	case "main":
		return screen.Main, nil
	case "options":
		return screen.Options, nil
	}
	return 0, fmt.Errorf("unknown screen: %s", s)
}

func parsePoint(s string) (geom.Point, error) {
	var p geom.Point
	if _, err := fmt.Sscanf(s, "%d,%d", &p.X, &p.Y); err != nil {
		return geom.Point{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return p, nil
}

func writePNG(path string, fb hal.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, hal.Snapshot(fb)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
