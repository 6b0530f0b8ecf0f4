// Command sixelcat decodes a DCS-framed SIXEL stream into a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/danielgatis/go-sixel"
)

type params struct {
	in  string
	out string
}

func main() {
	p := &params{}
	flag.StringVar(&p.in, "i", "-", "input file containing a SIXEL DCS sequence, - for stdin")
	flag.StringVar(&p.out, "o", "-", "output PNG file, - for stdout")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sixelcat [options]")
		fmt.Fprintln(os.Stderr, "  Decodes a DCS-framed SIXEL sequence to PNG.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(p); err != nil {
		log.Fatalf("sixelcat: %v", err)
	}
}

func run(p *params) error {
	data, err := readAll(p.in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	rgba, width, height, err := sixel.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding sixel: %w", err)
	}
	if width == 0 || height == 0 {
		return fmt.Errorf("decoded image is empty")
	}

	img := &image.RGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	return writePNG(p.out, img)
}

func readAll(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writePNG(path string, img image.Image) error {
	if path == "-" {
		return png.Encode(os.Stdout, img)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
