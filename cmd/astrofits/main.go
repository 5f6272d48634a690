package main

import (
	"fmt"
	"io"
	"os"

	af "astrofits/pkg/astrofits"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		usage(os.Stderr)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "help", "--help", "-h":
		usage(os.Stdout)
		return nil
	case "info":
		return runInfo(args[1:])
	case "preview":
		return runPreview(args[1:])
	}
	usage(os.Stderr)
	return fmt.Errorf("unknown command: %s", args[0])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: astrofits <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  info <path> [--verbose|-v]     print structure, image and metadata summary")
	fmt.Fprintln(w, "  preview <in.fits> <out.tiff>   export the primary image as 16-bit grayscale TIFF")
	fmt.Fprintln(w, "  help                           print this message")
}

func runInfo(args []string) error {
	path := ""
	verbose := false
	for _, a := range args {
		switch a {
		case "--verbose", "-v":
			verbose = true
		default:
			if path != "" {
				return fmt.Errorf("unexpected argument: %s", a)
			}
			path = a
		}
	}
	if path == "" {
		return fmt.Errorf("usage: astrofits info <path> [--verbose|-v]")
	}

	f, err := af.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := f.NumHDUs()
	if err != nil {
		return err
	}
	fmt.Printf("File: %s\n", f.Path())
	fmt.Printf("HDUs: %d\n", n)
	if verbose {
		for i := 1; i <= n; i++ {
			t, err := f.SeekHDU(i)
			if err != nil {
				return err
			}
			fmt.Printf("  HDU %d: %s\n", i, t)
		}
	}

	// Image reading is best effort: a header-only file is still reported.
	img, err := f.ReadImage()
	if err != nil {
		fmt.Printf("No image section (%v)\n", err)
		return nil
	}
	printImage(img, verbose)
	return nil
}

func printImage(img *af.Image, verbose bool) {
	if img.Depth > 1 {
		fmt.Printf("Image: %d x %d x %d\n", img.Width, img.Height, img.Depth)
	} else {
		fmt.Printf("Image: %d x %d\n", img.Width, img.Height)
	}
	nmin, nmax, nmean := af.NormalizedStats(img.Pixels)
	fmt.Printf("  Bitpix:          %d (%s)\n", img.Bitpix, img.DataType)
	fmt.Printf("  Original range:  [%g, %g]\n", img.MinValue, img.MaxValue)
	fmt.Printf("  Normalized:      min=%.4f max=%.4f mean=%.4f\n", nmin, nmax, nmean)
	fmt.Printf("  Pixels:          %d\n", img.PixelCount())

	keys := img.Meta.SortedKeys()
	shown := len(keys)
	if !verbose && shown > 10 {
		shown = 10
	}
	fmt.Printf("Metadata (%d of %d):\n", shown, len(keys))
	for _, key := range keys[:shown] {
		v, _ := img.Meta.Get(key)
		fmt.Printf("  %-8s = %s\n", key, v)
	}
}

func runPreview(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: astrofits preview <in.fits> <out.tiff>")
	}
	img, err := af.ReadImageFile(args[0])
	if err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("creating %s: %w", args[1], err)
	}
	defer out.Close()
	if err := img.WriteTIFF(out); err != nil {
		return fmt.Errorf("encoding %s: %w", args[1], err)
	}
	fmt.Printf("Wrote %s (%d x %d)\n", args[1], img.Width, img.Height)
	return nil
}
