package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/asciimg/img2ascii"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "",
		"Path to save the output (if not specified, prints to stdout)")
	fontPath := flag.String("font", "",
		"Path to the TTF font used to compute character brightness (required)")
	charsetSpec := flag.String("charset", "digits",
		"Character set: preset name ("+
			strings.Join(img2ascii.CharsetPresets(), ", ")+
			") or a literal string of characters")
	targetWidth := flag.Int("width", 80,
		"Target width of the output in characters")
	scaleFactor := flag.Float64("scale", 2.0,
		"Aspect ratio correction for terminal character cells")
	invert := flag.Bool("invert", false,
		"Invert brightness (for dark terminal backgrounds)")
	sharpen := flag.Bool("sharpen", false,
		"Apply a sharpening pass after resizing")
	htmlOut := flag.Bool("html", false,
		"Emit a standalone HTML page instead of plain text")
	pngOut := flag.Bool("png", false,
		"Render the result back to a PNG through the font glyphs")
	pngScale := flag.Int("pngscale", 1,
		"Glyph scaling factor for PNG output (1 = 16x16 cells)")
	stats := flag.Bool("stats", false,
		"Print lookup cache statistics to stderr")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *fontPath == "" {
		fmt.Println("Please provide a TTF font using the -font flag")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *pngOut && *outputFile == "" {
		fmt.Println("PNG output requires -output")
		os.Exit(1)
	}

	charset := img2ascii.ResolveCharset(*charsetSpec)

	renderer, err := img2ascii.NewRenderer(charset, nil,
		img2ascii.WithFont(*fontPath),
		img2ascii.WithTargetWidth(*targetWidth),
		img2ascii.WithScaleFactor(*scaleFactor),
		img2ascii.WithInvert(*invert),
		img2ascii.WithSharpen(*sharpen),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	img, err := img2ascii.ReadImageFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	chars := renderer.RenderImage(img)

	switch {
	case *pngOut:
		err = img2ascii.SaveCharsToPNG(chars, renderer.Glyphs(), *outputFile, *pngScale)
	case *htmlOut:
		err = writeOutput(*outputFile, img2ascii.CharsToHTML(chars, *inputFile))
	default:
		err = writeOutput(*outputFile, img2ascii.CharsToString(chars))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *stats {
		hits, misses, hitRate := renderer.CacheStats()
		fmt.Fprintf(os.Stderr, "Lookup cache: %d hits, %d misses (%.1f%% hit rate)\n",
			hits, misses, hitRate*100)
	}
}

// writeOutput writes text to the given file, or to stdout when the path
// is empty.
func writeOutput(path, text string) error {
	if path == "" {
		fmt.Print(text)
		return nil
	}
	return os.WriteFile(path, []byte(text), 0644)
}
