// glyphstats prints the brightness table for a character set rendered
// in a given font: per character, the on-pixel count of its 16x16 glyph,
// its raw pixel density, and its normalized brightness within the set.
// Useful for judging how evenly a charset covers the brightness range
// before using it for conversion.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/asciimg/img2ascii"
)

func main() {
	fontPath := flag.String("font", "",
		"Path to the TTF font to analyze (required)")
	charsetSpec := flag.String("charset", "ramp",
		"Character set: preset name ("+
			strings.Join(img2ascii.CharsetPresets(), ", ")+
			") or a literal string of characters")
	flag.Parse()

	if *fontPath == "" {
		log.Fatal("Please provide a TTF font using the -font flag")
	}

	charset := img2ascii.ResolveCharset(*charsetSpec)
	fb, err := img2ascii.LoadFontBitmaps(*fontPath, "", charset)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	matcher, err := img2ascii.NewCharMatcher(charset, fb)
	if err != nil {
		log.Fatalf("Failed to build matcher: %v", err)
	}

	fmt.Printf("Font: %s\n", fb.Name())
	fmt.Printf("Characters: %d, brightness range [%.4f, %.4f]\n\n",
		matcher.Len(), matcher.MinBrightness(), matcher.MaxBrightness())
	fmt.Printf("%-6s %-10s %-10s %s\n", "char", "on-pixels", "raw", "normalized")

	span := matcher.MaxBrightness() - matcher.MinBrightness()
	for _, c := range matcher.Chars() {
		raw, _ := matcher.Brightness(c)
		normalized := 0.5
		if span > 0 {
			normalized = (raw - matcher.MinBrightness()) / span
		}
		fmt.Printf("%-6q %-10d %-10.4f %.4f\n",
			c, fb.Glyph(c).OnPixels(), raw, normalized)
	}
}
