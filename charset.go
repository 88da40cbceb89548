package img2ascii

import "sort"

// DefaultCharset is the character set used when the caller does not
// supply one.
const DefaultCharset = "0123456789"

// charsetPresets are built-in character sets selectable by name.
// "ramp" is a classic 70-level density ramp ordered dark to light.
var charsetPresets = map[string]string{
	"digits": DefaultCharset,
	"ascii":  " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~",
	"ramp":   "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ",
	"blocks": " ░▒▓█",
}

// CharsetPresets returns the names of the built-in character sets in
// sorted order.
func CharsetPresets() []string {
	names := make([]string, 0, len(charsetPresets))
	for name := range charsetPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveCharset interprets spec as either a preset name or a literal
// string of characters, and returns the deduplicated rune set. Matching
// against a preset name takes precedence, so a literal charset that
// happens to spell a preset name should be padded with a space or
// reordered.
func ResolveCharset(spec string) []rune {
	if preset, ok := charsetPresets[spec]; ok {
		spec = preset
	}
	seen := make(map[rune]bool)
	chars := make([]rune, 0, len(spec))
	for _, r := range spec {
		if !seen[r] {
			seen[r] = true
			chars = append(chars, r)
		}
	}
	return chars
}
