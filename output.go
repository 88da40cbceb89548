package img2ascii

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// CharsToString joins a character grid into newline-separated text.
func CharsToString(chars [][]rune) string {
	var out strings.Builder
	for _, row := range chars {
		out.WriteString(string(row))
		out.WriteByte('\n')
	}
	return out.String()
}

// WriteChars writes a character grid to w as newline-separated text.
func WriteChars(w io.Writer, chars [][]rune) error {
	for _, row := range chars {
		if _, err := fmt.Fprintln(w, string(row)); err != nil {
			return err
		}
	}
	return nil
}

// CharsToHTML renders a character grid as a standalone HTML page using a
// monospace font. Line height is collapsed to keep the character cell
// aspect close to a terminal's.
func CharsToHTML(chars [][]rune, title string) string {
	var out strings.Builder
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	out.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(title)))
	out.WriteString("</head>\n<body style=\"background:white;\">\n")
	out.WriteString("<pre style=\"font-family:'Courier New',monospace;" +
		"font-size:8px;line-height:0.8;letter-spacing:1px;\">\n")
	for _, row := range chars {
		out.WriteString(html.EscapeString(string(row)))
		out.WriteByte('\n')
	}
	out.WriteString("</pre>\n</body>\n</html>\n")
	return out.String()
}
