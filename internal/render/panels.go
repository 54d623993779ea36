// Package render formats analysis results for terminals and draws landmark
// overlays on frames.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/kozaktomas/beauty-advisor/internal/advice"
	"github.com/kozaktomas/beauty-advisor/internal/classify"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const bullet = "• "

var title = cases.Title(language.English)

// Section is one titled block of advice.
type Section struct {
	Title  string
	Header string
	Items  []string
}

// Sections lays out a bundle in display order.
func Sections(b advice.Bundle) []Section {
	return []Section{
		{Title: "Contouring Guide", Items: b.Contouring},
		{Title: "Suggested Highlights", Items: b.Highlights},
		{Title: "Recommended Haircuts", Items: b.Haircuts},
		{Title: "Makeup", Header: "Makeup that will complement you:", Items: b.Makeup},
		{Title: "Eyewear Frames", Items: b.Eyewear},
		{Title: "Earrings", Items: b.Earrings},
		{Title: "Jewellery", Header: "Best metal tones for you:", Items: b.Metals},
	}
}

// Bullets renders items one per line, each prefixed with a bullet.
func Bullets(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(bullet)
		sb.WriteString(item)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteFeatures prints the "Your Features" panel.
func WriteFeatures(w io.Writer, r classify.Result) error {
	rows := [][2]string{
		{"Skin Undertone", r.Undertone.Description()},
		{"Face Shape", r.FaceShape.Description()},
		{"Nose Shape", r.NoseShape.Description()},
		{"Eyebrows", r.Brow.Description()},
		{"Lips", r.Lip.Description()},
	}

	if _, err := fmt.Fprintln(w, "Your Features"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "  %-16s %s\n", row[0]+":", title.String(row[1])); err != nil {
			return err
		}
	}
	return nil
}

// WriteAdvice prints every non-empty advice section.
func WriteAdvice(w io.Writer, b advice.Bundle) error {
	for _, s := range Sections(b) {
		if len(s.Items) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", s.Title, strings.Repeat("-", len(s.Title))); err != nil {
			return err
		}
		if s.Header != "" {
			if _, err := fmt.Fprintf(w, "%s\n\n", s.Header); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, Bullets(s.Items)); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport prints the features panel followed by the advice.
func WriteReport(w io.Writer, r classify.Result, b advice.Bundle) error {
	if err := WriteFeatures(w, r); err != nil {
		return err
	}
	return WriteAdvice(w, b)
}
