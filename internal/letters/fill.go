package letters

import (
	"strings"

	"github.com/prezlab/letter-generator/internal/docx"
)

// footerFontSize is the forced footer size in half-points (8pt). Footers
// carry legal boilerplate that must stay small regardless of how a
// template was authored.
const footerFontSize = 16

// Fill substitutes every placeholder across all text-bearing zones of the
// document, forces the footer font size, removes paragraphs left blank by
// empty substitutions, and serializes the result. The document is mutated
// in place; no partial output is ever produced.
func Fill(doc *docx.Document, placeholders []Pair) ([]byte, error) {
	fillContainer(doc.Body(), placeholders)
	for _, header := range doc.Headers() {
		fillContainer(header, placeholders)
	}
	for _, footer := range doc.Footers() {
		fillContainer(footer, placeholders)
		forEachRun(footer, func(r docx.Run) {
			r.SetFontSize(footerFontSize)
		})
	}
	removeBlankParagraphs(doc.Body())
	return doc.Save()
}

// fillContainer substitutes in the container's paragraphs and recurses into
// its tables. Cells are containers themselves, so nested tables at any
// depth are covered.
func fillContainer(c docx.Container, placeholders []Pair) {
	for _, p := range c.Paragraphs() {
		substituteParagraph(p, placeholders)
	}
	for _, t := range c.Tables() {
		for _, cell := range t.Cells() {
			fillContainer(cell, placeholders)
		}
	}
}

// substituteParagraph applies the two-tier strategy per token: run-local
// replacement keeps every run's formatting; when a token's text is split
// across run boundaries, the paragraph-level fallback collapses the
// paragraph into its first run. Lossy, but the token always resolves.
func substituteParagraph(p docx.Paragraph, placeholders []Pair) {
	for _, pair := range placeholders {
		runs := p.Runs()
		texts := make([]string, len(runs))
		for i, r := range runs {
			texts[i] = r.Text()
		}

		if out, ok := ReplaceInRuns(texts, pair.Token, pair.Value); ok {
			writeBack(runs, texts, out)
			continue
		}
		if out, ok := ReplaceAcrossRuns(texts, pair.Token, pair.Value); ok {
			writeBack(runs, texts, out)
		}
	}
}

func writeBack(runs []docx.Run, before, after []string) {
	for i := range runs {
		if before[i] != after[i] {
			runs[i].SetText(after[i])
		}
	}
}

// ReplaceInRuns is the precise substitution strategy over a paragraph's run
// texts: only runs that contain the whole token are touched. Returns the
// updated texts and whether any run matched.
func ReplaceInRuns(texts []string, token, value string) ([]string, bool) {
	replaced := false
	out := make([]string, len(texts))
	for i, text := range texts {
		if strings.Contains(text, token) {
			out[i] = strings.ReplaceAll(text, token, value)
			replaced = true
		} else {
			out[i] = text
		}
	}
	return out, replaced
}

// ReplaceAcrossRuns is the lossy fallback strategy: when the token spans
// run boundaries, the concatenated paragraph text is substituted and
// written into the first run, clearing the rest. Returns whether the token
// was found in the concatenation.
func ReplaceAcrossRuns(texts []string, token, value string) ([]string, bool) {
	full := strings.Join(texts, "")
	if !strings.Contains(full, token) {
		return texts, false
	}
	out := make([]string, len(texts))
	if len(out) > 0 {
		out[0] = strings.ReplaceAll(full, token, value)
	}
	return out, true
}

func forEachRun(c docx.Container, fn func(docx.Run)) {
	for _, p := range c.Paragraphs() {
		for _, r := range p.Runs() {
			fn(r)
		}
	}
	for _, t := range c.Tables() {
		for _, cell := range t.Cells() {
			forEachRun(cell, fn)
		}
	}
}

// removeBlankParagraphs drops body paragraphs whose final text is
// whitespace-only. Templates author optional placeholder-only lines; an
// empty substitution must not leave a blank line behind.
func removeBlankParagraphs(body docx.Container) {
	for _, p := range body.Paragraphs() {
		if strings.TrimSpace(p.Text()) == "" {
			body.RemoveParagraph(p)
		}
	}
}
