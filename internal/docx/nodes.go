package docx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Container is any element holding block content: the document body, a
// header or footer root, or a table cell. Cells may themselves contain
// tables, so traversal through Tables is recursive.
type Container struct {
	el *etree.Element
}

// Paragraphs returns the container's direct child paragraphs in order.
func (c Container) Paragraphs() []Paragraph {
	if c.el == nil {
		return nil
	}
	els := c.el.SelectElements("w:p")
	out := make([]Paragraph, 0, len(els))
	for _, el := range els {
		out = append(out, Paragraph{el: el})
	}
	return out
}

// Tables returns the container's direct child tables in order.
func (c Container) Tables() []Table {
	if c.el == nil {
		return nil
	}
	els := c.el.SelectElements("w:tbl")
	out := make([]Table, 0, len(els))
	for _, el := range els {
		out = append(out, Table{el: el})
	}
	return out
}

// RemoveParagraph detaches a direct child paragraph from the container.
func (c Container) RemoveParagraph(p Paragraph) {
	if c.el != nil && p.el != nil {
		c.el.RemoveChild(p.el)
	}
}

// Table is a w:tbl element.
type Table struct {
	el *etree.Element
}

// Cells returns every cell of the table, row by row. Each cell is a block
// container in its own right.
func (t Table) Cells() []Container {
	var out []Container
	for _, row := range t.el.SelectElements("w:tr") {
		for _, cell := range row.SelectElements("w:tc") {
			out = append(out, Container{el: cell})
		}
	}
	return out
}

// Paragraph is a w:p element: an ordered sequence of runs.
type Paragraph struct {
	el *etree.Element
}

// Runs returns the paragraph's direct child runs in order.
func (p Paragraph) Runs() []Run {
	els := p.el.SelectElements("w:r")
	out := make([]Run, 0, len(els))
	for _, el := range els {
		out = append(out, Run{el: el})
	}
	return out
}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.Text())
	}
	return sb.String()
}

// Run is a w:r element: a span of text sharing one formatting definition.
type Run struct {
	el *etree.Element
}

// Text returns the run's text content.
func (r Run) Text() string {
	var sb strings.Builder
	for _, t := range r.el.SelectElements("w:t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// SetText replaces the run's text content, leaving the run properties
// (w:rPr) untouched. A run with several w:t children collapses to one.
func (r Run) SetText(text string) {
	ts := r.el.SelectElements("w:t")
	if len(ts) == 0 {
		if text == "" {
			return
		}
		t := r.el.CreateElement("w:t")
		setTextElement(t, text)
		return
	}
	setTextElement(ts[0], text)
	for _, t := range ts[1:] {
		r.el.RemoveChild(t)
	}
}

// setTextElement writes text into a w:t, marking significant whitespace so
// Word does not strip leading or trailing spaces.
func setTextElement(t *etree.Element, text string) {
	t.SetText(text)
	if text != strings.TrimSpace(text) {
		t.CreateAttr("xml:space", "preserve")
	} else {
		t.RemoveAttr("xml:space")
	}
}

// SetFontSize forces the run's font size, in half-points (Word's native
// unit: 16 half-points is 8pt). Any existing size is overwritten.
func (r Run) SetFontSize(halfPoints int) {
	rPr := r.el.SelectElement("w:rPr")
	if rPr == nil {
		rPr = etree.NewElement("w:rPr")
		r.el.InsertChildAt(0, rPr)
	}
	setSizeValue(rPr, "w:sz", halfPoints)
	setSizeValue(rPr, "w:szCs", halfPoints)
}

func setSizeValue(rPr *etree.Element, tag string, halfPoints int) {
	el := rPr.SelectElement(tag)
	if el == nil {
		el = rPr.CreateElement(tag)
	}
	el.CreateAttr("w:val", strconv.Itoa(halfPoints))
}

// FontSize reports the run's explicit font size in half-points, or 0 when
// the run inherits its size from the style hierarchy.
func (r Run) FontSize() int {
	rPr := r.el.SelectElement("w:rPr")
	if rPr == nil {
		return 0
	}
	sz := rPr.SelectElement("w:sz")
	if sz == nil {
		return 0
	}
	n, err := strconv.Atoi(sz.SelectAttrValue("w:val", "0"))
	if err != nil {
		return 0
	}
	return n
}
