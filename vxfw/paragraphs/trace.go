package paragraphs

import (
	"encoding/json"

	"git.sr.ht/~rockorager/vxpage/vxfw/text"
)

type paragraphsTrace struct {
	Component  string     `json:"component"`
	Paragraphs [][]string `json:"paragraphs"`
}

type checklistTrace struct {
	Component string          `json:"component"`
	Current   int             `json:"current"`
	Items     paragraphsTrace `json:"items"`
}

// TraceLines returns the laid out parts of each paragraph on the current
// page. Line breaks are "\n", hyphens "-" and ellipses "..."
func (p *Paragraphs[T]) TraceLines() [][]string {
	lines := make([][]string, 0, len(p.visible))
	for _, lp := range p.visible {
		l, content := lp.layout(p.source)
		tracer := &text.Tracer{}
		l.Trace(content, tracer)
		items := tracer.Items
		if items == nil {
			items = []string{}
		}
		lines = append(lines, items)
	}
	return lines
}

func (p *Paragraphs[T]) trace() paragraphsTrace {
	return paragraphsTrace{
		Component:  "Paragraphs",
		Paragraphs: p.TraceLines(),
	}
}

// MarshalJSON encodes the current page
func (p *Paragraphs[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.trace())
}

// MarshalJSON encodes the current page and task
func (c *Checklist[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(checklistTrace{
		Component: "Checklist",
		Current:   c.current,
		Items:     c.paragraphs.trace(),
	})
}
