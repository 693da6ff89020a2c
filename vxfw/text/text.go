package text

import (
	"strings"

	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/geometry"
	"git.sr.ht/~rockorager/vxpage/vxfw"
)

// Text is a widget drawing a single paragraph of wrapped text
type Text struct {
	// The content of the Text widget
	Content string

	// The style to lay out and draw the text with
	Style Style

	Align Alignment
}

func New(content string) *Text {
	return &Text{
		Content: content,
		Style:   NewStyle(vxpage.Style{}),
	}
}

// Noop for text
func (t *Text) HandleEvent(ev vxpage.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	return nil, nil
}

func (t *Text) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	width := ctx.Max.Width
	if ctx.Max.HasUnboundedWidth() {
		width = uint16(longestLine(t.Content))
	}
	l := Layout{
		Bounds: geometry.FromSize(int(width), int(ctx.Max.Height)),
		Style:  t.Style,
		Align:  t.Align,
	}
	fit := l.Fit(t.Content)
	height := uint16(fit.Height)
	if height < ctx.Min.Height {
		height = ctx.Min.Height
	}

	s := vxfw.NewSurface(width, height, t)
	l.Bounds = l.Bounds.WithHeight(int(height))
	l.Render(s.Window(), t.Content)
	return s, nil
}

func longestLine(s string) int {
	var w int
	for _, line := range strings.Split(s, "\n") {
		lw := 0
		for _, char := range vxpage.Characters(line) {
			lw += char.Width
		}
		if lw > w {
			w = lw
		}
	}
	return w
}
