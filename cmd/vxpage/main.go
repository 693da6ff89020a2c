// vxpage lays out a markup document in pages of a fixed size and prints them
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
	"golang.org/x/image/draw"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/vxpage"
	"git.sr.ht/~rockorager/vxpage/geometry"
	"git.sr.ht/~rockorager/vxpage/log"
	"git.sr.ht/~rockorager/vxpage/markup"
	"git.sr.ht/~rockorager/vxpage/raster"
	"git.sr.ht/~rockorager/vxpage/vxfw"
	"git.sr.ht/~rockorager/vxpage/vxfw/paragraphs"
	"git.sr.ht/~rockorager/vxpage/vxfw/scrollbar"
	"git.sr.ht/~rockorager/vxpage/widgets/border"
)

const (
	defaultWidth  = 40
	defaultHeight = 10
)

var errUsage = errors.New("usage")

func main() {
	log.SetLogger(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		AddSource:  true,
		Level:      log.LevelTrace,
		TimeFormat: "15:04:05.000",
	})))
	log.SetLevel(log.LevelWarn)

	err := run(os.Args[1:], os.Stdin, os.Stdout)
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "vxpage: %v\n", err)
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "vxpage: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	in     string
	out    string
	format string
	page   int
	cfg    Config
}

func parseFlags(args []string, stdout io.Writer) (options, error) {
	var (
		opts       options
		configPath string
		width      int
		height     int
		checklist  int
		verbose    bool
		logFile    string
	)
	fs := flag.NewFlagSet("vxpage", flag.ContinueOnError)
	fs.StringVar(&opts.in, "in", "", "markup file to read, defaults to stdin")
	fs.StringVar(&opts.out, "out", "", "file to write, defaults to stdout")
	fs.StringVar(&opts.format, "format", "text", "output format: text, ansi, png, sixel or trace")
	fs.IntVar(&opts.page, "page", -1, "page to print, -1 prints all pages")
	fs.StringVar(&configPath, "config", "", "TOML configuration file")
	fs.IntVar(&width, "width", 0, "page width in cells")
	fs.IntVar(&height, "height", 0, "page height in cells")
	fs.IntVar(&checklist, "checklist", -1, "draw paragraphs as a checklist with this current task")
	fs.BoolVar(&verbose, "v", false, "log debug output")
	fs.StringVar(&logFile, "log", "", "write logs to this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return opts, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	if opts.page < -1 {
		return opts, fmt.Errorf("%w: -page must be -1 or a page index, got %d", errUsage, opts.page)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return opts, err
	}
	// Flags override the configuration
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = width
		case "height":
			cfg.Height = height
		case "checklist":
			cfg.Checklist.Current = checklist
		case "v":
			cfg.LogLevel = "debug"
		case "log":
			cfg.LogFile = logFile
		}
	})
	if cfg.Width <= 0 || cfg.Height <= 0 {
		w, h := terminalSize(stdout)
		if cfg.Width <= 0 {
			cfg.Width = w
		}
		if cfg.Height <= 0 {
			cfg.Height = h
		}
	}
	opts.cfg = cfg
	return opts, nil
}

// terminalSize returns the size of w when it is a terminal
func terminalSize(w io.Writer) (int, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth, defaultHeight
	}
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil {
		log.Debug("terminal size: %v", err)
		return defaultWidth, defaultHeight
	}
	return cols, rows
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}
	cfg := opts.cfg

	lvl, ok := log.ParseLevel(cfg.LogLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	log.SetLevel(lvl)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		log.SetOutput(f)
		defer func() {
			log.SetLogger(nil)
			f.Close()
		}()
	}
	method, ok := vxpage.ParseWidthMethod(cfg.WidthMethod)
	if !ok {
		return fmt.Errorf("unknown width method %q", cfg.WidthMethod)
	}
	vxpage.SetWidthMethod(method)

	in := stdin
	if opts.in != "" {
		f, err := os.Open(opts.in)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	doc, err := markup.Parse(in)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	pars, err := doc.Paragraphs()
	if err != nil {
		return err
	}

	book, err := newBook(pars, cfg)
	if err != nil {
		return err
	}

	out := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	pages, err := book.pages(opts.page)
	if err != nil {
		return err
	}
	log.Debug("printing %d of %d pages as %s", len(pages), book.total(), opts.format)
	return write(out, opts.format, book, pages, cfg)
}

// content is the widget laying out the pages
type content interface {
	vxfw.Widget
	vxfw.Paginate
	json.Marshaler
}

// book draws the pages of a document
type book struct {
	content content
	cfg     Config
	set     border.Set
	framed  bool
}

func newBook(pars paragraphs.Slice, cfg Config) (*book, error) {
	align, ok := geometry.ParseAlignment(cfg.Align)
	if !ok {
		return nil, fmt.Errorf("unknown alignment %q", cfg.Align)
	}
	p := paragraphs.New(pars).
		WithPlacement(geometry.NewVertical().WithAlign(align)).
		WithSpacing(cfg.Spacing).
		WithKeepTogetherLines(cfg.KeepTogether)

	b := &book{content: p, cfg: cfg}
	if cfg.Checklist.Current >= 0 {
		c := paragraphs.NewChecklist(p, cfg.Checklist.Current)
		c.DoneIcon = cfg.Checklist.DoneIcon
		c.CurrentIcon = cfg.Checklist.CurrentIcon
		c.DoneStyle = vxpage.Style{Attribute: vxpage.AttrDim}
		c.CurrentStyle = vxpage.Style{Attribute: vxpage.AttrBold}
		if cfg.Checklist.Numerals {
			c.NumeralStyle = &vxpage.Style{Attribute: vxpage.AttrBold}
		}
		b.content = c
	}
	if cfg.Border != "" {
		set, ok := border.ParseSet(cfg.Border)
		if !ok {
			return nil, fmt.Errorf("unknown border %q", cfg.Border)
		}
		b.set = set
		b.framed = true
	}

	// Lay out the document once to count the pages
	if _, err := b.draw(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *book) total() int {
	return b.content.Pager().Total
}

// pages returns the indexes of the pages to print
func (b *book) pages(page int) ([]int, error) {
	total := b.total()
	if page >= total {
		return nil, fmt.Errorf("page %d out of range of %d pages", page, total)
	}
	if page >= 0 {
		return []int{page}, nil
	}
	all := make([]int, 0, total)
	for i := 0; i < total; i += 1 {
		all = append(all, i)
	}
	return all, nil
}

// draw draws the current page into a new buffer
func (b *book) draw() (*vxpage.Buffer, error) {
	buf := vxpage.NewBuffer(b.cfg.Width, b.cfg.Height)
	win := buf.Window()
	if b.framed {
		win = border.All(win, b.set, vxpage.Style{})
	}
	cols, rows := win.Size()

	bar := b.cfg.Scrollbar && b.total() > 1
	contentCols := cols
	if bar {
		contentCols -= 1
	}
	if contentCols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("page of %dx%d cells is too small", b.cfg.Width, b.cfg.Height)
	}

	root := vxfw.NewSurface(uint16(cols), uint16(rows), nil)
	ctx := vxfw.DrawContext{
		Max:        vxfw.Size{Width: uint16(contentCols), Height: uint16(rows)},
		Characters: vxpage.Characters,
	}
	s, err := b.content.Draw(ctx)
	if err != nil {
		return nil, err
	}
	root.AddChild(0, 0, s)

	// The page count is known once the content is drawn
	if b.cfg.Scrollbar && b.total() > 1 {
		if !bar {
			// Make room for the scrollbar
			return b.draw()
		}
		s, err := scrollbar.FromPager(b.content.Pager()).Draw(ctx.WithMax(vxfw.Size{Width: 1, Height: uint16(rows)}))
		if err != nil {
			return nil, err
		}
		root.AddChild(contentCols, 0, s)
	}
	vxfw.DebugPrint(root)
	root.Render(win)
	return buf, nil
}

func (b *book) drawPage(page int) (*vxpage.Buffer, error) {
	b.content.ChangePage(page)
	return b.draw()
}

func write(w io.Writer, format string, b *book, pages []int, cfg Config) error {
	switch format {
	case "text", "ansi":
		for i, page := range pages {
			buf, err := b.drawPage(page)
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(w)
			}
			if len(pages) > 1 {
				fmt.Fprintf(w, "-- page %d/%d --\n", page+1, b.total())
			}
			if format == "ansi" {
				if err := buf.Encode(w); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintln(w, buf.String())
		}
		return nil
	case "trace":
		enc := json.NewEncoder(w)
		for _, page := range pages {
			b.content.ChangePage(page)
			if err := enc.Encode(b.content); err != nil {
				return err
			}
		}
		return nil
	case "png", "sixel":
		img, err := rasterize(b, pages, cfg.Scale)
		if err != nil {
			return err
		}
		if format == "png" {
			return raster.EncodePNG(w, img)
		}
		return raster.EncodeSixel(w, img)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// rasterize draws pages one below the other, separated by one row of cells
func rasterize(b *book, pages []int, scale int) (image.Image, error) {
	pageH := b.cfg.Height * raster.CellHeight
	gap := raster.CellHeight
	opts := raster.DefaultOptions()
	img := image.NewRGBA(image.Rect(
		0, 0,
		b.cfg.Width*raster.CellWidth,
		len(pages)*pageH+(len(pages)-1)*gap,
	))
	for i, page := range pages {
		buf, err := b.drawPage(page)
		if err != nil {
			return nil, err
		}
		top := i * (pageH + gap)
		dst := image.Rect(0, top, img.Rect.Dx(), top+pageH)
		draw.Draw(img, dst, raster.Render(buf, opts), image.Point{}, draw.Src)
	}
	if scale > 1 {
		return raster.Scale(img, scale), nil
	}
	return img, nil
}
