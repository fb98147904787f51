package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/typefont"
	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/typefont/core/locate/packs"
	"github.com/npillmayer/typefont/core/percent"
	"github.com/npillmayer/typefont/engine/compare"
	"github.com/npillmayer/typefont/engine/identify"
	"github.com/npillmayer/typefont/engine/recognize/tesseract"
	"github.com/pterm/pterm"
)

// tracer traces with key 'typefont'
func tracer() tracing.Trace {
	return tracing.Select("typefont")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	corpus := flag.String("corpus", "", "Corpus of known fonts (directory or URL)")
	image := flag.String("image", "", "Image to identify right away")
	langs := flag.String("langs", "", "Recognition languages, e.g. eng+deu")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.typefont":  *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	pterm.Info.Println("Welcome to the font identification CLI")
	//
	// set up REPL
	repl, err := readline.New("font > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, opts: typefont.DefaultOptions()}
	if *langs != "" {
		intp.langs = strings.Split(*langs, "+")
	}
	//
	// point the interpreter at a corpus, possibly identify right away
	if *corpus != "" {
		intp.setCorpus(*corpus)
	}
	if *image != "" {
		intp.identify(*image)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	opts    typefont.Options
	fetcher packs.Fetcher
	corpus  string
	langs   []string
	ranking identify.Ranking
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(op)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single interpreter command with an optional argument, taken
// from input like "identify:glyphs.png".
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	CORPUS
	FONTS
	IDENTIFY
	BEST
	SCORES
	CHART
	LANGS
)

func (intp *Intp) parseCommand(line string) (*Op, error) {
	c := strings.SplitN(line, ":", 2) // e.g. "identify:glyphs.png" or "help:corpus"
	op := &Op{}
	if len(c) > 1 {
		op.arg = strings.TrimSpace(c[1])
	}
	switch strings.ToLower(strings.TrimSpace(c[0])) {
	case "quit":
		op.code = QUIT
	case "corpus":
		op.code = CORPUS
	case "fonts", "index":
		op.code = FONTS
	case "identify", "id":
		op.code = IDENTIFY
	case "best":
		op.code = BEST
	case "scores", "score":
		op.code = SCORES
	case "chart":
		op.code = CHART
	case "langs", "languages":
		op.code = LANGS
	default:
		op.code = HELP
	}
	return op, nil
}

func (intp *Intp) execute(op *Op) (error, bool) {
	tracer().Debugf("cmd = %v", op)
	switch op.code {
	case QUIT:
		return nil, true
	case HELP:
		help(op.arg)
	case CORPUS:
		if op.arg == "" {
			pterm.Printfln("corpus is %s", intp.corpus)
		} else {
			intp.setCorpus(op.arg)
		}
	case FONTS:
		return intp.listFonts(), false
	case IDENTIFY:
		if op.arg == "" {
			pterm.Error.Println("which image? use identify:<path>")
		} else {
			intp.identify(op.arg)
		}
	case BEST:
		if best := intp.ranking.Best(); best == nil {
			pterm.Error.Println("no ranking yet, use identify:<path>")
		} else {
			pterm.Printfln("%s  %s", best.Name, percent.FromFloat(best.Similarity))
		}
	case SCORES:
		intp.showScores(op.arg)
	case CHART:
		return intp.writeChart(op.arg), false
	case LANGS:
		if op.arg == "" {
			pterm.Printfln("languages: %s", strings.Join(intp.langs, "+"))
		} else {
			intp.langs = strings.Split(op.arg, "+")
		}
	}
	return nil, false
}

// setCorpus points the interpreter at a corpus of known fonts. location
// is a local directory, an http(s) URL, or 's3://<bucket>'.
func (intp *Intp) setCorpus(location string) {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		intp.fetcher = packs.HTTPFetcher{Base: location, Cache: true}
	case strings.HasPrefix(location, "s3://"):
		intp.fetcher = &packs.S3Fetcher{
			Bucket: strings.TrimPrefix(location, "s3://"),
			Region: os.Getenv("AWS_REGION"),
		}
	default:
		intp.fetcher = packs.DirFetcher{Root: location}
	}
	intp.corpus = location
	pterm.Info.Printfln("corpus at %s", location)
}

func (intp *Intp) layout() packs.Layout {
	return packs.Layout{
		Dir:   intp.opts.FontsDirectory,
		Index: intp.opts.FontsIndex,
		Data:  intp.opts.FontsData,
	}
}

// listFonts prints the names of the fonts the corpus index lists.
func (intp *Intp) listFonts() error {
	if intp.fetcher == nil {
		pterm.Error.Println("no corpus set, use corpus:<path>")
		return nil
	}
	repo := packs.NewRepository(intp.fetcher, intp.layout())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	index, err := repo.ResolveIndex().Index(ctx)
	if err != nil {
		return err
	}
	pterm.Printfln("corpus holds %d fonts", index.Len())
	for _, name := range index.Names() {
		pterm.Printfln("  %s", name)
	}
	return nil
}

// identify ranks the corpus fonts against the text in an image file and
// keeps the ranking for subsequent commands.
func (intp *Intp) identify(image string) {
	if intp.fetcher == nil {
		pterm.Error.Println("no corpus set, use corpus:<path>")
		return
	}
	opts := intp.opts
	opts.Progress = func(font string, scores compare.ScoreSet, fraction float64) {
		pterm.Printfln("%4s  %-24s %s", percent.FromFraction(fraction), font,
			percent.FromFloat(scores.Mean()))
	}
	engine := &tesseract.Engine{Languages: intp.langs}
	start := time.Now()
	ranking, err := typefont.Identify(context.Background(), image, engine, intp.fetcher, opts)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	intp.ranking = ranking
	pterm.Printfln("ranked %d fonts in %v", len(ranking), time.Since(start).Round(time.Millisecond))
	for i, fs := range ranking {
		pterm.Printfln("%2d. %-24s %4s", i+1, fs.Name, percent.FromFloat(fs.Similarity))
	}
}

// showScores prints the per-symbol scores of a font from the last
// ranking, of the top-ranked font if no name is given.
func (intp *Intp) showScores(font string) {
	if len(intp.ranking) == 0 {
		pterm.Error.Println("no ranking yet, use identify:<path>")
		return
	}
	for _, fs := range intp.ranking {
		if font != "" && !strings.EqualFold(fs.Name, font) {
			continue
		}
		pterm.Printfln("%s, overall %s", fs.Name, percent.FromFloat(fs.Similarity))
		labels := make([]string, 0, len(fs.Symbols))
		for label := range fs.Symbols {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			s := fs.Symbols[label]
			pterm.Printfln("  %-6q shape %4s  analytic %4s", label,
				percent.FromFloat(s.Shape), percent.FromFloat(s.Analytic))
		}
		return
	}
	pterm.Error.Printfln("no font %q in the ranking", font)
}

// writeChart renders the last ranking to a PNG bar chart.
func (intp *Intp) writeChart(path string) error {
	if len(intp.ranking) == 0 {
		pterm.Error.Println("no ranking yet, use identify:<path>")
		return nil
	}
	if path == "" {
		path = "ranking.png"
	}
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.ELOAD, "cannot create %s", path)
	}
	defer f.Close()
	if err := intp.ranking.WriteChart("Font similarity", f); err != nil {
		return err
	}
	pterm.Info.Printfln("chart written to %s", path)
	return nil
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	switch strings.ToLower(topic) {
	case "corpus":
		pterm.Info.Println("Corpus")
		pterm.Println(`
	A corpus is a repository of known fonts:
	+-------+------------------------+
	| index | fonts/index.json       |
	+-------+------------------------+
	| packs | fonts/<name>/data.json |
	+-------+------------------------+
	The index lists the font names. Each pack carries the metadata and the
	reference glyph images of one font.

	corpus:<dir>          read from a local directory
	corpus:https://<url>  read from a web server, cached on disk
	corpus:s3://<bucket>  read from an S3 bucket, region from $AWS_REGION
	`)
	case "identify":
		pterm.Info.Println("Identify")
		pterm.Println(`
	identify:<image> recognizes the text in an image (file path, http(s)
	URL or data URI), crops the recognized symbols, and compares them with
	the reference glyphs of every corpus font. The fonts are ranked by
	similarity, best match first. Fonts are matched concurrently; each
	finished font prints a progress line.

	Recognition requires a local Tesseract installation and a build with
	'-tags ocr'.
	`)
	case "scores", "metrics":
		pterm.Info.Println("Scores")
		pterm.Println(`
	Two metrics are computed per symbol, both in percent:
	+----------+---------------------------------------------------+
	| shape    | Hamming distance of downscaled black/white images |
	+----------+---------------------------------------------------+
	| analytic | share of pixels differing beyond a threshold      |
	+----------+---------------------------------------------------+
	A symbol's score is the mean of the two, a font's score the mean over
	its symbols.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	corpus:<location>   select the corpus of known fonts
	fonts               list the fonts of the corpus
	langs:<l1+l2>       set recognition languages, e.g. eng+deu
	identify:<image>    rank the corpus fonts against the text in an image
	best                show the top-ranked font
	scores[:<font>]     per-symbol scores, default the best font
	chart[:<file>]      render the ranking to a PNG bar chart
	help[:<topic>]      topics: corpus, identify, scores
	quit                leave (also <ctrl>D)
	`)
	}
}
