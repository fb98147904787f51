package recognize

import (
	"image"
	"io"
	"regexp"
	"strconv"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/net/html"
)

// hOCR documents are plain HTML; recognition elements are spans marked
// with well-known classes.
var (
	wordSelector = cascadia.MustCompile("span.ocrx_word")
	charSelector = cascadia.MustCompile("span.ocrx_cinfo")
)

var (
	bboxPattern = regexp.MustCompile(`bbox ([0-9]+) ([0-9]+) ([0-9]+) ([0-9]+)`)
	cboxPattern = regexp.MustCompile(`x_bboxes ([0-9]+) ([0-9]+) ([0-9]+) ([0-9]+)`)
	confPattern = regexp.MustCompile(`x_w?conf ([0-9.]+)`)
)

// ParseHOCR reads an hOCR document and collects the recognized symbols.
//
// Symbols are taken from 'ocrx_cinfo' spans where the engine emitted
// per-character boxes. A word without such spans is split into grapheme
// clusters instead, with the word box subdivided evenly among them and the
// word confidence applied to each.
func ParseHOCR(r io.Reader) (*Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, core.ParseError(err, "hOCR document")
	}
	grapheme.SetupGraphemeClasses()
	result := &Result{}
	for _, word := range wordSelector.MatchAll(doc) {
		if chars := charSelector.MatchAll(word); len(chars) > 0 {
			for _, char := range chars {
				cbox, ok := boxOf(char)
				if !ok {
					tracer().Infof("hOCR symbol %q without a box, skipping it", text(char))
					continue
				}
				result.Symbols = append(result.Symbols, Symbol{
					Text:       text(char),
					Confidence: confOf(char),
					Box:        cbox,
				})
			}
			continue
		}
		wbox, ok := boxOf(word)
		if !ok {
			tracer().Infof("hOCR word %q without a box, skipping it", text(word))
			continue
		}
		wconf := confOf(word)
		gstr := grapheme.StringFromString(text(word))
		n := gstr.Len()
		for i := 0; i < n; i++ {
			result.Symbols = append(result.Symbols, Symbol{
				Text:       gstr.Nth(i),
				Confidence: wconf,
				Box: image.Rect(
					wbox.Min.X+i*wbox.Dx()/n,
					wbox.Min.Y,
					wbox.Min.X+(i+1)*wbox.Dx()/n,
					wbox.Max.Y,
				),
			})
		}
	}
	tracer().Debugf("hOCR document yields %d symbols", len(result.Symbols))
	return result, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// boxOf extracts the bounding box from a node's title attribute. Word and
// line boxes are flagged 'bbox', per-character boxes 'x_bboxes'.
func boxOf(n *html.Node) (image.Rectangle, bool) {
	title := attr(n, "title")
	m := bboxPattern.FindStringSubmatch(title)
	if m == nil {
		m = cboxPattern.FindStringSubmatch(title)
	}
	if m == nil {
		return image.Rectangle{}, false
	}
	x0, _ := strconv.Atoi(m[1])
	y0, _ := strconv.Atoi(m[2])
	x1, _ := strconv.Atoi(m[3])
	y1, _ := strconv.Atoi(m[4])
	return image.Rect(x0, y0, x1, y1), true
}

// confOf extracts the confidence from a node's title attribute, matching
// both the word level 'x_wconf' and the character level 'x_conf'.
func confOf(n *html.Node) float64 {
	m := confPattern.FindStringSubmatch(attr(n, "title"))
	if m == nil {
		return 0
	}
	c, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return c
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var s string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s += text(c)
	}
	return s
}
