package recognize

import (
	"image"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const sampleHOCR = `<!DOCTYPE html>
<html>
 <body>
  <div class='ocr_page' id='page_1' title='image "sample.png"; bbox 0 0 120 40; ppageno 0'>
   <div class='ocr_carea' id='block_1_1' title="bbox 8 6 112 34">
    <p class='ocr_par' id='par_1_1' lang='eng' title="bbox 8 6 112 34">
     <span class='ocr_line' id='line_1_1' title="bbox 8 6 112 34; baseline 0 0">
      <span class='ocrx_word' id='word_1_1' title='bbox 8 6 56 34; x_wconf 91'>
       <span class='ocrx_cinfo' title='x_bboxes 8 6 30 34; x_conf 96.5'>a</span>
       <span class='ocrx_cinfo' title='x_bboxes 32 6 56 34; x_conf 93.1'>b</span>
      </span>
      <span class='ocrx_word' id='word_1_2' title='bbox 60 6 112 34; x_wconf 88'>cd</span>
     </span>
    </p>
   </div>
  </div>
 </body>
</html>`

func TestParseHOCRCharacterBoxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.ocr")
	defer teardown()
	result, err := ParseHOCR(strings.NewReader(sampleHOCR))
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Symbols) != 4 {
		t.Fatalf("expected 4 symbols, got %d", len(result.Symbols))
	}
	a := result.Symbols[0]
	if a.Text != "a" || a.Confidence != 96.5 {
		t.Errorf("unexpected first symbol: %+v", a)
	}
	if a.Box != image.Rect(8, 6, 30, 34) {
		t.Errorf("unexpected box for symbol 'a': %v", a.Box)
	}
}

func TestParseHOCRWordFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.ocr")
	defer teardown()
	result, err := ParseHOCR(strings.NewReader(sampleHOCR))
	if err != nil {
		t.Fatal(err)
	}
	c, d := result.Symbols[2], result.Symbols[3]
	if c.Text != "c" || d.Text != "d" {
		t.Errorf("expected the word 'cd' to split into 'c' and 'd', got %q and %q", c.Text, d.Text)
	}
	if c.Confidence != 88 || d.Confidence != 88 {
		t.Error("expected split symbols to inherit the word confidence")
	}
	if c.Box != image.Rect(60, 6, 86, 34) {
		t.Errorf("unexpected box for symbol 'c': %v", c.Box)
	}
	if d.Box != image.Rect(86, 6, 112, 34) {
		t.Errorf("unexpected box for symbol 'd': %v", d.Box)
	}
}

func TestParseHOCREmptyDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.ocr")
	defer teardown()
	result, err := ParseHOCR(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Symbols) != 0 {
		t.Errorf("expected no symbols, got %d", len(result.Symbols))
	}
}
