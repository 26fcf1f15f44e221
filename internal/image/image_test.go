package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/youruser/deckcode/internal/cards"
	"github.com/youruser/deckcode/internal/deck"
)

func TestGenerateQRPNG(t *testing.T) {
	b, err := GenerateQRPNG("Z01ZZZ02", 256)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 256 {
		t.Errorf("width = %d, want 256", img.Bounds().Dx())
	}
	if _, err := GenerateQRPNG("", 256); err == nil {
		t.Error("empty text should fail")
	}
}

func sameColor(a color.Color, b color.NRGBA) bool {
	n := color.NRGBAModel.Convert(a).(color.NRGBA)
	return n == b
}

func TestComposeDeckImage(t *testing.T) {
	entries := []deck.Entry{
		{Card: cards.Card{ID: 0, Type: cards.TypeUnit}, Count: 2},
		{Card: cards.Card{ID: 1, Type: cards.TypeField}, Count: 3},
	}
	art := map[int]image.Image{
		1: imaging.New(TileW, TileH, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}),
	}
	out := ComposeDeckImage(entries, art, nil)

	w, h := SheetSize(len(entries))
	if out.Bounds().Dx() != w || out.Bounds().Dy() != h {
		t.Fatalf("size = %v, want %dx%d", out.Bounds(), w, h)
	}

	p0 := TileOrigin(0)
	if !sameColor(out.At(p0.X+10, p0.Y+10), TypeColor(cards.TypeUnit)) {
		t.Errorf("tile 0 should be unit placeholder, got %v", out.At(p0.X+10, p0.Y+10))
	}
	p1 := TileOrigin(1)
	if !sameColor(out.At(p1.X+TileW/2, p1.Y+TileH/2), color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}) {
		t.Errorf("tile 1 should show art, got %v", out.At(p1.X+TileW/2, p1.Y+TileH/2))
	}

	// two pips under tile 0, none in the third slot
	pipY := p0.Y + TileH + Gap + 2
	if !sameColor(out.At(p0.X+2, pipY), pipColor) || !sameColor(out.At(p0.X+pipSize+Gap+2, pipY), pipColor) {
		t.Error("missing pips under tile 0")
	}
	if !sameColor(out.At(p0.X+2*(pipSize+Gap)+2, pipY), background) {
		t.Error("unexpected third pip under tile 0")
	}
}

func TestSheetSizeRows(t *testing.T) {
	_, h1 := SheetSize(0)
	_, h2 := SheetSize(Columns)
	_, h3 := SheetSize(Columns + 1)
	if h1 != h2 {
		t.Errorf("empty and one full row should match: %d != %d", h1, h2)
	}
	if h3 != h2+rowPitch {
		t.Errorf("second row not added: %d", h3)
	}
}

func TestLoadArt(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.New(4, 4, color.NRGBA{A: 0xff})); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ok.png" {
			http.NotFound(w, r)
			return
		}
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	art := LoadArt([]deck.Entry{
		{Card: cards.Card{ID: 0, ImageURL: srv.URL + "/ok.png"}, Count: 1},
		{Card: cards.Card{ID: 1, ImageURL: srv.URL + "/gone.png"}, Count: 1},
		{Card: cards.Card{ID: 2}, Count: 1},
	})
	if len(art) != 1 || art[0] == nil {
		t.Errorf("expected only card 0 art, got %v", art)
	}
}
