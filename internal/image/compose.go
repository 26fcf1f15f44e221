package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/youruser/deckcode/internal/cards"
	"github.com/youruser/deckcode/internal/deck"
)

const (
	Margin   = 48
	TileW    = 215
	TileH    = 300
	Gap      = 8
	Columns  = 8
	QRSize   = 400
	pipSize  = 24
	pipRow   = pipSize + Gap
	headerH  = QRSize + Margin
	rowPitch = TileH + pipRow + Gap
)

var (
	background = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	pipColor   = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// TypeColor is the placeholder fill for a card without art.
func TypeColor(t cards.CardType) color.NRGBA {
	switch t {
	case cards.TypeUnit:
		return color.NRGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}
	case cards.TypeSupport:
		return color.NRGBA{R: 0x29, G: 0x80, B: 0xb9, A: 0xff}
	case cards.TypeBuilding:
		return color.NRGBA{R: 0xd3, G: 0x84, B: 0x00, A: 0xff}
	case cards.TypeField:
		return color.NRGBA{R: 0x27, G: 0xae, B: 0x60, A: 0xff}
	}
	return color.NRGBA{R: 0x7f, G: 0x8c, B: 0x8d, A: 0xff}
}

// SheetSize returns the canvas size for a deck of n distinct cards.
func SheetSize(n int) (int, int) {
	rows := (n + Columns - 1) / Columns
	if rows == 0 {
		rows = 1
	}
	w := 2*Margin + Columns*TileW + (Columns-1)*Gap
	h := 2*Margin + headerH + rows*rowPitch
	return w, h
}

// TileOrigin is the top-left corner of the i-th tile.
func TileOrigin(i int) image.Point {
	x := Margin + (i%Columns)*(TileW+Gap)
	y := Margin + headerH + (i/Columns)*rowPitch
	return image.Pt(x, y)
}

// ComposeDeckImage draws one tile per entry in display order with a pip per
// copy under it, and the QR of the deck code in the top-right corner.
func ComposeDeckImage(entries []deck.Entry, art map[int]image.Image, qr image.Image) image.Image {
	w, h := SheetSize(len(entries))
	canvas := imaging.New(w, h, background)

	if qr != nil {
		q := imaging.Resize(qr, QRSize, QRSize, imaging.Lanczos)
		canvas = imaging.Paste(canvas, q, image.Pt(w-Margin-QRSize, Margin))
	}

	pip := imaging.New(pipSize, pipSize, pipColor)
	for i, e := range entries {
		at := TileOrigin(i)
		var tile image.Image
		if img, ok := art[e.Card.ID]; ok && img != nil {
			tile = imaging.Fill(img, TileW, TileH, imaging.Center, imaging.Lanczos)
		} else {
			tile = imaging.New(TileW, TileH, TypeColor(e.Card.Type))
		}
		canvas = imaging.Paste(canvas, tile, at)
		for p := 0; p < e.Count; p++ {
			canvas = imaging.Paste(canvas, pip, image.Pt(at.X+p*(pipSize+Gap), at.Y+TileH+Gap))
		}
	}
	return canvas
}
