package imagepkg

import (
	"bytes"
	"image"
	"log"

	"github.com/disintegration/imaging"
	"github.com/youruser/deckcode/internal/deck"
	"github.com/youruser/deckcode/internal/util"
)

// DownloadImage downloads an image from URL and returns it decoded.
func DownloadImage(url string) (image.Image, error) {
	body, err := util.GetBytes(url)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body))
}

// LoadArt fetches card art for the entries that have an image URL. Failures
// are logged and skipped; ComposeDeckImage draws a placeholder instead.
func LoadArt(entries []deck.Entry) map[int]image.Image {
	art := map[int]image.Image{}
	for _, e := range entries {
		if e.Card.ImageURL == "" {
			continue
		}
		img, err := DownloadImage(e.Card.ImageURL)
		if err != nil {
			log.Printf("card %d art download error: %v", e.Card.ID, err)
			continue
		}
		art[e.Card.ID] = img
	}
	return art
}
