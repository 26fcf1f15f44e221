package api

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/youruser/deckcode/internal/cards"
	"github.com/youruser/deckcode/internal/config"
	"github.com/youruser/deckcode/internal/deck"
	imagepkg "github.com/youruser/deckcode/internal/image"
	"github.com/youruser/deckcode/internal/store"
)

// Handler serves the catalog and the decks built from it.
type Handler struct {
	Catalog *cards.Catalog
	Decks   *store.Store
	QRSize  int
}

func NewHandler(catalog *cards.Catalog, qrSize int) *Handler {
	return &Handler{Catalog: catalog, Decks: store.New(catalog), QRSize: qrSize}
}

func writeError(c *gin.Context, err error) {
	var de *deck.DecodeError
	switch {
	case errors.As(err, &de):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    err.Error(),
			"reason":   de.Reason.Error(),
			"pos":      de.Pos,
			"fragment": de.Fragment,
		})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, deck.ErrUnknownCard):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listCards(c *gin.Context) {
	opt := cards.FilterOptions{
		Types:     c.QueryArray("type"),
		Groups:    c.QueryArray("group"),
		FreeWords: c.Query("q"),
	}
	out := cards.Filter(h.Catalog.Cards(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

func (h *Handler) filterHandler(c *gin.Context) {
	var opt cards.FilterOptions
	if err := c.BindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := cards.Filter(h.Catalog.Cards(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

func (h *Handler) createDeck(c *gin.Context) {
	c.JSON(http.StatusCreated, h.Decks.Create())
}

func (h *Handler) importDeck(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := h.Decks.Import(req.Code)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

func (h *Handler) getDeck(c *gin.Context) {
	snap, err := h.Decks.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func cardParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("card"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card id must be an integer"})
		return 0, false
	}
	return id, true
}

func (h *Handler) addCard(c *gin.Context) {
	cardID, ok := cardParam(c)
	if !ok {
		return
	}
	snap, err := h.Decks.Add(c.Param("id"), cardID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) removeCard(c *gin.Context) {
	cardID, ok := cardParam(c)
	if !ok {
		return
	}
	snap, err := h.Decks.Remove(c.Param("id"), cardID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) resetDeck(c *gin.Context) {
	snap, err := h.Decks.Reset(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) deleteDeck(c *gin.Context) {
	if err := h.Decks.Delete(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportDeck(c *gin.Context) {
	snap, err := h.Decks.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, deck.ExportText(c.Query("name"), snap.Entries))
}

// decodeCode is the stateless counterpart of importDeck. The code comes from
// the path or, so that the empty code is reachable, from ?code=.
func (h *Handler) decodeCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		code = c.Query("code")
	}
	entries, err := deck.Decode(code, h.Catalog)
	if err != nil {
		writeError(c, err)
		return
	}
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": total, "code": deck.Encode(entries)})
}

func (h *Handler) encodeCode(c *gin.Context) {
	var req []struct {
		ID    int `json:"id"`
		Count int `json:"count"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := make([]deck.Entry, 0, len(req))
	for _, r := range req {
		in = append(in, deck.Entry{Card: cards.Card{ID: r.ID}, Count: r.Count})
	}
	st, err := deck.FromEntries(h.Catalog, in)
	if err != nil {
		if errors.Is(err, deck.ErrUnknownCard) {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": st.Entries(), "total": st.TotalCount(), "code": st.Code()})
}

// qr endpoint returns a PNG of a QR for "text" query param
func (h *Handler) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := h.QRSize
	if sizeStr := c.Query("size"); sizeStr != "" {
		v, err := strconv.Atoi(sizeStr)
		if err != nil || v <= 0 || v > config.MaxQRSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("size must be between 1 and %d", config.MaxQRSize)})
			return
		}
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) deckQR(c *gin.Context) {
	snap, err := h.Decks.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if snap.Code == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "deck is empty"})
		return
	}
	b, err := imagepkg.GenerateQRPNG(snap.Code, h.QRSize)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// deck image: card tiles in display order plus the QR of the code
func (h *Handler) deckImage(c *gin.Context) {
	snap, err := h.Decks.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	art := imagepkg.LoadArt(snap.Entries)
	var qr image.Image
	if snap.Code != "" {
		q, err := imagepkg.GenerateQRImage(snap.Code, imagepkg.QRSize)
		if err != nil {
			log.Println("deck qr error:", err)
		} else {
			qr = q
		}
	}
	out := imagepkg.ComposeDeckImage(snap.Entries, art, qr)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
