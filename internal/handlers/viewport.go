package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"folio.dev/internal/view"
)

// Viewport width client hints, current and legacy names
const (
	hintViewportWidth       = "Sec-CH-Viewport-Width"
	legacyHintViewportWidth = "Viewport-Width"
)

// askViewportWidth opts the listing into the viewport width client hint
func askViewportWidth(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", hintViewportWidth+", "+legacyHintViewportWidth)
	w.Header().Add("Vary", hintViewportWidth)
}

// requestState reads the view state from the query. Without an explicit
// width the client hint, when sent, sizes the carousel
func requestState(r *http.Request) view.State {
	s := view.FromValues(r.URL.Query())
	if s.Width == 0 {
		s.Width = hintedWidth(r.Header)
	}
	return s
}

func hintedWidth(h http.Header) int {
	for _, name := range []string{hintViewportWidth, legacyHintViewportWidth} {
		v := strings.TrimSpace(h.Get(name))
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || math.IsInf(f, 0) {
			continue
		}
		return int(math.Round(f))
	}
	return 0
}
