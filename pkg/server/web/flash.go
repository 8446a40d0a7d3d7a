package web

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookie = "beerhall_flash"

type flashKind string

const (
	flashMessage flashKind = "message"
	flashError   flashKind = "error"
)

// flash is a message shown once on the page a write redirects to.
type flash struct {
	Kind flashKind
	Text string
}

func (f *flash) IsError() bool {
	return f.Kind == flashError
}

func setFlash(w http.ResponseWriter, kind flashKind, text string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    string(kind) + "." + base64.RawURLEncoding.EncodeToString([]byte(text)),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads the pending flash, if any, and expires the cookie.
func popFlash(w http.ResponseWriter, r *http.Request) *flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteLaxMode})

	kind, encoded, found := strings.Cut(cookie.Value, ".")
	if !found || (flashKind(kind) != flashMessage && flashKind(kind) != flashError) {
		return nil
	}

	text, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	return &flash{Kind: flashKind(kind), Text: string(text)}
}
