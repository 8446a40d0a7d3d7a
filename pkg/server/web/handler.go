// Package web serves the brewer administration pages and the JSON catalog.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"droscher.com/BeerHall/configs"
	"droscher.com/BeerHall/pkg/repository"
	"droscher.com/BeerHall/pkg/server"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const (
	indexPath   = "/Brewer"
	catalogPath = "/api/brewers"
)

var pages = parsePages("index", "details", "edit", "delete")

func parsePages(names ...string) map[string]*template.Template {
	funcs := template.FuncMap{
		"money": func(amount decimal.Decimal) string { return amount.StringFixed(2) },
	}

	parsed := make(map[string]*template.Template, len(names))

	for _, name := range names {
		parsed[name] = template.Must(template.New("layout.gohtml").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name+".gohtml"))
	}

	return parsed
}

// SessionFactory starts a fresh unit of work for one request.
type SessionFactory func() repository.BrewerRepository

type page struct {
	Title   string
	Flash   *flash
	Content any
}

type editPage struct {
	Action string
	Form   *server.EditForm
}

type Handler struct {
	router    *mux.Router
	sessions  SessionFactory
	locations repository.LocationRepository
	logger    *zap.Logger
}

func NewHandler(sessions SessionFactory, locations repository.LocationRepository, logger *zap.Logger, conf configs.Server) *Handler {
	h := &Handler{router: mux.NewRouter(), sessions: sessions, locations: locations, logger: logger}

	h.router.Use(AccessLog(logger), newSubmitLimiter(conf.SubmitRate, conf.SubmitBurst, logger).Middleware)

	h.router.Handle("/", http.RedirectHandler(indexPath, http.StatusFound)).Methods(http.MethodGet)
	h.router.HandleFunc(indexPath, h.index).Methods(http.MethodGet)
	h.router.HandleFunc(indexPath+"/Index", h.index).Methods(http.MethodGet)
	h.router.HandleFunc(indexPath+"/Details/{id:[0-9]+}", h.details).Methods(http.MethodGet)
	h.router.HandleFunc(indexPath+"/Edit/{id:[0-9]+}", h.editForm).Methods(http.MethodGet)
	h.router.HandleFunc(indexPath+"/Edit/{id:[0-9]+}", h.edit).Methods(http.MethodPost)
	h.router.HandleFunc(indexPath+"/Create", h.createForm).Methods(http.MethodGet)
	h.router.HandleFunc(indexPath+"/Create", h.create).Methods(http.MethodPost)
	h.router.HandleFunc(indexPath+"/Delete/{id:[0-9]+}", h.deleteForm).Methods(http.MethodGet)
	h.router.HandleFunc(indexPath+"/Delete/{id:[0-9]+}", h.delete).Methods(http.MethodPost)
	h.router.HandleFunc(catalogPath, h.catalog).Methods(http.MethodGet)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) brewerServer() *server.BrewerServer {
	return server.NewBrewerServer(h.sessions(), h.locations, h.logger)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	list, err := h.brewerServer().Index(r.Context())
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.render(w, r, "index", page{Title: "Brewers", Flash: popFlash(w, r), Content: list})
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	brewerID, ok := h.brewerID(w, r)
	if !ok {
		return
	}

	brewer, err := h.brewerServer().Details(r.Context(), brewerID)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.render(w, r, "details", page{Title: brewer.Name, Content: brewer})
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request) {
	brewerID, ok := h.brewerID(w, r)
	if !ok {
		return
	}

	form, err := h.brewerServer().EditForm(r.Context(), brewerID)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	action := fmt.Sprintf("%s/Edit/%d", indexPath, brewerID)
	h.render(w, r, "edit", page{Title: "Edit " + form.View.Name, Content: editPage{Action: action, Form: form}})
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	brewerID, ok := h.brewerID(w, r)
	if !ok {
		return
	}

	view, err := decodeEditView(r)
	if err != nil {
		h.reject(w, r, fmt.Sprintf("Brewer %d was not saved", brewerID), err)

		return
	}

	h.finish(w, r, h.brewerServer().Edit(r.Context(), brewerID, view))
}

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.brewerServer().CreateForm(r.Context())
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.render(w, r, "edit", page{Title: "New brewer", Content: editPage{Action: indexPath + "/Create", Form: form}})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	view, err := decodeEditView(r)
	if err != nil {
		h.reject(w, r, "The new brewer was not created", err)

		return
	}

	h.finish(w, r, h.brewerServer().Create(r.Context(), view))
}

func (h *Handler) deleteForm(w http.ResponseWriter, r *http.Request) {
	brewerID, ok := h.brewerID(w, r)
	if !ok {
		return
	}

	confirmation, err := h.brewerServer().DeleteForm(r.Context(), brewerID)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.render(w, r, "delete", page{Title: "Delete " + confirmation.Name, Content: confirmation})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	brewerID, ok := h.brewerID(w, r)
	if !ok {
		return
	}

	h.finish(w, r, h.brewerServer().Delete(r.Context(), brewerID))
}

func (h *Handler) catalog(w http.ResponseWriter, r *http.Request) {
	list, err := h.brewerServer().Catalog(r.Context())
	if err != nil {
		h.fail(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err = json.NewEncoder(w).Encode(CatalogFromList(list)); err != nil {
		h.logger.Error("error writing catalog", zap.String("request_id", RequestIDFromContext(r.Context())), zap.Error(err))
	}
}

// finish redirects to the page the outcome navigates to, carrying its message.
func (h *Handler) finish(w http.ResponseWriter, r *http.Request, outcome server.Outcome) {
	kind := flashMessage
	if !outcome.Succeeded() {
		kind = flashError
	}

	setFlash(w, kind, outcome.Message)
	http.Redirect(w, r, h.location(outcome.Navigate), http.StatusSeeOther)
}

// reject handles a form that could not even be decoded; nothing is loaded or stored.
func (h *Handler) reject(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.logger.Warn("rejected brewer form", zap.String("request_id", RequestIDFromContext(r.Context())), zap.Error(err))

	h.finish(w, r, server.Outcome{
		Status:   server.StatusValidationRejected,
		Message:  message + ": " + server.Describe(err),
		Navigate: server.ActionIndex,
	})
}

func (h *Handler) location(action server.Action) string {
	switch action {
	case server.ActionIndex:
		return indexPath
	default:
		return indexPath + "/" + string(action)
	}
}

func (h *Handler) brewerID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	brewerID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, strconv.IntSize)
	if err != nil || brewerID == 0 {
		http.NotFound(w, r)

		return 0, false
	}

	return uint(brewerID), true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, server.ErrBrewerNotFound) {
		http.Error(w, "brewer not found", http.StatusNotFound)

		return
	}

	h.logger.Error("error handling request",
		zap.String("request_id", RequestIDFromContext(r.Context())), zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := pages[name].Execute(w, data); err != nil {
		h.logger.Error("error rendering page", zap.String("page", name),
			zap.String("request_id", RequestIDFromContext(r.Context())), zap.Error(err))
	}
}
