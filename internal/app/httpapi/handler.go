// Package httpapi exposes the shopping list over HTTP. Requests carry JSON,
// responses are plain text; status codes carry the error signal.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	app "github.com/groceryworks/listd/internal/app"
	"github.com/groceryworks/listd/internal/app/domain/item"
	"github.com/groceryworks/listd/internal/app/metrics"
	"github.com/groceryworks/listd/internal/httputil"
)

// handler bundles the HTTP endpoints for the application services.
type handler struct {
	app *app.Application
}

// NewHandler returns a router exposing the full REST API.
func NewHandler(application *app.Application) http.Handler {
	h := &handler{app: application}

	r := mux.NewRouter()
	r.HandleFunc("/", h.welcome).Methods(http.MethodGet)
	r.HandleFunc("/docs", h.docs).Methods(http.MethodGet)
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/items", h.addItem).Methods(http.MethodPost)
	r.HandleFunc("/items", h.listItems).Methods(http.MethodGet)
	r.HandleFunc("/items", h.clearItems).Methods(http.MethodDelete)
	r.HandleFunc("/items/count", h.countItems).Methods(http.MethodGet)
	r.HandleFunc("/items/{name}", h.removeItem).Methods(http.MethodDelete)
	return r
}

func (h *handler) welcome(w http.ResponseWriter, r *http.Request) {
	httputil.WriteText(w, http.StatusOK, renderWelcome(app.ServiceName, app.Version))
}

func (h *handler) addItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := httputil.DecodeJSON(r.Body, &payload); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	result, err := h.app.Items.Add(r.Context(), payload.Name)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	httputil.WriteText(w, http.StatusCreated, renderAdded(result.Added, result.Items))
}

func (h *handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.app.Items.List(r.Context())
	if err != nil {
		httputil.WriteText(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.WriteText(w, http.StatusOK, renderList(items))
}

func (h *handler) removeItem(w http.ResponseWriter, r *http.Request) {
	// mux matches against the decoded path, so the var arrives URL-decoded.
	name := mux.Vars(r)["name"]

	result, err := h.app.Items.Remove(r.Context(), name)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	httputil.WriteText(w, http.StatusOK, renderRemoved(result.Removed, result.Remaining))
}

func (h *handler) clearItems(w http.ResponseWriter, r *http.Request) {
	dropped, err := h.app.Items.Clear(r.Context())
	if err != nil {
		httputil.WriteText(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.WriteText(w, http.StatusOK, renderCleared(dropped))
}

func (h *handler) countItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Items.Count(r.Context())
	if err != nil {
		httputil.WriteText(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.WriteText(w, http.StatusOK, renderCount(result.Count, result.Items))
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Items.Count(r.Context())
	if err != nil {
		httputil.WriteText(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.WriteText(w, http.StatusOK, renderHealth(app.ServiceName, result.Count))
}

func (h *handler) docs(w http.ResponseWriter, r *http.Request) {
	httputil.WriteText(w, http.StatusOK, renderDocs())
}

// writeDomainError maps domain errors onto status codes. Bodies are the
// human-readable messages; nothing internal leaks.
func (h *handler) writeDomainError(w http.ResponseWriter, err error) {
	var validationErr *item.ValidationError
	var duplicateErr *item.DuplicateError
	var notFoundErr *item.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		httputil.WriteValidationError(w, validationErr)
	case errors.As(err, &duplicateErr):
		httputil.WriteText(w, http.StatusBadRequest, duplicateErr.Error())
	case errors.As(err, &notFoundErr):
		httputil.WriteText(w, http.StatusNotFound, notFoundErr.Error())
	default:
		httputil.WriteText(w, http.StatusInternalServerError, "internal error")
	}
}
