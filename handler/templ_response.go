package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type templResponse struct {
	component TemplComponent
	options   []TemplOption
	status    int
}

// Render patches the component over SSE for DataStar requests and writes
// plain HTML otherwise.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 && t.status != http.StatusOK {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ creates a response from a templ component.
//
//	return handler.Templ(views.SignupDone(req.Username), handler.WithTarget("#signup"))
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}

// TemplWithStatus works like Templ but sets the status of plain HTML responses.
// SSE responses always use 200.
func TemplWithStatus(status int, component TemplComponent, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts, status: status}
}
