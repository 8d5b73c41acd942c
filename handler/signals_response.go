package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type signalsResponse struct {
	signals any
	patches []TemplPatch
}

// Render sends the signals and then each patch as SSE events for DataStar
// requests. Plain requests get the signals as JSON; patches are skipped.
func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return JSON(s.signals).Render(w, r)
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(s.signals); err != nil {
		return err
	}
	for _, p := range s.patches {
		if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return err
		}
	}
	return nil
}

// Signals patches frontend signals, followed by optional element patches.
//
//	return handler.Signals(
//		map[string]any{"dob": value, "dobError": msg},
//		handler.Patch(views.FieldError("dob", msg), handler.WithTarget("#dob-error")),
//	)
func Signals(signals any, patches ...TemplPatch) Response {
	return signalsResponse{signals: signals, patches: patches}
}
