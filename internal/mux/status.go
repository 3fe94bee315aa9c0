package mux

import "net/http"

func (m *Mux) getStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		last := m.hub.Last()
		if last == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, last)
	}
}
