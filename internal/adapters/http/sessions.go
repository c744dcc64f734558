package httpadapter

import (
	"net/http"

	"svw.info/truthpuzzle/internal/domain"
)

type sessionResp struct {
	ID     string       `json:"id"`
	Level  int          `json:"level"`
	State  domain.State `json:"state"`
	Puzzle puzzleView   `json:"puzzle"`
	Guess  []bool       `json:"guess"`
}

func sessionView(s *domain.Session) sessionResp {
	return sessionResp{
		ID:     s.ID,
		Level:  s.Level,
		State:  s.State,
		Puzzle: viewOf(s.Puzzle),
		Guess:  s.Guess,
	}
}

func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.UC.StartSession(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionView(s))
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.UC.Session(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionView(s))
}

func (h *Handler) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.EndSession(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type toggleReq struct {
	Position int `json:"position"`
}

func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleReq
	if !decode(w, r, &req) {
		return
	}
	s, err := h.UC.Toggle(r.Context(), r.PathValue("id"), req.Position)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionView(s))
}

type slotRef struct {
	Position int `json:"position"`
	Slot     int `json:"slot"`
}

type swapReq struct {
	A slotRef `json:"a"`
	B slotRef `json:"b"`
}

type swapResp struct {
	Swapped bool        `json:"swapped"`
	Session sessionResp `json:"session"`
}

func (h *Handler) handleSwap(w http.ResponseWriter, r *http.Request) {
	var req swapReq
	if !decode(w, r, &req) {
		return
	}
	s, ok, err := h.UC.Swap(r.Context(), r.PathValue("id"), req.A.Position, req.A.Slot, req.B.Position, req.B.Slot)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, swapResp{Swapped: ok, Session: sessionView(s)})
}

type submitResp struct {
	Evaluation evaluateResp `json:"evaluation"`
	Session    sessionResp  `json:"session"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ev, s, err := h.UC.Submit(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, submitResp{Evaluation: evaluation(ev), Session: sessionView(s)})
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	hh, ok, err := h.UC.SessionHint(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: ok, Hint: hh})
}
