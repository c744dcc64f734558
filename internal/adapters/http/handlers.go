package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"svw.info/truthpuzzle/internal/domain"
	"svw.info/truthpuzzle/internal/render"
	"svw.info/truthpuzzle/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/generate", h.handleGenerate)
	mux.HandleFunc("POST /api/evaluate", h.handleEvaluate)
	mux.HandleFunc("POST /api/solve", h.handleSolve)
	mux.HandleFunc("POST /api/sessions", h.handleStartSession)
	mux.HandleFunc("GET /api/sessions/{id}", h.handleGetSession)
	mux.HandleFunc("DELETE /api/sessions/{id}", h.handleEndSession)
	mux.HandleFunc("POST /api/sessions/{id}/toggle", h.handleToggle)
	mux.HandleFunc("POST /api/sessions/{id}/swap", h.handleSwap)
	mux.HandleFunc("POST /api/sessions/{id}/submit", h.handleSubmit)
	mux.HandleFunc("POST /api/sessions/{id}/hint", h.handleHint)
}

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidPuzzle), errors.Is(err, domain.ErrInvalidGuess):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResp{Error: err.Error()})
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// puzzleView is a puzzle plus its rendered text for display.
type puzzleView struct {
	*domain.Puzzle
	Lines    []string           `json:"lines"`
	Segments [][]render.Segment `json:"segments"`
}

func viewOf(p *domain.Puzzle) puzzleView {
	segs := make([][]render.Segment, len(p.Statements))
	for i, st := range p.Statements {
		segs[i] = render.Segments(st)
	}
	return puzzleView{Puzzle: p, Lines: render.Lines(p), Segments: segs}
}

// ---- Generate ----

// generateReq asks for a puzzle. A missing seed lets the server pick one;
// an explicit 0 is a seed like any other.
type generateReq struct {
	Seed *int64 `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     puzzleView `json:"puzzle"`
	Seed       int64      `json:"seed"`
	DurationMs int64      `json:"durationMs"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if !decode(w, r, &req) {
		return
	}
	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		seed = h.UC.NextSeed()
	}
	p, st, err := h.UC.Generate(r.Context(), seed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResp{Puzzle: viewOf(p), Seed: seed, DurationMs: st.Duration.Milliseconds()})
}

// ---- Evaluate ----

type evaluateReq struct {
	Puzzle *domain.Puzzle `json:"puzzle"`
	Guess  []bool         `json:"guess"`
}

type evaluateResp struct {
	domain.Evaluation
	Inconsistent []int `json:"inconsistent"`
}

func evaluation(ev domain.Evaluation) evaluateResp {
	bad := ev.Inconsistent()
	if bad == nil {
		bad = []int{}
	}
	return evaluateResp{Evaluation: ev, Inconsistent: bad}
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateReq
	if !decode(w, r, &req) {
		return
	}
	ev, err := h.UC.Evaluate(r.Context(), req.Puzzle, req.Guess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluation(ev))
}

// ---- Solve ----

type solveReq struct {
	Puzzle *domain.Puzzle `json:"puzzle"`
}

type solveResp struct {
	Solutions  []domain.Guess `json:"solutions"`
	Unique     bool           `json:"unique"`
	Nodes      int            `json:"nodes"`
	DurationMs int64          `json:"durationMs"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !decode(w, r, &req) {
		return
	}
	sols, st, err := h.UC.Solve(r.Context(), req.Puzzle)
	if err != nil {
		writeError(w, err)
		return
	}
	if sols == nil {
		sols = []domain.Guess{}
	}
	writeJSON(w, http.StatusOK, solveResp{
		Solutions:  sols,
		Unique:     len(sols) == 1,
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}
