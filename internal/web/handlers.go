package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/behrlich/thistlecube/internal/cube"
	"github.com/behrlich/thistlecube/internal/history"
)

// SolveRequest is the /api/solve request body. Scramble is a space-separated
// move sequence, applied to the solved cube before solving; an empty
// scramble solves the already-solved cube (trivially, with zero moves).
type SolveRequest struct {
	Scramble string `json:"scramble"`
}

// SolveResponse is the /api/solve response body.
type SolveResponse struct {
	RequestID string `json:"request_id"`
	Solution  string `json:"solution"`
	MoveCount int     `json:"move_count"`
	Phases    []int   `json:"phase_move_counts"`
	Elapsed   string  `json:"elapsed"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	scrambleMoves, err := cube.ParseSequence(req.Scramble)
	if err != nil {
		http.Error(w, fmt.Sprintf("error parsing scramble: %v", err), http.StatusBadRequest)
		return
	}

	startedAt := time.Now()
	scrambled := cube.ApplySequence(cube.Solved(), scrambleMoves)
	solver := cube.NewThistlethwaiteSolver()
	result, err := solver.Solve(scrambled, cube.DefaultDepthLimits())
	if err != nil {
		http.Error(w, fmt.Sprintf("error solving cube: %v", err), http.StatusUnprocessableEntity)
		return
	}
	endedAt := time.Now()

	phaseCounts := make([]int, len(result.Phases))
	for i, p := range result.Phases {
		phaseCounts[i] = len(p.Moves)
	}

	requestID := uuid.New().String()
	solution := cube.FormatSequence(result.Moves)

	if s.history != nil {
		repo := history.NewSolveRepository(s.history)
		if _, err := repo.Record(startedAt, endedAt, req.Scramble, solution, cube.GetMoveCount(result.Moves), result.Algorithm); err != nil {
			log.Printf("web: failed to log solve to history: %v", err)
		}
	}

	response := SolveResponse{
		RequestID: requestID,
		Solution:  solution,
		MoveCount: cube.GetMoveCount(result.Moves),
		Phases:    phaseCounts,
		Elapsed:   endedAt.Sub(startedAt).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
