// Package api exposes the coordinator's query surface and the local voting
// entry point over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crossgov/crossgov-core/poll"
)

// Registry is the poll registry surface the API serves
type Registry interface {
	GetPoll(pollID uint64) (poll.Poll, error)
	GetReceipt(pollID uint64, voter common.Address) (poll.Receipt, error)
	State(pollID uint64) (poll.State, error)
	PollCount() (uint64, error)
	CastVote(ctx context.Context, pollID uint64, voter common.Address, support bool) error
}

// Server serves poll queries, vote submission and metrics
type Server struct {
	router   *mux.Router
	registry Registry
	logger   log.Logger
}

// NewServer returns an HTTP server over the given registry
func NewServer(registry Registry, logger log.Logger) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		registry: registry,
		logger:   logger.With("component", "api"),
	}

	s.router.HandleFunc("/v1/polls/count", s.handlePollCount).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/polls/{id}", s.handleGetPoll).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/polls/{id}/state", s.handleGetState).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/polls/{id}/receipts/{voter}", s.handleGetReceipt).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/polls/{id}/votes", s.handleCastVote).Methods(http.MethodPost)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return s
}

// Router returns the server's handler, e.g. for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe serves until the context is cancelled, then shuts down
// gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info("serving API", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}

type stateResponse struct {
	State string `json:"state"`
}

type countResponse struct {
	PollCount uint64 `json:"poll_count"`
}

type voteRequest struct {
	Voter   string `json:"voter"`
	Support bool   `json:"support"`
}

type errResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleGetPoll(w http.ResponseWriter, req *http.Request) {
	pollID, ok := s.pollID(w, req)
	if !ok {
		return
	}

	p, err := s.registry.GetPoll(pollID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleGetState(w http.ResponseWriter, req *http.Request) {
	pollID, ok := s.pollID(w, req)
	if !ok {
		return
	}

	state, err := s.registry.State(pollID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, stateResponse{State: state.String()})
}

func (s *Server) handleGetReceipt(w http.ResponseWriter, req *http.Request) {
	pollID, ok := s.pollID(w, req)
	if !ok {
		return
	}

	voter, ok := s.voter(w, mux.Vars(req)["voter"])
	if !ok {
		return
	}

	receipt, err := s.registry.GetReceipt(pollID, voter)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, receipt)
}

func (s *Server) handlePollCount(w http.ResponseWriter, req *http.Request) {
	count, err := s.registry.PollCount()
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, countResponse{PollCount: count})
}

func (s *Server) handleCastVote(w http.ResponseWriter, req *http.Request) {
	pollID, ok := s.pollID(w, req)
	if !ok {
		return
	}

	var body voteRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errResponse{Error: "malformed request body"})
		return
	}

	voter, ok := s.voter(w, body.Voter)
	if !ok {
		return
	}

	if err := s.registry.CastVote(req.Context(), pollID, voter, body.Support); err != nil {
		s.writeError(w, err)
		return
	}

	receipt, err := s.registry.GetReceipt(pollID, voter)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, receipt)
}

func (s *Server) pollID(w http.ResponseWriter, req *http.Request) (uint64, bool) {
	pollID, err := strconv.ParseUint(mux.Vars(req)["id"], 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errResponse{Error: "poll id must be a positive integer"})
		return 0, false
	}

	return pollID, true
}

func (s *Server) voter(w http.ResponseWriter, addr string) (common.Address, bool) {
	if !common.IsHexAddress(addr) {
		s.writeJSON(w, http.StatusBadRequest, errResponse{Error: "voter must be a hex address"})
		return common.Address{}, false
	}

	return common.HexToAddress(addr), true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, poll.ErrInvalidPollID):
		status = http.StatusNotFound
	case errors.Is(err, poll.ErrPollNotOpen), errors.Is(err, poll.ErrAlreadyVoted):
		status = http.StatusConflict
	case errors.Is(err, poll.ErrUnauthorized):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err.Error())
	}

	s.writeJSON(w, status, errResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to write response", "err", err.Error())
	}
}
