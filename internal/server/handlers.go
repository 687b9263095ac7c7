package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/naka-gawa/devfolio/internal/content"
	"github.com/naka-gawa/devfolio/internal/usecase"
	"github.com/naka-gawa/devfolio/internal/view"
)

const maxAnalyzeBody = 100 << 10

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile := s.proxy.Profile(r.Context(), r.URL.Query().Get("username"))
	sendJSON(w, http.StatusOK, profile)
}

func (s *Server) handleRepositories(w http.ResponseWriter, r *http.Request) {
	repos := s.proxy.Repositories(r.Context(), r.URL.Query().Get("username"))
	sendJSON(w, http.StatusOK, repos)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req usecase.AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAnalyzeBody)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		sendError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req)
	switch {
	case errors.Is(err, usecase.ErrNoCode):
		sendError(w, http.StatusBadRequest, "No code provided")
	case err != nil:
		s.logger.Error().Err(err).Msg("code analysis failed")
		sendError(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		sendJSON(w, http.StatusOK, result)
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := content.ParseProjectFilter(query.Get("projects"))
	category := content.ParseSkillCategory(query.Get("skills"))

	section := view.NewGitHubSection(usecase.ProxySource{Proxy: s.proxy}, s.proxy.DefaultUsername(), s.logger)
	// Outbound calls run without a deadline and outlive the request; only
	// the wait is bounded. Late results are dropped by Unmount.
	section.Mount(context.WithoutCancel(r.Context()))
	wait, cancel := context.WithTimeout(r.Context(), s.opts.PageTimeout)
	defer cancel()
	if err := section.Wait(wait); err != nil {
		s.logger.Debug().Err(err).Msg("rendering page before GitHub data settled")
	}
	snap := section.Snapshot()
	section.Unmount()

	data := view.NewPageData(filter, category, view.BuildPanels(snap, s.opts.ProfileURL), s.now().Year())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to render page")
		sendError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
