package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/freshness/pkg/feed"
	"github.com/umputun/freshness/pkg/repository"
)

const defaultRSSLimit = 100

// rssHandler serves an RSS feed of recently executed updates
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	plans, err := s.store.ListPlans(r.Context(), repository.PlanFilter{Limit: defaultRSSLimit})
	if err != nil {
		lgr.Printf("[ERROR] failed to get plans for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.NewGenerator(s.config.GetBaseURL()).GenerateRSS(plans)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
