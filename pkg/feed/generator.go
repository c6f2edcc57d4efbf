package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/freshness/pkg/domain"
)

// Generator creates RSS feeds of executed content updates
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed from executed plans. Plans not completed yet are skipped.
func (g *Generator) GenerateRSS(plans []*domain.ContentUpdatePlan) (string, error) {
	rssItems := make([]*RSSItem, 0, len(plans))
	for _, plan := range plans {
		if plan == nil || plan.CompletedAt == nil {
			continue
		}
		rssItems = append(rssItems, g.convertToRSSItem(plan))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "Freshness - Content Updates",
			Link:          g.baseURL + "/",
			Description:   "Provider listings refreshed by the content lifecycle scheduler",
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss/updates", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts an executed plan to an RSS item
func (g *Generator) convertToRSSItem(plan *domain.ContentUpdatePlan) *RSSItem {
	name := plan.ProviderName
	if name == "" {
		name = plan.ProviderID
	}

	result := "updated"
	if !plan.Success {
		result = "failed"
	}

	reasons := make([]string, 0, len(plan.UpdateReasons))
	for _, r := range plan.UpdateReasons {
		reasons = append(reasons, string(r))
	}

	var desc strings.Builder
	fmt.Fprintf(&desc, "Priority: %s (%.1f)", plan.Priority, plan.PriorityScore)
	if len(reasons) > 0 {
		fmt.Fprintf(&desc, "\nReasons: %s", strings.Join(reasons, ", "))
	}
	if len(plan.SectionsToUpdate) > 0 {
		fmt.Fprintf(&desc, "\nSections: %s", strings.Join(plan.SectionsToUpdate, ", "))
	}
	if plan.Success {
		fmt.Fprintf(&desc, "\nQuality change: %+.1f", plan.QualityImprovement)
	} else if plan.ErrorMessage != "" {
		fmt.Fprintf(&desc, "\nError: %s", plan.ErrorMessage)
	}

	return &RSSItem{
		Title:       fmt.Sprintf("[%s] %s", result, name),
		Link:        fmt.Sprintf("%s/api/v1/history?provider=%s", g.baseURL, url.QueryEscape(plan.ProviderID)),
		GUID:        RSSGUID{Value: plan.ID},
		Description: desc.String(),
		PubDate:     plan.CompletedAt.Format(time.RFC1123Z),
		Categories:  append([]string{string(plan.Priority)}, reasons...),
	}
}
