package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/letstalk/internal/common"
	"github.com/dmitrijs2005/letstalk/internal/models"
)

// shownResponses is how many of the latest responses are printed under a post.
const shownResponses = 3

// timeAgo renders the age of t relative to now.
func timeAgo(now, t time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)

	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return fmt.Sprintf("%d minutes ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d hours ago", seconds/3600)
	default:
		return fmt.Sprintf("%d days ago", seconds/86400)
	}
}

// printPost writes p with its latest responses. viewerID marks the viewer's
// own post and which of their responses can still be retracted.
func printPost(w io.Writer, p *models.Post, viewerID string, now time.Time) {
	fmt.Fprintf(w, "%s %s · %s  [%s]\n", p.AuthorPic, p.AuthorName, timeAgo(now, p.Timestamp), p.ID)
	for _, line := range strings.Split(p.Content, "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}

	footer := fmt.Sprintf("%d responses", len(p.Responses))
	if p.AuthorID == viewerID {
		footer += " · Your post"
	}
	fmt.Fprintf(w, "    %s\n", footer)

	start := max(len(p.Responses)-shownResponses, 0)
	for _, r := range p.Responses[start:] {
		mark := ""
		if r.AuthorID == viewerID && now.Sub(r.Timestamp) <= common.RetractionWindow {
			mark = fmt.Sprintf("  (unrespond %s %s)", p.ID, r.ID)
		}
		fmt.Fprintf(w, "      ↳ %s %s · %s: %s%s\n", r.AuthorPic, r.AuthorName, timeAgo(now, r.Timestamp), r.Content, mark)
	}
}
