package webx

import (
	"fmt"
	"io"

	"dqx0.com/go/browse/internal/obs"
	"dqx0.com/go/browse/render"
)

// Load fetches a locator, follows any redirect chain, and writes the
// rendered document to w. Rendering mode is decided by the original
// locator's view-source flag — a redirect never toggles it. The chain
// is bounded by MaxRedirects and checked for cycles; those two guards
// are the only termination guarantees, there is no overall timeout.
func (rc *RequestContext) Load(w io.Writer, u URL) error {
	visited := []URL{u}
	for {
		cur := visited[len(visited)-1]
		resp, err := rc.Fetch(cur)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", cur, err)
		}
		if !resp.IsRedirect() {
			if u.viewSource() {
				return render.ShowSource(w, resp.Body)
			}
			return render.Show(w, resp.Body)
		}

		next, err := Follow(cur, resp.Location)
		if err != nil {
			return fmt.Errorf("follow %q from %s: %w", resp.Location, cur, err)
		}
		rc.logf(obs.Debug, "redirect %d: %s -> %s", resp.StatusCode, cur, next)
		rc.metricCounter("browse_redirects_total", 1)
		for _, seen := range visited {
			if next == seen {
				return fmt.Errorf("%w: %s revisits %s", ErrRedirectCycle, u, next)
			}
		}
		visited = append(visited, next)
		if len(visited) > rc.maxRedirects() {
			return fmt.Errorf("%w: %s exceeded %d redirects", ErrTooManyRedirects, u, rc.maxRedirects())
		}
	}
}
