// Package navigation tracks which console page is showing.
package navigation

import "sync"

// Console routes.
const (
	PathNotifications = "/notifications"
	PathTeam          = "/team"
	PathLogin         = "/login"
)

// Navigator changes the current view.
type Navigator interface {
	NavigateTo(path string)
}

// Router is a Navigator over a fixed set of registered paths. Navigating
// to an unregistered path is ignored.
type Router struct {
	mu      sync.Mutex
	routes  map[string]struct{}
	current string
	history []string
}

var _ Navigator = (*Router)(nil)

// NewRouter registers paths and starts at the first one.
func NewRouter(paths ...string) *Router {
	r := &Router{routes: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		r.routes[p] = struct{}{}
	}
	if len(paths) > 0 {
		r.current = paths[0]
	}
	return r
}

// NavigateTo switches to path, remembering the previous page for Back.
func (r *Router) NavigateTo(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.routes[path]; !ok || path == r.current {
		return
	}
	if r.current != "" {
		r.history = append(r.history, r.current)
	}
	r.current = path
}

// Back returns to the previous page. It reports false when there is none.
func (r *Router) Back() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return false
	}
	r.current = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return true
}

// Reset clears history and moves to path without recording the jump.
// Logout uses it so Back cannot return to a signed-in page.
func (r *Router) Reset(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.routes[path]; !ok {
		return
	}
	r.history = nil
	r.current = path
}

// Current returns the active path.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
