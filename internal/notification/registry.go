package notification

import (
	"sort"
	"sync"
)

// CourseRef names one course by department and course code.
type CourseRef struct {
	Dept   string `json:"dept"`
	Course string `json:"course"`
}

// Subscription is a browser push endpoint plus the courses it watches.
type Subscription struct {
	Endpoint string
	P256DH   string
	Auth     string
	Courses  []CourseRef
}

// Registry holds push subscriptions in memory, keyed by endpoint.
type Registry struct {
	mu   sync.RWMutex
	subs map[string]Subscription
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[string]Subscription)}
}

// Put creates or replaces the subscription for sub.Endpoint. Duplicate
// course references are collapsed.
func (r *Registry) Put(sub Subscription) {
	seen := make(map[CourseRef]struct{}, len(sub.Courses))
	courses := make([]CourseRef, 0, len(sub.Courses))
	for _, ref := range sub.Courses {
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		courses = append(courses, ref)
	}
	sort.Slice(courses, func(i, j int) bool {
		if courses[i].Dept != courses[j].Dept {
			return courses[i].Dept < courses[j].Dept
		}
		return courses[i].Course < courses[j].Course
	})
	sub.Courses = courses

	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.Endpoint] = sub
}

// Get returns the subscription for endpoint.
func (r *Registry) Get(endpoint string) (Subscription, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subs[endpoint]
	return sub, ok
}

// Delete removes endpoint and reports whether it was present.
func (r *Registry) Delete(endpoint string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.subs[endpoint]
	delete(r.subs, endpoint)
	return ok
}

// Watchers returns every subscription watching the given course, ordered by
// endpoint.
func (r *Registry) Watchers(ref CourseRef) []Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Subscription
	for _, sub := range r.subs {
		for _, c := range sub.Courses {
			if c == ref {
				out = append(out, sub)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Endpoint < out[j].Endpoint })
	return out
}

// Len returns the number of subscriptions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}
