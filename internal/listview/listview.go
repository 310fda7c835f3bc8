// Package listview keeps a paginated, filtered notification list view in
// sync with its backing endpoint. The manager owns the current page, page
// size and filter values, mirrors them to a URL query string so a view can
// be reproduced from an address, and refetches whenever any of them change.
// The previous result stays visible while a fetch is in flight, and a fetch
// superseded by a newer parameter change is cancelled and its result
// discarded.
package listview

import (
	"context"
	"net/url"
	"sync"

	"github.com/Ibrahim-Omar1/DNNDON/internal/models"
	"github.com/Ibrahim-Omar1/DNNDON/internal/query"
)

// Status is the fetch state of the view.
type Status int

const (
	StatusIdle Status = iota
	StatusFetching
	StatusError
)

// State is a snapshot of the view handed to OnChange observers.
type State struct {
	Query  query.ListQuery
	Result *query.ListResult // last successful page; stale during a fetch
	Status Status
	Err    error
}

// Filter dimension keys accepted by SetFilter.
const (
	FilterTerm   = "query"
	FilterStatus = "status"
	FilterType   = "type"
	FilterSort   = "sort"
	FilterOrder  = "order"
)

// Option configures a Manager.
type Option func(*Manager)

// WithOnChange registers a callback invoked after every state transition.
// Snapshots are delivered one at a time, in transition order, outside the
// manager lock; the callback may call back into the manager.
func WithOnChange(fn func(State)) Option {
	return func(m *Manager) { m.onChange = fn }
}

// Manager is the single source of truth for one list view's parameters.
type Manager struct {
	fetcher  Fetcher
	onChange func(State)

	mu        sync.Mutex
	q         query.ListQuery
	result    *query.ListResult
	status    Status
	err       error
	gen       uint64
	cancel    context.CancelFunc
	pending   []State
	notifying bool
}

// NewManager creates a manager with the default view (page 1, 10 per page,
// no filters, ascending order). No fetch is issued until the first
// parameter change, Refresh or Restore.
func NewManager(fetcher Fetcher, opts ...Option) *Manager {
	m := &Manager{
		fetcher: fetcher,
		q: query.ListQuery{
			Page:    query.DefaultPage,
			Limit:   query.DefaultLimit,
			SortDir: query.OrderAsc,
		},
		status: StatusIdle,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns a snapshot of the current view.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

// QueryString encodes the current parameters for the address bar.
func (m *Manager) QueryString() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.q.Values().Encode()
}

// Restore replaces the view parameters from an address-bar query string and
// fetches the page it describes.
func (m *Manager) Restore(rawQuery string) error {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return err
	}
	q, err := query.ParseListQuery(values)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.q = q
	m.startFetchLocked()
	m.notifyLocked()
	m.mu.Unlock()
	return nil
}

// SetPage moves to page n, leaving page size and filters untouched.
func (m *Manager) SetPage(n int) {
	if n < 1 {
		n = query.DefaultPage
	}

	m.mu.Lock()
	m.q.Page = n
	m.startFetchLocked()
	m.notifyLocked()
	m.mu.Unlock()
}

// SetPageSize changes the page size and resets to page 1; a stale page
// index could point past the new total.
func (m *Manager) SetPageSize(n int) {
	if n < 1 {
		n = query.DefaultLimit
	}

	m.mu.Lock()
	m.q.Limit = n
	m.q.Page = 1
	m.startFetchLocked()
	m.notifyLocked()
	m.mu.Unlock()
}

// SetFilter updates one filter dimension and resets to page 1. An empty
// value clears the dimension. Unknown keys are ignored.
func (m *Manager) SetFilter(key, value string) {
	m.mu.Lock()
	switch key {
	case FilterTerm:
		m.q.Term = value
	case FilterStatus:
		m.q.Status = models.NotificationStatus(value)
	case FilterType:
		m.q.Type = models.NotificationType(value)
	case FilterSort:
		m.q.SortKey = value
	case FilterOrder:
		if value == query.OrderDesc {
			m.q.SortDir = query.OrderDesc
		} else {
			m.q.SortDir = query.OrderAsc
		}
	default:
		m.mu.Unlock()
		return
	}
	m.q.Page = 1
	m.startFetchLocked()
	m.notifyLocked()
	m.mu.Unlock()
}

// Refresh re-issues the current query without changing any parameter. If a
// fetch for these parameters is already in flight it is left alone rather
// than duplicated.
func (m *Manager) Refresh() {
	m.mu.Lock()
	if m.status == StatusFetching {
		// The in-flight request already covers the current parameters.
		m.mu.Unlock()
		return
	}
	m.startFetchLocked()
	m.notifyLocked()
	m.mu.Unlock()
}

// startFetchLocked supersedes any in-flight fetch and launches a new one
// for the current parameters. Callers must hold m.mu.
func (m *Manager) startFetchLocked() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	m.gen++
	gen := m.gen
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.status = StatusFetching
	m.err = nil

	go m.fetch(ctx, gen, m.q)
}

func (m *Manager) fetch(ctx context.Context, gen uint64, q query.ListQuery) {
	result, err := m.fetcher.Fetch(ctx, q)

	m.mu.Lock()
	if gen != m.gen {
		// Superseded: a newer parameter set owns the view now.
		m.mu.Unlock()
		return
	}
	m.cancel = nil
	if err != nil {
		m.status = StatusError
		m.err = err
		// The stale result stays visible for retry.
	} else {
		m.status = StatusIdle
		m.err = nil
		m.result = result
	}
	m.notifyLocked()
	m.mu.Unlock()
}

func (m *Manager) stateLocked() State {
	return State{
		Query:  m.q,
		Result: m.result,
		Status: m.status,
		Err:    m.err,
	}
}

// notifyLocked queues the current snapshot for delivery. Snapshots are
// queued in transition order under m.mu and drained by a single goroutine,
// so observers never see an older snapshot after a newer one. Callers must
// hold m.mu.
func (m *Manager) notifyLocked() {
	if m.onChange == nil {
		return
	}
	m.pending = append(m.pending, m.stateLocked())
	if m.notifying {
		return
	}
	m.notifying = true
	go m.drain()
}

func (m *Manager) drain() {
	for {
		m.mu.Lock()
		if len(m.pending) == 0 {
			m.notifying = false
			m.mu.Unlock()
			return
		}
		state := m.pending[0]
		m.pending = m.pending[1:]
		m.mu.Unlock()

		m.onChange(state)
	}
}
