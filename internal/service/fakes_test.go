package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"push-delivery-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// mockTx implements pgx.Tx for testing
type mockTx struct {
	pgx.Tx
	commits atomic.Int32
}

func (m *mockTx) Rollback(_ context.Context) error { return nil }

func (m *mockTx) Commit(_ context.Context) error {
	m.commits.Add(1)
	return nil
}

type fakeTransactor struct {
	tx *mockTx
}

func (f *fakeTransactor) Begin(_ context.Context) (pgx.Tx, error) {
	return f.tx, nil
}

// memReservations mimics the reservation table's unique constraint.
type memReservations struct {
	mu        sync.Mutex
	missing   bool
	rows      map[string]domain.ReservationStatus
	errorType map[string]string
	reserves  atomic.Int32
}

func newMemReservations() *memReservations {
	return &memReservations{
		rows:      make(map[string]domain.ReservationStatus),
		errorType: make(map[string]string),
	}
}

func reservationKey(eventKey string, role domain.Role, target domain.ScopeTarget) string {
	return eventKey + "|" + string(role) + "|" + target.String()
}

func (m *memReservations) Reserve(_ context.Context, eventKey string, role domain.Role, target domain.ScopeTarget) (bool, error) {
	m.reserves.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.missing {
		return false, domain.ErrReservationStoreMissing
	}
	k := reservationKey(eventKey, role, target)
	if _, ok := m.rows[k]; ok {
		return false, nil
	}
	m.rows[k] = domain.ReservationPending
	return true, nil
}

func (m *memReservations) Finalize(ctx context.Context, eventKey string, role domain.Role, target domain.ScopeTarget, status domain.ReservationStatus, errorType string, _ time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.missing {
		return domain.ErrReservationStoreMissing
	}
	k := reservationKey(eventKey, role, target)
	m.rows[k] = status
	m.errorType[k] = errorType
	return nil
}

func (m *memReservations) status(eventKey string, role domain.Role, target domain.ScopeTarget) domain.ReservationStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[reservationKey(eventKey, role, target)]
}

// memSubscriptions is an in-memory SubscriptionRepository.
type memSubscriptions struct {
	mu   sync.Mutex
	rows []domain.Subscription
}

func (m *memSubscriptions) add(role domain.Role, target domain.ScopeTarget, endpoints ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ep := range endpoints {
		m.rows = append(m.rows, domain.Subscription{Role: role, Target: target, Endpoint: ep, AuthSecret: "auth", PublicKey: "p256dh"})
	}
}

func (m *memSubscriptions) get(role domain.Role, target domain.ScopeTarget, endpoint string) *domain.Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		r := m.rows[i]
		if r.Role == role && r.Target == target && r.Endpoint == endpoint {
			return &r
		}
	}
	return nil
}

func (m *memSubscriptions) Save(_ context.Context, _ pgx.Tx, sub *domain.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		r := &m.rows[i]
		if r.Role == sub.Role && r.Target == sub.Target && r.Endpoint == sub.Endpoint {
			r.AuthSecret, r.PublicKey = sub.AuthSecret, sub.PublicKey
			r.InvalidatedAt, r.LastFailureStatusCode = nil, nil
			return nil
		}
	}
	m.rows = append(m.rows, *sub)
	return nil
}

func (m *memSubscriptions) RemoveStaleBindings(_ context.Context, _ pgx.Tx, role domain.Role, target domain.ScopeTarget, endpoint string) (int64, error) {
	return m.removeWhere(func(r domain.Subscription) bool {
		return r.Endpoint == endpoint && (r.Role != role || r.Target != target)
	}), nil
}

func (m *memSubscriptions) Remove(_ context.Context, role domain.Role, target domain.ScopeTarget, endpoint string) (int64, error) {
	return m.removeWhere(func(r domain.Subscription) bool {
		return r.Role == role && r.Target == target && r.Endpoint == endpoint
	}), nil
}

func (m *memSubscriptions) RemoveByEndpoint(_ context.Context, endpoint string, role *domain.Role) (int64, error) {
	return m.removeWhere(func(r domain.Subscription) bool {
		return r.Endpoint == endpoint && (role == nil || r.Role == *role)
	}), nil
}

func (m *memSubscriptions) RemoveByScope(_ context.Context, role domain.Role, target domain.ScopeTarget) (int64, error) {
	return m.removeWhere(func(r domain.Subscription) bool {
		return r.Role == role && r.Target == target
	}), nil
}

func (m *memSubscriptions) removeWhere(match func(domain.Subscription) bool) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rows[:0]
	var n int64
	for _, r := range m.rows {
		if match(r) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	m.rows = kept
	return n
}

func (m *memSubscriptions) FetchActive(_ context.Context, role domain.Role, target domain.ScopeTarget) ([]domain.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Subscription
	for _, r := range m.rows {
		if r.Role == role && r.Target == target && r.InvalidatedAt == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memSubscriptions) Find(_ context.Context, role domain.Role, target domain.ScopeTarget, endpoint string) (*domain.Subscription, error) {
	return m.get(role, target, endpoint), nil
}

func (m *memSubscriptions) InvalidateEndpoints(ctx context.Context, _ pgx.Tx, role domain.Role, target domain.ScopeTarget, endpoints []string, statusCode int, at time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	set := make(map[string]struct{}, len(endpoints))
	for _, ep := range endpoints {
		set[ep] = struct{}{}
	}
	var n int64
	for i := range m.rows {
		r := &m.rows[i]
		if _, ok := set[r.Endpoint]; !ok || r.Role != role || r.Target != target {
			continue
		}
		ts, code := at, statusCode
		r.InvalidatedAt, r.LastFailureStatusCode = &ts, &code
		n++
	}
	return n, nil
}

// countingSender records provider calls and the peak number in flight.
type countingSender struct {
	mu       sync.Mutex
	calls    map[string]int
	inFlight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
	respond  func(endpoint string, attempt int) error
}

func newCountingSender(respond func(endpoint string, attempt int) error) *countingSender {
	return &countingSender{calls: make(map[string]int), respond: respond}
}

// Send fails fast on a done context, as an http.Client would.
func (s *countingSender) Send(ctx context.Context, sub domain.Subscription, _ []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}

	s.mu.Lock()
	s.calls[sub.Endpoint]++
	attempt := s.calls[sub.Endpoint]
	s.mu.Unlock()

	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.respond == nil {
		return nil
	}
	return s.respond(sub.Endpoint, attempt)
}

func (s *countingSender) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

func (s *countingSender) callsTo(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[endpoint]
}

func statusErr(code int) error {
	return &domain.PushError{StatusCode: code, Body: "provider said no"}
}

var errBoom = errors.New("boom")
