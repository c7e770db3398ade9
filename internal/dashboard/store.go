package dashboard

import (
	"sync"

	"tourgate/internal/domain"
)

// defaultPackageID is the package the booking view shows when nothing has
// been picked yet.
const defaultPackageID domain.ID = 1

// ViewState is one session's dashboard state: the active section plus the
// selection threaded from list views into booking/detail views.
type ViewState struct {
	Active    Section   `json:"activeSection"`
	PackageID domain.ID `json:"selectedPackageId"`
	BookingID domain.ID `json:"selectedBookingId,omitempty"`
}

// Store keeps per-session view state in memory. State is ephemeral: it lives
// only as long as the session uses the dashboard, and navigating away from a
// section always discards its selection so the next visit re-fetches instead
// of restoring.
type Store struct {
	mu     sync.RWMutex
	states map[string]ViewState
}

func NewStore() *Store {
	return &Store{states: make(map[string]ViewState)}
}

// Get returns the session's state, initializing to the role default.
func (st *Store) Get(token string, role domain.Role) ViewState {
	st.mu.RLock()
	state, ok := st.states[token]
	st.mu.RUnlock()
	if ok {
		return state
	}
	return initialState(role)
}

// Navigate switches the active section. Any selection is cleared, matching
// unmount semantics: the previous view's local state does not survive.
func (st *Store) Navigate(token string, role domain.Role, target Section) ViewState {
	state := initialState(role)
	state.Active = Resolve(role, target)
	st.put(token, state)
	return state
}

// SelectPackage threads a package choice into the booking view and moves
// there, the "book now" path.
func (st *Store) SelectPackage(token string, role domain.Role, id domain.ID) ViewState {
	state := st.Get(token, role)
	if id < 1 {
		id = defaultPackageID
	}
	state.PackageID = id
	if Valid(role, SectionBooking) {
		state.Active = SectionBooking
	}
	state.BookingID = 0
	st.put(token, state)
	return state
}

// SelectBooking marks a booking for the in-place detail view. The section
// does not change; the detail replaces the list within it.
func (st *Store) SelectBooking(token string, role domain.Role, id domain.ID) ViewState {
	state := st.Get(token, role)
	state.BookingID = id
	st.put(token, state)
	return state
}

// ClearBooking is the "back" action: the fetched detail is discarded and the
// list shows again.
func (st *Store) ClearBooking(token string, role domain.Role) ViewState {
	state := st.Get(token, role)
	state.BookingID = 0
	st.put(token, state)
	return state
}

// Drop forgets a session's state entirely (logout).
func (st *Store) Drop(token string) {
	st.mu.Lock()
	delete(st.states, token)
	st.mu.Unlock()
}

func (st *Store) put(token string, state ViewState) {
	st.mu.Lock()
	st.states[token] = state
	st.mu.Unlock()
}

func initialState(role domain.Role) ViewState {
	return ViewState{
		Active:    DefaultSection(role),
		PackageID: defaultPackageID,
	}
}
