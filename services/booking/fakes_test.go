package booking

import (
	"context"
	"sync"

	locationRepo "tablebook/database/repository/location"
	reservationRepo "tablebook/database/repository/reservation"
	tableRepo "tablebook/database/repository/table"
	waiterRepo "tablebook/database/repository/waiter"
	"tablebook/models"
)

// fakeTableRepo is an in-memory table ledger with the same conditional-append
// contract as the Mongo implementation.
type fakeTableRepo struct {
	mu     sync.Mutex
	tables map[string]*models.Table

	appendErr error // forced AppendSlot failure
}

func newFakeTableRepo(tables ...*models.Table) *fakeTableRepo {
	m := make(map[string]*models.Table)
	for _, t := range tables {
		m[t.ID] = t
	}
	return &fakeTableRepo{tables: m}
}

func (r *fakeTableRepo) get(tableID, locationID string) *models.Table {
	t, ok := r.tables[tableID]
	if !ok || t.LocationID != locationID {
		return nil
	}
	return t
}

func (r *fakeTableRepo) GetByID(ctx context.Context, tableID, locationID string) (*models.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.get(tableID, locationID)
	if t == nil {
		return nil, tableRepo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTableRepo) GetByLocation(ctx context.Context, locationID string) ([]models.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Table
	for _, t := range r.tables {
		if t.LocationID == locationID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTableRepo) BookedSlots(ctx context.Context, tableID, locationID, date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.get(tableID, locationID)
	if t == nil {
		return nil, tableRepo.ErrNotFound
	}
	return append([]string(nil), t.BookedSlots(date)...), nil
}

func (r *fakeTableRepo) AppendSlot(ctx context.Context, tableID, locationID, date, slot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	t := r.get(tableID, locationID)
	if t == nil {
		return tableRepo.ErrNotFound
	}
	for _, s := range t.BookedSlots(date) {
		if s == slot {
			return tableRepo.ErrSlotTaken
		}
	}
	if t.Booked == nil {
		t.Booked = make(map[string][]string)
	}
	t.Booked[date] = append(t.Booked[date], slot)
	return nil
}

func (r *fakeTableRepo) RemoveSlot(ctx context.Context, tableID, locationID, date, slot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.get(tableID, locationID)
	if t == nil {
		return tableRepo.ErrNotFound
	}
	slots := t.BookedSlots(date)
	for i, s := range slots {
		if s == slot {
			t.Booked[date] = append(slots[:i:i], slots[i+1:]...)
			break
		}
	}
	return nil
}

// fakeWaiterRepo mirrors the waiter ledger in memory.
type fakeWaiterRepo struct {
	mu      sync.Mutex
	waiters map[string]*models.Waiter

	appendErr error
}

func newFakeWaiterRepo(waiters ...*models.Waiter) *fakeWaiterRepo {
	m := make(map[string]*models.Waiter)
	for _, w := range waiters {
		m[w.ID] = w
	}
	return &fakeWaiterRepo{waiters: m}
}

func (r *fakeWaiterRepo) get(waiterID, locationID string) *models.Waiter {
	w, ok := r.waiters[waiterID]
	if !ok || w.LocationID != locationID {
		return nil
	}
	return w
}

func (r *fakeWaiterRepo) GetByID(ctx context.Context, waiterID, locationID string) (*models.Waiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := r.get(waiterID, locationID)
	if w == nil {
		return nil, waiterRepo.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWaiterRepo) GetByEmail(ctx context.Context, email string) (*models.Waiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.waiters {
		if w.Email == email {
			cp := *w
			return &cp, nil
		}
	}
	return nil, waiterRepo.ErrNotFound
}

func (r *fakeWaiterRepo) GetActiveByLocation(ctx context.Context, locationID string) ([]models.Waiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Waiter
	for _, w := range r.waiters {
		if w.LocationID == locationID && w.Active {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeWaiterRepo) BookedSlots(ctx context.Context, waiterID, locationID, date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := r.get(waiterID, locationID)
	if w == nil {
		return nil, waiterRepo.ErrNotFound
	}
	return append([]string(nil), w.BookedSlots(date)...), nil
}

func (r *fakeWaiterRepo) AppendSlot(ctx context.Context, waiterID, locationID, date, slot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	w := r.get(waiterID, locationID)
	if w == nil {
		return waiterRepo.ErrNotFound
	}
	for _, s := range w.BookedSlots(date) {
		if s == slot {
			return waiterRepo.ErrSlotTaken
		}
	}
	if w.Booked == nil {
		w.Booked = make(map[string][]string)
	}
	w.Booked[date] = append(w.Booked[date], slot)
	return nil
}

func (r *fakeWaiterRepo) RemoveSlot(ctx context.Context, waiterID, locationID, date, slot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := r.get(waiterID, locationID)
	if w == nil {
		return waiterRepo.ErrNotFound
	}
	slots := w.BookedSlots(date)
	for i, s := range slots {
		if s == slot {
			w.Booked[date] = append(slots[:i:i], slots[i+1:]...)
			break
		}
	}
	return nil
}

// fakeReservationRepo stores reservation records in memory.
type fakeReservationRepo struct {
	mu      sync.Mutex
	records map[string]*models.Reservation

	createErr  error
	replaceErr error
}

func newFakeReservationRepo(records ...*models.Reservation) *fakeReservationRepo {
	m := make(map[string]*models.Reservation)
	for _, res := range records {
		cp := *res
		m[res.ID] = &cp
	}
	return &fakeReservationRepo{records: m}
}

func (r *fakeReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.records[res.ID]; exists {
		return reservationRepo.ErrDuplicateID
	}
	cp := *res
	r.records[res.ID] = &cp
	return nil
}

func (r *fakeReservationRepo) Replace(ctx context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.replaceErr != nil {
		return r.replaceErr
	}
	if _, exists := r.records[res.ID]; !exists {
		return reservationRepo.ErrNotFound
	}
	cp := *res
	r.records[res.ID] = &cp
	return nil
}

func (r *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.records[id]
	if !ok {
		return nil, reservationRepo.ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *fakeReservationRepo) GetByIDAndEmail(ctx context.Context, id, email string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.records[id]
	if !ok || res.UserEmail != email {
		return nil, reservationRepo.ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *fakeReservationRepo) ListByEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Reservation
	for _, res := range r.records {
		if res.UserEmail == email {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) ListByWaiterAndDate(ctx context.Context, waiterID, date string) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Reservation
	for _, res := range r.records {
		if res.WaiterID == waiterID && res.Date == date {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) ListActive(ctx context.Context) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Reservation
	for _, res := range r.records {
		if !res.IsTerminal() {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.records[id]
	if !ok {
		return reservationRepo.ErrNotFound
	}
	res.Status = status
	return nil
}

// fakeLocationRepo serves fixed location records.
type fakeLocationRepo struct {
	locations map[string]*models.Location
}

func newFakeLocationRepo(locations ...*models.Location) *fakeLocationRepo {
	m := make(map[string]*models.Location)
	for _, l := range locations {
		m[l.ID] = l
	}
	return &fakeLocationRepo{locations: m}
}

func (r *fakeLocationRepo) GetByID(ctx context.Context, id string) (*models.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, locationRepo.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

// recordingPublisher captures emitted events for assertions.
type recordingPublisher struct {
	mu        sync.Mutex
	created   []string
	cancelled []string
	updated   []string
}

func (p *recordingPublisher) ReservationCreated(res *models.Reservation) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, res.ID)
}

func (p *recordingPublisher) ReservationCancelled(res *models.Reservation) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelled = append(p.cancelled, res.ID)
}

func (p *recordingPublisher) ReservationUpdated(res *models.Reservation) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updated = append(p.updated, res.ID)
}
