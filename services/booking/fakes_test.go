package booking_test

import (
	"context"
	"time"

	availabilityRepo "feastly/database/repository/availability"
	bookingRepo "feastly/database/repository/booking"
	eventRepo "feastly/database/repository/event"
	"feastly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// fakeBlockRepo is an in-memory BlockRepository implementing the half-open
// overlap rule and the unique event-block constraint.
type fakeBlockRepo struct {
	blocks       []models.AvailabilityBlock
	overlapCalls int
}

func (f *fakeBlockRepo) Create(_ context.Context, block *models.AvailabilityBlock) error {
	if block.Reason == models.BlockReasonEvent {
		for _, ex := range f.blocks {
			if ex.Reason == models.BlockReasonEvent && ex.SpaceID == block.SpaceID &&
				sameDay(ex.EventDate, block.EventDate) &&
				ex.StartTime == block.StartTime && ex.EndTime == block.EndTime {
				return availabilityRepo.ErrDuplicateEventBlock
			}
		}
	}
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	if block.CreatedAt.IsZero() {
		block.CreatedAt = time.Now()
	}
	f.blocks = append(f.blocks, *block)
	return nil
}

func (f *fakeBlockRepo) FindByID(_ context.Context, id string) (*models.AvailabilityBlock, error) {
	for i := range f.blocks {
		if f.blocks[i].ID == id {
			b := f.blocks[i]
			return &b, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBlockRepo) FindOverlappingBlocks(_ context.Context, spaceID string, eventDate time.Time, startTime, endTime string) ([]models.AvailabilityBlock, error) {
	f.overlapCalls++
	var out []models.AvailabilityBlock
	for _, b := range f.blocks {
		if b.SpaceID == spaceID && sameDay(b.EventDate, eventDate) &&
			b.StartTime < endTime && b.EndTime > startTime {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlockRepo) ExistsForBooking(_ context.Context, spaceID string, eventDate time.Time, startTime, endTime, reason string) (bool, error) {
	for _, b := range f.blocks {
		if b.SpaceID == spaceID && sameDay(b.EventDate, eventDate) &&
			b.StartTime == startTime && b.EndTime == endTime && b.Reason == reason {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBlockRepo) GetBlockedSpaceIDs(_ context.Context, eventDate time.Time, startTime, endTime string, bufferMinutes int) ([]string, error) {
	paddedStart := availabilityRepo.SubtractMinutes(startTime, bufferMinutes)
	paddedEnd := availabilityRepo.AddMinutes(endTime, bufferMinutes)
	seen := map[string]bool{}
	var ids []string
	for _, b := range f.blocks {
		if sameDay(b.EventDate, eventDate) && b.StartTime < paddedEnd && b.EndTime > paddedStart && !seen[b.SpaceID] {
			seen[b.SpaceID] = true
			ids = append(ids, b.SpaceID)
		}
	}
	return ids, nil
}

func (f *fakeBlockRepo) ListByRestaurant(_ context.Context, restaurantID string, eventDate *time.Time) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range f.blocks {
		if b.RestaurantID != restaurantID {
			continue
		}
		if eventDate != nil && !sameDay(b.EventDate, *eventDate) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, id string) error {
	for i := range f.blocks {
		if f.blocks[i].ID == id {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeBlockRepo) countByReason(reason string) int {
	n := 0
	for _, b := range f.blocks {
		if b.Reason == reason {
			n++
		}
	}
	return n
}

// fakeBookingRepo is an in-memory bookingRepo.Repository with a faithful
// compare-and-swap on UpdateStatusIfPending.
type fakeBookingRepo struct {
	reqs     map[string]*models.BookingRequest
	messages []models.BookingMessage
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{reqs: map[string]*models.BookingRequest{}}
}

func (f *fakeBookingRepo) Create(_ context.Context, req *models.BookingRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	cp := *req
	f.reqs[req.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id string) (*models.BookingRequest, error) {
	req, ok := f.reqs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *req
	return &cp, nil
}

func (f *fakeBookingRepo) UpdateStatusIfPending(_ context.Context, id, status, decisionNotes string) (*models.BookingRequest, error) {
	req, ok := f.reqs[id]
	if !ok || req.Status != models.BookingStatusPending {
		return nil, bookingRepo.ErrNotPending
	}
	now := time.Now()
	req.Status = status
	req.DecisionNotes = decisionNotes
	req.DecisionAt = &now
	cp := *req
	return &cp, nil
}

func (f *fakeBookingRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	for _, req := range f.reqs {
		if req.RestaurantID == restaurantID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByCustomer(_ context.Context, customerID string) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	for _, req := range f.reqs {
		if req.CustomerID == customerID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CreateMessage(_ context.Context, msg *models.BookingMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeBookingRepo) ListMessages(_ context.Context, bookingRequestID string) ([]models.BookingMessage, error) {
	var out []models.BookingMessage
	for _, m := range f.messages {
		if m.BookingRequestID == bookingRequestID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeEventRepo is an in-memory eventRepo.Repository with the unique
// bookingRequestId and (eventId, customerId) constraints.
type fakeEventRepo struct {
	events  map[string]*models.Event
	reviews []models.Review
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*models.Event{}}
}

func (f *fakeEventRepo) Create(_ context.Context, ev *models.Event) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	cp := *ev
	f.events[ev.ID] = &cp
	return nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id string) (*models.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *ev
	return &cp, nil
}

func (f *fakeEventRepo) FindByBookingRequestID(_ context.Context, bookingRequestID string) (*models.Event, error) {
	for _, ev := range f.events {
		if ev.BookingRequestID == bookingRequestID {
			cp := *ev
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) UpdateSpecs(_ context.Context, ev *models.Event) error {
	if _, ok := f.events[ev.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	cp := *ev
	f.events[ev.ID] = &cp
	return nil
}

func (f *fakeEventRepo) MarkCompleted(_ context.Context, id string) error {
	ev, ok := f.events[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	now := time.Now()
	ev.Status = models.EventStatusCompleted
	ev.CompletedAt = &now
	return nil
}

func (f *fakeEventRepo) CreateReview(_ context.Context, rv *models.Review) error {
	for _, ex := range f.reviews {
		if ex.EventID == rv.EventID && ex.CustomerID == rv.CustomerID {
			return eventRepo.ErrDuplicateReview
		}
	}
	if rv.ID == "" {
		rv.ID = uuid.New().String()
	}
	f.reviews = append(f.reviews, *rv)
	return nil
}

func (f *fakeEventRepo) ListReviews(_ context.Context, eventID string) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range f.reviews {
		if rv.EventID == eventID {
			out = append(out, rv)
		}
	}
	return out, nil
}

// fakeSpaceRepo / fakeAccountRepo serve the collaborator lookups.
type fakeSpaceRepo struct {
	spaces map[string]*models.Space
}

func (f *fakeSpaceRepo) FindByID(_ context.Context, id string) (*models.Space, error) {
	sp, ok := f.spaces[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *sp
	return &cp, nil
}

func (f *fakeSpaceRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]models.Space, error) {
	var out []models.Space
	for _, sp := range f.spaces {
		if sp.RestaurantID == restaurantID {
			out = append(out, *sp)
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	customers   map[string]*models.Customer
	restaurants map[string]*models.Restaurant
}

func (f *fakeAccountRepo) GetCustomerByID(_ context.Context, id string) (*models.Customer, error) {
	cu, ok := f.customers[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *cu
	return &cp, nil
}

func (f *fakeAccountRepo) GetRestaurantByID(_ context.Context, id string) (*models.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *r
	return &cp, nil
}
