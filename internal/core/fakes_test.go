package core

import (
	"context"
	"fmt"
	"io"
	"sort"

	"handmade-backend/internal/db"
	"handmade-backend/internal/models"
)

// In-memory repository fakes used across the service tests.

type fakeProductRepo struct {
	products map[string]*models.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*models.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product) (string, error) {
	r.nextID++
	product.ID = fmt.Sprintf("prod-%d", r.nextID)
	clone := *product
	r.products[product.ID] = &clone
	return product.ID, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	p, ok := r.products[productID]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*models.Product, error) {
	ids := make([]string, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*models.Product, 0, len(ids))
	for _, id := range ids {
		clone := *r.products[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return db.ErrNotFound
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, productID string) error {
	if _, ok := r.products[productID]; !ok {
		return db.ErrNotFound
	}
	delete(r.products, productID)
	return nil
}

func (r *fakeProductRepo) Watch(ctx context.Context) <-chan db.Snapshot[*models.Product] {
	ch := make(chan db.Snapshot[*models.Product])
	close(ch)
	return ch
}

type membershipKey struct {
	userID string
	kind   db.MembershipKind
}

type fakeMembershipRepo struct {
	entries map[membershipKey]map[string]*models.Entry
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{entries: make(map[membershipKey]map[string]*models.Entry)}
}

func (r *fakeMembershipRepo) bucket(userID string, kind db.MembershipKind) map[string]*models.Entry {
	key := membershipKey{userID: userID, kind: kind}
	if r.entries[key] == nil {
		r.entries[key] = make(map[string]*models.Entry)
	}
	return r.entries[key]
}

func (r *fakeMembershipRepo) List(ctx context.Context, userID string, kind db.MembershipKind) ([]*models.Entry, error) {
	bucket := r.bucket(userID, kind)
	ids := make([]string, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*models.Entry, 0, len(ids))
	for _, id := range ids {
		clone := *bucket[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeMembershipRepo) Exists(ctx context.Context, userID string, kind db.MembershipKind, productID string) (bool, error) {
	_, ok := r.bucket(userID, kind)[productID]
	return ok, nil
}

func (r *fakeMembershipRepo) Set(ctx context.Context, userID string, kind db.MembershipKind, entry *models.Entry) error {
	clone := *entry
	r.bucket(userID, kind)[entry.ProductID] = &clone
	return nil
}

func (r *fakeMembershipRepo) Delete(ctx context.Context, userID string, kind db.MembershipKind, productID string) error {
	delete(r.bucket(userID, kind), productID)
	return nil
}

func (r *fakeMembershipRepo) Clear(ctx context.Context, userID string, kind db.MembershipKind) error {
	r.entries[membershipKey{userID: userID, kind: kind}] = make(map[string]*models.Entry)
	return nil
}

func (r *fakeMembershipRepo) Watch(ctx context.Context, userID string, kind db.MembershipKind) <-chan db.Snapshot[*models.Entry] {
	ch := make(chan db.Snapshot[*models.Entry])
	close(ch)
	return ch
}

type fakeOrderRepo struct {
	orders map[string]*models.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *models.Order) (string, error) {
	r.nextID++
	order.ID = fmt.Sprintf("order-%d", r.nextID)
	clone := *order
	r.orders[order.ID] = &clone
	return order.ID, nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	o, ok := r.orders[orderID]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *fakeOrderRepo) List(ctx context.Context) ([]*models.Order, error) {
	out := make([]*models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	o, ok := r.orders[orderID]
	if !ok {
		return db.ErrNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, orderID string) error {
	if _, ok := r.orders[orderID]; !ok {
		return db.ErrNotFound
	}
	delete(r.orders, orderID)
	return nil
}

func (r *fakeOrderRepo) Watch(ctx context.Context) <-chan db.Snapshot[*models.Order] {
	ch := make(chan db.Snapshot[*models.Order])
	close(ch)
	return ch
}

type fakeFeedbackRepo struct {
	feedback map[string]*models.Feedback
	nextID   int
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{feedback: make(map[string]*models.Feedback)}
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, fb *models.Feedback) (string, error) {
	r.nextID++
	fb.ID = fmt.Sprintf("fb-%d", r.nextID)
	clone := *fb
	r.feedback[fb.ID] = &clone
	return fb.ID, nil
}

func (r *fakeFeedbackRepo) ListApproved(ctx context.Context) ([]*models.Feedback, error) {
	var out []*models.Feedback
	for _, fb := range r.feedback {
		if fb.Approved {
			clone := *fb
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) List(ctx context.Context) ([]*models.Feedback, error) {
	var out []*models.Feedback
	for _, fb := range r.feedback {
		clone := *fb
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeFeedbackRepo) SetApproved(ctx context.Context, feedbackID string, approved bool) error {
	fb, ok := r.feedback[feedbackID]
	if !ok {
		return db.ErrNotFound
	}
	fb.Approved = approved
	return nil
}

func (r *fakeFeedbackRepo) Delete(ctx context.Context, feedbackID string) error {
	if _, ok := r.feedback[feedbackID]; !ok {
		return db.ErrNotFound
	}
	delete(r.feedback, feedbackID)
	return nil
}

func (r *fakeFeedbackRepo) Watch(ctx context.Context) <-chan db.Snapshot[*models.Feedback] {
	ch := make(chan db.Snapshot[*models.Feedback])
	close(ch)
	return ch
}

type fakeMessageRepo struct {
	messages map[string]*models.Message
	nextID   int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[string]*models.Message)}
}

func (r *fakeMessageRepo) Create(ctx context.Context, msg *models.Message) (string, error) {
	r.nextID++
	msg.ID = fmt.Sprintf("msg-%d", r.nextID)
	clone := *msg
	r.messages[msg.ID] = &clone
	return msg.ID, nil
}

func (r *fakeMessageRepo) List(ctx context.Context) ([]*models.Message, error) {
	var out []*models.Message
	for _, msg := range r.messages {
		clone := *msg
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeMessageRepo) Delete(ctx context.Context, messageID string) error {
	if _, ok := r.messages[messageID]; !ok {
		return db.ErrNotFound
	}
	delete(r.messages, messageID)
	return nil
}

func (r *fakeMessageRepo) Watch(ctx context.Context) <-chan db.Snapshot[*models.Message] {
	ch := make(chan db.Snapshot[*models.Message])
	close(ch)
	return ch
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return db.ErrNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeUserRepo) Watch(ctx context.Context) <-chan db.Snapshot[*models.User] {
	ch := make(chan db.Snapshot[*models.User])
	close(ch)
	return ch
}

// fakeAuditService records the actions it sees.
type fakeAuditService struct {
	logs []models.AuditLog
}

func (s *fakeAuditService) CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error {
	s.logs = append(s.logs, logEntry)
	return nil
}

// fakeUploader returns a fixed hosted URL and remembers the last filename.
type fakeUploader struct {
	url          string
	lastFilename string
	calls        int
}

func (u *fakeUploader) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	u.calls++
	u.lastFilename = filename
	return u.url, nil
}
