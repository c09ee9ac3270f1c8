package usecase

import (
	"context"
	"sync"
	"time"

	"warebill/internal/domain/entities"
	"warebill/internal/usecase/interfaces"
)

// memStore is a mutex-guarded in-memory stand-in for the DynamoDB tables.
// Its conditional writes mirror the real repositories: unique-key inserts and
// the multi-item link/unlink commits fail with interfaces.ErrConflict exactly
// when the storage conditions would, which is what lets the concurrency tests
// exercise the engine's race handling without a database.
type memStore struct {
	mu sync.Mutex

	containers       map[string]entities.Container // by code
	containerCodeByID map[string]string
	bills            map[string]entities.Bill // by id
	billIDByCode     map[string]string
	assignments      map[string]entities.Assignment // by composite id
	claims           map[string]entities.ContainerClaim // by container id
	audits           []entities.AuditEntry

	// failOn injects a storage error for a named operation.
	failOn map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		containers:        map[string]entities.Container{},
		containerCodeByID: map[string]string{},
		bills:             map[string]entities.Bill{},
		billIDByCode:      map[string]string{},
		assignments:       map[string]entities.Assignment{},
		claims:            map[string]entities.ContainerClaim{},
		failOn:            map[string]error{},
	}
}

func (s *memStore) failInjected(op string) error {
	if err, ok := s.failOn[op]; ok {
		return err
	}
	return nil
}

// seedContainer inserts a container directly, bypassing the usecase layer.
func (s *memStore) seedContainer(c entities.Container) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.containers[c.Code] = c
	s.containerCodeByID[c.ID] = c.Code
}

func (s *memStore) seedBill(b entities.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills[b.ID] = b
	s.billIDByCode[b.BillCode] = b.ID
}

func (s *memStore) getBill(id string) entities.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bills[id]
}

func (s *memStore) assignmentCount(billID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.assignments {
		if a.BillID == billID {
			n++
		}
	}
	return n
}

func (s *memStore) auditOutcomes() []entities.LinkOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.LinkOutcome, 0, len(s.audits))
	for _, e := range s.audits {
		out = append(out, e.Outcome)
	}
	return out
}

type fakeContainerRepository struct{ s *memStore }

var _ interfaces.IContainerRepository = (*fakeContainerRepository)(nil)

func (r *fakeContainerRepository) Create(_ context.Context, c entities.Container) (entities.Container, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("container.Create"); err != nil {
		return entities.Container{}, err
	}
	if _, exists := r.s.containers[c.Code]; exists {
		return entities.Container{}, interfaces.ErrConflict
	}
	r.s.containers[c.Code] = c
	r.s.containerCodeByID[c.ID] = c.Code
	return c, nil
}

func (r *fakeContainerRepository) GetByCode(_ context.Context, code string) (entities.Container, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("container.GetByCode"); err != nil {
		return entities.Container{}, err
	}
	return r.s.containers[code], nil
}

func (r *fakeContainerRepository) GetByID(_ context.Context, id string) (entities.Container, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.containers[r.s.containerCodeByID[id]], nil
}

func (r *fakeContainerRepository) AttachChild(_ context.Context, parentCode, childCode string, weightKg float64) (entities.Container, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("container.AttachChild"); err != nil {
		return entities.Container{}, err
	}
	parent, ok := r.s.containers[parentCode]
	if !ok {
		return entities.Container{}, interfaces.ErrConflict
	}
	child, ok := r.s.containers[childCode]
	if !ok || child.ParentCode != "" {
		return entities.Container{}, interfaces.ErrConflict
	}
	child.ParentCode = parentCode
	child.WeightKg = weightKg
	child.UpdatedAt = time.Now().UTC()
	parent.ChildCount++
	parent.WeightKg += weightKg
	parent.Status = entities.ContainerStatusInProgress
	parent.UpdatedAt = child.UpdatedAt
	r.s.containers[childCode] = child
	r.s.containers[parentCode] = parent
	return parent, nil
}

type fakeBillRepository struct{ s *memStore }

var _ interfaces.IBillRepository = (*fakeBillRepository)(nil)

func (r *fakeBillRepository) Create(_ context.Context, b entities.Bill) (entities.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("bill.Create"); err != nil {
		return entities.Bill{}, err
	}
	if _, exists := r.s.billIDByCode[b.BillCode]; exists {
		return entities.Bill{}, interfaces.ErrConflict
	}
	r.s.bills[b.ID] = b
	r.s.billIDByCode[b.BillCode] = b.ID
	return b, nil
}

func (r *fakeBillRepository) GetByID(_ context.Context, id string) (entities.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("bill.GetByID"); err != nil {
		return entities.Bill{}, err
	}
	return r.s.bills[id], nil
}

func (r *fakeBillRepository) GetByCode(_ context.Context, billCode string) (entities.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.bills[r.s.billIDByCode[billCode]], nil
}

func (r *fakeBillRepository) Complete(_ context.Context, id string) (entities.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("bill.Complete"); err != nil {
		return entities.Bill{}, err
	}
	b, ok := r.s.bills[id]
	if !ok || b.Status == entities.BillStatusCompleted {
		return entities.Bill{}, interfaces.ErrConflict
	}
	b.Status = entities.BillStatusCompleted
	b.UpdatedAt = time.Now().UTC()
	r.s.bills[id] = b
	return b, nil
}

func (r *fakeBillRepository) UpdateLinkedCount(_ context.Context, id string, linkedCount int) (entities.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("bill.UpdateLinkedCount"); err != nil {
		return entities.Bill{}, err
	}
	b, ok := r.s.bills[id]
	if !ok {
		return entities.Bill{}, interfaces.ErrConflict
	}
	b.LinkedCount = linkedCount
	b.UpdatedAt = time.Now().UTC()
	r.s.bills[id] = b
	return b, nil
}

func (r *fakeBillRepository) ListAll(_ context.Context) ([]entities.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("bill.ListAll"); err != nil {
		return nil, err
	}
	out := make([]entities.Bill, 0, len(r.s.bills))
	for _, b := range r.s.bills {
		out = append(out, b)
	}
	return out, nil
}

type fakeAssignmentRepository struct{ s *memStore }

var _ interfaces.IAssignmentRepository = (*fakeAssignmentRepository)(nil)

func (r *fakeAssignmentRepository) GetClaim(_ context.Context, containerID string) (entities.ContainerClaim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("assignment.GetClaim"); err != nil {
		return entities.ContainerClaim{}, err
	}
	return r.s.claims[containerID], nil
}

func (r *fakeAssignmentRepository) Get(_ context.Context, billID, containerID string) (entities.Assignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("assignment.Get"); err != nil {
		return entities.Assignment{}, err
	}
	return r.s.assignments[entities.AssignmentID(billID, containerID)], nil
}

func (r *fakeAssignmentRepository) CountByBill(_ context.Context, billID string) (int, error) {
	if err := r.s.failInjected("assignment.CountByBill"); err != nil {
		return 0, err
	}
	return r.s.assignmentCount(billID), nil
}

func (r *fakeAssignmentRepository) ListByBill(_ context.Context, billID string) ([]entities.Assignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("assignment.ListByBill"); err != nil {
		return nil, err
	}
	var out []entities.Assignment
	for _, a := range r.s.assignments {
		if a.BillID == billID {
			out = append(out, a)
		}
	}
	return out, nil
}

// CommitLink applies the same conditions the DynamoDB transaction carries:
// claim free, assignment absent, bill open and under capacity. All-or-nothing
// under the store lock.
func (r *fakeAssignmentRepository) CommitLink(_ context.Context, a entities.Assignment, audit entities.AuditEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("assignment.CommitLink"); err != nil {
		return err
	}
	if _, held := r.s.claims[a.ContainerID]; held {
		return interfaces.ErrConflict
	}
	if _, exists := r.s.assignments[a.ID]; exists {
		return interfaces.ErrConflict
	}
	b, ok := r.s.bills[a.BillID]
	if !ok || b.Status == entities.BillStatusCompleted || b.LinkedCount >= b.Capacity {
		return interfaces.ErrConflict
	}

	r.s.claims[a.ContainerID] = entities.ContainerClaim{
		ContainerID: a.ContainerID,
		BillID:      a.BillID,
		CreatedAt:   a.CreatedAt,
	}
	r.s.assignments[a.ID] = a
	b.LinkedCount++
	b.TotalWeight += a.WeightKg
	b.TotalChildUnits += a.ChildUnits
	if b.Status == entities.BillStatusNew {
		b.Status = entities.BillStatusProcessing
	}
	b.UpdatedAt = time.Now().UTC()
	r.s.bills[a.BillID] = b
	r.s.audits = append(r.s.audits, audit)
	return nil
}

func (r *fakeAssignmentRepository) CommitUnlink(_ context.Context, a entities.Assignment, audit entities.AuditEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("assignment.CommitUnlink"); err != nil {
		return err
	}
	if _, exists := r.s.assignments[a.ID]; !exists {
		return interfaces.ErrConflict
	}
	b, ok := r.s.bills[a.BillID]
	if !ok || b.Status == entities.BillStatusCompleted {
		return interfaces.ErrConflict
	}

	delete(r.s.assignments, a.ID)
	if claim, held := r.s.claims[a.ContainerID]; held && claim.BillID == a.BillID {
		delete(r.s.claims, a.ContainerID)
	}
	b.LinkedCount--
	b.TotalWeight -= a.WeightKg
	b.TotalChildUnits -= a.ChildUnits
	b.UpdatedAt = time.Now().UTC()
	r.s.bills[a.BillID] = b
	r.s.audits = append(r.s.audits, audit)
	return nil
}

func (r *fakeAssignmentRepository) ReleaseClaim(_ context.Context, containerID, billID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("assignment.ReleaseClaim"); err != nil {
		return err
	}
	if claim, held := r.s.claims[containerID]; held && claim.BillID == billID {
		delete(r.s.claims, containerID)
	}
	return nil
}

type fakeAuditRepository struct{ s *memStore }

var _ interfaces.IAuditRepository = (*fakeAuditRepository)(nil)

func (r *fakeAuditRepository) Append(_ context.Context, e entities.AuditEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failInjected("audit.Append"); err != nil {
		return err
	}
	r.s.audits = append(r.s.audits, e)
	return nil
}

func (r *fakeAuditRepository) ListByBill(_ context.Context, billID string) ([]entities.AuditEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.AuditEntry
	for _, e := range r.s.audits {
		if e.BillID == billID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeAuditRepository) ListByContainer(_ context.Context, containerID string) ([]entities.AuditEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.AuditEntry
	for _, e := range r.s.audits {
		if e.ContainerID == containerID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeDashboardCache struct {
	mu          sync.Mutex
	bills       map[string]entities.Bill
	invalidated []string
}

var _ interfaces.IDashboardCache = (*fakeDashboardCache)(nil)

func newFakeDashboardCache() *fakeDashboardCache {
	return &fakeDashboardCache{bills: map[string]entities.Bill{}}
}

func (c *fakeDashboardCache) GetBill(_ context.Context, billID string) (entities.Bill, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.bills[billID]
	return b, ok
}

func (c *fakeDashboardCache) SetBill(_ context.Context, b entities.Bill) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bills[b.ID] = b
}

func (c *fakeDashboardCache) InvalidateBill(_ context.Context, billID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bills, billID)
	c.invalidated = append(c.invalidated, billID)
	return nil
}
