package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"warebill/internal/domain/entities"
	"warebill/internal/usecase/interfaces"
	"warebill/pkg/keyedmutex"

	"github.com/google/uuid"
)

var (
	ErrBillNotFound         = errors.New("bill not found")
	ErrInvalidBillCode      = errors.New("invalid bill code")
	ErrInvalidBillCapacity  = errors.New("invalid bill capacity")
	ErrBillCodeTaken        = errors.New("bill code already exists")
	ErrBillAlreadyCompleted = errors.New("bill already completed")
)

// IBillUseCase exposes the bill lifecycle: creation with a fixed capacity,
// the operator-triggered terminal transition, and reads. The implicit
// new -> processing advance happens inside the linking engine commit.

type IBillUseCase interface {
	Create(ctx context.Context, billCode string, capacity int) (entities.Bill, error)
	Complete(ctx context.Context, billID string) (entities.Bill, error)
	GetByID(ctx context.Context, billID string) (entities.Bill, error)
	GetByCode(ctx context.Context, billCode string) (entities.Bill, error)
}

type BillUseCase struct {
	repo        interfaces.IBillRepository
	assignments interfaces.IAssignmentRepository
	cache       interfaces.IDashboardCache
	locks       *keyedmutex.KeyedMutex
}

var _ IBillUseCase = (*BillUseCase)(nil)

func NewBillUseCase(
	repo interfaces.IBillRepository,
	assignments interfaces.IAssignmentRepository,
	cache interfaces.IDashboardCache,
	locks *keyedmutex.KeyedMutex,
) *BillUseCase {
	return &BillUseCase{repo: repo, assignments: assignments, cache: cache, locks: locks}
}

func (u *BillUseCase) Create(ctx context.Context, billCode string, capacity int) (entities.Bill, error) {
	billCode = strings.ToUpper(strings.TrimSpace(billCode))
	if billCode == "" {
		return entities.Bill{}, ErrInvalidBillCode
	}
	if capacity < 1 {
		return entities.Bill{}, ErrInvalidBillCapacity
	}

	now := time.Now().UTC()
	b := entities.Bill{
		ID:        uuid.NewString(),
		BillCode:  billCode,
		Status:    entities.BillStatusNew,
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Bill{}, ErrBillCodeTaken
		}
		return entities.Bill{}, err
	}
	log.Printf("[bill][usecase] created bill_id=%s bill_code=%s capacity=%d", created.ID, created.BillCode, created.Capacity)
	return created, nil
}

// Complete is the terminal transition: afterwards no link attempt succeeds.
// It takes the bill's key lock so it cannot interleave with a live linking
// commit, then releases the bill's container claims so those containers
// become linkable to future bills. The assignment rows themselves are kept.
func (u *BillUseCase) Complete(ctx context.Context, billID string) (entities.Bill, error) {
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return entities.Bill{}, ErrBillNotFound
	}

	release, err := u.locks.Lock(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	defer release()

	current, err := u.repo.GetByID(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if current.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	if current.Status == entities.BillStatusCompleted {
		return entities.Bill{}, ErrBillAlreadyCompleted
	}

	completed, err := u.repo.Complete(ctx, billID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Bill{}, ErrBillAlreadyCompleted
		}
		return entities.Bill{}, err
	}
	log.Printf("[bill][usecase] completed bill_id=%s bill_code=%s linked_count=%d", completed.ID, completed.BillCode, completed.LinkedCount)

	// Release the claims held by this bill. Failures here are tolerable: the
	// linking engine treats a claim whose bill has completed as stale, and
	// the reconciliation pass sweeps leftovers.
	assignments, err := u.assignments.ListByBill(ctx, billID)
	if err != nil {
		log.Printf("[bill][usecase] claim release listing failed bill_id=%s err=%v", billID, err)
	} else {
		for _, a := range assignments {
			if err := u.assignments.ReleaseClaim(ctx, a.ContainerID, billID); err != nil {
				log.Printf("[bill][usecase] claim release failed bill_id=%s container_id=%s err=%v", billID, a.ContainerID, err)
			}
		}
	}

	if u.cache != nil {
		if err := u.cache.InvalidateBill(ctx, billID); err != nil {
			log.Printf("[bill][usecase] cache invalidation failed bill_id=%s err=%v", billID, err)
		}
	}
	return completed, nil
}

func (u *BillUseCase) GetByID(ctx context.Context, billID string) (entities.Bill, error) {
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return entities.Bill{}, ErrBillNotFound
	}

	if u.cache != nil {
		if cached, ok := u.cache.GetBill(ctx, billID); ok {
			return cached, nil
		}
	}

	b, err := u.repo.GetByID(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if b.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	if u.cache != nil {
		u.cache.SetBill(ctx, b)
	}
	return b, nil
}

func (u *BillUseCase) GetByCode(ctx context.Context, billCode string) (entities.Bill, error) {
	billCode = strings.ToUpper(strings.TrimSpace(billCode))
	if billCode == "" {
		return entities.Bill{}, ErrInvalidBillCode
	}
	b, err := u.repo.GetByCode(ctx, billCode)
	if err != nil {
		return entities.Bill{}, err
	}
	if b.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	return b, nil
}
