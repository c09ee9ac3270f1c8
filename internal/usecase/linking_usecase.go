package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"warebill/internal/domain/entities"
	"warebill/internal/usecase/interfaces"
	"warebill/pkg/keyedmutex"

	"github.com/google/uuid"
)

// ILinkingUseCase is the atomic linking engine: the single operation that
// validates and commits one container->bill assignment under contention, and
// its inverse.
//
// Every outcome, success or failure, is expressed in the LinkResult taxonomy
// rather than as an error value: the caller always gets a result it can show
// a scanner, and retry policy stays entirely on the caller's side.

type ILinkingUseCase interface {
	LinkContainerToBill(ctx context.Context, billID, containerCode, actorID string) entities.LinkResult
	UnlinkContainerFromBill(ctx context.Context, billID, containerCode, actorID string) entities.LinkResult
}

type LinkingUseCase struct {
	containers  interfaces.IContainerRepository
	bills       interfaces.IBillRepository
	assignments interfaces.IAssignmentRepository
	audit       interfaces.IAuditRepository
	cache       interfaces.IDashboardCache
	locks       *keyedmutex.KeyedMutex
}

var _ ILinkingUseCase = (*LinkingUseCase)(nil)

func NewLinkingUseCase(
	containers interfaces.IContainerRepository,
	bills interfaces.IBillRepository,
	assignments interfaces.IAssignmentRepository,
	audit interfaces.IAuditRepository,
	cache interfaces.IDashboardCache,
	locks *keyedmutex.KeyedMutex,
) *LinkingUseCase {
	return &LinkingUseCase{
		containers:  containers,
		bills:       bills,
		assignments: assignments,
		audit:       audit,
		cache:       cache,
		locks:       locks,
	}
}

// LinkContainerToBill runs the precondition chain and, if everything holds,
// commits claim + assignment + bill counters + audit as one transaction.
//
// All checks and the commit happen inside the bill's key lock, so two
// concurrent attempts against the same bill can never both observe
// linked_count < capacity and both insert. Attempts against different bills
// never contend. The storage-level conditions repeat the same checks, so a
// second service instance racing past its own lock still cannot break the
// invariants; it just surfaces as a conflict mapped back onto the taxonomy.
func (u *LinkingUseCase) LinkContainerToBill(ctx context.Context, billID, containerCode, actorID string) entities.LinkResult {
	billID = strings.TrimSpace(billID)
	actorID = normalizeActorID(actorID)

	code, err := NormalizeContainerCode(containerCode)
	if err == nil {
		err = ValidateContainerCode(code, entities.ContainerKindParent)
	}
	if err != nil {
		// Malformed input never reaches a lookup.
		return u.fail(ctx, actorID, "", billID, entities.OutcomeContainerNotFound,
			fmt.Sprintf("container code %q is not a valid parent code", strings.TrimSpace(containerCode)))
	}
	if billID == "" {
		return u.fail(ctx, actorID, "", "", entities.OutcomeBillNotFound, "bill id is required")
	}

	release, err := u.locks.Lock(ctx, billID)
	if err != nil {
		if errors.Is(err, keyedmutex.ErrAcquireTimeout) {
			return u.fail(ctx, actorID, "", billID, entities.OutcomeLockTimeout,
				"bill is busy, try again")
		}
		return u.fail(ctx, actorID, "", billID, entities.OutcomeStorageError, err.Error())
	}
	defer release()

	// Step 1: resolve the container.
	container, err := u.containers.GetByCode(ctx, code)
	if err != nil {
		return u.fail(ctx, actorID, "", billID, entities.OutcomeStorageError, err.Error())
	}
	if container.ID == "" {
		return u.fail(ctx, actorID, "", billID, entities.OutcomeContainerNotFound,
			fmt.Sprintf("container %s not found", code))
	}
	if container.Kind != entities.ContainerKindParent {
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeWrongKind,
			fmt.Sprintf("container %s is a %s unit, only parent containers can be billed", code, container.Kind))
	}

	// Step 2: load the bill.
	bill, err := u.bills.GetByID(ctx, billID)
	if err != nil {
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeStorageError, err.Error())
	}
	if bill.ID == "" {
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeBillNotFound,
			fmt.Sprintf("bill %s not found", billID))
	}
	if bill.Status == entities.BillStatusCompleted {
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeBillClosed,
			fmt.Sprintf("bill %s is completed and accepts no further links", bill.BillCode))
	}

	// Steps 3-4: exclusivity through the container's claim.
	claim, err := u.assignments.GetClaim(ctx, container.ID)
	if err != nil {
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeStorageError, err.Error())
	}
	if claim.ContainerID != "" {
		if claim.BillID == bill.ID {
			// Retried request; nothing to change, nothing to recount.
			u.audit.Append(ctx, u.entry(actorID, container.ID, billID,
				entities.OutcomeAlreadyLinkedSameBill, fmt.Sprintf("container %s already on bill %s", code, bill.BillCode)))
			return entities.LinkResult{
				Outcome:               entities.OutcomeAlreadyLinkedSameBill,
				Message:               fmt.Sprintf("container %s is already linked to bill %s", code, bill.BillCode),
				ChildUnitsOnContainer: container.ChildCount,
				LinkedCountAfter:      bill.LinkedCount,
				Capacity:              bill.Capacity,
			}
		}

		other, err := u.bills.GetByID(ctx, claim.BillID)
		if err != nil {
			return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeStorageError, err.Error())
		}
		if other.ID != "" && other.Active() {
			return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeAlreadyLinkedOther,
				fmt.Sprintf("container %s is already linked to active bill %s", code, other.BillCode))
		}
		// Stale claim: the owning bill completed but its claim release was
		// interrupted. Drop it and continue; the assignment history stays.
		if err := u.assignments.ReleaseClaim(ctx, container.ID, claim.BillID); err != nil {
			return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeStorageError, err.Error())
		}
		log.Printf("[link][engine] released stale claim container_id=%s old_bill_id=%s", container.ID, claim.BillID)
	}

	// Step 5: capacity ceiling.
	if bill.LinkedCount >= bill.Capacity {
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeCapacityReached,
			fmt.Sprintf("bill %s is full (%d/%d)", bill.BillCode, bill.LinkedCount, bill.Capacity))
	}

	// Step 6: the four writes commit as one unit or none do.
	assignment := entities.Assignment{
		ID:            entities.AssignmentID(bill.ID, container.ID),
		BillID:        bill.ID,
		ContainerID:   container.ID,
		ContainerCode: container.Code,
		ChildUnits:    container.ChildCount,
		WeightKg:      container.WeightKg,
		ActorID:       actorID,
		CreatedAt:     time.Now().UTC(),
	}
	success := u.entry(actorID, container.ID, billID, entities.OutcomeSuccess,
		fmt.Sprintf("container %s linked to bill %s (%d/%d)", code, bill.BillCode, bill.LinkedCount+1, bill.Capacity))

	if err := u.assignments.CommitLink(ctx, assignment, success); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return u.resolveCommitConflict(ctx, actorID, container, bill)
		}
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeStorageError, err.Error())
	}

	log.Printf("[link][engine] linked container=%s bill_id=%s linked_count=%d capacity=%d actor=%s",
		code, bill.ID, bill.LinkedCount+1, bill.Capacity, actorID)
	u.invalidateAsync(bill.ID)

	return entities.LinkResult{
		Outcome:               entities.OutcomeSuccess,
		Message:               fmt.Sprintf("container %s linked to bill %s", code, bill.BillCode),
		ChildUnitsOnContainer: container.ChildCount,
		LinkedCountAfter:      bill.LinkedCount + 1,
		Capacity:              bill.Capacity,
	}
}

// resolveCommitConflict re-inspects state after the transactional commit was
// rejected. Inside the per-bill lock this only happens when another service
// instance won a cross-instance race; the re-read tells us which condition
// fired so the caller gets the precise outcome instead of a generic error.
func (u *LinkingUseCase) resolveCommitConflict(ctx context.Context, actorID string, container entities.Container, bill entities.Bill) entities.LinkResult {
	claim, err := u.assignments.GetClaim(ctx, container.ID)
	if err == nil && claim.ContainerID != "" {
		if claim.BillID == bill.ID {
			return entities.LinkResult{
				Outcome:               entities.OutcomeAlreadyLinkedSameBill,
				Message:               fmt.Sprintf("container %s is already linked to bill %s", container.Code, bill.BillCode),
				ChildUnitsOnContainer: container.ChildCount,
				LinkedCountAfter:      bill.LinkedCount,
				Capacity:              bill.Capacity,
			}
		}
		return u.fail(ctx, actorID, container.ID, bill.ID, entities.OutcomeAlreadyLinkedOther,
			fmt.Sprintf("container %s was just claimed by another bill", container.Code))
	}

	fresh, err := u.bills.GetByID(ctx, bill.ID)
	if err == nil && fresh.ID != "" && fresh.Status == entities.BillStatusCompleted {
		return u.fail(ctx, actorID, container.ID, bill.ID, entities.OutcomeBillClosed,
			fmt.Sprintf("bill %s is completed and accepts no further links", bill.BillCode))
	}
	return u.fail(ctx, actorID, container.ID, bill.ID, entities.OutcomeCapacityReached,
		fmt.Sprintf("bill %s is full (%d/%d)", bill.BillCode, bill.Capacity, bill.Capacity))
}

// UnlinkContainerFromBill removes an assignment explicitly. The deletion and
// the counter rollback commit atomically; the audit trail keeps both the
// original link entry and the unlink entry.
func (u *LinkingUseCase) UnlinkContainerFromBill(ctx context.Context, billID, containerCode, actorID string) entities.LinkResult {
	billID = strings.TrimSpace(billID)
	actorID = normalizeActorID(actorID)

	code, err := NormalizeContainerCode(containerCode)
	if err == nil {
		err = ValidateContainerCode(code, entities.ContainerKindParent)
	}
	if err != nil {
		return u.fail(ctx, actorID, "", billID, entities.OutcomeContainerNotFound,
			fmt.Sprintf("container code %q is not a valid parent code", strings.TrimSpace(containerCode)))
	}

	release, err := u.locks.Lock(ctx, billID)
	if err != nil {
		if errors.Is(err, keyedmutex.ErrAcquireTimeout) {
			return u.fail(ctx, actorID, "", billID, entities.OutcomeLockTimeout, "bill is busy, try again")
		}
		return u.fail(ctx, actorID, "", billID, entities.OutcomeStorageError, err.Error())
	}
	defer release()

	container, err := u.containers.GetByCode(ctx, code)
	if err != nil {
		return u.fail(ctx, actorID, "", billID, entities.OutcomeStorageError, err.Error())
	}
	if container.ID == "" {
		return u.fail(ctx, actorID, "", billID, entities.OutcomeContainerNotFound,
			fmt.Sprintf("container %s not found", code))
	}

	bill, err := u.bills.GetByID(ctx, billID)
	if err != nil {
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeStorageError, err.Error())
	}
	if bill.ID == "" {
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeBillNotFound,
			fmt.Sprintf("bill %s not found", billID))
	}
	if bill.Status == entities.BillStatusCompleted {
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeBillClosed,
			fmt.Sprintf("bill %s is completed; its assignments are frozen", bill.BillCode))
	}

	assignment, err := u.assignments.Get(ctx, billID, container.ID)
	if err != nil {
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeStorageError, err.Error())
	}
	if assignment.ID == "" {
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeNotLinked,
			fmt.Sprintf("container %s is not linked to bill %s", code, bill.BillCode))
	}

	unlinked := u.entry(actorID, container.ID, billID, entities.OutcomeUnlinked,
		fmt.Sprintf("container %s unlinked from bill %s", code, bill.BillCode))
	if err := u.assignments.CommitUnlink(ctx, assignment, unlinked); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeNotLinked,
				fmt.Sprintf("container %s is no longer linked to bill %s", code, bill.BillCode))
		}
		return u.fail(ctx, actorID, container.ID, billID, entities.OutcomeStorageError, err.Error())
	}

	log.Printf("[link][engine] unlinked container=%s bill_id=%s actor=%s", code, bill.ID, actorID)
	u.invalidateAsync(bill.ID)

	return entities.LinkResult{
		Outcome:               entities.OutcomeUnlinked,
		Message:               fmt.Sprintf("container %s unlinked from bill %s", code, bill.BillCode),
		ChildUnitsOnContainer: container.ChildCount,
		LinkedCountAfter:      bill.LinkedCount - 1,
		Capacity:              bill.Capacity,
	}
}

// fail records a failure audit entry (best-effort, outside any transaction)
// and builds the typed result. Precondition failures leave no partial writes.
func (u *LinkingUseCase) fail(ctx context.Context, actorID, containerID, billID string, outcome entities.LinkOutcome, message string) entities.LinkResult {
	if err := u.audit.Append(ctx, u.entry(actorID, containerID, billID, outcome, message)); err != nil {
		log.Printf("[link][engine] failure audit write failed outcome=%s bill_id=%s err=%v", outcome, billID, err)
	}
	log.Printf("[link][engine] attempt rejected outcome=%s bill_id=%s container_id=%s actor=%s msg=%s",
		outcome, billID, containerID, actorID, message)
	return entities.LinkResult{Outcome: outcome, Message: message}
}

func (u *LinkingUseCase) entry(actorID, containerID, billID string, outcome entities.LinkOutcome, message string) entities.AuditEntry {
	return entities.AuditEntry{
		ID:          uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		ActorID:     actorID,
		ContainerID: containerID,
		BillID:      billID,
		Outcome:     outcome,
		Message:     message,
	}
}

// invalidateAsync drops the bill's dashboard snapshot without holding up the
// response. Not part of the transaction on purpose: the cache is best-effort.
func (u *LinkingUseCase) invalidateAsync(billID string) {
	if u.cache == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := u.cache.InvalidateBill(ctx, billID); err != nil {
			log.Printf("[link][engine] cache invalidation failed bill_id=%s err=%v", billID, err)
		}
	}()
}

func normalizeActorID(actorID string) string {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return "anonymous"
	}
	return actorID
}
