package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"warebill/internal/domain/entities"
	"warebill/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidContainerCode   = errors.New("invalid container code")
	ErrInvalidContainerKind   = errors.New("invalid container kind")
	ErrContainerKindMismatch  = errors.New("container exists with a different kind")
	ErrContainerNotFound      = errors.New("container not found")
	ErrInvalidChildWeight     = errors.New("invalid child weight")
	ErrChildAlreadyAttached   = errors.New("child already attached to another parent")
)

// Accepted code formats. Parent containers come in two label formats used on
// the floor: the short alphanumeric form (SB + 5 digits) and the
// prefixed-numeric form (PB- + 7 digits). Child units carry CU + 7 digits.
// Digit counts are exact; anything else is rejected before any lookup.
var (
	codeCharsetRe    = regexp.MustCompile(`^[A-Z0-9-]+$`)
	parentShortRe    = regexp.MustCompile(`^SB[0-9]{5}$`)
	parentPrefixedRe = regexp.MustCompile(`^PB-[0-9]{7}$`)
	childCodeRe      = regexp.MustCompile(`^CU[0-9]{7}$`)
)

// NormalizeContainerCode trims, uppercases and charset-checks a scanned code.
// The charset check runs before any storage access so injection-style
// payloads (markup, SQL metacharacters) never reach a query.
func NormalizeContainerCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" || !codeCharsetRe.MatchString(code) {
		return "", ErrInvalidContainerCode
	}
	return code, nil
}

// ValidateContainerCode enforces the kind-specific format on a normalized code.
func ValidateContainerCode(code string, kind entities.ContainerKind) error {
	switch kind {
	case entities.ContainerKindParent:
		if parentShortRe.MatchString(code) || parentPrefixedRe.MatchString(code) {
			return nil
		}
	case entities.ContainerKindChild:
		if childCodeRe.MatchString(code) {
			return nil
		}
	default:
		return ErrInvalidContainerKind
	}
	return ErrInvalidContainerCode
}

// IContainerUseCase is the container registry: resolve-or-create by scanned
// code, and attachment of child units to their parent.

type IContainerUseCase interface {
	ResolveOrCreate(ctx context.Context, code string, kind entities.ContainerKind) (entities.Container, error)
	AttachChild(ctx context.Context, parentCode, childCode string, weightKg float64) (entities.Container, error)
	GetByID(ctx context.Context, id string) (entities.Container, error)
}

type ContainerUseCase struct {
	repo interfaces.IContainerRepository
}

var _ IContainerUseCase = (*ContainerUseCase)(nil)

func NewContainerUseCase(repo interfaces.IContainerRepository) *ContainerUseCase {
	return &ContainerUseCase{repo: repo}
}

// ResolveOrCreate returns the container for a scanned code, creating it on
// first sight. Idempotent under concurrency: the unique code key decides the
// winner and the loser falls back to a fresh lookup.
func (u *ContainerUseCase) ResolveOrCreate(ctx context.Context, code string, kind entities.ContainerKind) (entities.Container, error) {
	if u.repo == nil {
		return entities.Container{}, errors.New("container repository not configured")
	}
	normalized, err := NormalizeContainerCode(code)
	if err != nil {
		return entities.Container{}, err
	}
	if err := ValidateContainerCode(normalized, kind); err != nil {
		return entities.Container{}, err
	}

	existing, err := u.repo.GetByCode(ctx, normalized)
	if err != nil {
		return entities.Container{}, err
	}
	if existing.ID != "" {
		if existing.Kind != kind {
			return entities.Container{}, ErrContainerKindMismatch
		}
		return existing, nil
	}

	now := time.Now().UTC()
	c := entities.Container{
		ID:        uuid.NewString(),
		Code:      normalized,
		Kind:      kind,
		Status:    entities.ContainerStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, c)
	if err == nil {
		log.Printf("[container][usecase] registered code=%s kind=%s id=%s", normalized, kind, created.ID)
		return created, nil
	}
	if !errors.Is(err, interfaces.ErrConflict) {
		return entities.Container{}, err
	}

	// Lost the first-sight race; somebody else inserted this code just now.
	winner, err := u.repo.GetByCode(ctx, normalized)
	if err != nil {
		return entities.Container{}, err
	}
	if winner.ID == "" {
		return entities.Container{}, ErrContainerNotFound
	}
	if winner.Kind != kind {
		return entities.Container{}, ErrContainerKindMismatch
	}
	return winner, nil
}

// AttachChild registers the child unit under its parent container and rolls
// the child's count and weight into the parent. Re-scanning an attached child
// against the same parent is a no-op.
func (u *ContainerUseCase) AttachChild(ctx context.Context, parentCode, childCode string, weightKg float64) (entities.Container, error) {
	if u.repo == nil {
		return entities.Container{}, errors.New("container repository not configured")
	}
	if weightKg < 0 {
		return entities.Container{}, ErrInvalidChildWeight
	}

	parent, err := u.ResolveOrCreate(ctx, parentCode, entities.ContainerKindParent)
	if err != nil {
		return entities.Container{}, err
	}
	child, err := u.ResolveOrCreate(ctx, childCode, entities.ContainerKindChild)
	if err != nil {
		return entities.Container{}, err
	}

	if child.ParentCode != "" {
		if child.ParentCode == parent.Code {
			return parent, nil
		}
		return entities.Container{}, ErrChildAlreadyAttached
	}

	updated, err := u.repo.AttachChild(ctx, parent.Code, child.Code, weightKg)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Container{}, ErrChildAlreadyAttached
		}
		return entities.Container{}, err
	}
	log.Printf("[container][usecase] child attached parent=%s child=%s weight_kg=%v child_count=%d",
		parent.Code, child.Code, weightKg, updated.ChildCount)
	return updated, nil
}

func (u *ContainerUseCase) GetByID(ctx context.Context, id string) (entities.Container, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Container{}, ErrContainerNotFound
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Container{}, err
	}
	if c.ID == "" {
		return entities.Container{}, ErrContainerNotFound
	}
	return c, nil
}
