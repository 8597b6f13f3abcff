package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/audit"
	"github.com/attesto/attesto/internal/fault"
	"github.com/attesto/attesto/internal/pricing"
	"github.com/attesto/attesto/internal/quote"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=group
type Repository interface {
	GetGroup(ctx context.Context, id uuid.UUID) (*Group, error)
	ListGroups(ctx context.Context, quoteID uuid.UUID) ([]*Group, error)
	ListAssignments(ctx context.Context, groupID uuid.UUID) ([]*Assignment, error)
	GroupQuoteID(ctx context.Context, groupID uuid.UUID) (uuid.UUID, error)
	AssignmentRef(ctx context.Context, assignmentID uuid.UUID) (*AssignmentRef, error)

	// Begin opens a transaction holding the quote's advisory lock.
	Begin(ctx context.Context, quoteID uuid.UUID) (Tx, error)
}

// AssignmentRef locates an assignment without loading the whole row.
type AssignmentRef struct {
	QuoteID  uuid.UUID
	GroupID  uuid.UUID
	ItemType ItemType
	ItemID   uuid.UUID
}

type Tx interface {
	quote.TotalsTx
	PricingTx
	LineTx

	// PageAnalysis resolves the analysis a page belongs to, nil when
	// the page is standalone.
	PageAnalysis(ctx context.Context, pageID uuid.UUID) (*PageParent, error)
	// GroupPageAnalyses lists the distinct parent analyses of the pages
	// assigned to a group.
	GroupPageAnalyses(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)

	GetGroup(ctx context.Context, id uuid.UUID) (*Group, error)
	QuoteStatus(ctx context.Context, quoteID uuid.UUID) (quote.Status, error)
	InsertGroup(ctx context.Context, g *Group) error
	UpdateGroupFields(ctx context.Context, g *Group) error
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	// ItemQuote resolves which quote an item belongs to; ErrItemNotFound
	// when the item does not exist.
	ItemQuote(ctx context.Context, itemType ItemType, itemID uuid.UUID) (uuid.UUID, error)
	// CurrentAssignment returns the item's live assignment, or nil.
	CurrentAssignment(ctx context.Context, itemType ItemType, itemID uuid.UUID) (*Assignment, error)
	UpsertAssignment(ctx context.Context, a *Assignment) error
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
	DetachAssignments(ctx context.Context, groupID uuid.UUID) error
	SetAnalysisGroup(ctx context.Context, analysisID uuid.UUID, groupID *uuid.UUID) error
	ClearAnalysisGroup(ctx context.Context, groupID uuid.UUID) error

	Commit() error
	Rollback() error
}

type RateSource interface {
	ComplexityMultiplier(ctx context.Context, level pricing.Complexity) (decimal.Decimal, error)
	CertificationPrice(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
}

// TotalsRecalculator cascades a group change into the owning quote's
// totals inside the same transaction. Implemented by quote.Service.
type TotalsRecalculator interface {
	RecalculateWithin(ctx context.Context, tx quote.TotalsTx, quoteID uuid.UUID) (*quote.Totals, error)
}

type Service struct {
	repo     Repository
	rates    RateSource
	totals   TotalsRecalculator
	activity audit.Recorder
}

func NewService(repo Repository, rates RateSource, totals TotalsRecalculator, activity audit.Recorder) *Service {
	return &Service{repo: repo, rates: rates, totals: totals, activity: activity}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Group, error) {
	return s.repo.GetGroup(ctx, id)
}

func (s *Service) ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]*Group, error) {
	return s.repo.ListGroups(ctx, quoteID)
}

func (s *Service) ListAssignments(ctx context.Context, groupID uuid.UUID) ([]*Assignment, error) {
	return s.repo.ListAssignments(ctx, groupID)
}

type CreateParams struct {
	Label               string
	DocumentType        string
	Complexity          pricing.Complexity
	CertificationTypeID *uuid.UUID
}

// Create opens a new, empty document group. The complexity multiplier
// is resolved from the rate table now and re-resolved on every
// complexity correction, never carried stale.
func (s *Service) Create(ctx context.Context, quoteID uuid.UUID, params CreateParams, staffID string) (*Group, error) {
	if params.Label == "" {
		return nil, fault.Validationf("group label is required")
	}

	if !params.Complexity.Valid() {
		return nil, fault.Validationf("unknown complexity level %q", params.Complexity)
	}

	complexityMult, err := s.rates.ComplexityMultiplier(ctx, params.Complexity)
	if err != nil {
		return nil, fmt.Errorf("resolving complexity multiplier: %w", err)
	}

	certPrice := decimal.Zero
	if params.CertificationTypeID != nil {
		certPrice, err = s.rates.CertificationPrice(ctx, *params.CertificationTypeID)
		if err != nil {
			return nil, fmt.Errorf("resolving certification price: %w", err)
		}
	}

	tx, err := s.repo.Begin(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("begin quote tx: %w", err)
	}
	defer tx.Rollback()

	status, err := tx.QuoteStatus(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if status.Terminal() {
		return nil, fault.Validationf("quote %s is %s and cannot be changed", quoteID, status)
	}

	g := &Group{
		QuoteID:              quoteID,
		Label:                params.Label,
		DocumentType:         params.DocumentType,
		Complexity:           params.Complexity,
		ComplexityMultiplier: complexityMult,
		CertificationTypeID:  params.CertificationTypeID,
		CertificationPrice:   certPrice,
		BillablePages:        decimal.Zero,
		LineTotal:            decimal.Zero,
	}
	if err := tx.InsertGroup(ctx, g); err != nil {
		return nil, fmt.Errorf("inserting group: %w", err)
	}

	if _, err := s.totals.RecalculateWithin(ctx, tx, quoteID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit group create: %w", err)
	}

	s.activity.Record(ctx, audit.Event{
		QuoteID: &quoteID,
		StaffID: staffID,
		Action:  "group.created",
		Detail:  map[string]any{"group_id": g.ID.String(), "label": g.Label},
	})

	return g, nil
}

// Assign puts an item into a group, superseding any previous membership
// the item had. Both the losing and the gaining group are re-aggregated
// before the quote totals recompute, all in one transaction.
func (s *Service) Assign(ctx context.Context, groupID uuid.UUID, itemType ItemType, itemID uuid.UUID, staffID string, override *int) (*Assignment, error) {
	if !itemType.Valid() {
		return nil, fault.Validationf("unknown item type %q", itemType)
	}

	if override != nil && *override < 0 {
		return nil, fault.Validationf("word count override must not be negative")
	}

	quoteID, err := s.repo.GroupQuoteID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("begin quote tx: %w", err)
	}
	defer tx.Rollback()

	itemQuote, err := tx.ItemQuote(ctx, itemType, itemID)
	if err != nil {
		return nil, err
	}

	if itemQuote != quoteID {
		return nil, fault.Validationf("item belongs to a different quote")
	}

	// A file and its extracted pages must never both be grouped: the
	// file assignment carries the full word count, so grouping a page
	// alongside it would bill those words twice.
	var pageParent *PageParent

	switch itemType {
	case ItemFile:
		n, _, err := tx.GroupedPages(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("checking grouped pages: %w", err)
		}

		if n > 0 {
			return nil, fault.Validationf("file has pages assigned to groups; unassign them first")
		}

	case ItemPage:
		pageParent, err = tx.PageAnalysis(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("resolving page parent: %w", err)
		}

		if pageParent != nil && pageParent.GroupID != nil {
			return nil, fault.Validationf("the page's file is itself assigned to a group")
		}
	}

	prior, err := tx.CurrentAssignment(ctx, itemType, itemID)
	if err != nil {
		return nil, fmt.Errorf("reading current assignment: %w", err)
	}

	a := &Assignment{
		GroupID:           groupID,
		ItemType:          itemType,
		ItemID:            itemID,
		WordCountOverride: override,
		CreatedBy:         staffID,
	}
	if err := tx.UpsertAssignment(ctx, a); err != nil {
		return nil, fmt.Errorf("saving assignment: %w", err)
	}

	if itemType == ItemFile {
		gid := groupID
		if err := tx.SetAnalysisGroup(ctx, itemID, &gid); err != nil {
			return nil, fmt.Errorf("linking analysis to group: %w", err)
		}
	}

	if prior != nil && prior.GroupID != groupID {
		if _, err := Recalculate(ctx, tx, prior.GroupID); err != nil {
			return nil, err
		}
	}

	if _, err := Recalculate(ctx, tx, groupID); err != nil {
		return nil, err
	}

	// The grouped pages' words now bill through the group aggregate, so
	// the parent analysis line reprices from its remaining pages only.
	if pageParent != nil {
		if err := RepriceSplitLine(ctx, tx, pageParent.AnalysisID); err != nil {
			return nil, err
		}
	}

	if _, err := s.totals.RecalculateWithin(ctx, tx, quoteID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit assignment: %w", err)
	}

	s.activity.Record(ctx, audit.Event{
		QuoteID: &quoteID,
		StaffID: staffID,
		Action:  "group.item_assigned",
		Detail: map[string]any{
			"group_id":  groupID.String(),
			"item_type": string(itemType),
			"item_id":   itemID.String(),
		},
	})

	return a, nil
}

// Unassign removes an assignment. The group stays behind even when it
// becomes empty; empty groups are a visible state staff fill later.
func (s *Service) Unassign(ctx context.Context, assignmentID uuid.UUID, staffID string) error {
	ref, err := s.repo.AssignmentRef(ctx, assignmentID)
	if err != nil {
		return err
	}

	tx, err := s.repo.Begin(ctx, ref.QuoteID)
	if err != nil {
		return fmt.Errorf("begin quote tx: %w", err)
	}
	defer tx.Rollback()

	if err := tx.DeleteAssignment(ctx, assignmentID); err != nil {
		return err
	}

	switch ref.ItemType {
	case ItemFile:
		if err := tx.SetAnalysisGroup(ctx, ref.ItemID, nil); err != nil {
			return fmt.Errorf("unlinking analysis from group: %w", err)
		}

	case ItemPage:
		parent, err := tx.PageAnalysis(ctx, ref.ItemID)
		if err != nil {
			return fmt.Errorf("resolving page parent: %w", err)
		}

		// The page's words return from the group aggregate to the
		// parent analysis line.
		if parent != nil {
			if err := RepriceSplitLine(ctx, tx, parent.AnalysisID); err != nil {
				return err
			}
		}
	}

	if _, err := Recalculate(ctx, tx, ref.GroupID); err != nil {
		return err
	}

	if _, err := s.totals.RecalculateWithin(ctx, tx, ref.QuoteID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit unassignment: %w", err)
	}

	s.activity.Record(ctx, audit.Event{
		QuoteID: &ref.QuoteID,
		StaffID: staffID,
		Action:  "group.item_unassigned",
		Detail:  map[string]any{"group_id": ref.GroupID.String(), "item_id": ref.ItemID.String()},
	})

	return nil
}

type UpdateParams struct {
	Label               *string
	DocumentType        *string
	Complexity          *pricing.Complexity
	CertificationTypeID *uuid.UUID
}

// Update changes a group's descriptive or pricing fields. A complexity
// change re-derives the multiplier and a certification change
// re-fetches its price; both cascade into a group and quote recompute.
func (s *Service) Update(ctx context.Context, groupID uuid.UUID, params UpdateParams, staffID string) (*Group, error) {
	quoteID, err := s.repo.GroupQuoteID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("begin quote tx: %w", err)
	}
	defer tx.Rollback()

	g, err := tx.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if params.Label != nil {
		if *params.Label == "" {
			return nil, fault.Validationf("group label cannot be empty")
		}

		g.Label = *params.Label
	}

	if params.DocumentType != nil {
		g.DocumentType = *params.DocumentType
	}

	if params.Complexity != nil {
		if !params.Complexity.Valid() {
			return nil, fault.Validationf("unknown complexity level %q", *params.Complexity)
		}

		mult, err := s.rates.ComplexityMultiplier(ctx, *params.Complexity)
		if err != nil {
			return nil, fmt.Errorf("resolving complexity multiplier: %w", err)
		}

		g.Complexity = *params.Complexity
		g.ComplexityMultiplier = mult
	}

	if params.CertificationTypeID != nil {
		price, err := s.rates.CertificationPrice(ctx, *params.CertificationTypeID)
		if err != nil {
			return nil, fmt.Errorf("resolving certification price: %w", err)
		}

		g.CertificationTypeID = params.CertificationTypeID
		g.CertificationPrice = price
	}

	if err := tx.UpdateGroupFields(ctx, g); err != nil {
		return nil, fmt.Errorf("updating group: %w", err)
	}

	agg, err := Recalculate(ctx, tx, groupID)
	if err != nil {
		return nil, err
	}

	if _, err := s.totals.RecalculateWithin(ctx, tx, quoteID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit group update: %w", err)
	}

	g.WordCount = agg.WordCount
	g.BillablePages = agg.BillablePages
	g.LineTotal = agg.LineTotal

	s.activity.Record(ctx, audit.Event{
		QuoteID: &quoteID,
		StaffID: staffID,
		Action:  "group.updated",
		Detail:  map[string]any{"group_id": groupID.String()},
	})

	return g, nil
}

// Delete removes a group, detaching its assignments without touching
// the underlying files or pages. Quotes whose pricing is already
// finalized on a paid order refuse the delete.
func (s *Service) Delete(ctx context.Context, groupID uuid.UUID, staffID string) error {
	quoteID, err := s.repo.GroupQuoteID(ctx, groupID)
	if err != nil {
		return err
	}

	tx, err := s.repo.Begin(ctx, quoteID)
	if err != nil {
		return fmt.Errorf("begin quote tx: %w", err)
	}
	defer tx.Rollback()

	status, err := tx.QuoteStatus(ctx, quoteID)
	if err != nil {
		return err
	}

	switch status {
	case quote.StatusPaid, quote.StatusInProgress, quote.StatusCompleted:
		return fault.Validationf("quote %s has finalized pricing and its groups cannot be deleted", quoteID)
	case quote.StatusCancelled:
		return fault.Validationf("quote %s is cancelled", quoteID)
	}

	if err := tx.ClearAnalysisGroup(ctx, groupID); err != nil {
		return fmt.Errorf("unlinking analyses: %w", err)
	}

	splitParents, err := tx.GroupPageAnalyses(ctx, groupID)
	if err != nil {
		return fmt.Errorf("listing grouped page parents: %w", err)
	}

	if err := tx.DetachAssignments(ctx, groupID); err != nil {
		return fmt.Errorf("detaching assignments: %w", err)
	}

	// Pages detached from the dying group bill through their parent
	// analysis lines again.
	for _, analysisID := range splitParents {
		if err := RepriceSplitLine(ctx, tx, analysisID); err != nil {
			return err
		}
	}

	if err := tx.DeleteGroup(ctx, groupID); err != nil {
		return err
	}

	if _, err := s.totals.RecalculateWithin(ctx, tx, quoteID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit group delete: %w", err)
	}

	s.activity.Record(ctx, audit.Event{
		QuoteID: &quoteID,
		StaffID: staffID,
		Action:  "group.deleted",
		Detail:  map[string]any{"group_id": groupID.String()},
	})

	return nil
}

// RecalculateFromAssignments re-derives one group's aggregates and the
// owning quote's totals. Safe to call repeatedly.
func (s *Service) RecalculateFromAssignments(ctx context.Context, groupID uuid.UUID) (Aggregates, error) {
	quoteID, err := s.repo.GroupQuoteID(ctx, groupID)
	if err != nil {
		return Aggregates{}, err
	}

	tx, err := s.repo.Begin(ctx, quoteID)
	if err != nil {
		return Aggregates{}, fmt.Errorf("begin quote tx: %w", err)
	}
	defer tx.Rollback()

	agg, err := Recalculate(ctx, tx, groupID)
	if err != nil {
		return Aggregates{}, err
	}

	if _, err := s.totals.RecalculateWithin(ctx, tx, quoteID); err != nil {
		return Aggregates{}, err
	}

	if err := tx.Commit(); err != nil {
		return Aggregates{}, fmt.Errorf("commit group recompute: %w", err)
	}

	return agg, nil
}
