package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ramenmap/internal/entities"
	"ramenmap/internal/hours"
	"ramenmap/internal/repository"
)

// FlagStore records which shops have opening hours the evaluator cannot
// fully understand.
type FlagStore interface {
	GetFlaggedShopIDs(ctx context.Context) ([]int, error)
	UpdateHoursFlags(ctx context.Context, ids []int, flagged bool) error
}

type JobService struct {
	shops    ShopStore
	flags    FlagStore
	notifier Notifier
}

func NewJobService(shops ShopStore, flags FlagStore, notifier Notifier) *JobService {
	if notifier == nil {
		notifier = MultiNotifier{}
	}
	return &JobService{shops: shops, flags: flags, notifier: notifier}
}

// AuditOpeningHours lints every shop's opening hours, stores the flags and
// notifies admins about shops that became flagged since the last run.
func (s *JobService) AuditOpeningHours(ctx context.Context) (*entities.AuditReport, error) {
	slog.Info("hours audit: checking opening hours")

	shops, err := s.shops.ListShops(ctx, repository.ShopFilter{})
	if err != nil {
		return nil, fmt.Errorf("hours audit: failed to list shops: %w", err)
	}
	previous, err := s.flags.GetFlaggedShopIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("hours audit: failed to get flagged shops: %w", err)
	}
	wasFlagged := make(map[int]bool, len(previous))
	for _, id := range previous {
		wasFlagged[id] = true
	}

	report := &entities.AuditReport{Checked: len(shops), Flagged: []entities.FlaggedShop{}}
	var newlyFlagged, cleared []int
	var fresh []entities.FlaggedShop
	for _, shop := range shops {
		var issues []hours.Issue
		if shop.OpeningHours.Valid {
			issues = hours.Lint(shop.OpeningHours.String)
		}
		if len(issues) == 0 {
			if wasFlagged[shop.ID] {
				cleared = append(cleared, shop.ID)
			}
			continue
		}
		flagged := entities.FlaggedShop{ID: shop.ID, Name: shop.Name, Issues: toIssues(issues)}
		report.Flagged = append(report.Flagged, flagged)
		if !wasFlagged[shop.ID] {
			newlyFlagged = append(newlyFlagged, shop.ID)
			fresh = append(fresh, flagged)
		}
	}

	if err := s.flags.UpdateHoursFlags(ctx, newlyFlagged, true); err != nil {
		return nil, fmt.Errorf("hours audit: failed to flag shops: %w", err)
	}
	if err := s.flags.UpdateHoursFlags(ctx, cleared, false); err != nil {
		return nil, fmt.Errorf("hours audit: failed to clear flags: %w", err)
	}
	report.NewlyFlagged = len(newlyFlagged)
	report.Cleared = len(cleared)

	slog.Info("hours audit: done",
		slog.Int("checked", report.Checked),
		slog.Int("flagged", len(report.Flagged)),
		slog.Int("newly_flagged", report.NewlyFlagged),
		slog.Int("cleared", report.Cleared))

	if len(fresh) > 0 {
		subject := fmt.Sprintf("Ramen Map: %d shop(s) have opening hours that need fixing", len(fresh))
		if err := s.notifier.Notify(ctx, subject, auditBody(fresh)); err != nil {
			slog.Error("hours audit: notification failed", slog.Any("error", err))
		}
	}
	return report, nil
}

func auditBody(flagged []entities.FlaggedShop) string {
	var b strings.Builder
	b.WriteString("The following shops have opening hours that the open-status check skips:\n\n")
	for _, f := range flagged {
		fmt.Fprintf(&b, "#%d %s\n", f.ID, f.Name)
		for _, issue := range f.Issues {
			fmt.Fprintf(&b, "  - %s: %s\n", issue.Segment, issue.Reason)
		}
	}
	return b.String()
}
