package cli

import (
	"context"
	"fmt"

	"github.com/LabsDAO/data-gamify-network/internal/tracking"
)

// History lists the user's uploads, newest first.
func (a *App) History(ctx context.Context) error {
	if a.backend == nil {
		a.notifier.Info("No uploads backend configured; history is unavailable")
		return nil
	}

	records, err := a.tracker.History(ctx, a.userID)
	if err != nil {
		a.notifier.Error("Cannot load history: %v", err)
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No uploads yet")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(a.out, "%s  %-4s  %3dp  %s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Provider, r.PointsAwarded, r.FileName, r.UploadURL)
	}
	return nil
}

// Points shows the cumulative score and the trust level it earns.
func (a *App) Points(ctx context.Context) error {
	if a.backend == nil {
		a.notifier.Info("No uploads backend configured; points are unavailable")
		return nil
	}

	total, err := a.tracker.TotalPoints(ctx, a.userID)
	if err != nil {
		a.notifier.Error("Cannot load points: %v", err)
		return err
	}

	fmt.Fprintf(a.out, "%d points (%s)\n", total, tracking.TrustLevel(total))
	return nil
}

// WhoAmI prints the user id upload records are keyed by.
func (a *App) WhoAmI() error {
	fmt.Fprintln(a.out, a.userID)
	return nil
}
