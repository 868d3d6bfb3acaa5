package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/LabsDAO/data-gamify-network/internal/storage/oort"
)

func checkMark(ok bool) string {
	if ok {
		return "ok"
	}
	return "FAIL"
}

// Probe runs the OORT connectivity test and prints the step-by-step outcome.
func (a *App) Probe(ctx context.Context) error {
	prober := oort.NewProber(a.oortCreds.Get(ctx), a.logger)
	if a.config.ProbeStepTimeout > 0 {
		prober.StepTimeout = a.config.ProbeStepTimeout
	}

	status := prober.TestConnection(ctx)

	fmt.Fprintf(a.out, "credentials valid:  %s\n", checkMark(status.Details.CredentialsValid))
	fmt.Fprintf(a.out, "bucket accessible:  %s\n", checkMark(status.Details.BucketAccessible))
	fmt.Fprintf(a.out, "write permission:   %s\n", checkMark(status.Details.WritePermission))
	if status.Details.CORSEnabled != nil {
		fmt.Fprintf(a.out, "cross-origin reads: %s (heuristic)\n", checkMark(*status.Details.CORSEnabled))
	}

	if status.IsValid {
		a.notifier.Success("%s", status.Message)
		return nil
	}

	if status.Details.ErrorDetails != "" {
		fmt.Fprintf(a.out, "error: %s\n", status.Details.ErrorDetails)
	}
	// surfacing the visible buckets helps diagnose a misconfigured target
	if !status.Details.BucketAccessible && len(status.Details.AvailableBuckets) > 0 {
		fmt.Fprintf(a.out, "buckets visible to these credentials: %s\n",
			strings.Join(status.Details.AvailableBuckets, ", "))
	}
	a.notifier.Error("%s", status.Message)
	return nil
}
