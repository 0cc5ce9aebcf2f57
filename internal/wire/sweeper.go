package wire

import (
	"context"
	"log/slog"
	"time"

	"github.com/MUHULILAMRI/DoneFastAdmin/internal/config"
	portsched "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/scheduler"
	distsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/distribution"
)

// startSweeper polls the deadline scheduler and resolves expired offers as
// timeouts. The scheduler's claim is single-shot across instances, so running
// one sweeper per process is safe; whoever claims an entry processes it.
// An agent answering between claim and processing is also safe — the
// sent-status CAS turns the late timeout into a no-op.
func startSweeper(ctx context.Context, engine *distsvc.Service, sched portsched.DeadlineScheduler, cfg config.DistributionConfig) {
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			due, err := sched.ClaimDue(ctx, time.Now().UTC(), cfg.SweepBatch)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				slog.Error("sweeper: claiming due deadlines failed", "error", err)
				continue
			}

			for _, id := range due {
				if err := engine.HandleDeadline(ctx, id); err != nil {
					slog.Error("sweeper: deadline handling failed", "distribution_id", id, "error", err)
				}
			}
		}
	}()
}
