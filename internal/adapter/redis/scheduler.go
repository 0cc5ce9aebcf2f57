package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	portscheduler "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/scheduler"
)

const deadlineKey = "distribution:deadlines"

var _ portscheduler.DeadlineScheduler = (*Scheduler)(nil)

// Scheduler keeps offer deadlines in a Redis sorted set scored by expiry
// time in milliseconds. Claiming is a read followed by a per-member ZRem;
// ZRem returning 1 means this caller removed the entry and owns it, so an
// entry fires on exactly one instance.
type Scheduler struct {
	client *redis.Client
}

func NewScheduler(client *redis.Client) *Scheduler {
	return &Scheduler{client: client}
}

func (s *Scheduler) Schedule(ctx context.Context, distributionID uuid.UUID, fireAt time.Time) error {
	err := s.client.ZAdd(ctx, deadlineKey, redis.Z{
		Score:  float64(fireAt.UnixMilli()),
		Member: distributionID.String(),
	}).Err()
	if err != nil {
		return fmt.Errorf("scheduling deadline: %w", err)
	}
	return nil
}

func (s *Scheduler) Cancel(ctx context.Context, distributionID uuid.UUID) error {
	if err := s.client.ZRem(ctx, deadlineKey, distributionID.String()).Err(); err != nil {
		return fmt.Errorf("cancelling deadline: %w", err)
	}
	return nil
}

func (s *Scheduler) ClaimDue(ctx context.Context, now time.Time, limit int64) ([]uuid.UUID, error) {
	members, err := s.client.ZRangeByScore(ctx, deadlineKey, &redis.ZRangeBy{
		Min:    "-inf",
		Max:    fmt.Sprintf("%d", now.UnixMilli()),
		Offset: 0,
		Count:  limit,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("reading due deadlines: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	var claimed []uuid.UUID
	for _, m := range members {
		removed, err := s.client.ZRem(ctx, deadlineKey, m).Result()
		if err != nil {
			return claimed, fmt.Errorf("claiming deadline: %w", err)
		}
		if removed == 0 {
			// another instance claimed it first
			continue
		}
		id, err := uuid.Parse(m)
		if err != nil {
			// junk member, drop it
			continue
		}
		claimed = append(claimed, id)
	}
	return claimed, nil
}
