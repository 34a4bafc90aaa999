package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/crumble/ent"
	"github.com/abhisek/crumble/ent/rewardclaim"
)

// claimRepo implements ClaimRepo using the ent client.
type claimRepo struct {
	client *ent.Client
}

// Record relies on the unique (profile, reward_id) index so that two
// processes claiming the same reward cannot both succeed.
func (r *claimRepo) Record(ctx context.Context, profile string, rewardID int, at time.Time) error {
	_, err := r.client.RewardClaim.Create().
		SetProfile(profile).
		SetRewardID(rewardID).
		SetClaimedAt(at.UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("reward %d for %q: %w", rewardID, profile, ErrDuplicateClaim)
		}
		return fmt.Errorf("record claim: %w", err)
	}
	return nil
}

func (r *claimRepo) ClaimedIDs(ctx context.Context, profile string) ([]int, error) {
	ids, err := r.client.RewardClaim.Query().
		Where(rewardclaim.Profile(profile)).
		Order(ent.Asc(rewardclaim.FieldRewardID)).
		Select(rewardclaim.FieldRewardID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("query claims: %w", err)
	}
	return ids, nil
}
