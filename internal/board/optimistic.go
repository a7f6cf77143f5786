package board

import (
	"context"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board/i18n"
)

// mutate is the optimistic update protocol shared by every board mutation:
// snapshot the affected collection, apply the change locally so the UI
// reflects it immediately, then persist. If persistence fails the snapshot
// is restored wholesale and the action's error message becomes visible.
func mutate[T any](ctx context.Context, c *Coordinator, action i18n.Action,
	collection *[]T, clone func([]T) []T,
	apply func([]T) []T, persist func(context.Context) error) error {

	snapshot := clone(*collection)
	*collection = apply(*collection)

	if err := persist(ctx); err != nil {
		*collection = snapshot
		c.fail(action, err)
		return err
	}
	return nil
}
