package commands

import (
	"errors"

	"martdelivery/internal/pkg/errs"
	"martdelivery/internal/pkg/guard"
)

const DefaultBackfillBatchSize = 50

var ErrBackfillMartLocationsCommandIsNotConstructed = errors.New(
	"BackfillMartLocationsCommand must be created via NewBackfillMartLocationsCommand constructor",
)

// BackfillMartLocationsCommand resolves the depot point of up to BatchSize marts
// that were stored without one.
type BackfillMartLocationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewBackfillMartLocationsCommand(batchSize int) (BackfillMartLocationsCommand, error) {
	if batchSize <= 0 {
		return BackfillMartLocationsCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}

	return BackfillMartLocationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c BackfillMartLocationsCommand) Validate() error {
	return c.guard.Validate(ErrBackfillMartLocationsCommandIsNotConstructed)
}

func (c BackfillMartLocationsCommand) BatchSize() int {
	return c.batchSize
}
