package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"martdelivery/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBackfillHandler struct{ mock.Mock }

func (m *MockBackfillHandler) Handle(ctx context.Context, cmd commands.BackfillMartLocationsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMartLocationBackfillJob_Run(t *testing.T) {
	handler := new(MockBackfillHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.BackfillMartLocationsCommand) bool {
		return cmd.BatchSize() == 20
	})).Return(3, nil).Once()
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("storage down")).Once()

	job := NewMartLocationBackfillJob(handler, "", 20, discardLogger())
	job.run()
	job.run()

	handler.AssertExpectations(t)
	assert.Equal(t, DefaultBackfillSchedule, job.schedule)
}

func TestMartLocationBackfillJob_Defaults(t *testing.T) {
	job := NewMartLocationBackfillJob(new(MockBackfillHandler), "*/30 * * * * *", 0, discardLogger())

	assert.Equal(t, commands.DefaultBackfillBatchSize, job.batchSize)
	assert.Equal(t, "*/30 * * * * *", job.schedule)
}

func TestMartLocationBackfillJob_StartRejectsBadSchedule(t *testing.T) {
	job := NewMartLocationBackfillJob(new(MockBackfillHandler), "every now and then", 10, discardLogger())

	require.Error(t, job.Start())
}

func TestMartLocationBackfillJob_StartStop(t *testing.T) {
	job := NewMartLocationBackfillJob(new(MockBackfillHandler), DefaultBackfillSchedule, 10, discardLogger())

	require.NoError(t, job.Start())
	job.Stop()
}
