//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rooms-api/internal/domain/booking"
	"rooms-api/internal/infra"
	"rooms-api/internal/pkg/errs"
	"rooms-api/internal/usecase/commands"
	"rooms-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingViewReader struct {
	mock.Mock
}

func (m *MockBookingViewReader) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

var start = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func validParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		Title:   "Team sync",
		StartAt: start,
		EndAt:   start.Add(time.Hour),
		RoomID:  uuid.New(),
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("success returns the joined view", func(t *testing.T) {
		repo := new(MockBookingRepository)
		reader := new(MockBookingViewReader)
		uc := commands.NewBookingCommands(repo, reader)

		params := validParams()
		bookingID := uuid.New()
		view := &queries.BookingView{
			ID:       bookingID,
			Title:    params.Title,
			StartAt:  params.StartAt,
			EndAt:    params.EndAt,
			RoomID:   params.RoomID,
			RoomCode: "201",
			RoomName: "Конференц-зал",
		}

		repo.On("Create", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(bookingID, nil)
		reader.On("FindByID", mock.Anything, bookingID).Return(view, nil)

		got, err := uc.CreateBooking(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, view, got)
		repo.AssertExpectations(t)
		reader.AssertExpectations(t)
	})

	t.Run("invalid intervals never reach the repository", func(t *testing.T) {
		tests := []struct {
			name  string
			start time.Time
			end   time.Time
		}{
			{name: "start equals end", start: start, end: start},
			{name: "start after end", start: start.Add(time.Hour), end: start},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(MockBookingRepository)
				reader := new(MockBookingViewReader)
				uc := commands.NewBookingCommands(repo, reader)

				params := validParams()
				params.StartAt = tt.start
				params.EndAt = tt.end

				_, err := uc.CreateBooking(context.Background(), params)
				assert.ErrorIs(t, err, errs.ErrInvalidInterval)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("empty title is a validation error", func(t *testing.T) {
		repo := new(MockBookingRepository)
		reader := new(MockBookingViewReader)
		uc := commands.NewBookingCommands(repo, reader)

		params := validParams()
		params.Title = "   "

		_, err := uc.CreateBooking(context.Background(), params)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store conflict maps to booking conflict", func(t *testing.T) {
		repo := new(MockBookingRepository)
		reader := new(MockBookingViewReader)
		uc := commands.NewBookingCommands(repo, reader)

		repoErr := infra.WrapRepoErr("overlap", assert.AnError, infra.KindConflict)
		repo.On("Create", mock.Anything, mock.Anything).Return(uuid.Nil, repoErr)

		_, err := uc.CreateBooking(context.Background(), validParams())
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
		reader.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("foreign key violation maps to room not found", func(t *testing.T) {
		repo := new(MockBookingRepository)
		reader := new(MockBookingViewReader)
		uc := commands.NewBookingCommands(repo, reader)

		repoErr := infra.WrapRepoErr("no room", assert.AnError, infra.KindForeignKeyViolated)
		repo.On("Create", mock.Anything, mock.Anything).Return(uuid.Nil, repoErr)

		_, err := uc.CreateBooking(context.Background(), validParams())
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})

	t.Run("other store failure maps to database operation failed", func(t *testing.T) {
		repo := new(MockBookingRepository)
		reader := new(MockBookingViewReader)
		uc := commands.NewBookingCommands(repo, reader)

		repoErr := infra.WrapRepoErr("boom", assert.AnError)
		repo.On("Create", mock.Anything, mock.Anything).Return(uuid.Nil, repoErr)

		_, err := uc.CreateBooking(context.Background(), validParams())
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestDeleteBooking(t *testing.T) {
	t.Run("delete passes through", func(t *testing.T) {
		repo := new(MockBookingRepository)
		reader := new(MockBookingViewReader)
		uc := commands.NewBookingCommands(repo, reader)

		id := uuid.New()
		repo.On("Delete", mock.Anything, id).Return(nil)

		require.NoError(t, uc.DeleteBooking(context.Background(), id))
		repo.AssertExpectations(t)
	})

	t.Run("repeated delete of the same id succeeds", func(t *testing.T) {
		repo := new(MockBookingRepository)
		reader := new(MockBookingViewReader)
		uc := commands.NewBookingCommands(repo, reader)

		id := uuid.New()
		repo.On("Delete", mock.Anything, id).Return(nil).Twice()

		require.NoError(t, uc.DeleteBooking(context.Background(), id))
		require.NoError(t, uc.DeleteBooking(context.Background(), id))
		repo.AssertExpectations(t)
	})
}
