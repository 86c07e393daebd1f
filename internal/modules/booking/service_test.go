package booking

import (
	"context"
	"testing"

	"bookingservice/internal/domain"
	"bookingservice/internal/pkg/apperr"
	"bookingservice/internal/pkg/datetime"
	"bookingservice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock collaborators

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) FindOverlapping(ctx context.Context, propertyID int64, rng datetime.Range, activeOnly bool) ([]domain.Booking, error) {
	args := m.Called(ctx, propertyID, rng, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockBlockingFinder struct {
	mock.Mock
}

func (m *MockBlockingFinder) FindOverlapping(ctx context.Context, propertyID int64, rng datetime.Range) ([]domain.Blocking, error) {
	args := m.Called(ctx, propertyID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Blocking), args.Error(1)
}

type MockPropertyDirectory struct {
	mock.Mock
}

func (m *MockPropertyDirectory) GetByID(ctx context.Context, id *int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

// passthroughTx runs the unit of work directly, no transaction.
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func ptr(v int64) *int64 { return &v }

func validPayload() BookingPayload {
	return BookingPayload{
		Name:      "John Doe",
		StartDate: "2024-01-01 01:00:00",
		EndDate:   "2024-01-01 02:00:00",
		Property:  &PropertyPayload{ID: ptr(1)},
	}
}

func newTestService(bookings *MockBookingRepository, blockings *MockBlockingFinder, properties *MockPropertyDirectory) *Service {
	return NewService(bookings, blockings, properties, passthroughTx{})
}

func expectProperty(properties *MockPropertyDirectory) {
	properties.On("GetByID", mock.Anything, mock.Anything).
		Return(&domain.Property{ID: 1, Name: "Beach House"}, nil)
}

func TestService_Create_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	blockings := new(MockBlockingFinder)
	properties := new(MockPropertyDirectory)

	expectProperty(properties)
	bookings.On("FindOverlapping", mock.Anything, int64(1), mock.Anything, true).
		Return([]domain.Booking{}, nil)
	blockings.On("FindOverlapping", mock.Anything, int64(1), mock.Anything).
		Return([]domain.Blocking{}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(bookings, blockings, properties)
	b, err := svc.Create(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, int64(1), b.PropertyID)
	assert.False(t, b.IsCanceled)
	bookings.AssertExpectations(t)
	blockings.AssertExpectations(t)
}

func TestService_Create_RejectsCanceled(t *testing.T) {
	svc := newTestService(new(MockBookingRepository), new(MockBlockingFinder), new(MockPropertyDirectory))

	req := validPayload()
	req.IsCanceled = true
	_, err := svc.Create(context.Background(), req)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Cannot create a canceled booking", ae.Message)
}

func TestService_Create_BadDateFormat(t *testing.T) {
	properties := new(MockPropertyDirectory)
	expectProperty(properties)

	svc := newTestService(new(MockBookingRepository), new(MockBlockingFinder), properties)

	req := validPayload()
	req.StartDate = "2024/01/01 01:00:00"
	_, err := svc.Create(context.Background(), req)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Invalid date format, correct format is yyyy-MM-dd HH:mm:ss", ae.Message)
}

func TestService_Create_EndBeforeStart(t *testing.T) {
	properties := new(MockPropertyDirectory)
	expectProperty(properties)

	svc := newTestService(new(MockBookingRepository), new(MockBlockingFinder), properties)

	req := validPayload()
	req.StartDate = "2024-01-02 12:00:00"
	req.EndDate = "2024-01-02 01:00:00"
	_, err := svc.Create(context.Background(), req)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Booking endDate must be after startDate", ae.Message)
}

func TestService_Create_EqualDatesRejected(t *testing.T) {
	properties := new(MockPropertyDirectory)
	expectProperty(properties)

	svc := newTestService(new(MockBookingRepository), new(MockBlockingFinder), properties)

	req := validPayload()
	req.EndDate = req.StartDate
	_, err := svc.Create(context.Background(), req)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Booking endDate must be after startDate", ae.Message)
}

func TestService_Create_PropertyNotFound(t *testing.T) {
	properties := new(MockPropertyDirectory)
	properties.On("GetByID", mock.Anything, mock.Anything).
		Return(nil, apperr.NotFound("Property id: %d not found", 99))

	svc := newTestService(new(MockBookingRepository), new(MockBlockingFinder), properties)

	req := validPayload()
	req.Property = &PropertyPayload{ID: ptr(99)}
	_, err := svc.Create(context.Background(), req)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.Equal(t, "Property id: 99 not found", ae.Message)
}

func TestService_Create_BookingCollision(t *testing.T) {
	bookings := new(MockBookingRepository)
	blockings := new(MockBlockingFinder)
	properties := new(MockPropertyDirectory)

	expectProperty(properties)
	bookings.On("FindOverlapping", mock.Anything, int64(1), mock.Anything, true).
		Return([]domain.Booking{{ID: 5}}, nil)

	svc := newTestService(bookings, blockings, properties)
	_, err := svc.Create(context.Background(), validPayload())

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Property is already booked for this period", ae.Message)
	// booking-vs-booking is checked first, blockings never consulted
	blockings.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_BlockingCollision(t *testing.T) {
	bookings := new(MockBookingRepository)
	blockings := new(MockBlockingFinder)
	properties := new(MockPropertyDirectory)

	expectProperty(properties)
	bookings.On("FindOverlapping", mock.Anything, int64(1), mock.Anything, true).
		Return([]domain.Booking{}, nil)
	blockings.On("FindOverlapping", mock.Anything, int64(1), mock.Anything).
		Return([]domain.Blocking{{ID: 3}}, nil)

	svc := newTestService(bookings, blockings, properties)
	_, err := svc.Create(context.Background(), validPayload())

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Property is blocked for this period", ae.Message)
}

func TestService_Update_KeepsOwnSlot(t *testing.T) {
	bookings := new(MockBookingRepository)
	blockings := new(MockBlockingFinder)
	properties := new(MockPropertyDirectory)

	existing := &domain.Booking{ID: 7, Name: "Old", PropertyID: 1}
	expectProperty(properties)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	// the only overlap match is the record itself
	bookings.On("FindOverlapping", mock.Anything, int64(1), mock.Anything, true).
		Return([]domain.Booking{{ID: 7}}, nil)
	blockings.On("FindOverlapping", mock.Anything, int64(1), mock.Anything).
		Return([]domain.Blocking{}, nil)
	bookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(bookings, blockings, properties)
	b, err := svc.Update(context.Background(), 7, validPayload())

	require.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)
	assert.Equal(t, "John Doe", b.Name)
	bookings.AssertExpectations(t)
}

func TestService_Update_CancelSkipsBlockingCheck(t *testing.T) {
	bookings := new(MockBookingRepository)
	blockings := new(MockBlockingFinder)
	properties := new(MockPropertyDirectory)

	existing := &domain.Booking{ID: 7, PropertyID: 1}
	expectProperty(properties)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	bookings.On("FindOverlapping", mock.Anything, int64(1), mock.Anything, true).
		Return([]domain.Booking{}, nil)
	bookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(bookings, blockings, properties)

	req := validPayload()
	req.IsCanceled = true
	b, err := svc.Update(context.Background(), 7, req)

	require.NoError(t, err)
	assert.True(t, b.IsCanceled)
	blockings.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(42)).Return(nil, repository.ErrNotFound)

	svc := newTestService(bookings, new(MockBlockingFinder), new(MockPropertyDirectory))
	_, err := svc.Update(context.Background(), 42, validPayload())

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.Equal(t, "Booking id: 42 not found", ae.Message)
}

func TestService_GetByID_IDRequired(t *testing.T) {
	svc := newTestService(new(MockBookingRepository), new(MockBlockingFinder), new(MockPropertyDirectory))

	_, err := svc.GetByID(context.Background(), 0)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Booking Id is required", ae.Message)
}

func TestService_GetByID_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(8)).Return(nil, repository.ErrNotFound)

	svc := newTestService(bookings, new(MockBlockingFinder), new(MockPropertyDirectory))
	_, err := svc.GetByID(context.Background(), 8)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Booking id: 8 not found", ae.Message)
}

func TestService_Delete_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(8)).Return(nil, repository.ErrNotFound)

	svc := newTestService(bookings, new(MockBlockingFinder), new(MockPropertyDirectory))
	err := svc.Delete(context.Background(), 8)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
}

func TestService_Delete_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(8)).Return(&domain.Booking{ID: 8}, nil)
	bookings.On("Delete", mock.Anything, int64(8)).Return(nil)

	svc := newTestService(bookings, new(MockBlockingFinder), new(MockPropertyDirectory))
	err := svc.Delete(context.Background(), 8)

	require.NoError(t, err)
	bookings.AssertExpectations(t)
}
