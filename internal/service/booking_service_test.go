package service

import (
	"fmt"
	"net/http"
	"testing"

	"fleetbook/internal/db"
	"fleetbook/internal/entities"
	apperrors "fleetbook/internal/errors"
	"fleetbook/internal/repository"
	"fleetbook/internal/repository/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBooking(t *testing.T, id, vehicleID int, start, end string) db.Booking {
	t.Helper()
	iv, err := parseInterval(start, end)
	require.NoError(t, err)
	return db.Booking{
		ID:        id,
		VehicleID: vehicleID,
		Name:      "Test User",
		Email:     "test@example.com",
		Phone:     "+61400000000",
		StartDate: iv.Start,
		EndDate:   iv.End,
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookings := mocks.NewMockBookingStore(ctrl)
	vehicles := mocks.NewMockVehicleStore(ctrl)
	svc := NewBookingService(bookings, vehicles, nil)

	vehicles.EXPECT().GetVehicle(1).Return(&db.Vehicle{ID: 1, Model: "Ranger", Trim: "XLT", VIN: "VIN1"}, nil)
	bookings.EXPECT().ListBookings().Return([]db.Booking{
		mustBooking(t, 10, 1, "2025-06-01", "2025-06-05"),
	}, nil)
	bookings.EXPECT().CreateBooking(gomock.Any()).DoAndReturn(func(b *db.Booking) error {
		b.ID = 11
		return nil
	})

	created, err := svc.CreateBooking(entities.BookingRequest{
		VehicleID: 1,
		Name:      "Test User",
		Email:     "test@example.com",
		Phone:     "+61400000000",
		StartDate: "2025-06-06",
		EndDate:   "2025-06-08",
	})
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)
	assert.Equal(t, "2025-06-06", created.StartDate.String())
}

func TestCreateBookingConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookings := mocks.NewMockBookingStore(ctrl)
	vehicles := mocks.NewMockVehicleStore(ctrl)
	svc := NewBookingService(bookings, vehicles, nil)

	vehicles.EXPECT().GetVehicle(1).Return(&db.Vehicle{ID: 1, Model: "Ranger", Trim: "XLT", VIN: "VIN1"}, nil)
	bookings.EXPECT().ListBookings().Return([]db.Booking{
		mustBooking(t, 10, 1, "2025-06-10", "2025-06-12"),
	}, nil)

	_, err := svc.CreateBooking(entities.BookingRequest{
		VehicleID: 1,
		Name:      "Test User",
		Email:     "test@example.com",
		Phone:     "+61400000000",
		StartDate: "2025-06-11",
		EndDate:   "2025-06-13",
	})
	require.Error(t, err)

	var httpErr *apperrors.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
	assert.Contains(t, httpErr.Message, "2025-06-11")
	assert.Contains(t, httpErr.Message, "2025-06-12")
}

func TestCreateBookingNormalizesReversedDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookings := mocks.NewMockBookingStore(ctrl)
	vehicles := mocks.NewMockVehicleStore(ctrl)
	svc := NewBookingService(bookings, vehicles, nil)

	vehicles.EXPECT().GetVehicle(1).Return(&db.Vehicle{ID: 1}, nil)
	bookings.EXPECT().ListBookings().Return(nil, nil)
	bookings.EXPECT().CreateBooking(gomock.Any()).Return(nil)

	created, err := svc.CreateBooking(entities.BookingRequest{
		VehicleID: 1,
		Name:      "Test User",
		Email:     "test@example.com",
		Phone:     "+61400000000",
		StartDate: "2025-06-08",
		EndDate:   "2025-06-06",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-06", created.StartDate.String())
	assert.Equal(t, "2025-06-08", created.EndDate.String())
}

func TestCreateBookingValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewBookingService(mocks.NewMockBookingStore(ctrl), mocks.NewMockVehicleStore(ctrl), nil)

	_, err := svc.CreateBooking(entities.BookingRequest{
		VehicleID: 1,
		StartDate: "2025-06-06",
		EndDate:   "2025-06-08",
	})
	var httpErr *apperrors.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	_, err = svc.CreateBooking(entities.BookingRequest{
		VehicleID: 1,
		Name:      "Test User",
		Email:     "test@example.com",
		Phone:     "+61400000000",
		StartDate: "not-a-date",
		EndDate:   "2025-06-08",
	})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCreateBookingUnknownVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookings := mocks.NewMockBookingStore(ctrl)
	vehicles := mocks.NewMockVehicleStore(ctrl)
	svc := NewBookingService(bookings, vehicles, nil)

	vehicles.EXPECT().GetVehicle(99).Return(nil, fmt.Errorf("vehicle 99: %w", repository.ErrNotFound))

	_, err := svc.CreateBooking(entities.BookingRequest{
		VehicleID: 99,
		Name:      "Test User",
		Email:     "test@example.com",
		Phone:     "+61400000000",
		StartDate: "2025-06-06",
		EndDate:   "2025-06-08",
	})
	var httpErr *apperrors.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestUpdateBookingExcludesItselfFromConflictCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookings := mocks.NewMockBookingStore(ctrl)
	vehicles := mocks.NewMockVehicleStore(ctrl)
	svc := NewBookingService(bookings, vehicles, nil)

	current := mustBooking(t, 10, 1, "2025-06-10", "2025-06-12")
	bookings.EXPECT().GetBooking(10).Return(&current, nil)
	bookings.EXPECT().ListBookings().Return([]db.Booking{current}, nil)
	bookings.EXPECT().UpdateBooking(gomock.Any()).Return(nil)

	// Shifting the same booking by one day overlaps its own old range; that
	// must not count as a conflict.
	updated, err := svc.UpdateBooking(10, entities.BookingRequest{
		Name:      "Test User",
		Email:     "test@example.com",
		Phone:     "+61400000000",
		StartDate: "2025-06-11",
		EndDate:   "2025-06-13",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-11", updated.StartDate.String())
}

func TestUpdateBookingConflictWithOther(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookings := mocks.NewMockBookingStore(ctrl)
	vehicles := mocks.NewMockVehicleStore(ctrl)
	svc := NewBookingService(bookings, vehicles, nil)

	current := mustBooking(t, 10, 1, "2025-06-10", "2025-06-12")
	other := mustBooking(t, 11, 1, "2025-06-14", "2025-06-16")
	bookings.EXPECT().GetBooking(10).Return(&current, nil)
	bookings.EXPECT().ListBookings().Return([]db.Booking{current, other}, nil)

	_, err := svc.UpdateBooking(10, entities.BookingRequest{
		Name:      "Test User",
		Email:     "test@example.com",
		Phone:     "+61400000000",
		StartDate: "2025-06-12",
		EndDate:   "2025-06-14",
	})
	var httpErr *apperrors.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestDeleteBookingNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookings := mocks.NewMockBookingStore(ctrl)
	svc := NewBookingService(bookings, mocks.NewMockVehicleStore(ctrl), nil)

	bookings.EXPECT().GetBooking(77).Return(nil, fmt.Errorf("booking 77: %w", repository.ErrNotFound))

	err := svc.DeleteBooking(77)
	var httpErr *apperrors.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
