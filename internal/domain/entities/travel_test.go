package entities_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/domain/entities"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

func validTravelArgs() (driverID, carID, departure, arrival uuid.UUID, date time.Time) {
	return uuid.New(), uuid.New(), uuid.New(), uuid.New(), time.Now().UTC().Add(48 * time.Hour)
}

// TestNewTravel_Success tests successful travel creation.
func TestNewTravel_Success(t *testing.T) {
	driverID, carID, departure, arrival, date := validTravelArgs()

	travel, err := entities.NewTravel(driverID, carID, departure, arrival, date, 350, 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if travel.DriverID() != driverID {
		t.Errorf("DriverID = %v, want %v", travel.DriverID(), driverID)
	}
	if travel.Kms() != 350 {
		t.Errorf("Kms = %v, want 350", travel.Kms())
	}
	if travel.Seats() != 3 {
		t.Errorf("Seats = %v, want 3", travel.Seats())
	}
	if travel.ID() == uuid.Nil {
		t.Error("Travel ID should be assigned")
	}
	if travel.CreatedAt().IsZero() {
		t.Error("CreatedAt should be set")
	}
}

// TestNewTravel_NilIDs tests that all references are required.
func TestNewTravel_NilIDs(t *testing.T) {
	driverID, carID, departure, arrival, date := validTravelArgs()

	tests := []struct {
		name                                string
		driver, car, departureID, arrivalID uuid.UUID
	}{
		{"nil driver", uuid.Nil, carID, departure, arrival},
		{"nil car", driverID, uuid.Nil, departure, arrival},
		{"nil departure", driverID, carID, uuid.Nil, arrival},
		{"nil arrival", driverID, carID, departure, uuid.Nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := entities.NewTravel(tt.driver, tt.car, tt.departureID, tt.arrivalID, date, 100, 2)
			if err != errors.ErrInvalidEntityID {
				t.Errorf("Expected ErrInvalidEntityID, got %v", err)
			}
		})
	}
}

// TestNewTravel_SameCity tests that departure and arrival must differ.
func TestNewTravel_SameCity(t *testing.T) {
	driverID, carID, departure, _, date := validTravelArgs()

	_, err := entities.NewTravel(driverID, carID, departure, departure, date, 100, 2)
	if err != errors.ErrSameCity {
		t.Errorf("Expected ErrSameCity, got %v", err)
	}
}

// TestNewTravel_PastDate tests that the departure date must be in the future.
func TestNewTravel_PastDate(t *testing.T) {
	driverID, carID, departure, arrival, _ := validTravelArgs()

	_, err := entities.NewTravel(driverID, carID, departure, arrival, time.Now().UTC().Add(-time.Hour), 100, 2)
	if err != errors.ErrTravelInPast {
		t.Errorf("Expected ErrTravelInPast, got %v", err)
	}
}

// TestNewTravel_InvalidDistance tests that distance must be positive.
func TestNewTravel_InvalidDistance(t *testing.T) {
	driverID, carID, departure, arrival, date := validTravelArgs()

	for _, kms := range []int{0, -50} {
		_, err := entities.NewTravel(driverID, carID, departure, arrival, date, kms, 2)
		if err != errors.ErrInvalidDistance {
			t.Errorf("kms=%d: expected ErrInvalidDistance, got %v", kms, err)
		}
	}
}

// TestNewTravel_SeatBounds tests the 1..8 seat range.
func TestNewTravel_SeatBounds(t *testing.T) {
	driverID, carID, departure, arrival, date := validTravelArgs()

	tests := []struct {
		seats   int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{4, false},
		{8, false},
		{9, true},
		{-1, true},
	}

	for _, tt := range tests {
		_, err := entities.NewTravel(driverID, carID, departure, arrival, date, 100, tt.seats)
		if (err != nil) != tt.wantErr {
			t.Errorf("seats=%d: error = %v, wantErr %v", tt.seats, err, tt.wantErr)
		}
		if tt.wantErr && err != errors.ErrInvalidSeatCount {
			t.Errorf("seats=%d: expected ErrInvalidSeatCount, got %v", tt.seats, err)
		}
	}
}

// TestTravel_HasSeatLeft tests the capacity rule driving bookings.
// Business Rule: Active inscriptions never exceed the seats offered.
func TestTravel_HasSeatLeft(t *testing.T) {
	driverID, carID, departure, arrival, date := validTravelArgs()
	travel, _ := entities.NewTravel(driverID, carID, departure, arrival, date, 100, 3)

	tests := []struct {
		active int
		want   bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, false},
		{4, false},
	}

	for _, tt := range tests {
		if got := travel.HasSeatLeft(tt.active); got != tt.want {
			t.Errorf("HasSeatLeft(%d) = %v, want %v", tt.active, got, tt.want)
		}
	}
}

// TestNewTravel_DateNormalizedToUTC tests the stored date is UTC.
func TestNewTravel_DateNormalizedToUTC(t *testing.T) {
	driverID, carID, departure, arrival, _ := validTravelArgs()
	paris := time.FixedZone("CET", 3600)
	local := time.Now().In(paris).Add(48 * time.Hour)

	travel, err := entities.NewTravel(driverID, carID, departure, arrival, local, 100, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if travel.Date().Location() != time.UTC {
		t.Errorf("Date location = %v, want UTC", travel.Date().Location())
	}
	if !travel.Date().Equal(local) {
		t.Error("UTC conversion must preserve the instant")
	}
}

// TestReconstructTravel tests reconstruction from persistence.
func TestReconstructTravel(t *testing.T) {
	driverID, carID, departure, arrival, date := validTravelArgs()
	original, _ := entities.NewTravel(driverID, carID, departure, arrival, date, 420, 4)

	reconstructed := entities.ReconstructTravel(
		original.ID(),
		original.DriverID(),
		original.CarID(),
		original.DepartureCity(),
		original.ArrivalCity(),
		original.Date(),
		original.Kms(),
		original.Seats(),
		original.CreatedAt(),
	)

	if reconstructed.ID() != original.ID() {
		t.Error("ID mismatch after reconstruction")
	}
	if reconstructed.Seats() != 4 {
		t.Error("Seats mismatch after reconstruction")
	}
	if !reconstructed.Date().Equal(original.Date()) {
		t.Error("Date mismatch after reconstruction")
	}
}
