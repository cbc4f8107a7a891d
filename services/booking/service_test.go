package booking

import (
	"sync"
	"testing"

	bookingRepo "smarttour/database/repository/booking"
	tourRepo "smarttour/database/repository/tour"
	vehicleRepo "smarttour/database/repository/vehicle"
	"smarttour/models"

	"go.uber.org/zap"
)

// ---- fakes ----

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByDriver(driverID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.DriverID == driverID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) AssignDriver(id, driverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		b.DriverID = driverID
	}
	return nil
}

func (r *fakeBookingRepo) UpdateStatusIf(id, expected, next string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.BookingStatus != expected {
		return false, nil
	}
	b.BookingStatus = next
	return true, nil
}

func (r *fakeBookingRepo) CancelIfActive(id, reason string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return false, nil
	}
	if b.BookingStatus != string(StatusConfirmed) && b.BookingStatus != string(StatusInProgress) {
		return false, nil
	}
	b.BookingStatus = string(StatusCancelled)
	b.CancellationReason = reason
	return true, nil
}

func (r *fakeBookingRepo) SetPaymentStatus(id, paymentStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		b.PaymentStatus = paymentStatus
	}
	return nil
}

type fakeTourRepo struct {
	tours map[string]*models.Tour
}

func (r *fakeTourRepo) Create(t *models.Tour) error { return nil }
func (r *fakeTourRepo) Update(t *models.Tour) error { return nil }
func (r *fakeTourRepo) Delete(id string) error      { return nil }
func (r *fakeTourRepo) GetByID(id string) (*models.Tour, error) {
	return r.tours[id], nil
}
func (r *fakeTourRepo) GetAll(filter tourRepo.TourFilter) ([]models.Tour, error) { return nil, nil }
func (r *fakeTourRepo) SetImage(id, imageURL string) error                       { return nil }

type fakeVehicleRepo struct {
	vehicles map[string]*models.Vehicle
}

func (r *fakeVehicleRepo) Create(v *models.Vehicle) error { return nil }
func (r *fakeVehicleRepo) Update(v *models.Vehicle) error { return nil }
func (r *fakeVehicleRepo) Delete(id string) error         { return nil }
func (r *fakeVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	return r.vehicles[id], nil
}
func (r *fakeVehicleRepo) GetAll(filter vehicleRepo.VehicleFilter) ([]models.Vehicle, error) {
	return nil, nil
}
func (r *fakeVehicleRepo) SetStatus(id, status string) error  { return nil }
func (r *fakeVehicleRepo) SetImage(id, imageURL string) error { return nil }

type fakeDriverRepo struct {
	mu      sync.Mutex
	drivers map[string]*models.Driver
	trips   map[string]int
}

func (r *fakeDriverRepo) Create(d *models.Driver) error { return nil }
func (r *fakeDriverRepo) Update(d *models.Driver) error { return nil }
func (r *fakeDriverRepo) GetByID(id string) (*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drivers[id], nil
}
func (r *fakeDriverRepo) GetByUserID(userID string) (*models.Driver, error) { return nil, nil }
func (r *fakeDriverRepo) GetAll(status string) ([]models.Driver, error)     { return nil, nil }
func (r *fakeDriverRepo) IncrementTrips(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.trips == nil {
		r.trips = make(map[string]int)
	}
	r.trips[id]++
	return nil
}
func (r *fakeDriverRepo) AppendReview(id string, review models.DriverReview) error { return nil }

var _ bookingRepo.BookingRepository = (*fakeBookingRepo)(nil)

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeDriverRepo) {
	repo := newFakeBookingRepo()
	drivers := &fakeDriverRepo{drivers: map[string]*models.Driver{
		"d1": {ID: "d1", UserID: "driver-user"},
	}}
	svc := &DefaultBookingService{
		Repo: repo,
		TourRepo: &fakeTourRepo{tours: map[string]*models.Tour{
			"t1": {ID: "t1", Name: "Coorg Coffee Trail"},
		}},
		VehicleRepo: &fakeVehicleRepo{vehicles: map[string]*models.Vehicle{
			"v1": {ID: "v1", DailyRatePerDay: 2200, RatePerKm: 9, Capacity: 12},
		}},
		DriverRepo: drivers,
		Logger:     zap.NewNop(),
	}
	return svc, repo, drivers
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		TourID:             "t1",
		VehicleID:          "v1",
		StartDate:          "2026-02-15",
		EndDate:            "2026-02-18",
		NumberOfPassengers: 2,
		Passengers: []models.Passenger{
			{Name: "Asha", Age: 31, Email: "asha@example.com"},
			{Name: "Ravi", Age: 34, Phone: "+919812345678"},
		},
		EstimatedKms:    150,
		FoodPreferences: models.FoodPreferences{Breakfast: true, Dinner: true},
	}
}

// ---- tests ----

func TestCreateBooking(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		svc, repo, _ := newTestService()
		b, err := svc.CreateBooking("u1", validRequest())
		if err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
		if b.NumberOfDays != 3 {
			t.Errorf("NumberOfDays = %d, want 3", b.NumberOfDays)
		}
		if b.BookingStatus != string(StatusConfirmed) {
			t.Errorf("BookingStatus = %q, want confirmed", b.BookingStatus)
		}
		if b.PaymentStatus != models.PaymentPending {
			t.Errorf("PaymentStatus = %q, want pending", b.PaymentStatus)
		}
		// worked example: 3 days, 150 km at the v1 rates, food active
		if b.CostBreakdown.TotalAmount != 11859 {
			t.Errorf("TotalAmount = %v, want 11859", b.CostBreakdown.TotalAmount)
		}
		if b.AdvanceAmount+b.RemainingAmount != b.CostBreakdown.TotalAmount {
			t.Errorf("advance %v + remaining %v != total %v",
				b.AdvanceAmount, b.RemainingAmount, b.CostBreakdown.TotalAmount)
		}
		if b.Reference == "" {
			t.Error("booking reference is empty")
		}
		stored, _ := repo.GetByID(b.ID)
		if stored == nil {
			t.Fatal("booking not persisted")
		}
	})

	t.Run("unknown tour", func(t *testing.T) {
		svc, _, _ := newTestService()
		req := validRequest()
		req.TourID = "nope"
		_, err := svc.CreateBooking("u1", req)
		if CodeOf(err) != CodeNotFound {
			t.Errorf("error code = %q, want %q", CodeOf(err), CodeNotFound)
		}
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		svc, _, _ := newTestService()
		req := validRequest()
		req.VehicleID = "nope"
		_, err := svc.CreateBooking("u1", req)
		if CodeOf(err) != CodeNotFound {
			t.Errorf("error code = %q, want %q", CodeOf(err), CodeNotFound)
		}
	})

	t.Run("passenger count mismatch", func(t *testing.T) {
		svc, _, _ := newTestService()
		req := validRequest()
		req.NumberOfPassengers = 3
		_, err := svc.CreateBooking("u1", req)
		if CodeOf(err) != CodeValidation {
			t.Errorf("error code = %q, want %q", CodeOf(err), CodeValidation)
		}
	})

	t.Run("equal dates rejected", func(t *testing.T) {
		svc, _, _ := newTestService()
		req := validRequest()
		req.EndDate = req.StartDate
		_, err := svc.CreateBooking("u1", req)
		if CodeOf(err) != CodeInvalidDateRange {
			t.Errorf("error code = %q, want %q", CodeOf(err), CodeInvalidDateRange)
		}
	})
}

func TestGetBookingVisibility(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.Create(&models.Booking{ID: "b1", UserID: "u1", DriverID: "d1", BookingStatus: string(StatusConfirmed)})

	if _, err := svc.GetBooking(CustomerActor("u1"), "b1"); err != nil {
		t.Errorf("owner should see booking: %v", err)
	}
	if _, err := svc.GetBooking(DriverActor("driver-user", "d1"), "b1"); err != nil {
		t.Errorf("assigned driver should see booking: %v", err)
	}
	if _, err := svc.GetBooking(AdminActor("admin"), "b1"); err != nil {
		t.Errorf("admin should see booking: %v", err)
	}
	if _, err := svc.GetBooking(CustomerActor("u2"), "b1"); CodeOf(err) != CodeForbidden {
		t.Errorf("stranger error code = %q, want %q", CodeOf(err), CodeForbidden)
	}
	if _, err := svc.GetBooking(AdminActor("admin"), "missing"); CodeOf(err) != CodeNotFound {
		t.Errorf("missing error code = %q, want %q", CodeOf(err), CodeNotFound)
	}
}

func TestAssignDriver(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.Create(&models.Booking{ID: "b1", UserID: "u1", BookingStatus: string(StatusConfirmed)})

	if _, err := svc.AssignDriver(CustomerActor("u1"), "b1", "d1"); CodeOf(err) != CodeForbidden {
		t.Errorf("customer assign error code = %q, want %q", CodeOf(err), CodeForbidden)
	}
	if _, err := svc.AssignDriver(AdminActor("admin"), "b1", "ghost"); CodeOf(err) != CodeNotFound {
		t.Errorf("unknown driver error code = %q, want %q", CodeOf(err), CodeNotFound)
	}
	b, err := svc.AssignDriver(AdminActor("admin"), "b1", "d1")
	if err != nil {
		t.Fatalf("AssignDriver: %v", err)
	}
	if b.DriverID != "d1" {
		t.Errorf("DriverID = %q, want d1", b.DriverID)
	}
}

func TestTransition(t *testing.T) {
	t.Run("driver runs the trip to completion", func(t *testing.T) {
		svc, repo, drivers := newTestService()
		repo.Create(&models.Booking{ID: "b1", UserID: "u1", DriverID: "d1", BookingStatus: string(StatusConfirmed)})
		actor := DriverActor("driver-user", "d1")

		b, err := svc.Transition(actor, "b1", StatusInProgress, "")
		if err != nil {
			t.Fatalf("start trip: %v", err)
		}
		if b.BookingStatus != string(StatusInProgress) {
			t.Errorf("status = %q, want in-progress", b.BookingStatus)
		}

		b, err = svc.Transition(actor, "b1", StatusCompleted, "")
		if err != nil {
			t.Fatalf("complete trip: %v", err)
		}
		if b.BookingStatus != string(StatusCompleted) {
			t.Errorf("status = %q, want completed", b.BookingStatus)
		}
		if drivers.trips["d1"] != 1 {
			t.Errorf("driver trips = %d, want 1", drivers.trips["d1"])
		}
	})

	t.Run("cancel requires a reason", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.Create(&models.Booking{ID: "b1", UserID: "u1", BookingStatus: string(StatusConfirmed)})
		_, err := svc.Transition(CustomerActor("u1"), "b1", StatusCancelled, "")
		if CodeOf(err) != CodeValidation {
			t.Errorf("error code = %q, want %q", CodeOf(err), CodeValidation)
		}
	})

	t.Run("cancel records the reason", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.Create(&models.Booking{ID: "b1", UserID: "u1", BookingStatus: string(StatusConfirmed)})
		b, err := svc.Transition(CustomerActor("u1"), "b1", StatusCancelled, "plans changed")
		if err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if b.CancellationReason != "plans changed" {
			t.Errorf("CancellationReason = %q", b.CancellationReason)
		}
		stored, _ := repo.GetByID("b1")
		if stored.BookingStatus != string(StatusCancelled) {
			t.Errorf("stored status = %q, want cancelled", stored.BookingStatus)
		}
	})

	t.Run("completed booking cannot restart", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.Create(&models.Booking{ID: "b1", UserID: "u1", DriverID: "d1", BookingStatus: string(StatusCompleted)})
		_, err := svc.Transition(AdminActor("admin"), "b1", StatusInProgress, "")
		if CodeOf(err) != CodeInvalidTransition {
			t.Errorf("error code = %q, want %q", CodeOf(err), CodeInvalidTransition)
		}
	})

	t.Run("cancelled booking stays cancelled", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.Create(&models.Booking{ID: "b1", UserID: "u1", BookingStatus: string(StatusCancelled)})
		_, err := svc.Transition(AdminActor("admin"), "b1", StatusCancelled, "again")
		if CodeOf(err) != CodeInvalidTransition {
			t.Errorf("error code = %q, want %q", CodeOf(err), CodeInvalidTransition)
		}
	})

	t.Run("confirmed is not a transition target", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.Create(&models.Booking{ID: "b1", UserID: "u1", BookingStatus: string(StatusInProgress)})
		_, err := svc.Transition(AdminActor("admin"), "b1", StatusConfirmed, "")
		if CodeOf(err) != CodeValidation {
			t.Errorf("error code = %q, want %q", CodeOf(err), CodeValidation)
		}
	})

	t.Run("concurrent completions yield one winner", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.Create(&models.Booking{ID: "b1", UserID: "u1", DriverID: "d1", BookingStatus: string(StatusInProgress)})
		actor := AdminActor("admin")

		const n = 8
		errs := make(chan error, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Transition(actor, "b1", StatusCompleted, "")
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		wins := 0
		for err := range errs {
			if err == nil {
				wins++
				continue
			}
			if CodeOf(err) != CodeInvalidTransition {
				t.Errorf("loser error code = %q, want %q", CodeOf(err), CodeInvalidTransition)
			}
		}
		if wins != 1 {
			t.Errorf("winners = %d, want exactly 1", wins)
		}
	})
}
