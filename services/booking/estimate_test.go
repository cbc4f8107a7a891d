package booking

import "testing"

func TestEstimateMatchesCreatePricing(t *testing.T) {
	svc, _, _ := newTestService()
	req := validRequest()

	quote, err := svc.Estimate(EstimateRequest{
		VehicleID:       req.VehicleID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		EstimatedKms:    req.EstimatedKms,
		FoodPreferences: req.FoodPreferences,
		Passengers:      req.NumberOfPassengers,
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if quote.QuoteID == "" {
		t.Error("quote id is empty")
	}

	b, err := svc.CreateBooking("u1", req)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if quote.CostBreakdown != b.CostBreakdown {
		t.Errorf("estimate breakdown %+v differs from booking breakdown %+v",
			quote.CostBreakdown, b.CostBreakdown)
	}
	if quote.AdvanceAmount != b.AdvanceAmount || quote.RemainingAmount != b.RemainingAmount {
		t.Errorf("estimate split %v/%v differs from booking split %v/%v",
			quote.AdvanceAmount, quote.RemainingAmount, b.AdvanceAmount, b.RemainingAmount)
	}
	if quote.NumberOfDays != b.NumberOfDays {
		t.Errorf("estimate days %d differs from booking days %d", quote.NumberOfDays, b.NumberOfDays)
	}
}

func TestEstimateValidation(t *testing.T) {
	svc, _, _ := newTestService()

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := svc.Estimate(EstimateRequest{VehicleID: "ghost", StartDate: "2026-02-15", EndDate: "2026-02-17"})
		if CodeOf(err) != CodeNotFound {
			t.Errorf("error code = %q, want %q", CodeOf(err), CodeNotFound)
		}
	})

	t.Run("inverted dates", func(t *testing.T) {
		_, err := svc.Estimate(EstimateRequest{VehicleID: "v1", StartDate: "2026-02-17", EndDate: "2026-02-15"})
		if CodeOf(err) != CodeInvalidDateRange {
			t.Errorf("error code = %q, want %q", CodeOf(err), CodeInvalidDateRange)
		}
	})

	t.Run("negative kms", func(t *testing.T) {
		_, err := svc.Estimate(EstimateRequest{VehicleID: "v1", StartDate: "2026-02-15", EndDate: "2026-02-17", EstimatedKms: -1})
		if CodeOf(err) != CodeValidation {
			t.Errorf("error code = %q, want %q", CodeOf(err), CodeValidation)
		}
	})
}
