package booking

import (
	"math"
	"testing"
	"time"
)

func TestCalculateCost(t *testing.T) {
	t.Run("full breakdown with food", func(t *testing.T) {
		got := CalculateCost(PricingInput{
			VehicleDailyRate:      2200,
			VehicleRatePerKm:      9,
			NumberOfDays:          3,
			EstimatedKms:          150,
			FoodPreferencesActive: true,
			NumberOfPassengers:    4,
		})

		if got.TotalVehicleRent != 6600 {
			t.Errorf("TotalVehicleRent = %v, want 6600", got.TotalVehicleRent)
		}
		if got.KmBasedCharge != 1350 {
			t.Errorf("KmBasedCharge = %v, want 1350", got.KmBasedCharge)
		}
		if got.FoodCost != 1500 {
			t.Errorf("FoodCost = %v, want 1500", got.FoodCost)
		}
		if got.DriverCharges != 600 {
			t.Errorf("DriverCharges = %v, want 600", got.DriverCharges)
		}
		if got.Subtotal != 10050 {
			t.Errorf("Subtotal = %v, want 10050", got.Subtotal)
		}
		if got.GST != 1809 {
			t.Errorf("GST = %v, want 1809", got.GST)
		}
		if got.TotalAmount != 11859 {
			t.Errorf("TotalAmount = %v, want 11859", got.TotalAmount)
		}
	})

	t.Run("no food flags means no food charge", func(t *testing.T) {
		got := CalculateCost(PricingInput{
			VehicleDailyRate: 1000,
			VehicleRatePerKm: 5,
			NumberOfDays:     2,
			EstimatedKms:     100,
		})
		if got.FoodCost != 0 {
			t.Errorf("FoodCost = %v, want 0", got.FoodCost)
		}
		if got.Subtotal != 2000+500+400 {
			t.Errorf("Subtotal = %v, want 2900", got.Subtotal)
		}
	})

	t.Run("food charge ignores passenger count", func(t *testing.T) {
		base := PricingInput{
			VehicleDailyRate:      1000,
			NumberOfDays:          2,
			FoodPreferencesActive: true,
			NumberOfPassengers:    1,
		}
		solo := CalculateCost(base)
		base.NumberOfPassengers = 12
		group := CalculateCost(base)
		if solo.FoodCost != group.FoodCost {
			t.Errorf("FoodCost varies by passengers: %v vs %v", solo.FoodCost, group.FoodCost)
		}
	})

	t.Run("subtotal plus gst equals total", func(t *testing.T) {
		got := CalculateCost(PricingInput{
			VehicleDailyRate: 3137.5,
			VehicleRatePerKm: 7.25,
			NumberOfDays:     5,
			EstimatedKms:     412,
		})
		if got.Subtotal+got.GST != got.TotalAmount {
			t.Errorf("Subtotal+GST = %v, TotalAmount = %v", got.Subtotal+got.GST, got.TotalAmount)
		}
	})
}

func TestSplitAdvance(t *testing.T) {
	totals := []float64{11859, 100, 0.5, 33333.33, 999999.99}
	for _, total := range totals {
		advance, remaining := SplitAdvance(total)
		if advance+remaining != total {
			t.Errorf("SplitAdvance(%v): %v + %v != %v", total, advance, remaining, total)
		}
		if advance != math.Round(total*AdvanceRate) {
			t.Errorf("SplitAdvance(%v): advance = %v, want %v", total, advance, math.Round(total*AdvanceRate))
		}
	}
}

func TestNumberOfDays(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad test date %q: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		want    int
		wantErr bool
	}{
		{"two full days", day("2026-02-15"), day("2026-02-17"), 2, false},
		{"single day", day("2026-02-15"), day("2026-02-16"), 1, false},
		{"partial day rounds up", day("2026-02-15").Add(10 * time.Hour), day("2026-02-16").Add(14 * time.Hour), 2, false},
		{"under a day rounds to one", day("2026-02-15").Add(10 * time.Hour), day("2026-02-16").Add(9 * time.Hour), 1, false},
		{"same instant", day("2026-02-15"), day("2026-02-15"), 0, true},
		{"end before start", day("2026-02-17"), day("2026-02-15"), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NumberOfDays(tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if CodeOf(err) != CodeInvalidDateRange {
					t.Errorf("error code = %q, want %q", CodeOf(err), CodeInvalidDateRange)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NumberOfDays = %d, want %d", got, tt.want)
			}
		})
	}
}
