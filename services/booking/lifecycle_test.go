package booking

import (
	"testing"

	"smarttour/models"
)

func TestStatusTransitions(t *testing.T) {
	all := []Status{StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled}

	allowed := map[Status]map[Status]bool{
		StatusConfirmed:  {StatusInProgress: true, StatusCancelled: true},
		StatusInProgress: {StatusCompleted: true, StatusCancelled: true},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}

	for _, from := range all {
		for _, to := range all {
			got := from.CanTransitionTo(to)
			want := allowed[from][to]
			if got != want {
				t.Errorf("%s -> %s = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusConfirmed, false},
		{StatusInProgress, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
	}
	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.want {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	if !StatusInProgress.IsValid() {
		t.Error("in-progress should be valid")
	}
	if Status("pending").IsValid() {
		t.Error("pending is not part of the lifecycle")
	}
	if Status("").IsValid() {
		t.Error("empty status should be invalid")
	}
}

func TestAuthorizeTransition(t *testing.T) {
	owned := &models.Booking{ID: "b1", UserID: "u1", DriverID: "d1", BookingStatus: string(StatusConfirmed)}
	unassigned := &models.Booking{ID: "b2", UserID: "u1", BookingStatus: string(StatusConfirmed)}

	tests := []struct {
		name    string
		actor   Actor
		booking *models.Booking
		target  Status
		wantOK  bool
	}{
		{"admin may start any booking", AdminActor("admin"), owned, StatusInProgress, true},
		{"admin may cancel any booking", AdminActor("admin"), owned, StatusCancelled, true},
		{"owner may cancel", CustomerActor("u1"), owned, StatusCancelled, true},
		{"stranger may not cancel", CustomerActor("u2"), owned, StatusCancelled, false},
		{"owner may not start own trip", CustomerActor("u1"), owned, StatusInProgress, false},
		{"assigned driver may start", DriverActor("du1", "d1"), owned, StatusInProgress, true},
		{"assigned driver may complete", DriverActor("du1", "d1"), owned, StatusCompleted, true},
		{"assigned driver may not cancel", DriverActor("du1", "d1"), owned, StatusCancelled, false},
		{"other driver may not start", DriverActor("du2", "d9"), owned, StatusInProgress, false},
		{"driver without profile may not start", DriverActor("du3", ""), owned, StatusInProgress, false},
		{"driver may not touch unassigned booking", DriverActor("du1", "d1"), unassigned, StatusInProgress, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeTransition(tt.actor, tt.booking, tt.target)
			if tt.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("expected forbidden error, got nil")
				}
				if CodeOf(err) != CodeForbidden {
					t.Errorf("error code = %q, want %q", CodeOf(err), CodeForbidden)
				}
			}
		})
	}
}
