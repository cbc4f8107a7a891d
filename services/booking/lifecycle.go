package booking

import "smarttour/models"

// Status represents the current state of a booking in its lifecycle.
type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// validTransitions defines the state machine for booking status transitions.
// Bookings start at confirmed; cancelled is reachable from any non-terminal
// state.
var validTransitions = map[Status][]Status{
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValid returns true if the status is a recognized booking status.
func (s Status) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s Status) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// Capability is one permission an actor may hold over bookings.
type Capability string

const (
	CanAssignDriver       Capability = "can-assign-driver"
	CanForceTransition    Capability = "can-force-any-transition"
	CanTransitionAssigned Capability = "can-self-transition-assigned-booking"
	CanCancelOwn          Capability = "can-cancel-own-booking"
	CanViewAll            Capability = "can-view-all-bookings"
)

// Actor is the authenticated principal a booking operation runs as. Role
// names are resolved to capability sets up front so the guards below never
// compare role strings.
type Actor struct {
	UserID   string
	DriverID string // set when the actor has a linked driver profile
	caps     map[Capability]bool
}

// Can reports whether the actor holds the capability.
func (a Actor) Can(c Capability) bool {
	return a.caps[c]
}

// AdminActor has the full capability set.
func AdminActor(userID string) Actor {
	return Actor{
		UserID: userID,
		caps: map[Capability]bool{
			CanAssignDriver:    true,
			CanForceTransition: true,
			CanCancelOwn:       true,
			CanViewAll:         true,
		},
	}
}

// CustomerActor may cancel its own bookings.
func CustomerActor(userID string) Actor {
	return Actor{
		UserID: userID,
		caps: map[Capability]bool{
			CanCancelOwn: true,
		},
	}
}

// DriverActor may progress bookings it is assigned to. driverID is the
// driver-profile id linked to the account, empty when no profile exists.
func DriverActor(userID, driverID string) Actor {
	return Actor{
		UserID:   userID,
		DriverID: driverID,
		caps: map[Capability]bool{
			CanTransitionAssigned: driverID != "",
		},
	}
}

// driverTargets are the only statuses a driver may request.
var driverTargets = map[Status]bool{
	StatusInProgress: true,
	StatusCompleted:  true,
}

// AuthorizeTransition checks whether the actor may request moving the booking
// to target. State preconditions are checked separately so callers can
// distinguish "not your booking" from "wrong state".
func AuthorizeTransition(actor Actor, b *models.Booking, target Status) error {
	if actor.Can(CanForceTransition) {
		return nil
	}
	if target == StatusCancelled {
		if actor.Can(CanCancelOwn) && actor.UserID == b.UserID {
			return nil
		}
		return NewForbiddenError("only the booking owner may cancel this booking")
	}
	if actor.Can(CanTransitionAssigned) {
		if !driverTargets[target] {
			return NewForbiddenError("drivers may only start or complete a trip")
		}
		if b.DriverID == "" || b.DriverID != actor.DriverID {
			return NewForbiddenError("booking is not assigned to this driver")
		}
		return nil
	}
	return NewForbiddenError("not permitted to change this booking's status")
}
