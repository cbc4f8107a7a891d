package handlers

// HandlerBundle groups all endpoint handlers into one struct for route wiring.
type HandlerBundle struct {
	User    *UserHandler
	Tour    *TourHandler
	Vehicle *VehicleHandler
	Driver  *DriverHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Admin   *AdminHandler
	Storage *StorageHandler
}
