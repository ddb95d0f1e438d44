package room

// EffectiveStatus derives the status shown to users from the stored
// administrative status and the number of bookings covering "now".
//
// Maintenance always wins over occupancy. The result is never persisted;
// callers re-derive it on every read against a fresh instant.
func EffectiveStatus(stored Status, activeBookings int) Status {
	if stored == StatusMaintenance {
		return StatusMaintenance
	}
	if activeBookings > 0 {
		return StatusReserved
	}
	return stored
}
