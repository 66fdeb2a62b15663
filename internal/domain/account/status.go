package account

// ConnectivityStatus is the subscriber's network state.
type ConnectivityStatus string

const (
	StatusActive       ConnectivityStatus = "active"
	StatusSuspended    ConnectivityStatus = "suspended"
	StatusDisconnected ConnectivityStatus = "disconnected"
	StatusPulledOut    ConnectivityStatus = "pulled_out"
)

func (s ConnectivityStatus) String() string {
	return string(s)
}

var ValidStatuses = map[ConnectivityStatus]bool{
	StatusActive:       true,
	StatusSuspended:    true,
	StatusDisconnected: true,
	StatusPulledOut:    true,
}
