package slot

type Status string

const (
	StatusBusy        Status = "BUSY"
	StatusSwappable   Status = "SWAPPABLE"
	StatusSwapPending Status = "SWAP_PENDING"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBusy, StatusSwappable, StatusSwapPending:
		return true
	default:
		return false
	}
}

// DirectlySettable reports whether a caller may set this status through a
// plain edit. SWAP_PENDING is reserved for the swap coordinator.
func (s Status) DirectlySettable() bool {
	return s == StatusBusy || s == StatusSwappable
}
