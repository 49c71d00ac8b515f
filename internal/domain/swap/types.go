package swap

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// Terminal reports whether the request can no longer change. Once a request
// leaves PENDING it is immutable.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}
