package domain

import "fmt"

type OrderStatus string

const (
	StatusPengajuan  OrderStatus = "PENGAJUAN"
	StatusSurvei     OrderStatus = "SURVEI"
	StatusPengerjaan OrderStatus = "PENGERJAAN"
	StatusSelesai    OrderStatus = "SELESAI"
	StatusDibatalkan OrderStatus = "DIBATALKAN"
)

// successor is the fixed linear chain. Terminal states have no entry.
var successor = map[OrderStatus]OrderStatus{
	StatusPengajuan:  StatusSurvei,
	StatusSurvei:     StatusPengerjaan,
	StatusPengerjaan: StatusSelesai,
}

var statusLabels = map[OrderStatus]string{
	StatusPengajuan:  "Pengajuan",
	StatusSurvei:     "Survei Lokasi",
	StatusPengerjaan: "Dalam Pengerjaan",
	StatusSelesai:    "Selesai",
	StatusDibatalkan: "Dibatalkan",
}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human-readable Indonesian label for a status.
func (s OrderStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == StatusSelesai || s == StatusDibatalkan
}

// NextStatus returns the fixed successor of s. The second result is false
// for terminal states.
func NextStatus(s OrderStatus) (OrderStatus, bool) {
	next, ok := successor[s]
	return next, ok
}

// CanTransition reports whether an order may move from one status directly
// to another. Allowed moves are the fixed successor and cancellation from
// any non-terminal state. Setting the same status is a permitted no-op.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	if from.Terminal() {
		return false
	}
	if to == StatusDibatalkan {
		return true
	}
	return successor[from] == to
}

// TransitionError describes a rejected status change in user-facing terms.
func TransitionError(from, to OrderStatus) error {
	if from.Terminal() {
		return fmt.Errorf("pesanan sudah %s dan tidak dapat diubah", from.Label())
	}
	return fmt.Errorf("status tidak dapat diubah dari %s ke %s", from.Label(), to.Label())
}
