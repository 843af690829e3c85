package model

import (
	"fmt"
)

// ErrTransition reports a status change the batch lifecycle does not allow.
type ErrTransition struct {
	From, To BatchStatus
}

func (e *ErrTransition) Error() string {
	from, ok := allowedFrom[e.To]
	if !ok {
		return fmt.Sprintf("batch status cannot be changed to %s", e.To)
	}
	return fmt.Sprintf("batch can only be set to %s from %s, current status is %s", e.To, from, e.From)
}

var allowedFrom = map[BatchStatus]BatchStatus{
	BatchSent:     BatchCreated,
	BatchReceived: BatchSent,
}

// CheckTransition validates from -> to against CRIADO -> ENVIADO -> RECEBIDO.
func CheckTransition(from, to BatchStatus) error {
	if want, ok := allowedFrom[to]; ok && want == from {
		return nil
	}
	return &ErrTransition{From: from, To: to}
}
