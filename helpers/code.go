package helpers

import (
	"crypto/rand"
	"math/big"
)

const ticketCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewTicketCode returns a random 6-character ticket code. Uniqueness is
// enforced by the unique index on tickets.ticket_code; a collision surfaces
// as a failed insert and the placement is rejected.
func NewTicketCode() string {
	b := make([]byte, 6)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(ticketCodeAlphabet))))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		b[i] = ticketCodeAlphabet[n.Int64()]
	}
	return string(b)
}
