package content

import (
	"errors"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidRef = errors.New("invalid resource reference")

// Ref identifies a document either by its application-assigned sequential
// integer id or by the store-native ObjectID. Collections have been seeded
// through several eras, so some documents carry only one of the two.
type Ref struct {
	seq   int
	hex   string
	bySeq bool
}

// ParseRef resolves a path segment into a Ref. Integer parsing takes
// priority over ObjectID syntax; hex identifiers are fixed-length so the
// two forms do not collide in practice.
func ParseRef(s string) (Ref, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return Ref{seq: n, bySeq: true}, nil
	}
	if _, err := primitive.ObjectIDFromHex(s); err == nil {
		return Ref{hex: s}, nil
	}
	return Ref{}, ErrInvalidRef
}

// SequentialRef builds a Ref for a known integer id.
func SequentialRef(id int) Ref { return Ref{seq: id, bySeq: true} }

func (r Ref) BySequential() bool { return r.bySeq }
func (r Ref) Sequential() int    { return r.seq }
func (r Ref) Native() string     { return r.hex }
