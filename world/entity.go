package world

import "github.com/segmentio/ksuid"

// ID is an opaque, stable entity identity. IDs handed out by one world sort
// in creation order.
type ID string

const PlayerID ID = "player"

type Kind int

const (
	KindPlayer Kind = iota
	KindZombie
	KindBullet
	KindBlood
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindZombie:
		return "zombie"
	case KindBullet:
		return "bullet"
	case KindBlood:
		return "blood"
	}
	return "unknown"
}

// Transform is what the host needs to place an entity's render handle.
type Transform struct {
	Kind     Kind
	Screen   Vector
	Rotation float64
}

type idSequence struct {
	last ksuid.KSUID
}

func newIDSequence(seed ksuid.KSUID) *idSequence {
	return &idSequence{last: seed}
}

func (s *idSequence) next() ID {
	s.last = s.last.Next()
	return ID(s.last.String())
}
