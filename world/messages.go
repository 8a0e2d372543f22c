package world

// Request is a creation or destruction the simulation raised during a tick.
// The world has already applied it to its own collections; the host mirrors
// it onto render handles.
type Request interface {
	EntityID() ID
	isRequest()
}

type SpawnRequest struct {
	ID     ID
	Kind   Kind
	Pos    Vector
	Angle  float64
	HitBox Vector
}

type DespawnRequest struct {
	ID   ID
	Kind Kind
}

func (r SpawnRequest) EntityID() ID   { return r.ID }
func (r DespawnRequest) EntityID() ID { return r.ID }

func (SpawnRequest) isRequest()   {}
func (DespawnRequest) isRequest() {}
