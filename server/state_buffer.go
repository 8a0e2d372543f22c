package server

const NilTick int64 = -1

type bufferedState struct {
	Tick int64
	Msg  []byte
}

// StateBuffer is a ring of the most recently published states, in wire
// format, replayed to spectators as they join.
type StateBuffer struct {
	states      []bufferedState
	index       int
	currentTick int64
}

func newRingBuffer(maxCapacity int) []bufferedState {
	states := make([]bufferedState, maxCapacity)
	for i := range states {
		states[i].Tick = NilTick
	}
	return states
}

func NewStateBuffer(maxCapacity int) *StateBuffer {
	return &StateBuffer{
		states:      newRingBuffer(max(maxCapacity, 1)),
		currentTick: NilTick,
	}
}

func (s *StateBuffer) CurrentTick() int64 {
	return s.currentTick
}

func (s *StateBuffer) Clear() {
	s.states = newRingBuffer(len(s.states))
	s.index = 0
	s.currentTick = NilTick
}

func (s *StateBuffer) Add(tick int64, msg []byte) {
	index := (s.index + 1) % len(s.states)
	if s.states[s.index].Tick == NilTick {
		index = s.index
	}
	s.index = index
	s.states[index] = bufferedState{Tick: tick, Msg: msg}
	s.currentTick = tick
}

// Current returns the newest state, or nil if nothing was added yet.
func (s *StateBuffer) Current() []byte {
	current := s.states[s.index]
	if current.Tick == NilTick {
		return nil
	}
	return current.Msg
}

// ForEach walks the buffered states from oldest to newest.
func (s *StateBuffer) ForEach(callback func(tick int64, msg []byte)) {
	for i := 1; i <= len(s.states); i++ {
		state := s.states[(s.index+i)%len(s.states)]
		if state.Tick == NilTick {
			continue
		}
		callback(state.Tick, state.Msg)
	}
}

func (s *StateBuffer) Len() int {
	n := 0
	for _, state := range s.states {
		if state.Tick != NilTick {
			n++
		}
	}
	return n
}
