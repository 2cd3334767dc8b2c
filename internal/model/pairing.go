package model

// PairingKind selects which pairing algorithm a tournament uses
type PairingKind string

const (
	// PairingSwiss pairs discrete synchronized rounds by standings order
	PairingSwiss PairingKind = "swiss"
	// PairingFluid pairs players continuously as they queue up
	PairingFluid PairingKind = "fluid"
)

// PairingSystem holds the configuration and queueing state for a
// tournament's pairing algorithm. Exactly one kind is active at a time; the
// kind is fixed at tournament creation.
type PairingSystem struct {
	Kind      PairingKind `json:"kind"`
	MatchSize int         `json:"match_size"`

	// DoCheckIns gates Swiss pairing on every active player being ready
	DoCheckIns bool `json:"do_check_ins,omitempty"`

	// Ready holds players who have declared themselves ready for their next
	// round (Swiss) or game (Fluid)
	Ready map[PlayerID]bool `json:"ready"`

	// Queue is the Fluid looking-for-game queue, oldest first
	Queue []PlayerID `json:"queue,omitempty"`
}

// NewPairingSystem creates a pairing system of the given kind
func NewPairingSystem(kind PairingKind, matchSize int) *PairingSystem {
	return &PairingSystem{
		Kind:      kind,
		MatchSize: matchSize,
		Ready:     make(map[PlayerID]bool),
	}
}

// ReadyPlayer marks a player ready for their next pairing. For Fluid this
// enqueues them (once); for Swiss it marks them checked in for the round.
func (p *PairingSystem) ReadyPlayer(id PlayerID) {
	if p.Kind == PairingFluid {
		for _, queued := range p.Queue {
			if queued == id {
				return
			}
		}
		p.Queue = append(p.Queue, id)
		return
	}
	p.Ready[id] = true
}

// Dequeue removes the given players from the Fluid queue, preserving the
// order of everyone else
func (p *PairingSystem) Dequeue(ids []PlayerID) {
	drop := make(map[PlayerID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var kept []PlayerID
	for _, queued := range p.Queue {
		if !drop[queued] {
			kept = append(kept, queued)
		}
	}
	p.Queue = kept
}

// UnreadyPlayer removes a player from the ready set and, for Fluid, the queue
func (p *PairingSystem) UnreadyPlayer(id PlayerID) {
	delete(p.Ready, id)
	for i, queued := range p.Queue {
		if queued == id {
			p.Queue = append(p.Queue[:i], p.Queue[i+1:]...)
			return
		}
	}
}

// ApplySetting updates one pairing setting. The setting's variant must match
// the configured pairing kind.
func (p *PairingSystem) ApplySetting(setting PairingSetting) error {
	if setting.PairingKind() != p.Kind {
		return ErrIncompatiblePairingSystem
	}
	switch s := setting.(type) {
	case SwissMatchSizeSetting:
		p.MatchSize = int(s)
	case SwissDoCheckInsSetting:
		p.DoCheckIns = bool(s)
	case FluidMatchSizeSetting:
		p.MatchSize = int(s)
	}
	return nil
}

// Pairings communicates the outcome of a pairing run: disjoint player groups
// plus the players receiving byes
type Pairings struct {
	Groups [][]PlayerID `json:"groups"`
	Byes   []PlayerID   `json:"byes"`
}
