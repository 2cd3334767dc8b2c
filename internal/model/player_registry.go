package model

// PlayerRegistry owns all player records for one tournament, plus the
// registration check-in set. Other components refer to players only by id.
type PlayerRegistry struct {
	Players   map[PlayerID]*Player `json:"players"`
	NameIndex map[string]PlayerID  `json:"name_index"`
	CheckIns  map[PlayerID]bool    `json:"check_ins"`
}

// NewPlayerRegistry creates an empty player registry
func NewPlayerRegistry() *PlayerRegistry {
	return &PlayerRegistry{
		Players:   make(map[PlayerID]*Player),
		NameIndex: make(map[string]PlayerID),
		CheckIns:  make(map[PlayerID]bool),
	}
}

// Add registers a new player under the given display name. Names must be
// unique within a tournament.
func (r *PlayerRegistry) Add(name string) (PlayerID, error) {
	if _, taken := r.NameIndex[name]; taken {
		return "", ErrPlayerLookup
	}
	player := NewPlayer(name)
	r.Players[player.ID] = player
	r.NameIndex[name] = player.ID
	return player.ID, nil
}

// Resolve turns a player identifier into a player id
func (r *PlayerRegistry) Resolve(ident PlayerIdentifier) (PlayerID, error) {
	if ident.ID != "" {
		if _, ok := r.Players[ident.ID]; !ok {
			return "", ErrPlayerLookup
		}
		return ident.ID, nil
	}
	id, ok := r.NameIndex[ident.Name]
	if !ok {
		return "", ErrPlayerLookup
	}
	return id, nil
}

// Get returns the player the identifier resolves to
func (r *PlayerRegistry) Get(ident PlayerIdentifier) (*Player, error) {
	id, err := r.Resolve(ident)
	if err != nil {
		return nil, err
	}
	return r.Players[id], nil
}

// Drop marks the identified player as dropped. Their record (and score) is
// retained.
func (r *PlayerRegistry) Drop(ident PlayerIdentifier) error {
	player, err := r.Get(ident)
	if err != nil {
		return err
	}
	player.Status = PlayerStatusDropped
	return nil
}

// CheckIn marks a player as checked in for registration
func (r *PlayerRegistry) CheckIn(id PlayerID) {
	r.CheckIns[id] = true
}

// IsCheckedIn reports whether the player has checked in
func (r *PlayerRegistry) IsCheckedIn(id PlayerID) bool {
	return r.CheckIns[id]
}

// Len returns the number of registered players, dropped or not
func (r *PlayerRegistry) Len() int {
	return len(r.Players)
}

// ActiveCount returns the number of players still competing
func (r *PlayerRegistry) ActiveCount() int {
	count := 0
	for _, p := range r.Players {
		if p.CanPlay() {
			count++
		}
	}
	return count
}

// CheckInCount returns the number of checked-in players still competing
func (r *PlayerRegistry) CheckInCount() int {
	count := 0
	for id, p := range r.Players {
		if p.CanPlay() && r.IsCheckedIn(id) {
			count++
		}
	}
	return count
}
