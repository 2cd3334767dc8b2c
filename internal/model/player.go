package model

// PlayerStatus represents whether a player is still competing
type PlayerStatus string

const (
	PlayerStatusRegistered PlayerStatus = "registered"
	PlayerStatusDropped    PlayerStatus = "dropped"
)

// Deck holds the registered contents of a single deck: card name to copy count
type Deck struct {
	Cards map[string]int `json:"cards"`
}

// Player represents one competitor in a tournament. Players are owned by the
// PlayerRegistry and mutated only through tournament operations.
type Player struct {
	ID       PlayerID        `json:"id"`
	Name     string          `json:"name"`
	GamerTag string          `json:"gamer_tag,omitempty"`
	Decks    map[string]Deck `json:"decks"`

	// DeckOrder preserves registration order so deck pruning can trim the
	// oldest decks first
	DeckOrder []string     `json:"deck_order"`
	Status    PlayerStatus `json:"status"`
}

// NewPlayer creates a freshly registered player
func NewPlayer(name string) *Player {
	return &Player{
		ID:     NewPlayerID(),
		Name:   name,
		Decks:  make(map[string]Deck),
		Status: PlayerStatusRegistered,
	}
}

// CanPlay returns true if the player is still competing
func (p *Player) CanPlay() bool {
	return p.Status == PlayerStatusRegistered
}

// AddDeck registers a deck under the given name, replacing any existing deck
// with that name
func (p *Player) AddDeck(name string, deck Deck) {
	if _, ok := p.Decks[name]; !ok {
		p.DeckOrder = append(p.DeckOrder, name)
	}
	p.Decks[name] = deck
}

// GetDeck returns the named deck
func (p *Player) GetDeck(name string) (Deck, error) {
	deck, ok := p.Decks[name]
	if !ok {
		return Deck{}, ErrDeckLookup
	}
	return deck, nil
}

// RemoveDeck removes the named deck
func (p *Player) RemoveDeck(name string) error {
	if _, ok := p.Decks[name]; !ok {
		return ErrDeckLookup
	}
	delete(p.Decks, name)
	for i, n := range p.DeckOrder {
		if n == name {
			p.DeckOrder = append(p.DeckOrder[:i], p.DeckOrder[i+1:]...)
			break
		}
	}
	return nil
}
