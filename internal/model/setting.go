package model

// Setting is the closed set of named, typed tournament configuration
// changes. Each variant is a distinct type so application code can switch
// exhaustively; there are no free-form key/value settings at this level.
type Setting interface {
	isSetting()
}

// General tournament settings

type FormatSetting string
type StartingTableNumberSetting uint64
type UseTableNumbersSetting bool
type MinDeckCountSetting int
type MaxDeckCountSetting int
type RequireCheckInSetting bool
type RequireDeckRegSetting bool

func (FormatSetting) isSetting()              {}
func (StartingTableNumberSetting) isSetting() {}
func (UseTableNumbersSetting) isSetting()     {}
func (MinDeckCountSetting) isSetting()        {}
func (MaxDeckCountSetting) isSetting()        {}
func (RequireCheckInSetting) isSetting()      {}
func (RequireDeckRegSetting) isSetting()      {}

// PairingSetting is a setting addressed to one pairing-system variant. The
// variant must match the tournament's configured pairing kind.
type PairingSetting interface {
	Setting
	PairingKind() PairingKind
}

type SwissMatchSizeSetting int
type SwissDoCheckInsSetting bool
type FluidMatchSizeSetting int

func (SwissMatchSizeSetting) isSetting()  {}
func (SwissDoCheckInsSetting) isSetting() {}
func (FluidMatchSizeSetting) isSetting()  {}

func (SwissMatchSizeSetting) PairingKind() PairingKind  { return PairingSwiss }
func (SwissDoCheckInsSetting) PairingKind() PairingKind { return PairingSwiss }
func (FluidMatchSizeSetting) PairingKind() PairingKind  { return PairingFluid }

// ScoringSetting is a setting addressed to one scoring-system variant
type ScoringSetting interface {
	Setting
	ScoringKind() ScoringKind
}

type MatchWinPointsSetting float64
type MatchDrawPointsSetting float64
type MatchLossPointsSetting float64
type GameWinPointsSetting float64
type GameDrawPointsSetting float64
type GameLossPointsSetting float64
type ByePointsSetting float64
type IncludeByesSetting bool
type IncludeMatchPointsSetting bool
type IncludeGamePointsSetting bool
type IncludeMwpSetting bool
type IncludeGwpSetting bool
type IncludeOppMwpSetting bool
type IncludeOppGwpSetting bool

func (MatchWinPointsSetting) isSetting()     {}
func (MatchDrawPointsSetting) isSetting()    {}
func (MatchLossPointsSetting) isSetting()    {}
func (GameWinPointsSetting) isSetting()      {}
func (GameDrawPointsSetting) isSetting()     {}
func (GameLossPointsSetting) isSetting()     {}
func (ByePointsSetting) isSetting()          {}
func (IncludeByesSetting) isSetting()        {}
func (IncludeMatchPointsSetting) isSetting() {}
func (IncludeGamePointsSetting) isSetting()  {}
func (IncludeMwpSetting) isSetting()         {}
func (IncludeGwpSetting) isSetting()         {}
func (IncludeOppMwpSetting) isSetting()      {}
func (IncludeOppGwpSetting) isSetting()      {}

func (MatchWinPointsSetting) ScoringKind() ScoringKind     { return ScoringStandard }
func (MatchDrawPointsSetting) ScoringKind() ScoringKind    { return ScoringStandard }
func (MatchLossPointsSetting) ScoringKind() ScoringKind    { return ScoringStandard }
func (GameWinPointsSetting) ScoringKind() ScoringKind      { return ScoringStandard }
func (GameDrawPointsSetting) ScoringKind() ScoringKind     { return ScoringStandard }
func (GameLossPointsSetting) ScoringKind() ScoringKind     { return ScoringStandard }
func (ByePointsSetting) ScoringKind() ScoringKind          { return ScoringStandard }
func (IncludeByesSetting) ScoringKind() ScoringKind        { return ScoringStandard }
func (IncludeMatchPointsSetting) ScoringKind() ScoringKind { return ScoringStandard }
func (IncludeGamePointsSetting) ScoringKind() ScoringKind  { return ScoringStandard }
func (IncludeMwpSetting) ScoringKind() ScoringKind         { return ScoringStandard }
func (IncludeGwpSetting) ScoringKind() ScoringKind         { return ScoringStandard }
func (IncludeOppMwpSetting) ScoringKind() ScoringKind      { return ScoringStandard }
func (IncludeOppGwpSetting) ScoringKind() ScoringKind      { return ScoringStandard }
