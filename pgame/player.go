package pgame

// Player identifies one of the two participants in the parity game:
// Eve, the existential player trying to prove membership, or Adam,
// the universal player trying to refute it. Modeled as a package-level
// const-iota enum, the way dfs.White/Gray/Black enumerate vertex
// states.
type Player int

const (
	// Eve is the existential player and controller of Eve positions.
	Eve Player = iota
	// Adam is the universal player and controller of Adam positions.
	Adam
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Eve {
		return Adam
	}
	return Eve
}

// String renders the player the way the CLI's debug/mu-ald result line
// does ("the existential player" / "the universal player").
func (p Player) String() string {
	if p == Eve {
		return "the existential player"
	}
	return "the universal player"
}
