package core

// TrayOffer is the serializable view of one occupied tray slot.
type TrayOffer struct {
	Archetype ArchetypeID
	Color     BlockColor
	Pattern   Matrix
}

// Snapshot captures the complete session state. The persistence
// collaborator serializes this instead of reaching into private fields;
// tests use it for determinism checks.
type Snapshot struct {
	BoardSize int
	Cells     []BoardCell
	Tray      []*TrayOffer // nil entries are empty slots
	Score     int
	GameOver  bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	slots := s.tray.Slots()
	tray := make([]*TrayOffer, len(slots))
	for i, block := range slots {
		if block == nil {
			continue
		}
		tray[i] = &TrayOffer{
			Archetype: block.Archetype(),
			Color:     block.Color(),
			Pattern:   block.variation.Pattern,
		}
	}

	return Snapshot{
		BoardSize: s.board.Size(),
		Cells:     s.board.Cells(),
		Tray:      tray,
		Score:     s.score,
		GameOver:  s.gameOver,
	}
}
