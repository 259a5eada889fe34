package component

// Magazine is a detachable ammo source.
type Magazine struct {
	Label    string
	inserted bool
}

func (m *Magazine) Inserted() bool {
	return m != nil && m.inserted
}

// MagazineSocket is the receiver on a weapon that magazines snap into.
type MagazineSocket struct {
	weapon  *Weapon
	current *Magazine

	OnInserted func(m *Magazine)
	OnEjected  func(m *Magazine)
}

// NewMagazineSocket attaches a socket to w. A weapon that already holds a magazine gets one in the socket.
func NewMagazineSocket(w *Weapon) *MagazineSocket {
	s := &MagazineSocket{weapon: w}
	if w != nil && w.HasMagazine() {
		s.current = &Magazine{Label: "starter", inserted: true}
	}
	return s
}

// Insert seats m and completes the weapon's reload.
func (s *MagazineSocket) Insert(m *Magazine) bool {
	if s == nil || m == nil || m.inserted || s.current != nil {
		return false
	}
	if s.weapon != nil {
		s.weapon.InsertMagazine()
	}
	m.inserted = true
	s.current = m
	if s.OnInserted != nil {
		s.OnInserted(m)
	}
	return true
}

// Eject releases the seated magazine, returning nil when the socket is empty.
func (s *MagazineSocket) Eject() *Magazine {
	if s == nil || s.current == nil {
		return nil
	}
	m := s.current
	if s.weapon != nil {
		s.weapon.EjectMagazine()
	}
	m.inserted = false
	s.current = nil
	if s.OnEjected != nil {
		s.OnEjected(m)
	}
	return m
}

func (s *MagazineSocket) Current() *Magazine {
	if s == nil {
		return nil
	}
	return s.current
}
