package entities

// Snake is the ordered body of the player, head first.
type Snake struct {
	Body []Position
}

func NewSnake(head Position) Snake {
	return Snake{Body: []Position{head}}
}

func (s Snake) Head() Position {
	return s.Body[0]
}

func (s Snake) Len() int {
	return len(s.Body)
}

// Advance moves the head to next. Unless grow is set the tail is dropped first,
// so the length is unchanged.
func (s *Snake) Advance(next Position, grow bool) {
	if !grow && len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
	s.Body = append(s.Body, Position{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = next
}

// Occupies reports whether any segment sits on p.
func (s Snake) Occupies(p Position) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the body slice.
func (s Snake) Clone() Snake {
	body := make([]Position, len(s.Body))
	copy(body, s.Body)
	return Snake{Body: body}
}
