package snake

import "snake-rewind/internal/core"

// Snake is an ordered body of cells. The tail is index 0 and the head is the
// last element.
type Snake struct {
	body []core.Position
}

// NewSnake copies cells (tail first) into a new snake.
func NewSnake(cells ...core.Position) *Snake {
	body := make([]core.Position, len(cells))
	copy(body, cells)
	return &Snake{body: body}
}

// Len returns the number of occupied cells.
func (s *Snake) Len() int { return len(s.body) }

// Head returns the leading cell.
func (s *Snake) Head() core.Position { return s.body[len(s.body)-1] }

// Tail returns the trailing cell.
func (s *Snake) Tail() core.Position { return s.body[0] }

// Body returns a copy of the cells, tail first.
func (s *Snake) Body() []core.Position {
	out := make([]core.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Contains reports whether p is any cell of the body.
func (s *Snake) Contains(p core.Position) bool {
	for _, c := range s.body {
		if c == p {
			return true
		}
	}
	return false
}

// containsBehindHead ignores the head, which is about to move off its cell.
func (s *Snake) containsBehindHead(p core.Position) bool {
	for _, c := range s.body[:len(s.body)-1] {
		if c == p {
			return true
		}
	}
	return false
}

// shift appends head and drops the tail, returning the vacated cell.
func (s *Snake) shift(head core.Position) core.Position {
	vacated := s.body[0]
	copy(s.body, s.body[1:])
	s.body[len(s.body)-1] = head
	return vacated
}

// grow appends head without dropping the tail.
func (s *Snake) grow(head core.Position) {
	s.body = append(s.body, head)
}

// unshift undoes shift: the vacated cell returns as the tail and the head is dropped.
func (s *Snake) unshift(vacated core.Position) {
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = vacated
}

// shrink undoes grow. A single-cell snake is left intact.
func (s *Snake) shrink() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// seedBody lays out n cells along row y ending at (x, y) when dir is East, or
// starting at (x, y) and running west when dir is West. The slice is tail first.
func seedBody(x, y, n int, dir core.Direction) []core.Position {
	body := make([]core.Position, 0, n)
	switch dir {
	case core.West:
		for i := 0; i < n; i++ {
			body = append(body, core.Position{X: x - i, Y: y})
		}
	default:
		for i := n - 1; i >= 0; i-- {
			body = append(body, core.Position{X: x - i, Y: y})
		}
	}
	return body
}
