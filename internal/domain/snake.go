package domain

type GameStatus int

const (
	StatusRunning GameStatus = 0
	StatusOver    GameStatus = 1
)

func (s GameStatus) String() string {
	if s == StatusOver {
		return "over"
	}
	return "running"
}

type TickOutcome int

const (
	OutcomeMoved TickOutcome = iota
	OutcomeGrew
	OutcomeCollidedWall
	OutcomeCollidedSelf
	// OutcomeIgnored is returned for ticks delivered after the game ended.
	OutcomeIgnored
)

func (o TickOutcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeGrew:
		return "grew"
	case OutcomeCollidedWall:
		return "collided-wall"
	case OutcomeCollidedSelf:
		return "collided-self"
	}
	return "ignored"
}

func (o TickOutcome) Collided() bool {
	return o == OutcomeCollidedWall || o == OutcomeCollidedSelf
}

// Snake owns the body, heading and score. Points[0] is the tail and the
// last element is the head.
type Snake struct {
	Points        []Coord
	HeadDirection Direction
	State         GameStatus

	pending Direction
	score   int
}

func NewSnake(start Coord, dir Direction) *Snake {
	return &Snake{
		Points:        []Coord{start},
		HeadDirection: dir,
		State:         StatusRunning,
		pending:       dir,
	}
}

func (s *Snake) Head() Coord {
	return s.Points[len(s.Points)-1]
}

func (s *Snake) Tail() Coord {
	return s.Points[0]
}

func (s *Snake) Len() int {
	return len(s.Points)
}

func (s *Snake) Score() int {
	return s.score
}

// Direction is the pending heading that the next tick will apply.
func (s *Snake) Direction() Direction {
	return s.pending
}

func (s *Snake) Body() []Coord {
	body := make([]Coord, len(s.Points))
	copy(body, s.Points)
	return body
}

func (s *Snake) Contains(c Coord) bool {
	for _, p := range s.Points {
		if p.Equals(c) {
			return true
		}
	}
	return false
}

// SetDirection buffers a heading for the next tick. Reversals against the
// heading in effect are rejected so the head cannot fold into its neck.
func (s *Snake) SetDirection(dir Direction) bool {
	if s.State == StatusOver || !dir.Valid() {
		return false
	}
	if dir.IsOpposite(s.HeadDirection) {
		return false
	}
	s.pending = dir
	return true
}

// Tick advances the snake one cell. Collisions are checked against the
// whole pre-move body, tail included, and leave the body untouched.
func (s *Snake) Tick(field Field, food Coord) TickOutcome {
	if s.State == StatusOver {
		return OutcomeIgnored
	}

	s.HeadDirection = s.pending
	newHead := field.Move(s.Head(), s.HeadDirection)

	if !field.Contains(newHead) {
		s.State = StatusOver
		return OutcomeCollidedWall
	}

	if s.Contains(newHead) {
		s.State = StatusOver
		return OutcomeCollidedSelf
	}

	if newHead.Equals(food) {
		s.Points = append(s.Points, newHead)
		s.score++
		return OutcomeGrew
	}

	newPoints := make([]Coord, 0, len(s.Points))
	newPoints = append(newPoints, s.Points[1:]...)
	newPoints = append(newPoints, newHead)
	s.Points = newPoints

	return OutcomeMoved
}

func (s *Snake) Copy() *Snake {
	return &Snake{
		Points:        s.Body(),
		HeadDirection: s.HeadDirection,
		State:         s.State,
		pending:       s.pending,
		score:         s.score,
	}
}
