package domain

import (
	"testing"
)

var testField = NewField(700, 400, 50)

// noFood sits outside the field so it can never be eaten.
var noFood = Coord{-50, -50}

func snakeFrom(dir Direction, points ...Coord) *Snake {
	s := NewSnake(points[0], dir)
	s.Points = append([]Coord(nil), points...)
	return s
}

func TestSnakeMoveKeepsLength(t *testing.T) {
	s := snakeFrom(DirectionRight, Coord{0, 0}, Coord{50, 0}, Coord{100, 0})

	outcome := s.Tick(testField, noFood)

	if outcome != OutcomeMoved {
		t.Fatalf("expected moved, got %v", outcome)
	}
	if s.Len() != 3 {
		t.Errorf("expected length 3, got %d", s.Len())
	}
	if s.Head() != (Coord{150, 0}) {
		t.Errorf("expected head at (150,0), got %v", s.Head())
	}
	if s.Tail() != (Coord{50, 0}) {
		t.Errorf("expected tail at (50,0), got %v", s.Tail())
	}
	if s.Score() != 0 {
		t.Errorf("expected score 0, got %d", s.Score())
	}
}

func TestSnakeGrowsOnFood(t *testing.T) {
	s := snakeFrom(DirectionDown, Coord{0, 0}, Coord{0, 50})

	outcome := s.Tick(testField, Coord{0, 100})

	if outcome != OutcomeGrew {
		t.Fatalf("expected grew, got %v", outcome)
	}
	if s.Len() != 3 {
		t.Errorf("expected length 3, got %d", s.Len())
	}
	if s.Tail() != (Coord{0, 0}) {
		t.Errorf("tail must stay anchored, got %v", s.Tail())
	}
	if s.Score() != 1 {
		t.Errorf("expected score 1, got %d", s.Score())
	}
}

func TestSnakeWallCollision(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		head Coord
	}{
		{"left edge", DirectionLeft, Coord{0, 100}},
		{"top edge", DirectionUp, Coord{100, 0}},
		{"right edge", DirectionRight, Coord{650, 100}},
		{"bottom edge", DirectionDown, Coord{100, 350}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snakeFrom(tt.dir, tt.head)
			before := s.Body()

			outcome := s.Tick(testField, noFood)

			if outcome != OutcomeCollidedWall {
				t.Fatalf("expected wall collision, got %v", outcome)
			}
			if s.State != StatusOver {
				t.Errorf("expected status over, got %v", s.State)
			}
			assertBody(t, s.Body(), before)

			if again := s.Tick(testField, noFood); again != OutcomeIgnored {
				t.Errorf("expected ticks after game over to be ignored, got %v", again)
			}
			assertBody(t, s.Body(), before)
		})
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	// Head at (50,50) heading up into (50,0), which is a non-tail segment.
	s := snakeFrom(DirectionUp,
		Coord{100, 50},
		Coord{100, 0},
		Coord{50, 0},
		Coord{0, 0},
		Coord{0, 50},
		Coord{50, 50},
	)
	before := s.Body()

	outcome := s.Tick(testField, noFood)

	if outcome != OutcomeCollidedSelf {
		t.Fatalf("expected self collision, got %v", outcome)
	}
	if s.State != StatusOver {
		t.Errorf("expected status over")
	}
	assertBody(t, s.Body(), before)
}

func TestSnakeCollidesWithOwnTail(t *testing.T) {
	// The tail would be removed by an ordinary move, but the check runs
	// against the pre-move body.
	s := snakeFrom(DirectionUp,
		Coord{0, 0},
		Coord{50, 0},
		Coord{50, 50},
		Coord{0, 50},
	)

	if outcome := s.Tick(testField, noFood); outcome != OutcomeCollidedSelf {
		t.Fatalf("expected self collision with tail, got %v", outcome)
	}
}

func TestSnakeRejectsReversal(t *testing.T) {
	s := NewSnake(Coord{100, 100}, DirectionRight)

	if s.SetDirection(DirectionLeft) {
		t.Error("reversal to left must be rejected")
	}
	if s.Direction() != DirectionRight {
		t.Errorf("expected direction right, got %v", s.Direction())
	}

	if !s.SetDirection(DirectionUp) {
		t.Error("up must be accepted")
	}
	if !s.SetDirection(DirectionDown) {
		t.Error("down must be accepted while right is still in effect")
	}
	if s.Direction() != DirectionDown {
		t.Errorf("expected pending direction down, got %v", s.Direction())
	}
}

func TestSnakePendingDirectionAppliesOnTick(t *testing.T) {
	s := NewSnake(Coord{100, 100}, DirectionRight)

	s.SetDirection(DirectionUp)
	// Left is the reverse of the heading in effect, not of the pending one.
	if s.SetDirection(DirectionLeft) {
		t.Fatal("left must be rejected before the up turn is applied")
	}

	s.Tick(testField, noFood)
	if s.Head() != (Coord{100, 50}) {
		t.Fatalf("expected head at (100,50), got %v", s.Head())
	}

	if !s.SetDirection(DirectionLeft) {
		t.Error("left must be accepted once heading up")
	}
}

func TestSnakeIgnoresInputWhenOver(t *testing.T) {
	s := NewSnake(Coord{0, 0}, DirectionLeft)
	s.Tick(testField, noFood)

	if s.SetDirection(DirectionDown) {
		t.Error("direction changes must be ignored after game over")
	}
}

func TestSnakeRejectsInvalidDirection(t *testing.T) {
	s := NewSnake(Coord{0, 0}, DirectionRight)
	if s.SetDirection(Direction(0)) {
		t.Error("zero direction must be rejected")
	}
}

func TestSnakeBodyIsACopy(t *testing.T) {
	s := NewSnake(Coord{0, 0}, DirectionRight)
	body := s.Body()
	body[0] = Coord{999, 999}

	if s.Head() != (Coord{0, 0}) {
		t.Error("mutating Body() result must not affect the snake")
	}
}

func assertBody(t *testing.T, got, want []Coord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("body length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
