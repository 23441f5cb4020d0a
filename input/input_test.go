package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spy struct {
	calls []string
}

func (s *spy) MoveLeft()               { s.calls = append(s.calls, "left") }
func (s *spy) MoveRight()              { s.calls = append(s.calls, "right") }
func (s *spy) SoftDrop()               { s.calls = append(s.calls, "soft") }
func (s *spy) HardDrop()               { s.calls = append(s.calls, "hard") }
func (s *spy) RotateClockwise()        { s.calls = append(s.calls, "cw") }
func (s *spy) RotateCounterclockwise() { s.calls = append(s.calls, "ccw") }
func (s *spy) Hold()                   { s.calls = append(s.calls, "hold") }

func TestApply(t *testing.T) {
	s := &spy{}
	for _, a := range []Action{MoveLeft, MoveRight, SoftDrop, HardDrop, RotateClockwise, RotateCounterclockwise, Hold, None} {
		Apply(s, a)
	}
	assert.Equal(t, []string{"left", "right", "soft", "hard", "cw", "ccw", "hold"}, s.calls)
}

func TestParseAction(t *testing.T) {
	for a, name := range actionNames {
		if a == None {
			continue
		}
		got, err := ParseAction(name)
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseAction(" Hard-Drop ")
	require.NoError(t, err)
	assert.Equal(t, HardDrop, got)

	_, err = ParseAction("none")
	assert.True(t, errors.Is(err, ErrUnknownAction))
	_, err = ParseAction("teleport")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()
	tests := map[string]Action{
		"a": MoveLeft,
		"D": MoveRight,
		"s": SoftDrop,
		" ": HardDrop,
		"q": RotateCounterclockwise,
		"w": RotateClockwise,
		"x": Hold,
		"z": None,
	}
	for key, want := range tests {
		assert.Equal(t, want, b.Lookup(key), "key %q", key)
	}
}

func TestBindings_Set(t *testing.T) {
	b := DefaultBindings()
	require.NoError(t, b.Set("z=rotate-ccw"))
	assert.Equal(t, RotateCounterclockwise, b.Lookup("z"))

	require.NoError(t, b.Set("x=none"))
	assert.Equal(t, None, b.Lookup("x"))

	assert.Error(t, b.Set("nokey"))
	assert.Error(t, b.Set("=hold"))
	assert.ErrorIs(t, b.Set("k=fly"), ErrUnknownAction)
}

func TestBindings_CloneIsIndependent(t *testing.T) {
	b := DefaultBindings()
	c := b.Clone()
	require.NoError(t, c.Set("a=hold"))
	assert.Equal(t, MoveLeft, b.Lookup("a"))
}

func TestGesture_Classify(t *testing.T) {
	g := DefaultGesture()
	tests := []struct {
		desc   string
		dx, dy float64
		want   Action
	}{
		{"swipe down", 5, 120, SoftDrop},
		{"swipe up", 5, -120, None},
		{"swipe left", -80, 10, MoveLeft},
		{"swipe right", 80, -20, MoveRight},
		{"tap", 3, -4, RotateClockwise},
		{"short drag", 30, 0, None},
		{"diagonal favours vertical", 60, 70, SoftDrop},
		{"exactly the swipe threshold", 50, 0, None},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			assert.Equal(t, test.want, g.Classify(test.dx, test.dy))
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "hold", Hold.String())
	assert.Equal(t, "Action(99)", Action(99).String())
}
