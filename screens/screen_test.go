package screens

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeScreen struct {
	updates int
	err     error
}

func (f *fakeScreen) Update() error {
	f.updates++
	return f.err
}

func (f *fakeScreen) Draw(screen *ebiten.Image) {}

func TestScreenStackUpdatesTopOnly(t *testing.T) {
	s := NewScreenStack()
	if err := s.Update(); err != nil {
		t.Fatalf("empty stack: %v", err)
	}

	bottom, top := &fakeScreen{}, &fakeScreen{}
	s.Push(bottom)
	s.Push(top)

	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if bottom.updates != 0 || top.updates != 1 {
		t.Errorf("updates bottom %d top %d", bottom.updates, top.updates)
	}
	if s.Peek() != Screen(top) || s.Len() != 2 {
		t.Errorf("Peek() = %v, Len() = %d", s.Peek(), s.Len())
	}
}

func TestScreenStackClosesOnErrCloseScreen(t *testing.T) {
	s := NewScreenStack()
	bottom := &fakeScreen{}
	s.Push(bottom)
	s.Push(&fakeScreen{err: ErrCloseScreen})

	if err := s.Update(); err != nil {
		t.Fatalf("ErrCloseScreen leaked: %v", err)
	}
	if s.Len() != 1 || s.Peek() != Screen(bottom) {
		t.Errorf("top was not popped, Len() = %d", s.Len())
	}
}

func TestScreenStackPassesTransitions(t *testing.T) {
	s := NewScreenStack()
	s.Push(&fakeScreen{err: ErrNewGame})

	if err := s.Update(); !errors.Is(err, ErrNewGame) {
		t.Errorf("Update() = %v, want ErrNewGame", err)
	}
	if s.Len() != 1 {
		t.Errorf("screen popped on a transition error")
	}

	s.Pop()
	if s.Pop() != nil || s.Peek() != nil {
		t.Error("empty stack returned a screen")
	}
}

func TestStartScreenChoose(t *testing.T) {
	s := NewStartScreen(5)
	if s.Seed() != 5 {
		t.Fatalf("Seed() = %d", s.Seed())
	}
	if err := s.choose(0); !errors.Is(err, ErrNewGame) {
		t.Errorf("Generate returned %v", err)
	}
	if err := s.choose(1); err != nil || s.Seed() == 5 {
		t.Errorf("New Seed returned %v, seed %d", err, s.Seed())
	}
	if err := s.choose(2); !errors.Is(err, ErrQuit) {
		t.Errorf("Quit returned %v", err)
	}
}
