package model

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	h := NewHistory(0)
	g := Grid{{A, A}, {A, A}}

	for i := 0; i < 3; i++ {
		if h.IsStagnant(g) {
			t.Fatal("history too short to call stagnation")
		}
		h.Update(g)
		g = g.NextGeneration()
	}

	if !h.IsStagnant(g) {
		t.Fatal("still life must be stagnant")
	}
}

func TestHistoryDetectsOscillator(t *testing.T) {
	h := NewHistory(0)
	g := Grid{{D, D, D}, {A, A, A}, {D, D, D}}

	for i := 0; i < 3; i++ {
		h.Update(g)
		g = g.NextGeneration()
	}
	if !h.IsStagnant(g) {
		t.Fatal("blinker must be detected as a cycle")
	}
}

func TestHistoryIgnoresGliderOnOpenBoard(t *testing.T) {
	h := NewHistory(0)
	g := NewGrid(20, 20)
	g.AddGlider(1, 1)

	for i := 0; i < 8; i++ {
		if h.IsStagnant(g) {
			t.Fatalf("moving glider reported stagnant after %d generations", h.Len())
		}
		h.Update(g)
		g = g.NextGeneration()
	}
}

func TestHistoryKeepsSize(t *testing.T) {
	h := NewHistory(2)
	g := NewGrid(2, 2)
	for i := 0; i < 5; i++ {
		h.Update(g)
	}
	if h.Len() != 2 {
		t.Fatalf("history length: got %d, expected 2", h.Len())
	}

	h.Reset()
	if h.Len() != 0 {
		t.Fatal("reset must forget every generation")
	}
}
