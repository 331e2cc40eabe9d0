package registry

import (
	"testing"

	"github.com/vovakirdan/brickgame/internal/core"
)

type stubGame struct {
	id, title string
	steps     int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{Score: g.steps} }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub", title: "Stub"} })

	if !Exists("zz_stub") {
		t.Fatal("Exists(zz_stub) = false, want true")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q, want %q", g.Title(), "Stub")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("List() title = %q, want %q", info.Title, "Stub")
			}
		}
	}
	if !found {
		t.Error("List() should include zz_stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
	if Exists("does-not-exist") {
		t.Error("Exists() of unknown game should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() of duplicate ID should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return &stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &stubGame{id: "zz_a"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}
