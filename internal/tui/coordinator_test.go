package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func dismissal(t *testing.T, cmd tea.Cmd) modalDismissedMsg {
	t.Helper()
	for _, msg := range execCmd(cmd) {
		if d, ok := msg.(modalDismissedMsg); ok {
			return d
		}
	}
	t.Fatalf("no dismissal produced")
	return modalDismissedMsg{}
}

func TestCoordinatorRejectsSecondModal(t *testing.T) {
	c := NewCoordinator("test", nil)
	c.Open(NewActionModal("first", Option{ID: "x", Label: "X"}), nil)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when opening a second modal")
		}
	}()
	c.Open(NewActionModal("second"), nil)
}

func TestCoordinatorStaysPendingUntilResume(t *testing.T) {
	c := NewCoordinator("test", nil)
	c.Open(NewActionModal("t", Option{ID: "x", Label: "X"}), nil)

	cmd := c.Update(keyMsg("enter"))
	if c.Active() != nil {
		t.Fatalf("modal should be off screen once answered")
	}
	if !c.Pending() {
		t.Fatalf("coordinator should stay pending until the result is consumed")
	}
	if _, ok := c.Resume(dismissal(t, cmd)); !ok {
		t.Fatalf("resume rejected its own dismissal")
	}
	if c.Pending() {
		t.Fatalf("still pending after resume")
	}
	// a new modal may open now
	c.Open(NewActionModal("again"), nil)
}

func TestCoordinatorDeliversResultOnce(t *testing.T) {
	c := NewCoordinator("test", nil)
	var got []ModalResult
	c.Open(NewActionModal("t", Option{ID: "a", Label: "A"}, Option{ID: "b", Label: "B"}), func(r ModalResult) tea.Cmd {
		got = append(got, r)
		return nil
	})
	c.Update(keyMsg("down"))
	d := dismissal(t, c.Update(keyMsg("enter")))

	if _, ok := c.Resume(d); !ok {
		t.Fatalf("first resume rejected")
	}
	if _, ok := c.Resume(d); ok {
		t.Fatalf("second resume accepted")
	}
	if diff := cmp.Diff([]ModalResult{Chose("b")}, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestCoordinatorCancelIsSentinel(t *testing.T) {
	c := NewCoordinator("test", nil)
	var got ModalResult
	c.Open(NewActionModal("t", Option{ID: "a", Label: "A"}), func(r ModalResult) tea.Cmd {
		got = r
		return nil
	})
	c.Resume(dismissal(t, c.Update(keyMsg("esc"))))
	if !got.IsCancelled() || got.Action != "" {
		t.Fatalf("expected cancelled sentinel, got %+v", got)
	}
}

func TestCoordinatorIgnoresForeignDismissal(t *testing.T) {
	c := NewCoordinator("players", nil)
	called := false
	c.Open(NewActionModal("t", Option{ID: "a", Label: "A"}), func(ModalResult) tea.Cmd {
		called = true
		return nil
	})
	d := dismissal(t, c.Update(keyMsg("enter")))

	other := d
	other.owner = "bans"
	if _, ok := c.Resume(other); ok {
		t.Fatalf("accepted dismissal for another screen")
	}
	stale := d
	stale.token = "stale"
	if _, ok := c.Resume(stale); ok {
		t.Fatalf("accepted dismissal with a stale token")
	}
	if called {
		t.Fatalf("continuation ran for a foreign dismissal")
	}
	if _, ok := c.Resume(d); !ok || !called {
		t.Fatalf("genuine dismissal not delivered")
	}
}

func TestCoordinatorDropsInputWhileResultInFlight(t *testing.T) {
	c := NewCoordinator("test", nil)
	c.Open(NewActionModal("t", Option{ID: "a", Label: "A"}), nil)
	c.Update(keyMsg("enter"))
	if cmd := c.Update(keyMsg("enter")); cmd != nil {
		t.Fatalf("key after dismissal produced a command")
	}
}
