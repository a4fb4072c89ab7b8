package navbar

import (
	"slices"
	"testing"
)

func TestIsScrolledBoundary(t *testing.T) {
	cases := map[float64]bool{
		0:    false,
		9.5:  false,
		10:   false,
		10.1: true,
		11:   true,
		800:  true,
	}

	for offset, want := range cases {
		if got := IsScrolled(offset); got != want {
			t.Errorf("IsScrolled(%v) = %v, want %v", offset, got, want)
		}
	}
}

func TestObserverTogglesOnScroll(t *testing.T) {
	vp := NewViewport()
	obs := NewObserver(nil)
	obs.Mount(vp)
	defer obs.Unmount()

	vp.ScrollTo(11)
	if !obs.Scrolled() {
		t.Fatal("expected scrolled after 11px")
	}
	if !slices.Equal(obs.Classes(), []string{"bg-black/70", "backdrop-blur"}) {
		t.Errorf("unexpected classes %v", obs.Classes())
	}

	vp.ScrollTo(0)
	if obs.Scrolled() {
		t.Fatal("expected not scrolled after returning to 0px")
	}
	if len(obs.Classes()) != 0 {
		t.Errorf("expected no classes, got %v", obs.Classes())
	}

	vp.ScrollTo(10)
	if obs.Scrolled() {
		t.Error("expected 10px to be treated as not scrolled")
	}
}

func TestObserverUnmountRemovesListener(t *testing.T) {
	vp := NewViewport()

	changes := 0
	obs := NewObserver(func(bool) { changes++ })
	obs.Mount(vp)

	if vp.Listeners() != 1 {
		t.Fatalf("expected 1 listener after mount, got %d", vp.Listeners())
	}

	vp.ScrollTo(50)
	if changes != 1 {
		t.Fatalf("expected 1 change, got %d", changes)
	}

	obs.Unmount()
	if vp.Listeners() != 0 {
		t.Fatalf("expected 0 listeners after unmount, got %d", vp.Listeners())
	}
	if obs.Mounted() {
		t.Error("expected observer to report unmounted")
	}

	vp.ScrollTo(0)
	vp.ScrollTo(100)
	if changes != 1 {
		t.Errorf("expected no changes after unmount, got %d", changes)
	}
	if !obs.Scrolled() {
		t.Error("expected state frozen at last observed value")
	}
}

func TestObserverNoDebounce(t *testing.T) {
	vp := NewViewport()

	changes := 0
	obs := NewObserver(func(bool) { changes++ })
	obs.Mount(vp)
	defer obs.Unmount()

	for i := 0; i < 5; i++ {
		vp.ScrollTo(20)
		vp.ScrollTo(0)
	}

	if changes != 10 {
		t.Errorf("expected every crossing to be observed, got %d changes", changes)
	}
}

func TestObserverRemountMovesListener(t *testing.T) {
	first, second := NewViewport(), NewViewport()
	obs := NewObserver(nil)

	obs.Mount(first)
	obs.Mount(second)
	defer obs.Unmount()

	if first.Listeners() != 0 || second.Listeners() != 1 {
		t.Fatalf("expected listener moved, got %d and %d", first.Listeners(), second.Listeners())
	}

	first.ScrollTo(30)
	if obs.Scrolled() {
		t.Error("expected old viewport to be ignored")
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	vp := NewViewport()
	a := vp.Subscribe(func(float64) {})
	vp.Subscribe(func(float64) {})

	a()
	a()
	if vp.Listeners() != 1 {
		t.Errorf("expected 1 listener, got %d", vp.Listeners())
	}
}

func TestClassAttr(t *testing.T) {
	if got := ClassAttr(ClassesFor(true)); got != "bg-black/70 backdrop-blur" {
		t.Errorf("unexpected class attr %q", got)
	}
	if got := ClassAttr(ClassesFor(false)); got != "" {
		t.Errorf("expected empty class attr, got %q", got)
	}
}
