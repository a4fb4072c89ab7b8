package navbar

import (
	"strings"
	"sync"
)

// ScrollThreshold is the vertical offset in pixels past which the navbar turns opaque.
const ScrollThreshold = 10

// ScrolledClasses are applied to the navbar while the viewport is scrolled.
var ScrolledClasses = []string{"bg-black/70", "backdrop-blur"}

// IsScrolled reports whether offset is strictly past ScrollThreshold.
func IsScrolled(offset float64) bool {
	return offset > ScrollThreshold
}

// ScrollSource delivers vertical scroll offsets to subscribers until they unsubscribe.
type ScrollSource interface {
	Subscribe(fn func(offset float64)) (unsubscribe func())
}

type Observer struct {
	mu          sync.Mutex
	scrolled    bool
	unsubscribe func()
	onChange    func(scrolled bool)
}

// NewObserver returns an unmounted observer. onChange, when set, is called every
// time the scrolled state flips.
func NewObserver(onChange func(scrolled bool)) *Observer {
	return &Observer{onChange: onChange}
}

// Mount registers the observer's single listener on src. Mounting an already
// mounted observer moves it to src.
func (o *Observer) Mount(src ScrollSource) {
	o.Unmount()

	unsubscribe := src.Subscribe(o.handleScroll)

	o.mu.Lock()
	o.unsubscribe = unsubscribe
	o.mu.Unlock()
}

func (o *Observer) Unmount() {
	o.mu.Lock()
	unsubscribe := o.unsubscribe
	o.unsubscribe = nil
	o.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (o *Observer) Mounted() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.unsubscribe != nil
}

func (o *Observer) Scrolled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.scrolled
}

// Classes returns the visual treatment for the current state.
func (o *Observer) Classes() []string {
	return ClassesFor(o.Scrolled())
}

func (o *Observer) handleScroll(offset float64) {
	scrolled := IsScrolled(offset)

	o.mu.Lock()
	changed := o.scrolled != scrolled
	o.scrolled = scrolled
	onChange := o.onChange
	o.mu.Unlock()

	if changed && onChange != nil {
		onChange(scrolled)
	}
}

func ClassesFor(scrolled bool) []string {
	if !scrolled {
		return nil
	}
	out := make([]string, len(ScrolledClasses))
	copy(out, ScrolledClasses)
	return out
}

// ClassAttr joins classes for use in a class attribute.
func ClassAttr(classes []string) string {
	return strings.Join(classes, " ")
}
