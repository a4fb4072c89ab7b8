package navbar

import "sync"

// Viewport is an in-process ScrollSource. ScrollTo dispatches synchronously to every
// listener, without debouncing.
type Viewport struct {
	mu        sync.Mutex
	offset    float64
	nextID    int
	listeners map[int]func(float64)
}

func NewViewport() *Viewport {
	return &Viewport{listeners: make(map[int]func(float64))}
}

func (v *Viewport) Subscribe(fn func(offset float64)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.listeners, id)
			v.mu.Unlock()
		})
	}
}

func (v *Viewport) ScrollTo(offset float64) {
	v.mu.Lock()
	v.offset = offset
	fns := make([]func(float64), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(offset)
	}
}

func (v *Viewport) Offset() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.offset
}

func (v *Viewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}
