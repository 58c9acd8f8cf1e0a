package views

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/bootlang/internal/client/client"
	"github.com/dmitrijs2005/bootlang/internal/client/forms"
)

var (
	ErrBusy      = errors.New("another action is in progress")
	ErrRedirect  = errors.New("admin access required")
	ErrUnmounted = errors.New("view is not mounted")
)

// State is the banner state shared by every view.
type State struct {
	Loading bool
	Error   string
	Success string
}

// Op is one in-flight action started by Base.Begin.
type Op struct {
	gen     uint64
	release func()
}

// Base implements the loading gate and mount lifetime. Views embed it and
// guard their own data with Do.
type Base struct {
	mu     sync.Mutex
	state  State
	gen    uint64
	life   context.Context
	cancel context.CancelFunc
}

// Mount starts a new lifetime derived from ctx.
func (b *Base) Mount(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		b.cancel()
	}
	b.gen++
	b.life, b.cancel = context.WithCancel(ctx)
	b.state = State{}
}

// Unmount cancels in-flight actions. Their results are discarded.
func (b *Base) Unmount() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		b.cancel()
	}
	b.gen++
	b.life, b.cancel = nil, nil
	b.state.Loading = false
}

func (b *Base) Mounted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.life != nil && b.life.Err() == nil
}

func (b *Base) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Begin closes the loading gate and clears the banners. The returned
// context ends with ctx or with the mount lifetime, whichever is first.
func (b *Base) Begin(ctx context.Context) (context.Context, *Op, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.life == nil || b.life.Err() != nil {
		return nil, nil, ErrUnmounted
	}
	if b.state.Loading {
		return nil, nil, ErrBusy
	}
	b.state = State{Loading: true}

	cctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(b.life, cancel)
	op := &Op{gen: b.gen, release: func() {
		stop()
		cancel()
	}}
	return cctx, op, nil
}

// Finish opens the gate and applies fn to the view under its lock. When
// the view was unmounted since Begin, fn is skipped and ErrUnmounted is
// returned.
func (b *Base) Finish(op *Op, fn func(s *State)) error {
	op.release()

	b.mu.Lock()
	defer b.mu.Unlock()
	if op.gen != b.gen {
		return ErrUnmounted
	}
	b.state.Loading = false
	if fn != nil {
		fn(&b.state)
	}
	return nil
}

// Fail shows msg without touching the network.
func (b *Base) Fail(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.Error = msg
	b.state.Success = ""
}

// Do runs fn under the view lock.
func (b *Base) Do(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn()
}

// ErrorText is the banner text for err: the validation message, the
// backend detail, or fallback.
func ErrorText(err error, fallback string) string {
	var fe *forms.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return client.ErrorMessage(err, fallback)
}
