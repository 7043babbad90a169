package breadcrumb

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStore_DispatchNotifiesOncePerChange(t *testing.T) {
	s := NewStore()

	var got []Trail
	unsubscribe := s.Subscribe(func(tr Trail) { got = append(got, tr) })

	s.Dispatch(NavigateTo{Path: "/", Label: "Home"})
	s.Dispatch(NavigateTo{Path: "/", Label: "Home"}) // idempotent
	s.Dispatch(NavigateTo{Path: "/tasks", Label: "Tasks"})

	want := []Trail{
		{{Path: "/", Label: "Home"}},
		{{Path: "/", Label: "Home"}, {Path: "/tasks", Label: "Tasks"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}

	unsubscribe()
	unsubscribe()
	s.Dispatch(Reset{})
	if len(got) != 2 {
		t.Errorf("listener called after unsubscribe: %v", got)
	}
	if st := s.State(); len(st) != 0 {
		t.Errorf("State() after Reset = %v", st)
	}
}

func TestStore_ResetOnEmptyIsNoop(t *testing.T) {
	s := NewStore()
	calls := 0
	defer s.Subscribe(func(Trail) { calls++ })()

	s.Dispatch(Reset{})
	if calls != 0 {
		t.Errorf("listener called %d times for a no-op reset", calls)
	}
}

func TestStore_StateIsACopy(t *testing.T) {
	s := NewStore()
	s.Dispatch(NavigateTo{Path: "/a", Label: "A"})

	st := s.State()
	st[0].Label = "mutated"

	if s.State()[0].Label != "A" {
		t.Error("mutating State() result changed the store")
	}
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := NewStore()
	var mu sync.Mutex
	notified := 0
	defer s.Subscribe(func(tr Trail) {
		if len(tr) > MaxLength {
			t.Errorf("listener saw oversized trail %v", tr)
		}
		mu.Lock()
		notified++
		mu.Unlock()
	})()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				p := []string{"/a", "/b", "/c", "/d"}[(g+i)%4]
				s.Dispatch(NavigateTo{Path: p, Label: p})
			}
		}(g)
	}
	wg.Wait()

	if st := s.State(); len(st) == 0 || len(st) > MaxLength {
		t.Errorf("final state = %v", st)
	}
	if notified == 0 {
		t.Error("expected notifications")
	}
}

func TestStore_WatchDeliversLatest(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Watch(context.Background())
	defer cancel()

	s.Dispatch(NavigateTo{Path: "/a", Label: "A"})
	s.Dispatch(NavigateTo{Path: "/b", Label: "B"})

	// Nobody read in between: only the newest trail is buffered.
	select {
	case tr := <-ch:
		want := Trail{{Path: "/a", Label: "A"}, {Path: "/b", Label: "B"}}
		if diff := cmp.Diff(want, tr); diff != "" {
			t.Errorf("watched trail mismatch (-want +got):\n%s", diff)
		}
	case <-time.After(time.Second):
		t.Fatal("no trail delivered")
	}

	select {
	case tr := <-ch:
		t.Errorf("unexpected extra trail %v", tr)
	default:
	}
}

func TestStore_WatchClosesChannel(t *testing.T) {
	tests := []struct {
		name string
		stop func(cancelCtx, cancelWatch func(), s *Store)
	}{
		{name: "cancel func", stop: func(_, cancelWatch func(), _ *Store) { cancelWatch() }},
		{name: "context done", stop: func(cancelCtx, _ func(), _ *Store) { cancelCtx() }},
		{name: "store closed", stop: func(_, _ func(), s *Store) { s.Close() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			ctx, cancelCtx := context.WithCancel(context.Background())
			defer cancelCtx()

			ch, cancelWatch := s.Watch(ctx)
			tt.stop(cancelCtx, cancelWatch, s)

			select {
			case _, ok := <-ch:
				if ok {
					t.Fatal("expected closed channel")
				}
			case <-time.After(time.Second):
				t.Fatal("channel not closed")
			}
			cancelWatch()

			// Dispatching after the watch ended must not panic on the closed channel.
			s.Dispatch(NavigateTo{Path: "/x", Label: "X"})
		})
	}
}

func TestStore_CloseIsIdempotent(t *testing.T) {
	s := NewStore()
	s.Close()
	s.Close()

	select {
	case <-s.Done():
	default:
		t.Fatal("Done not closed")
	}

	// Subscribing to a closed store is a no-op.
	called := false
	s.Subscribe(func(Trail) { called = true })()
	s.Dispatch(NavigateTo{Path: "/a", Label: "A"})
	if called {
		t.Error("listener on closed store was called")
	}
}
