package core

import (
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/event"
)

var ErrSlowSubscriber error = errors.New("change subscriber fell behind")

// changeFeed fans ChangeEvents out without waiting on subscribers. A
// subscriber whose channel is full is dropped and receives
// ErrSlowSubscriber on Err.
type changeFeed struct {
	mu   sync.Mutex
	subs map[*changeSub]struct{}
}

type changeSub struct {
	feed *changeFeed
	ch   chan<- ChangeEvent
	err  chan error
	once sync.Once
}

func (f *changeFeed) subscribe(ch chan<- ChangeEvent) event.Subscription {
	sub := &changeSub{feed: f, ch: ch, err: make(chan error, 1)}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subs == nil {
		f.subs = make(map[*changeSub]struct{})
	}
	f.subs[sub] = struct{}{}
	return sub
}

func (f *changeFeed) send(change ChangeEvent) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	delivered := 0
	for sub := range f.subs {
		select {
		case sub.ch <- change:
			delivered++
		default:
			delete(f.subs, sub)
			sub.close(ErrSlowSubscriber)
		}
	}
	return delivered
}

func (f *changeFeed) closeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for sub := range f.subs {
		delete(f.subs, sub)
		sub.close(nil)
	}
}

func (s *changeSub) Err() <-chan error {
	return s.err
}

func (s *changeSub) Unsubscribe() {
	s.feed.mu.Lock()
	delete(s.feed.subs, s)
	s.feed.mu.Unlock()
	s.close(nil)
}

func (s *changeSub) close(err error) {
	s.once.Do(func() {
		if err != nil {
			s.err <- err
		}
		close(s.err)
	})
}
