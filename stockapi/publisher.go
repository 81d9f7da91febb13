// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockapi

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/zhangyunhao116/skipmap"
)

var ErrPublisherOverflow = errors.New("subscriber buffer overflow")

// Publisher hands out the latest values of a symbol to a single subscriber
// channel. When a subscriber falls behind, the oldest buffered value is
// replaced, so the channel always ends with the newest value.
type Publisher[T any] struct {
	subscribers *skipmap.StringMap[chan T]
	bufferSize  int
	retiredLock sync.Mutex
	retired     []chan T
}

func NewPublisher[T any](bufferSize int) *Publisher[T] {
	return &Publisher[T]{
		subscribers: skipmap.NewString[chan T](),
		bufferSize:  max(bufferSize, 1),
	}
}

func (p *Publisher[T]) Subscribe(symbol string) (<-chan T, error) {
	c := make(chan T, p.bufferSize)
	if _, exists := p.subscribers.LoadOrStore(symbol, c); exists {
		return nil, errors.Errorf("already subscribed to %s", symbol)
	}
	return c, nil
}

// Unsubscribe stops publishing to symbol. The channel is closed by Close,
// a concurrent Publish may still be writing to it.
func (p *Publisher[T]) Unsubscribe(symbol string) error {
	c, exists := p.subscribers.LoadAndDelete(symbol)
	if !exists {
		return errors.Errorf("cannot unsubscribe %s: not subscribed", symbol)
	}
	p.retiredLock.Lock()
	p.retired = append(p.retired, c)
	p.retiredLock.Unlock()
	return nil
}

func (p *Publisher[T]) IsSubscribed(symbol string) bool {
	_, exists := p.subscribers.Load(symbol)
	return exists
}

// Publish is a no-op for symbols without subscriber. An error wrapping
// ErrPublisherOverflow reports that an older value was discarded.
func (p *Publisher[T]) Publish(symbol string, v T) error {
	c, exists := p.subscribers.Load(symbol)
	if !exists {
		return nil
	}
	select {
	case c <- v:
		return nil
	default:
	}
	dropped := false
	for attempt := 0; attempt < 2; attempt++ {
		select {
		case <-c:
			dropped = true
		default:
		}
		select {
		case c <- v:
			if dropped {
				return errors.Wrapf(ErrPublisherOverflow, "symbol %s: old value removed", symbol)
			}
			return nil
		default:
		}
	}
	return errors.Wrapf(ErrPublisherOverflow, "symbol %s: new value dropped", symbol)
}

// Close closes all subscriber channels, including unsubscribed ones.
// The publisher must not be used afterwards.
func (p *Publisher[T]) Close() {
	p.subscribers.Range(func(_ string, c chan T) bool {
		close(c)
		return true
	})
	p.subscribers = skipmap.NewString[chan T]()
	p.retiredLock.Lock()
	for _, c := range p.retired {
		close(c)
	}
	p.retired = nil
	p.retiredLock.Unlock()
}
