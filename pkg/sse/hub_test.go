package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesAllTopicSubscribers(t *testing.T) {
	h := NewHub()

	ch1, unsub1 := h.Subscribe("notifications")
	defer unsub1()
	ch2, unsub2 := h.Subscribe("notifications")
	defer unsub2()

	h.Publish("notifications", Event{Type: "notification.refreshed"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, "notification.refreshed", ev.Type)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestHubPublishIgnoresOtherTopics(t *testing.T) {
	h := NewHub()

	ch, unsub := h.Subscribe("notifications")
	defer unsub()

	h.Publish("other-topic", Event{Type: "noise"})

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	h := NewHub()

	ch, unsub := h.Subscribe("notifications")
	unsub()

	_, open := <-ch
	require.False(t, open)

	// Publishing after unsubscribe must not panic.
	h.Publish("notifications", Event{Type: "notification.refreshed"})
}

func TestHubConcurrentPublishAndUnsubscribe(t *testing.T) {
	h := NewHub()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 2000; i++ {
			h.Publish("notifications", Event{Type: "notification.refreshed"})
		}
	}()

	// Churn subscribers while the publisher is running; a publish racing
	// an unsubscribe must never panic on a closed channel.
	for i := 0; i < 500; i++ {
		ch, unsub := h.Subscribe("notifications")
		select {
		case <-ch:
		default:
		}
		unsub()
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publisher did not finish")
	}
}

func TestHubDropsEventsForSlowSubscribers(t *testing.T) {
	h := NewHub()

	ch, unsub := h.Subscribe("notifications")
	defer unsub()

	// Fill the buffered channel past capacity; extra events are dropped,
	// never blocking the publisher.
	for i := 0; i < 100; i++ {
		h.Publish("notifications", Event{Type: "notification.refreshed"})
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
		default:
			assert.LessOrEqual(t, received, 16)
			return
		}
	}
}
