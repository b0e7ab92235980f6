package sse

import (
	"fmt"
	"os"
	"strconv"
	"sync/atomic"
	"testing"
)

// parseSubscribersEnv reads HUB_BENCH_SUBSCRIBERS to allow overriding
// the number of pre-created subscribers in heavy benchmarks.
func parseSubscribersEnv(defaultValue int) int {
	if v := os.Getenv("HUB_BENCH_SUBSCRIBERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// parseTopicsEnv reads HUB_BENCH_TOPICS to allow overriding the number
// of distinct topics in many-topic benchmarks.
func parseTopicsEnv(defaultValue int) int {
	if v := os.Getenv("HUB_BENCH_TOPICS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// --- Subscribe/Unsubscribe churn ---

func BenchmarkHub_SubUnsub(b *testing.B) {
	h := NewHub()
	const topic = "notifications"

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, unsubscribe := h.Subscribe(topic)
			unsubscribe()
		}
	})
}

// --- Publish with many subscribers (single topic, steady-state) ---

// Default is 10k pre-created dashboard connections; override with
// HUB_BENCH_SUBSCRIBERS for heavier runs.
func BenchmarkHub_PublishSteady(b *testing.B) {
	h := NewHub()
	const topic = "notifications"

	subs := parseSubscribersEnv(10_000)
	for i := 0; i < subs; i++ {
		// Channels and unsubscribe funcs are ignored; this benchmark
		// focuses on Publish cost with a fixed subscriber set.
		_, _ = h.Subscribe(topic)
	}

	ev := Event{Type: "notification.refreshed"}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			h.Publish(topic, ev)
		}
	})
}

// --- Churn: subscribe + publish + unsubscribe in a tight loop ---

func BenchmarkHub_Churn(b *testing.B) {
	h := NewHub()
	const topic = "notifications"
	ev := Event{Type: "notification.refreshed"}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, unsubscribe := h.Subscribe(topic)
			h.Publish(topic, ev)
			unsubscribe()
		}
	})
}

// --- Many topics, single connection per topic ---

func BenchmarkHub_ManyTopicsSingleConn(b *testing.B) {
	h := NewHub()

	topics := parseTopicsEnv(10_000)
	names := make([]string, topics)
	for i := 0; i < topics; i++ {
		name := fmt.Sprintf("topic-%d", i)
		names[i] = name
		_, _ = h.Subscribe(name)
	}

	ev := Event{Type: "notification.refreshed"}

	var idx uint64

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			// Round-robin over topics; rand would add overhead.
			i := atomic.AddUint64(&idx, 1)
			h.Publish(names[int(i)%topics], ev)
		}
	})
}
