package sse

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"biblioteca-service/pkg/logger"
)

const (
	// defaultRedisChannel carries notification events between instances.
	defaultRedisChannel = "biblioteca:notification:sse"
)

// redisEnvelope is the message shape stored in Redis Pub/Sub. It wraps
// the topic-scoped SSE Event so every instance can fan it back into its
// local in-memory Hub.
type redisEnvelope struct {
	Topic  string      `json:"topic"`
	Type   string      `json:"type"`
	Data   interface{} `json:"data,omitempty"`
	SentAt time.Time   `json:"sent_at"`
}

// redisPubSubBridge connects the local in-process Hub with a Redis
// Pub/Sub channel so notifications published by any instance reach the
// SSE streams of all instances.
type redisPubSubBridge struct {
	// client must be a *redis.Client; redis.Cmdable does not declare
	// Subscribe so the concrete type is required here.
	client  *redis.Client
	channel string
}

var globalBridge *redisPubSubBridge

// InitRedisPubSub wires the global Hub to a Redis Pub/Sub channel. It
// should be called once during startup after the Redis client has been
// initialised. Without it the service works in single-instance mode via
// the in-memory Hub alone.
func InitRedisPubSub(client *redis.Client, channel string) {
	if client == nil {
		return
	}
	if channel == "" {
		channel = defaultRedisChannel
	}

	globalBridge = &redisPubSubBridge{
		client:  client,
		channel: channel,
	}

	go globalBridge.runSubscriber()
	logger.Infof("sse: redis pubsub bridge initialised channel=%s", channel)
}

// Publish dispatches an SSE event for a topic.
//   - Single-instance/dev mode (no redis bridge): writes directly to the local Hub.
//   - Multi-instance mode: publishes to Redis so every instance replays the
//     event into its own Hub.
func Publish(topic string, ev Event) {
	if topic == "" || ev.Type == "" {
		return
	}

	if globalBridge != nil {
		globalBridge.publish(topic, ev)
		return
	}

	DefaultHub().Publish(topic, ev)
}

func (b *redisPubSubBridge) publish(topic string, ev Event) {
	env := &redisEnvelope{
		Topic:  topic,
		Type:   ev.Type,
		Data:   ev.Data,
		SentAt: time.Now().UTC(),
	}

	body, err := json.Marshal(env)
	if err != nil {
		logger.Errorf("sse: encode redis envelope failed error=%v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := b.client.Publish(ctx, b.channel, body).Err(); err != nil {
		logger.Errorf("sse: publish redis message failed channel=%s error=%v", b.channel, err)
	}
}

// runSubscriber listens on the shared Redis channel and forwards events
// into the local in-memory Hub.
func (b *redisPubSubBridge) runSubscriber() {
	ctx := context.Background()

	pubsub := b.client.Subscribe(ctx, b.channel)
	defer pubsub.Close()

	// Ensure subscription is established before reading messages.
	if _, err := pubsub.Receive(ctx); err != nil {
		logger.Errorf("sse: failed to subscribe to redis channel=%s error=%v", b.channel, err)
		return
	}

	ch := pubsub.Channel()
	for msg := range ch {
		var env redisEnvelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			logger.Errorf("sse: failed to decode redis message channel=%s error=%v", b.channel, err)
			continue
		}
		if env.Topic == "" || env.Type == "" {
			continue
		}
		DefaultHub().Publish(env.Topic, Event{
			Type: env.Type,
			Data: env.Data,
		})
	}
}
