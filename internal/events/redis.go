package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const broadcastChannel = "broadcast"

// RedisPublisher publishes events as JSON on the shared broadcast channel.
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, broadcastChannel, string(data)).Err()
}

func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}
