package events

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"nerd/internal/cache"
)

// Channel is the Redis pub/sub channel carrying change notifications.
const Channel = "nerd:changes"

// Collection names, as seen by clients.
const (
	CollectionPending   = "unverified_contributions"
	CollectionVerified  = "verified_contributions"
	CollectionMaterials = "materials"
	CollectionAdmins    = "admins"
	CollectionUsers     = "users"
)

// Action is what happened to a record.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Change tells subscribers that a collection changed and should be refetched.
type Change struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Action     Action `json:"action"`
}

// Publisher announces changes. Publishing never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, change Change)
}

// Subscriber streams changes until ctx is done or the returned stop is called.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan Change, func())
}

// Broker fans changes out over Redis pub/sub. A Broker over a nil cache
// client publishes nothing and its subscriptions stay silent.
type Broker struct {
	cache  *cache.Client
	logger *zap.Logger
}

var (
	_ Publisher  = (*Broker)(nil)
	_ Subscriber = (*Broker)(nil)
)

// NewBroker creates a broker on top of the shared redis client.
func NewBroker(cache *cache.Client, logger *zap.Logger) *Broker {
	return &Broker{cache: cache, logger: logger}
}

func (b *Broker) Publish(ctx context.Context, change Change) {
	payload, err := json.Marshal(change)
	if err != nil {
		b.logger.Warn("marshal change", zap.Error(err))
		return
	}
	if err := b.cache.Publish(ctx, Channel, payload); err != nil {
		b.logger.Warn("publish change",
			zap.String("collection", change.Collection),
			zap.String("id", change.ID),
			zap.Error(err))
	}
}

func (b *Broker) Subscribe(ctx context.Context) (<-chan Change, func()) {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan Change)

	ps := b.cache.Subscribe(ctx, Channel)
	if ps == nil {
		go func() {
			<-ctx.Done()
			close(out)
		}()
		return out, cancel
	}

	go func() {
		defer close(out)
		defer ps.Close()
		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var change Change
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					b.logger.Debug("drop malformed change", zap.Error(err))
					continue
				}
				select {
				case out <- change:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, cancel
}
