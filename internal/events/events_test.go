package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestBroker_WithoutRedisIsSilent(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := NewBroker(nil, zap.NewNop())
	b.Publish(context.Background(), Change{Collection: CollectionMaterials, ID: "1", Action: ActionCreated})

	ch, stop := b.Subscribe(context.Background())
	select {
	case c, ok := <-ch:
		t.Fatalf("unexpected change %+v (open=%v)", c, ok)
	case <-time.After(20 * time.Millisecond):
	}

	stop()
	_, ok := <-ch
	assert.False(t, ok)
}

func TestBroker_SubscriptionEndsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	ch, stop := NewBroker(nil, zap.NewNop()).Subscribe(ctx)
	defer stop()

	cancel()
	_, ok := <-ch
	assert.False(t, ok)
}
