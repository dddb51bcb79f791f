package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	first, unsubscribeFirst := bus.Subscribe()
	defer unsubscribeFirst()
	second, unsubscribeSecond := bus.Subscribe()
	defer unsubscribeSecond()

	bus.Publish(New(TypeItemDeleted, map[string]string{"id": "abc"}))

	for _, ch := range []<-chan Event{first, second} {
		e := <-ch
		require.Equal(t, TypeItemDeleted, e.Type)
		require.NotEmpty(t, e.ID)
		require.NotEmpty(t, e.Timestamp)
	}
}

func TestBusDropsWhenSubscriberIsFull(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	bus.bufferSize = 1
	ch, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	bus.Publish(New(TypeItemCreated, nil))
	bus.Publish(New(TypeItemUpdated, nil))

	require.Equal(t, TypeItemCreated, (<-ch).Type)
	require.Len(t, ch, 0)
}

func TestUnsubscribeClosesChannelOnce(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	ch, unsubscribe := bus.Subscribe()
	unsubscribe()
	unsubscribe()

	_, open := <-ch
	require.False(t, open)

	bus.Publish(New(TypeItemPurged, nil))
}
