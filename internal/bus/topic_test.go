package bus_test

import (
	"errors"
	"testing"

	"hero-quest/internal/bus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic_PublishDeliversInSubscriptionOrder(t *testing.T) {
	topic := bus.NewTopic[int]("numbers", nil)

	var got []string
	topic.Subscribe(func(n int) error {
		got = append(got, "first")
		return nil
	})
	topic.Subscribe(func(n int) error {
		got = append(got, "second")
		return nil
	})
	topic.Subscribe(func(n int) error {
		got = append(got, "third")
		return nil
	})

	require.NoError(t, topic.Publish(1))
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestTopic_PublishIsSynchronous(t *testing.T) {
	topic := bus.NewTopic[string]("words", nil)

	var received string
	topic.Subscribe(func(s string) error {
		received = s
		return nil
	})

	require.NoError(t, topic.Publish("hello"))

	// No waiting: the handler has already run.
	assert.Equal(t, "hello", received)
}

func TestTopic_Unsubscribe(t *testing.T) {
	topic := bus.NewTopic[int]("numbers", nil)

	calls := 0
	unsubscribe := topic.Subscribe(func(int) error {
		calls++
		return nil
	})
	require.Equal(t, 1, topic.Len())

	require.NoError(t, topic.Publish(1))
	unsubscribe()
	require.NoError(t, topic.Publish(2))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, topic.Len())
}

func TestTopic_UnsubscribeTwiceIsHarmless(t *testing.T) {
	topic := bus.NewTopic[int]("numbers", nil)

	first := topic.Subscribe(func(int) error { return nil })
	topic.Subscribe(func(int) error { return nil })

	first()
	first()

	assert.Equal(t, 1, topic.Len())
}

func TestTopic_ErrorsAreJoinedAndDeliveryContinues(t *testing.T) {
	topic := bus.NewTopic[int]("numbers", nil)
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	reachedLast := false
	topic.Subscribe(func(int) error { return errA })
	topic.Subscribe(func(int) error { return errB })
	topic.Subscribe(func(int) error {
		reachedLast = true
		return nil
	})

	err := topic.Publish(7)

	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.True(t, reachedLast, "later handlers should still run")
}

func TestTopic_SubscribeDuringPublishAppliesToNextPublish(t *testing.T) {
	topic := bus.NewTopic[int]("numbers", nil)

	lateCalls := 0
	topic.Subscribe(func(int) error {
		topic.Subscribe(func(int) error {
			lateCalls++
			return nil
		})
		return nil
	})

	require.NoError(t, topic.Publish(1))
	assert.Equal(t, 0, lateCalls)

	require.NoError(t, topic.Publish(2))
	assert.Equal(t, 1, lateCalls)
}

func TestTopic_UnsubscribeDuringPublishKeepsCurrentDelivery(t *testing.T) {
	topic := bus.NewTopic[int]("numbers", nil)

	var unsubscribeSecond func()
	secondCalls := 0

	topic.Subscribe(func(int) error {
		unsubscribeSecond()
		return nil
	})
	unsubscribeSecond = topic.Subscribe(func(int) error {
		secondCalls++
		return nil
	})

	require.NoError(t, topic.Publish(1))
	require.NoError(t, topic.Publish(2))

	assert.Equal(t, 1, secondCalls)
}

func TestTopic_PublishWithoutSubscribers(t *testing.T) {
	topic := bus.NewTopic[int]("empty", nil)

	assert.NoError(t, topic.Publish(1))
	assert.Equal(t, "empty", topic.Name())
}
