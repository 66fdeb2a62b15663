package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/shared/logger"
)

func TestRedisConnectivityEventBus_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	sub := client.Subscribe(ctx, ConnectivityChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	bus := NewRedisConnectivityEventBus(client, logger.NewNopLogger())
	event := connectivity.NewEvent("ATS1000", connectivity.TransitionReconnect, connectivity.ResultSuccess,
		connectivity.NetworkSucceeded, "", "ops")
	require.NoError(t, bus.Publish(ctx, event))

	select {
	case raw := <-sub.Channel():
		var msg ConnectivityMessage
		require.NoError(t, json.Unmarshal([]byte(raw.Payload), &msg))
		assert.Equal(t, event.ID, msg.EventID)
		assert.Equal(t, "ATS1000", msg.AccountNo)
		assert.Equal(t, "reconnect", msg.Transition)
		assert.Equal(t, "success", msg.Result)
		assert.Equal(t, "succeeded", msg.NetworkOutcome)
		assert.Equal(t, "ops", msg.Actor)
	case <-time.After(3 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestRedisConnectivityEventBus_PublishFailsWhenDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	bus := NewRedisConnectivityEventBus(client, logger.NewNopLogger())
	event := connectivity.NewEvent("0001", connectivity.TransitionPullout, connectivity.ResultFailed,
		connectivity.NetworkFailed, "timeout", "")

	assert.Error(t, bus.Publish(context.Background(), event))
}

func TestLoggingPublisher(t *testing.T) {
	p := NewLoggingPublisher(logger.NewNopLogger())
	event := connectivity.NewEvent("0001", connectivity.TransitionDisconnect, connectivity.ResultSuccess,
		connectivity.NetworkSucceeded, "", "")
	assert.NoError(t, p.Publish(context.Background(), event))
}
