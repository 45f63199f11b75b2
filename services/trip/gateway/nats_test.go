package gateway

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	natspkg "github.com/piresc/dispatch/internal/pkg/nats"

	natsserver "github.com/nats-io/nats-server/v2/test"
)

var (
	testNatsServer *server.Server
	testNatsURL    = "nats://127.0.0.1:8369"
)

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8369
	opts.JetStream = true
	storeDir, err := os.MkdirTemp("", "jetstream-test")
	if err != nil {
		panic(err)
	}
	opts.StoreDir = storeDir

	testNatsServer = natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.RemoveAll(storeDir)
	os.Exit(code)
}

func setupClient(t *testing.T) *natspkg.Client {
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	t.Cleanup(client.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = client.CreateStream(ctx, natspkg.StreamConfig{
		Name:      constants.TripStreamName,
		Subjects:  []string{constants.SubjectTripOffer},
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.MemoryStorage,
		Replicas:  1,
	})
	require.NoError(t, err)
	return client
}

func offerEvent(payload string) *models.OutboxEvent {
	return &models.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "trip",
		AggregateID:   uuid.NewString(),
		EventType:     models.EventTypeTripOffer,
		Payload:       []byte(payload),
		Status:        models.OutboxStatusPending,
		CreatedAt:     time.Now(),
	}
}

// TestPublishOfferEvent_DeliversPayload verifies the raw outbox payload
// lands on the offer subject unchanged.
func TestPublishOfferEvent_DeliversPayload(t *testing.T) {
	client := setupClient(t)
	gw := NewTripGW(client)

	nc, err := nats.Connect(testNatsURL)
	require.NoError(t, err)
	defer nc.Close()

	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(constants.SubjectTripOffer, msgCh)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	event := offerEvent(`{"trip_id":"trip-123","pickup_lat":-6.2,"pickup_lng":106.8}`)
	err = gw.PublishOfferEvent(context.Background(), event)
	require.NoError(t, err)

	select {
	case msg := <-msgCh:
		assert.JSONEq(t, string(event.Payload), string(msg.Data))
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for offer event")
	}
}

// TestPublishOfferEvent_DuplicateRowIsDeduplicated covers the relay crash
// window: a row whose publish succeeded but whose delete did not commit is
// republished with the same message ID and must not append a second stream
// entry.
func TestPublishOfferEvent_DuplicateRowIsDeduplicated(t *testing.T) {
	client := setupClient(t)
	gw := NewTripGW(client)

	ctx := context.Background()
	stream, err := client.GetJetStream().Stream(ctx, constants.TripStreamName)
	require.NoError(t, err)
	before, err := stream.Info(ctx)
	require.NoError(t, err)

	event := offerEvent(`{"trip_id":"trip-456"}`)
	require.NoError(t, gw.PublishOfferEvent(ctx, event))
	require.NoError(t, gw.PublishOfferEvent(ctx, event))

	after, err := stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.State.Msgs+1, after.State.Msgs)
}
