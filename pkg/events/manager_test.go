package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(5 * time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func subscribe(t *testing.T, conn *websocket.Conn, channel string) {
	t.Helper()
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])
	require.Equal(t, channel, msg["channel"])
}

func waitForSubscribers(t *testing.T, manager *ConnectionManager, channel string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if manager.subscriberCount(channel) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("channel %s never reached %d subscribers", channel, want)
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_BroadcastReachesSubscribers(t *testing.T) {
	manager, server := setupTestManager(t)
	channel := GenerationChannel("gen-1")

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)
	subscribe(t, conn1, channel)
	subscribe(t, conn2, channel)
	waitForSubscribers(t, manager, channel, 2)

	manager.Broadcast(channel, []byte(`{"type":"stream.chunk","delta":"abc"}`))

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		msg := readJSON(t, conn)
		assert.Equal(t, "stream.chunk", msg["type"])
		assert.Equal(t, "abc", msg["delta"])
	}
}

func TestConnectionManager_LateSubscriberGetsReplay(t *testing.T) {
	manager, server := setupTestManager(t)
	channel := GenerationChannel("gen-2")

	// Events published before anyone subscribes.
	for i := 0; i < 3; i++ {
		manager.Broadcast(channel, []byte(fmt.Sprintf(`{"type":"stream.chunk","delta":"%d"}`, i)))
	}

	conn := connectWS(t, server)
	readJSON(t, conn)
	subscribe(t, conn, channel)

	// The replay arrives in publish order right after the confirmation.
	for i := 0; i < 3; i++ {
		msg := readJSON(t, conn)
		assert.Equal(t, fmt.Sprintf("%d", i), msg["delta"])
	}
}

func TestConnectionManager_ReplayBounded(t *testing.T) {
	manager, server := setupTestManager(t)
	channel := GenerationChannel("gen-3")

	total := replayLimit + 50
	for i := 0; i < total; i++ {
		manager.Broadcast(channel, []byte(fmt.Sprintf(`{"n":%d}`, i)))
	}

	conn := connectWS(t, server)
	readJSON(t, conn)
	subscribe(t, conn, channel)

	// Oldest events beyond the limit are gone; replay starts at the cut.
	first := readJSON(t, conn)
	assert.Equal(t, float64(total-replayLimit), first["n"])
}

func TestConnectionManager_CloseChannelDropsReplay(t *testing.T) {
	manager, server := setupTestManager(t)
	channel := GenerationChannel("gen-4")

	manager.Broadcast(channel, []byte(`{"type":"stream.chunk"}`))
	manager.CloseChannel(channel)

	conn := connectWS(t, server)
	readJSON(t, conn)
	subscribe(t, conn, channel)

	// Nothing to replay: the next read should time out rather than deliver.
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := conn.Read(ctx)
	assert.Error(t, err)
}

func TestConnectionManager_UnsubscribeStopsDelivery(t *testing.T) {
	manager, server := setupTestManager(t)
	channel := GenerationChannel("gen-5")

	conn := connectWS(t, server)
	readJSON(t, conn)
	subscribe(t, conn, channel)
	waitForSubscribers(t, manager, channel, 1)

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	unsub, _ := json.Marshal(ClientMessage{Action: "unsubscribe", Channel: channel})
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, unsub))
	waitForSubscribers(t, manager, channel, 0)

	manager.Broadcast(channel, []byte(`{"type":"stream.chunk"}`))

	readCtx, cancelRead := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancelRead()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err)
}

func TestConnectionManager_Ping(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ping, _ := json.Marshal(ClientMessage{Action: "ping"})
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, ping))

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}
