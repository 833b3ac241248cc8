package channels

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/bus"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeChannel records sends.
type fakeChannel struct {
	name string

	mu      sync.Mutex
	targets []string
	bodies  []string
	sendErr error
	started bool
	stopped bool
}

func (f *fakeChannel) Name() string                { return f.name }
func (f *fakeChannel) Start(context.Context) error { f.started = true; return nil }
func (f *fakeChannel) Stop(context.Context) error  { f.stopped = true; return nil }

func (f *fakeChannel) Send(_ context.Context, target, content, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.targets = append(f.targets, target)
	f.bodies = append(f.bodies, content)
	return "m1", nil
}

func (f *fakeChannel) sent() ([]string, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.targets...), append([]string(nil), f.bodies...)
}

func TestRegistry_GetAndNames(t *testing.T) {
	r := NewRegistry(bus.New(), testLogger())
	r.Register(&fakeChannel{name: "slack"})
	r.Register(&fakeChannel{name: "web"})

	assert.Equal(t, []string{"slack", "web"}, r.Names())

	ch, err := r.Get("web")
	require.NoError(t, err)
	assert.Equal(t, "web", ch.Name())

	_, err = r.Get("telegram")
	assert.Error(t, err)
}

func TestRegistry_StartStop(t *testing.T) {
	r := NewRegistry(bus.New(), testLogger())
	ch := &fakeChannel{name: "web"}
	r.Register(ch)

	require.NoError(t, r.Start(context.Background()))
	assert.True(t, ch.started)
	r.Stop(context.Background())
	assert.True(t, ch.stopped)
}

func TestRegistry_RoutesRepliesToOriginChannel(t *testing.T) {
	b := bus.New()
	r := NewRegistry(b, testLogger())
	web := &fakeChannel{name: "web"}
	slack := &fakeChannel{name: "slack"}
	r.Register(web)
	r.Register(slack)
	require.NoError(t, r.Start(context.Background()))
	defer r.Stop(context.Background())

	b.Emit(bus.EventConversationComplete, map[string]any{
		"channel":    "slack",
		"session_id": "slack_U123",
		"status":     "success",
		"content":    "here you go",
	})

	targets, bodies := slack.sent()
	require.Len(t, targets, 1)
	assert.Equal(t, "U123", targets[0])
	assert.Equal(t, "here you go", bodies[0])

	webTargets, _ := web.sent()
	assert.Empty(t, webTargets)
}

func TestRegistry_IgnoresNonSuccessAndUnknownChannels(t *testing.T) {
	b := bus.New()
	r := NewRegistry(b, testLogger())
	web := &fakeChannel{name: "web"}
	r.Register(web)
	require.NoError(t, r.Start(context.Background()))
	defer r.Stop(context.Background())

	b.Emit(bus.EventConversationComplete, map[string]any{
		"channel":    "web",
		"session_id": "web_alice",
		"status":     "needs_confirmation",
		"content":    "pending",
	})
	b.Emit(bus.EventConversationComplete, map[string]any{
		"channel":    "telegram",
		"session_id": "telegram_bob",
		"status":     "success",
		"content":    "orphan",
	})

	targets, _ := web.sent()
	assert.Empty(t, targets)
}

func TestWeb_ReceiveEmitsChannelMessage(t *testing.T) {
	b := bus.New()
	var got bus.Event
	b.On(bus.EventChannelMessage, func(ev bus.Event) { got = ev })

	w := NewWeb(b)
	w.Receive("conn-1", "hello", "alice")

	assert.Equal(t, "web", got.Payload["channel"])
	assert.Equal(t, "conn-1", got.Payload["sender"])
	assert.Equal(t, "hello", got.Payload["content"])
	assert.Equal(t, "alice", got.Payload["user_id"])
}

func TestWeb_SendThroughDeliverFunc(t *testing.T) {
	w := NewWeb(bus.New())

	_, err := w.Send(context.Background(), "conn-1", "hi", "")
	assert.ErrorContains(t, err, "no delivery hook")

	var target, content, msgType string
	w.SetDeliverFunc(func(tgt, body, typ string) error {
		target, content, msgType = tgt, body, typ
		return nil
	})

	id, err := w.Send(context.Background(), "conn-1", "hi", "")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "conn-1", target)
	assert.Equal(t, "hi", content)
	assert.Equal(t, "text", msgType, "message type defaults to text")

	w.SetDeliverFunc(func(string, string, string) error { return errors.New("gone") })
	_, err = w.Send(context.Background(), "conn-1", "hi", "text")
	assert.Error(t, err)
}
