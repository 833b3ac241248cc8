package channels

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"

	"github.com/openconvo/gateway/pkg/bus"
)

// slackPollInterval is how often the adapter polls channel history for
// new messages.
const slackPollInterval = 3 * time.Second

// Slack bridges one Slack channel into the gateway. Inbound messages
// are polled from conversation history; replies post into the same
// channel.
type Slack struct {
	api       *goslack.Client
	channelID string
	bus       *bus.Bus
	logger    *slog.Logger

	pollInterval time.Duration
	botUserID    string
	lastTS       string

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSlack creates a Slack adapter for one channel.
func NewSlack(token, channelID string, b *bus.Bus, logger *slog.Logger) *Slack {
	return &Slack{
		api:          goslack.New(token),
		channelID:    channelID,
		bus:          b,
		logger:       logger,
		pollInterval: slackPollInterval,
	}
}

// NewSlackWithAPIURL targets a custom API URL. Useful for testing with
// a mock server.
func NewSlackWithAPIURL(token, channelID, apiURL string, b *bus.Bus, logger *slog.Logger) *Slack {
	s := NewSlack(token, channelID, b, logger)
	s.api = goslack.New(token, goslack.OptionAPIURL(apiURL))
	return s
}

func (s *Slack) Name() string { return "slack" }

// Start resolves the bot identity and begins polling for inbound
// messages newer than startup.
func (s *Slack) Start(ctx context.Context) error {
	auth, err := s.api.AuthTestContext(ctx)
	if err != nil {
		return fmt.Errorf("slack auth.test failed: %w", err)
	}
	s.botUserID = auth.UserID
	s.lastTS = fmt.Sprintf("%d.000000", time.Now().Unix())

	pollCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.pollLoop(pollCtx)

	s.logger.Info("Slack channel started", "channel_id", s.channelID, "bot_user", s.botUserID)
	return nil
}

func (s *Slack) Stop(context.Context) error {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
	return nil
}

func (s *Slack) pollLoop(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.pollOnce(ctx); err != nil {
				s.logger.Warn("slack history poll failed", "error", err)
			}
		}
	}
}

// pollOnce fetches messages newer than the high-water mark and emits
// each human message inbound, oldest first.
func (s *Slack) pollOnce(ctx context.Context) error {
	history, err := s.api.GetConversationHistoryContext(ctx, &goslack.GetConversationHistoryParameters{
		ChannelID: s.channelID,
		Oldest:    s.lastTS,
		Limit:     50,
	})
	if err != nil {
		return err
	}

	// History arrives newest first.
	for i := len(history.Messages) - 1; i >= 0; i-- {
		msg := history.Messages[i]
		if msg.Timestamp > s.lastTS {
			s.lastTS = msg.Timestamp
		}
		if msg.BotID != "" || msg.User == "" || msg.User == s.botUserID || msg.Text == "" {
			continue
		}
		EmitInbound(s.bus, s.Name(), msg.User, msg.Text, msg.User)
	}
	return nil
}

// Send posts content to the channel and returns the message timestamp.
func (s *Slack) Send(ctx context.Context, _ string, content, messageType string) (string, error) {
	if messageType == "" {
		messageType = "text"
	}
	_, ts, err := s.api.PostMessageContext(ctx, s.channelID,
		goslack.MsgOptionText(content, false))
	if err != nil {
		return "", fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return ts, nil
}
