package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/fintrack/internal/logger"
	"max.ks1230/fintrack/internal/model/reports"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type dashboardRefresher interface {
	Refresh(ctx context.Context, userID int64) (*reports.Dashboard, error)
}

// OverspendAlerter is exported so main can hand over an untyped nil when
// alerts are disabled.
type OverspendAlerter interface {
	NotifyOverspend(ctx context.Context, d *reports.Dashboard) error
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	refresher     dashboardRefresher
	alerter       OverspendAlerter
}

// NewConsumer builds the reporter's consumer. The alerter may be nil when no
// Telegram token is configured.
func NewConsumer(cfg consumerConfig, refresher dashboardRefresher, alerter OverspendAlerter) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.RefreshTopic(),
		refresher:     refresher,
		alerter:       alerter,
	}, err
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var req RefreshRequest
		err := json.Unmarshal(message.Value, &req)
		if err != nil {
			logger.Error("cannot unmarshal kafka message", zap.Error(err))
		} else {
			logger.Info(
				"received refresh request",
				zap.ByteString("key", message.Key),
				zap.Int64("userID", req.UserID),
			)
			c.processRequest(session.Context(), req)
		}
		session.MarkMessage(message, "")
	}

	return nil
}

func (c *Consumer) processRequest(ctx context.Context, req RefreshRequest) {
	d, err := c.refresher.Refresh(ctx, req.UserID)
	if err != nil {
		logger.Error("failed to refresh dashboard", zap.Int64("userID", req.UserID), zap.Error(err))
		return
	}
	if c.alerter == nil {
		return
	}
	if err = c.alerter.NotifyOverspend(ctx, d); err != nil {
		logger.Error("failed to send overspend alert", zap.Error(err))
	}
}
