// Package kafka carries dashboard refresh requests between the API server
// and the reporter worker. Messages are small JSON envelopes keyed by user.
package kafka

import (
	"encoding/json"
	"strconv"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/fintrack/internal/logger"
)

// RefreshRequest asks the reporter to regenerate one user's dashboard.
type RefreshRequest struct {
	UserID int64 `json:"user_id"`
}

type producerConfig interface {
	Brokers() []string
	RefreshTopic() string
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	return &Producer{
		producer: producer,
		topic:    cfg.RefreshTopic(),
	}, err
}

func (p *Producer) ProduceRefresh(userID int64) error {
	payload, err := json.Marshal(RefreshRequest{UserID: userID})
	if err != nil {
		return errors.Wrap(err, "produce refresh")
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(userID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	return errors.Wrap(err, "produce refresh")
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
