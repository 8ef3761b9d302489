package kafka

import (
	"context"
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/entity/summary"
	"max.ks1230/expense-analyzer/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	ChartsTopic() string
}

// Producer publishes summaries to the charting collaborator's topic.
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
		topic:    cfg.ChartsTopic(),
	}, err
}

func (p *Producer) PublishSummary(_ context.Context, s *summary.Summary) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshalling summary")
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(payload),
	})
	return errors.Wrap(err, "publish summary")
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
