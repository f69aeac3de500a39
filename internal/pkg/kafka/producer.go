package kafka

import (
	"EcoLoyalty/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ClaimEventProducer 领取事件投递接口
type ClaimEventProducer interface {
	PublishClaim(ctx context.Context, evt *ClaimEvent) error
	Close() error
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer 初始化同步生产者
func NewProducer(cfg *config.Config) (*Producer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: producer,
		topic:    cfg.Kafka.ClaimTopic,
	}, nil
}

// PublishClaim 投递领取事件，key 为帖子ID保证同帖有序
func (s *Producer) PublishClaim(ctx context.Context, evt *ClaimEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(evt.PostID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "claim event published",
		"topic", s.topic,
		"partition", partition,
		"offset", offset,
		"post_id", evt.PostID,
	)
	return nil
}

func (s *Producer) Close() error {
	return s.producer.Close()
}
