package config

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Consumer   string   `yaml:"consumer-group"`
	Topic      string   `yaml:"refresh-topic"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Consumer
}

func (s *KafkaConfig) RefreshTopic() string {
	return s.Topic
}
