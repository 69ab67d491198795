package messaging

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"inventory-service/internal/application/interfaces"
	"inventory-service/internal/application/mapper"
	"inventory-service/internal/domain/entities"
)

const (
	subjectProductCreated = "product.created"
	subjectSaleRecorded   = "sale.recorded"
)

// NatsPublisher publishes domain events for other services to consume.
// Publish failures are logged and swallowed: eventing must never fail a
// request.
type NatsPublisher struct {
	conn   *nats.Conn
	logger *logrus.Logger
}

func NewNatsPublisher(url string, logger *logrus.Logger) (*NatsPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: conn, logger: logger}, nil
}

func (p *NatsPublisher) PublishProductCreated(product *entities.Product) {
	p.publish(subjectProductCreated, mapper.NewProductResultFromEntity(product))
}

func (p *NatsPublisher) PublishSaleRecorded(sale *entities.Sale) {
	p.publish(subjectSaleRecorded, mapper.NewSaleResultFromEntity(sale))
}

func (p *NatsPublisher) publish(subject string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.WithError(err).WithField("subject", subject).Warn("failed to encode event")
		return
	}

	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.WithError(err).WithField("subject", subject).Warn("failed to publish event")
	}
}

func (p *NatsPublisher) Close() {
	if p.conn != nil && p.conn.IsConnected() {
		p.conn.Close()
	}
}

// NopPublisher is wired when no NATS URL is configured.
type NopPublisher struct{}

func NewNopPublisher() interfaces.EventPublisher {
	return &NopPublisher{}
}

func (NopPublisher) PublishProductCreated(*entities.Product) {}

func (NopPublisher) PublishSaleRecorded(*entities.Sale) {}
