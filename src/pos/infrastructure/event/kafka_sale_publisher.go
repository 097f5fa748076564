package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"

	"github.com/segmentio/kafka-go"
)

// saleCompletedEvent payload del evento de venta finalizada
type saleCompletedEvent struct {
	SaleID        string    `json:"sale_id"`
	TenantID      string    `json:"tenant_id"`
	Subtotal      string    `json:"subtotal"`
	Tax           string    `json:"tax"`
	Total         string    `json:"total"`
	PaymentType   string    `json:"payment_type"`
	TotalItems    int       `json:"total_items"`
	TotalQuantity int       `json:"total_quantity"`
	OperatorID    string    `json:"operator_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// KafkaSalePublisher implementa SalePublisher sobre Kafka
// Publicación sincrónica con acks del líder; los fallos los absorbe el
// caller como no-fatales
type KafkaSalePublisher struct {
	writer *kafka.Writer
}

// NewKafkaSalePublisher crea el publisher apuntando al topic de ventas
func NewKafkaSalePublisher(brokers []string, topic string) port.SalePublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Printf("kafka sale publisher error: "+msg, args...)
		}),
	}

	return &KafkaSalePublisher{writer: writer}
}

// PublishSaleCompleted publica el evento de venta finalizada
// La clave es el tenant para mantener orden por partición dentro del tenant
func (p *KafkaSalePublisher) PublishSaleCompleted(ctx context.Context, sale *entity.Sale) error {
	event := saleCompletedEvent{
		SaleID:        sale.ID.String(),
		TenantID:      sale.TenantID,
		Subtotal:      sale.Subtotal.String(),
		Tax:           sale.Tax.String(),
		Total:         sale.Total.String(),
		PaymentType:   string(sale.PaymentType),
		TotalItems:    sale.TotalItems(),
		TotalQuantity: sale.TotalQuantity(),
		OperatorID:    sale.OperatorID,
		CreatedAt:     sale.CreatedAt,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error serializing sale event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(sale.TenantID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("error publishing sale event: %w", err)
	}
	return nil
}

// Close cierra el writer
func (p *KafkaSalePublisher) Close() error {
	return p.writer.Close()
}
