// Package queue publica eventos de dominio en RabbitMQ. La publicación es
// best-effort: los errores se devuelven para que el caller los loguee sin
// interrumpir el flujo principal.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/usecase"
)

// ColaCicloFinalizado es la cola durable donde se publican los cierres de ciclo.
const ColaCicloFinalizado = "ciclo.finalizado"

// Publisher implementa usecase.EventPublisher sobre AMQP 0-9-1. Abre una
// conexión por publicación: el volumen de cierres de ciclo es bajo y así no
// hay canal compartido que reconciliar tras un reinicio del broker.
type Publisher struct {
	url string
}

var _ usecase.EventPublisher = (*Publisher)(nil)

// NewPublisher construye el publicador con la URL del broker.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// PublishCicloFinalizado publica el evento en la cola ciclo.finalizado con
// entrega persistente.
func (p *Publisher) PublishCicloFinalizado(ctx context.Context, ev usecase.CicloFinalizadoEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("amqp: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp: abrir canal: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Declaración idempotente; durable para sobrevivir reinicios del broker.
	if _, err := ch.QueueDeclare(ColaCicloFinalizado, true, false, false, false, nil); err != nil {
		return fmt.Errorf("amqp: declarar cola: %w", err)
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("amqp: serializar evento: %w", err)
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", ColaCicloFinalizado, false, false, pub); err != nil {
		return fmt.Errorf("amqp: publicar: %w", err)
	}
	return nil
}
