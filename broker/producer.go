package broker

import (
	"log"

	"gg-note/ggnote/config"

	"github.com/nats-io/nats.go"
)

var producerConn *nats.Conn

// InitProducer connects the process-wide publisher. The caller decides
// whether a failure is fatal; the app runs without change notifications
// when the broker is unreachable.
func InitProducer(cfg config.Config) error {
	var err error
	producerConn, err = nats.Connect(cfg.NatsURL,
		nats.Name("ggnote-producer"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return err
	}
	log.Println("NATS producer initialized")
	return nil
}

// PublishMessage publishes a payload on a subject. A nil producer is a
// logged no-op so callers need no broker-availability checks.
func PublishMessage(subject string, data []byte) error {
	if producerConn == nil {
		log.Println("NATS producer is not initialized, dropping message")
		return nil
	}

	if err := producerConn.Publish(subject, data); err != nil {
		log.Printf("Failed to publish message to %s: %v", subject, err)
		return err
	}
	return nil
}

func CloseProducer() {
	if producerConn != nil {
		producerConn.Close()
		producerConn = nil
	}
}
