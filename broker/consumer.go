package broker

import (
	"log"

	"gg-note/ggnote/config"

	"github.com/nats-io/nats.go"
)

// Consumer fans subscribed subjects into a single channel.
type Consumer struct {
	conn     *nats.Conn
	subs     []*nats.Subscription
	messages chan *nats.Msg
}

// InitConsumer connects and queue-subscribes to the given subjects. All
// messages arrive on one channel retrieved via GetMessageChannel.
func InitConsumer(cfg config.Config, subjects []string, queue string) (*Consumer, error) {
	nc, err := nats.Connect(cfg.NatsURL,
		nats.Name("ggnote-consumer-"+queue),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}

	c := &Consumer{
		conn:     nc,
		messages: make(chan *nats.Msg, 256),
	}

	for _, subject := range subjects {
		sub, err := nc.ChanQueueSubscribe(subject, queue, c.messages)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.subs = append(c.subs, sub)
	}

	log.Printf("NATS consumer started, listening to subjects: %v", subjects)
	return c, nil
}

// GetMessageChannel returns the channel all subscribed messages arrive on.
func (c *Consumer) GetMessageChannel() chan *nats.Msg {
	return c.messages
}

// Close unsubscribes and drops the connection.
func (c *Consumer) Close() {
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			log.Printf("Failed to unsubscribe from %s: %v", sub.Subject, err)
		}
	}
	c.subs = nil
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}
