package mqtt

import (
	"log"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	DefaultBrokerURL = "tcp://localhost:1883"
	DefaultClientID  = "saiscope"

	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
)

// broker is the part of paho.Client used here.
type broker interface {
	Connect() paho.Token
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Disconnect(quiesce uint)
	IsConnected() bool
}

// Client wraps the Paho MQTT client.
type Client struct {
	client broker
	url    string
	mu     sync.Mutex
}

// Options addresses the broker. Empty fields take the defaults.
type Options struct {
	URL      string
	ClientID string
}

func (o Options) brokerURL() string {
	if o.URL == "" {
		return DefaultBrokerURL
	}
	return o.URL
}

// NewClient creates a new MQTT client but does not connect.
func NewClient(o Options) *Client {
	id := o.ClientID
	if id == "" {
		id = DefaultClientID
	}
	opts := paho.NewClientOptions().
		AddBroker(o.brokerURL()).
		SetClientID(id).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetKeepAlive(30 * time.Second)

	return &Client{client: paho.NewClient(opts), url: o.brokerURL()}
}

// Connect attempts to connect to the broker.
// Returns an error if connection fails, but does not block indefinitely.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	token := c.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return &ConnectTimeoutError{URL: c.url}
	}
	return token.Error()
}

// Publish sends payload to topic at QoS 0 and waits for the client to hand
// it off.
func (c *Client) Publish(topic string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	token := c.client.Publish(topic, 0, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return &PublishTimeoutError{Topic: topic}
	}
	return token.Error()
}

// Disconnect cleanly disconnects from the broker.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.client.Disconnect(1000)
}

// IsConnected returns true if the client is connected.
func (c *Client) IsConnected() bool {
	return c.client.IsConnected()
}

// ConnectTimeoutError indicates connection timed out.
type ConnectTimeoutError struct {
	URL string
}

func (e *ConnectTimeoutError) Error() string {
	return "mqtt connect timeout: " + e.URL
}

// PublishTimeoutError indicates a publish was not handed off in time.
type PublishTimeoutError struct {
	Topic string
}

func (e *PublishTimeoutError) Error() string {
	return "mqtt publish timeout: " + e.Topic
}

// StartPublisher connects and returns a Publisher for prefix, logging and
// returning nil when the broker cannot be reached.
func (c *Client) StartPublisher(prefix string) *Publisher {
	if err := c.Connect(); err != nil {
		log.Printf("mqtt: failed to connect to %s: %v", c.url, err)
		return nil
	}

	log.Printf("mqtt: connected to %s, publishing under %s/", c.url, prefix)
	return NewPublisher(c, prefix)
}
