// Command eventgen publishes synthetic e-commerce events to the push
// receiver for load and smoke testing. Each event is wrapped in the same
// push envelope the messaging channel would deliver, so the full decode →
// validate → sink path is exercised.
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var eventTypes = []string{"view", "add_to_cart", "remove_from_cart", "checkout", "purchase", "search"}

var devices = []string{"mobile", "desktop", "tablet"}

var categories = []string{"electronics", "fashion", "home", "beauty", "sports", "books"}

type pushMessage struct {
	Data        string            `json:"data"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
	Attributes  map[string]string `json:"attributes"`
}

type pushEnvelope struct {
	Message      pushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/pubsub/push", "push receiver endpoint")
	rate := flag.Float64("rate", 5.0, "events per second per worker")
	count := flag.Int64("count", 0, "total number of events to publish (0 = infinite)")
	workers := flag.Int("workers", 1, "number of concurrent publishers")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *workers <= 0 {
		slog.Error("workers must be > 0")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, stopping publishers...")
		cancel()
	}()

	client := &http.Client{Timeout: 10 * time.Second}

	var sent atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < *workers; i++ {
		workerSeed := *seed
		if workerSeed != 0 {
			workerSeed += int64(i)
		}
		g.Go(func() error {
			return publish(gctx, client, *endpoint, *rate, *count, &sent, gofakeit.New(workerSeed))
		})
	}

	if err := g.Wait(); err != nil && err != context.Canceled {
		slog.Error("Publisher stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Done", "published", sent.Load())
}

// publish posts envelopes until the shared count is exhausted or ctx is
// cancelled. The inter-event sleep is jittered so workers don't send in
// lockstep.
func publish(ctx context.Context, client *http.Client, endpoint string, rate float64, count int64, sent *atomic.Int64, faker *gofakeit.Faker) error {
	var interval time.Duration
	if rate > 0 {
		interval = time.Duration(float64(time.Second) / rate)
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		n := sent.Add(1)
		if count > 0 && n > count {
			sent.Add(-1)
			return nil
		}

		if err := post(ctx, client, endpoint, generateEvent(faker)); err != nil {
			slog.Warn("Publish failed", "error", err)
		}

		if n%100 == 0 {
			slog.Info("Progress", "published", n)
		}

		if interval > 0 {
			jittered := time.Duration(float64(interval) * (0.8 + 0.4*faker.Float64Range(0, 1)))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(jittered):
			}
		}
	}
}

// generateEvent builds one schema-valid event payload. Purchases and
// checkouts skew to higher prices than views so the data feels realistic.
func generateEvent(faker *gofakeit.Faker) map[string]interface{} {
	eventType := faker.RandomString(eventTypes)

	basePrice := faker.Float64Range(1, 3000)
	var price float64
	switch eventType {
	case "purchase", "checkout":
		price = basePrice
	case "add_to_cart", "remove_from_cart":
		price = basePrice * 0.7
	default:
		price = basePrice * 0.4
	}

	return map[string]interface{}{
		"event_id":   uuid.New().String(),
		"user_id":    fmt.Sprintf("U%d", faker.Number(1000, 999999)),
		"event_type": eventType,
		"product_id": fmt.Sprintf("P%d", faker.Number(1000, 999999)),
		"category":   faker.RandomString(categories),
		"price":      math.Round(price*100) / 100,
		"device":     faker.RandomString(devices),
		"city":       faker.City(),
		"event_time": time.Now().UTC().Format(time.RFC3339),
		"session_id": uuid.New().String(),
		"ip":         faker.IPv4Address(),
	}
}

func post(ctx context.Context, client *http.Client, endpoint string, event map[string]interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	env := pushEnvelope{
		Message: pushMessage{
			Data:        base64.StdEncoding.EncodeToString(payload),
			MessageID:   uuid.New().String(),
			PublishTime: time.Now().UTC().Format(time.RFC3339Nano),
			Attributes: map[string]string{
				"schema_version": "1",
				"producer":       "eventgen",
			},
		},
		Subscription: "projects/local/subscriptions/eventgen",
	}

	body, err := json.Marshal(env)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("receiver returned %d", resp.StatusCode)
	}
	return nil
}
