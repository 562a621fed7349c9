// Package payment provides the mock payment step run before an order is
// finalized. No real money moves anywhere.
package payment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Receipt records a successful mock charge
type Receipt struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Processor simulates a card terminal
type Processor struct {
	delay time.Duration
}

// NewProcessor creates a processor with a realistic processing delay
func NewProcessor() *Processor {
	return &Processor{delay: 300 * time.Millisecond}
}

// Charge simulates charging the given amount and returns a receipt
func (p *Processor) Charge(amount float64) (*Receipt, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid charge amount: %.2f", amount)
	}

	// Simulate processing time
	time.Sleep(p.delay)

	return &Receipt{
		ID:          uuid.NewString(),
		Amount:      amount,
		Method:      "mock",
		ProcessedAt: time.Now().UTC(),
	}, nil
}
