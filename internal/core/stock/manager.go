// Package stock owns the in-memory fish inventory for a planning session.
//
// Every mutation follows a copy-validate-commit discipline: all inputs are
// validated before any change is applied, and a failed mutation leaves the
// stock exactly as it was. Rollback here means "never applied", not "undone
// after a partial apply" - no durable log is involved.
package stock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PartTimeLegend/pond-planner/internal/core/domain"
	"github.com/PartTimeLegend/pond-planner/internal/core/validation"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrInsufficientStock is returned when a removal asks for more fish than
	// the current holding. The stock is unchanged on this failure.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// =============================================================================
// Manager
// =============================================================================

// Manager owns the fish stock of one planning session. It is not safe for
// concurrent use; the planner runs one synchronous session at a time.
type Manager struct {
	validator *validation.Validator
	stock     domain.FishStock
}

// NewManager creates an empty stock manager using the given validator.
func NewManager(validator *validation.Validator) *Manager {
	return &Manager{
		validator: validator,
		stock:     domain.FishStock{},
	}
}

// Add adds fish of one species. Adding zero fish is a no-op, not an error.
// Unknown species and negative quantities fail validation with the stock
// unchanged.
func (m *Manager) Add(species string, quantity int) error {
	if err := m.validator.ValidateFishQuantity(species, quantity); err != nil {
		return err
	}
	if quantity == 0 {
		return nil
	}

	key := strings.ToLower(species)
	m.stock[key] += quantity
	return nil
}

// Remove removes fish of one species. Removing more than the current holding
// fails with ErrInsufficientStock and leaves the stock unchanged; a species
// brought to zero is deleted rather than kept as a zero entry.
func (m *Manager) Remove(species string, quantity int) error {
	if err := m.validator.ValidateFishQuantity(species, quantity); err != nil {
		return err
	}
	if quantity == 0 {
		return nil
	}

	key := strings.ToLower(species)
	holding := m.stock[key]
	if quantity > holding {
		return fmt.Errorf("%w: cannot remove %d %s, only %d in stock",
			ErrInsufficientStock, quantity, key, holding)
	}

	remaining := holding - quantity
	if remaining == 0 {
		delete(m.stock, key)
	} else {
		m.stock[key] = remaining
	}
	return nil
}

// AddBatch adds multiple species atomically. Every entry is validated before
// any is applied; if any entry fails, the whole batch is rejected and the
// stock is byte-for-byte unchanged.
func (m *Manager) AddBatch(batch map[string]int) error {
	if err := m.validator.ValidateFishBatch(batch); err != nil {
		return err
	}

	for species, quantity := range batch {
		if quantity == 0 {
			continue
		}
		m.stock[strings.ToLower(species)] += quantity
	}
	return nil
}

// Stock returns a defensive copy of the current inventory.
func (m *Manager) Stock() domain.FishStock {
	return m.stock.Clone()
}

// SetStock replaces the inventory wholesale after validating every entry.
// Used when loading a saved pond. Zero entries are pruned.
func (m *Manager) SetStock(stock domain.FishStock) error {
	if err := m.validator.ValidateFishBatch(stock); err != nil {
		return err
	}

	replacement := domain.FishStock{}
	for species, quantity := range stock {
		if quantity > 0 {
			replacement[strings.ToLower(species)] = quantity
		}
	}
	m.stock = replacement
	return nil
}

// Clear empties the inventory.
func (m *Manager) Clear() {
	m.stock = domain.FishStock{}
}
