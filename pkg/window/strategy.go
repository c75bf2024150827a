package window

import (
	"fmt"
	"strings"
)

// Strategy selects how the window is placed around the current page.
type Strategy string

const (
	// StrategyCenter keeps the current page as close to the middle as the page range allows.
	//   e.g. size=5, 13 pages
	//   [1] 2 3 4 5
	//   5 6 [7] 8 9
	//   9 10 11 12 [13]
	StrategyCenter Strategy = "center"

	// StrategySection splits the pages into fixed blocks of size pages and
	// shows the block holding the current page.
	//   e.g. size=5
	//   1 2 [3] 4 5
	//   [6] 7 8 9 10
	StrategySection Strategy = "section"

	// DefaultStrategy is used when no strategy is configured.
	DefaultStrategy = StrategySection
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == StrategyCenter || s == StrategySection
}

func (s Strategy) String() string {
	return string(s)
}

// ParseStrategy converts a user supplied name to a Strategy.
// Matching is case-insensitive and an empty name yields DefaultStrategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultStrategy, nil
	}
	s := Strategy(name)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Calculator holds the window settings shared by every listing of an application.
// It is a plain value: copying it is safe and it never changes after construction.
type Calculator struct {
	Size     int
	Strategy Strategy
}

// NewCalculator returns a Calculator, substituting defaults for a zero size or empty strategy.
func NewCalculator(size int, strategy Strategy) Calculator {
	if size == 0 {
		size = DefaultSize
	}
	if strategy == "" {
		strategy = DefaultStrategy
	}
	return Calculator{Size: size, Strategy: strategy}
}

// Window computes the window for one listing using the calculator settings.
func (c Calculator) Window(totalItems int64, itemsPerPage, currentPage int) (Window, error) {
	return Compute(Request{
		TotalItems:   totalItems,
		ItemsPerPage: itemsPerPage,
		CurrentPage:  currentPage,
		Size:         c.Size,
		Strategy:     c.Strategy,
	})
}
