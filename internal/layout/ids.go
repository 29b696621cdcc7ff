package layout

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Identifier prefixes
const (
	ElementIDPrefix = "el-"
	RowIDPrefix     = "row-"
)

// IDGenerator mints element and row identifiers
type IDGenerator interface {
	NewElementID() string
	NewRowID() string
}

// UUIDGenerator mints random UUID-based identifiers
type UUIDGenerator struct{}

// NewElementID returns a fresh element id
func (UUIDGenerator) NewElementID() string {
	return ElementIDPrefix + uuid.NewString()
}

// NewRowID returns a fresh row id
func (UUIDGenerator) NewRowID() string {
	return RowIDPrefix + uuid.NewString()
}

// SequenceGenerator mints identifiers from a monotonic counter. Its output is
// reproducible, which keeps scripted runs and tests deterministic.
type SequenceGenerator struct {
	next atomic.Uint64
}

// NewSequenceGenerator creates a counter-backed generator starting at 1
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

// NewElementID returns the next element id
func (g *SequenceGenerator) NewElementID() string {
	return fmt.Sprintf("%s%d", ElementIDPrefix, g.next.Add(1))
}

// NewRowID returns the next row id
func (g *SequenceGenerator) NewRowID() string {
	return fmt.Sprintf("%s%d", RowIDPrefix, g.next.Add(1))
}
