package token

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Generator produces the identifiers stamped on records and mock NFT metadata.
type Generator interface {
	ID() string
	TokenID() string
	TxHash() string
	WalletAddress() string
	ContentID() string
}

// RandomGenerator is backed by uuid v4 and math/rand.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) ID() string {
	return uuid.NewString()
}

func (g *RandomGenerator) TokenID() string {
	return fmt.Sprintf("%x", rand.IntN(1_000_000_000))
}

func (g *RandomGenerator) TxHash() string {
	return "0x" + compactUUID()
}

func (g *RandomGenerator) WalletAddress() string {
	return "0xWALLET" + compactUUID()[:8]
}

func (g *RandomGenerator) ContentID() string {
	return "bafy-" + compactUUID()[:10]
}

func compactUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// SequenceGenerator hands out predictable values; every call advances one counter.
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) next() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return g.n
}

func (g *SequenceGenerator) ID() string {
	return fmt.Sprintf("%s-%04d", g.prefix, g.next())
}

func (g *SequenceGenerator) TokenID() string {
	return fmt.Sprintf("%x", 0xa000+g.next())
}

func (g *SequenceGenerator) TxHash() string {
	return fmt.Sprintf("0x%032x", g.next())
}

func (g *SequenceGenerator) WalletAddress() string {
	return fmt.Sprintf("0xWALLET%08d", g.next())
}

func (g *SequenceGenerator) ContentID() string {
	return fmt.Sprintf("bafy-%010d", g.next())
}
