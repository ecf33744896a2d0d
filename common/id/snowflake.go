package id

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out new primary keys. Services receive one explicitly so
// tests can substitute a deterministic sequence.
type Generator interface {
	New() int64
}

type snowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflake returns a Generator backed by a Snowflake node. IDs are
// time-ordered and unique across instances as long as node IDs differ.
func NewSnowflake(nodeID int64) (Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("creating snowflake node %d: %w", nodeID, err)
	}
	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) New() int64 {
	return g.node.Generate().Int64()
}

// Sequence is a Generator returning 1, 2, 3, ... Used in tests.
type Sequence struct {
	next int64
}

func (s *Sequence) New() int64 {
	s.next++
	return s.next
}
