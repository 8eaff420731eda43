package codegen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Snowflake генерирует уникальные коды на основе snowflake id узла.
type Snowflake struct {
	node *snowflake.Node
}

func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("creating snowflake node %d: %w", nodeID, err)
	}
	return &Snowflake{node: node}, nil
}

// Generate возвращает очередной код в base58.
func (s *Snowflake) Generate() string {
	return s.node.Generate().Base58()
}
