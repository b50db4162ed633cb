package snowflake

import (
	"errors"

	"github.com/bwmarrin/snowflake"
)

// +----------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp | 10 Bit NodeID | 12 Bit SeqID |
// +----------------------------------------------------------------+

const maxNode int64 = 1023

var ErrExceedNode = errors.New("node超出限制")

type Generator interface {
	Generate() ID
}

type NodeGenerator struct {
	node *snowflake.Node
}

// nodeId 区分部署实例，多实例之间不能重复
func NewNodeGenerator(nodeId int64) (*NodeGenerator, error) {
	if nodeId < 0 || nodeId > maxNode {
		return nil, ErrExceedNode
	}
	node, err := snowflake.NewNode(nodeId)
	if err != nil {
		return nil, err
	}
	return &NodeGenerator{node: node}, nil
}

func (g *NodeGenerator) Generate() ID {
	return ID(g.node.Generate())
}

type ID int64

func (f ID) Int64() int64 {
	return int64(f)
}
