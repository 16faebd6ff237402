package el

import "github.com/funhtml-go/funhtml/pkg/node"

// Type aliases for the node primitives used by the DSL.
type Node = node.Node
type Attribute = node.Attribute
type Kind = node.Kind
