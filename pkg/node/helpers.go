package node

import "fmt"

// Textf creates a formatted text node.
func Textf(format string, args ...any) Node {
	return Text(fmt.Sprintf(format, args...))
}

// If returns n if condition is true, an empty node otherwise.
func If(condition bool, n Node) Node {
	if condition {
		return n
	}
	return None()
}

// IfElse returns ifTrue if condition is true, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse Node) Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but only calls fn when condition is true.
func When(condition bool, fn func() Node) Node {
	if condition {
		return fn()
	}
	return None()
}

// Map builds one node per item, in order.
func Map[T any](items []T, fn func(item T, index int) Node) []Node {
	result := make([]Node, 0, len(items))
	for i, item := range items {
		result = append(result, fn(item, i))
	}
	return result
}

// IsEmpty reports whether n renders nothing: a nil node or an EmptyNode.
func IsEmpty(n Node) bool {
	return n == nil || n.Kind() == KindEmpty
}
