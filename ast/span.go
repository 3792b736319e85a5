package ast

import "github.com/phpfront/phpfront/perror"

// Span returns the half-open byte range [start, end) a node covers,
// derived from its Pos()/End() positions.
func Span(n Node) perror.Span {
	return perror.Span{
		Start: uint32(n.Pos().Offset),
		End:   uint32(n.End().Offset),
	}
}
