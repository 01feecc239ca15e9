// Package calculation implements the arithmetic operations the service
// persists. Every operation consumes an ordered list of numeric inputs and
// produces a single result. New behaviors are added by implementing the
// Operation interface and registering the implementation in the factory.
package calculation
