// Package order holds the small comparison and slice helpers shared by the
// sorting, heap and tree packages.
package order
