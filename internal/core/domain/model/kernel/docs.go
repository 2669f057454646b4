// Package kernel contains the shared value objects of the domain model:
// UUID identities and geographic Coordinates. Value objects here are
// immutable, validated at construction, and safe to pass by value.
package kernel
