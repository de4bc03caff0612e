package ecs

import "strconv"

// EntityID names an entity. IDs are minted in increasing order and are
// never reused within a World.
type EntityID uint64

// NilEntity is never returned by CreateEntity.
const NilEntity EntityID = 0

func (id EntityID) String() string {
	return "e" + strconv.FormatUint(uint64(id), 10)
}

// ComponentType keys one component table.
type ComponentType uint8

// Component is a plain data record attached to an entity.
type Component interface {
	Type() ComponentType
}
