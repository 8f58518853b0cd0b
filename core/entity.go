package core

// Entity is a unique identifier for an entity
// Zero is never allocated and doubles as "no entity" (static geometry, missing parent)
type Entity uint64
