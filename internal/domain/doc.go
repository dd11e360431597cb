// Package domain defines the core model types, collaborator interfaces, and sentinel errors.
//
// Holds no behavior beyond simple accessors. Concrete implementations live in their own
// packages (api, redis, storage, favorites, ...) and depend on these interfaces, never the
// other way around.
package domain
