// Package deck implements deck CRUD and the deck row lock.
//
// A deck owns an ordered set of cards. Besides plain create/find/rename
// operations, the package exposes ExistsWithUpdateLock, the pessimistic
// SELECT ... FOR UPDATE primitive the card feature uses to serialize
// concurrent full replacements of a deck's card set.
//
// # Components
//
//   - Store: gorm persistence for deck rows, including the locking read.
//   - Service: id generation and timestamp handling for the HTTP surface.
//   - Handler: Fiber endpoints (POST /deck, GET /deck/:id, PUT /deck/:id).
//   - Feature: registers the feature with the application loader.
package deck
