// Package order holds the ordering session state machine.
//
// A Session is a plain value. Hosts feed it Intents through Reduce and render
// whatever comes back; nothing in here touches the terminal or the store.
//
// Allowed here:
// - dish, price and catalog types
// - the session value, its intents and derived projections (screen, total)
//
// Not allowed here:
// - rendering, key handling or confirmation prompts
// - loading catalogs from disk or the database
package order
