package interfaces

import "context"

// IDataVersionStore exposes a cheap, never-cached version stamp of the order book.
//
// Writers bump it after each successful write; readers compare it with the stamp
// of their cached snapshot to notice writes made by other processes.

type IDataVersionStore interface {
	Current(ctx context.Context) (string, error)
	Bump(ctx context.Context) (string, error)
}
