package interfaces

import "context"

// ITokenBroker hands out a valid bearer token for the Tiime identity
// provider, minting a new one when the cached token no longer passes the
// validity probe.

type ITokenBroker interface {
	GetOrFetchToken(ctx context.Context, user, password string) (string, error)
}
