// Package sessionstore persists the client's session record as a small
// key-value table in a local SQLite database. The three keys (isAuth, token,
// user) are always written and cleared together; a partial record reads back
// as "unauthenticated".
package sessionstore

import "context"

// Store keys. All three are present after a successful login and absent
// otherwise.
const (
	KeyIsAuth = "isAuth"
	KeyToken  = "token"
	KeyUser   = "user"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
