package files

import (
	"context"
	"os"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=files

// Store enumerates directory children. A failed ReadDir covers not-found,
// not-a-directory and permission-denied alike.
// RootTitle names the machine or source the paths belong to.
type Store interface {
	RootTitle() string
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
}

// Stater is implemented by stores that can resolve an entry through symlinks.
type Stater interface {
	Stat(ctx context.Context, name string) (os.FileInfo, error)
}
