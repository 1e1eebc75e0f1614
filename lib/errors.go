package lib

import "errors"

var (
	ErrFolderNotFound = errors.New("folder not found")
	ErrStoreNotReady  = errors.New("folder store not initialized")
)
