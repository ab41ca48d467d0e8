// Package history records magarea runs and their estimates in a SQL database.
package history

import (
	"sync"

	"github.com/huangsam/magarea/internal/contract"
)

// HistoryStoreManager holds the active HistoryStore.
type HistoryStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	store        contract.HistoryStore
}

var _ contract.HistoryManager = &HistoryStoreManager{} // Compile-time check

// GetHistoryStore returns the HistoryStore, or nil when history is disabled.
func (mgr *HistoryStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.store
}

// NewManager wraps an existing store. Useful for tests and embedding.
func NewManager(store contract.HistoryStore) *HistoryStoreManager {
	return &HistoryStoreManager{store: store}
}
