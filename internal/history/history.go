// Package history records evaluations and factor analyses for later audit and export.
package history

import (
	"sync"

	"github.com/mariam-attia/dealscore/internal/contract"
)

// HistoryStoreManager manages the HistoryStore instance.
type HistoryStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	history      contract.HistoryStore
}

var _ contract.StoreManager = &HistoryStoreManager{} // Compile-time check

// NewHistoryStoreManager wraps an already opened store.
func NewHistoryStoreManager(store contract.HistoryStore) *HistoryStoreManager {
	return &HistoryStoreManager{history: store}
}

// GetHistoryStore returns the HistoryStore, or nil when history is not initialized.
func (mgr *HistoryStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
