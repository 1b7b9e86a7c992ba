package usecases

import (
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/domain"
)

// Re-export domain types for presentation layer use.

// Snapshot is an alias for domain.Snapshot.
type Snapshot = domain.Snapshot

// SnapshotRepository is an alias for domain.SnapshotRepository.
type SnapshotRepository = domain.SnapshotRepository
