package models

import (
	"errors"
	"time"
)

// Namespaces under which local state is persisted
const (
	NamespaceAuth           = "pyxpay-auth"
	NamespaceTransactions   = "pyxpay-transacoes-filters"
	NamespaceVisibleColumns = "pyxpay-visible-columns"
)

var ErrInvalidNamespace = errors.New("namespace is required")

// LocalState is a namespaced JSON document persisted on behalf of one store
type LocalState struct {
	Namespace string    `gorm:"type:varchar(100);primaryKey" json:"namespace"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName pins the table name used by migrations
func (LocalState) TableName() string {
	return "local_state"
}

// Validate validates the local state fields
func (s *LocalState) Validate() error {
	if s.Namespace == "" {
		return ErrInvalidNamespace
	}
	return nil
}
