package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork bundles repositories bound to one database handle. Inside
// TxManager.WithinTransaction that handle is the open transaction, so every
// write staged through it commits or rolls back together.
type UnitOfWork struct {
	WorkingOrders WorkingOrderRepository
	Categories    TaskCategoryRepository
	TaskDetails   TaskDetailRepository
	Tasks         TaskRepository
}

// NewUnitOfWork binds the repositories to db
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{
		WorkingOrders: NewWorkingOrderRepository(db),
		Categories:    NewTaskCategoryRepository(db),
		TaskDetails:   NewTaskDetailRepository(db),
		Tasks:         NewTaskRepository(db),
	}
}

// TxManager runs a function inside a single transaction
type TxManager interface {
	// WithinTransaction commits when fn returns nil and rolls back otherwise.
	// Cancelling ctx aborts the transaction.
	WithinTransaction(ctx context.Context, fn func(uow *UnitOfWork) error) error
}

// GormTxManager is a GORM implementation of TxManager
type GormTxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new TxManager
func NewTxManager(db *gorm.DB) TxManager {
	return &GormTxManager{db: db}
}

// WithinTransaction runs fn with a unit of work bound to a new transaction
func (m *GormTxManager) WithinTransaction(ctx context.Context, fn func(uow *UnitOfWork) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewUnitOfWork(tx))
	})
}
