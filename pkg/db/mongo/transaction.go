package mongo

import (
	"context"
	"fmt"
	apperrors "turfly/pkg/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionFunc runs inside a transaction. For the Mongo manager ctx is a
// mongo.SessionContext, so repository calls made with it join the session.
type TransactionFunc func(ctx context.Context) error

type TransactionManager interface {
	ExecuteTransaction(ctx context.Context, fn TransactionFunc) error
}

type mongoTransactionManager struct {
	client *mongo.Client
}

func NewTransactionManager(client *mongo.Client) TransactionManager {
	return &mongoTransactionManager{
		client: client,
	}
}

func (m *mongoTransactionManager) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx)
	})

	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// NewLocalTransactionManager returns a manager that runs fn directly. The
// memory store serialises writers itself and has no rollback to offer.
func NewLocalTransactionManager() TransactionManager {
	return localTransactionManager{}
}

type localTransactionManager struct{}

func (localTransactionManager) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
