package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "secureorder/internal/adapters/out/postgres"
	"secureorder/internal/adapters/out/postgres/orderrepo"
	"secureorder/internal/adapters/out/postgres/outboxrepo"
	"secureorder/internal/core/domain/model/fraud"
	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/domain/model/order"
	"secureorder/internal/core/ports"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &outboxrepo.MessageDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, outbox_messages").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.OutboxRepository(), "First instance should provide outbox repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.OutboxRepository(), "Second instance should provide outbox repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.IsEqual(testOrder))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.IsEqual(testOrder))
}

// TestUnitOfWork_OrderWithOutboxMessage verifies that the order change and its
// outbox message commit atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderWithOutboxMessage() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	message := createStatusMessage(testOrder)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.OutboxRepository().Add(ctx, message)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	pending, err := newUow.OutboxRepository().GetPending(ctx, ports.TopicOrderProcessing, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(message.ID.IsEqual(pending[0].ID))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across both repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	message := createStatusMessage(testOrder)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.OutboxRepository().Add(ctx, message)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	pending, err := newUow.OutboxRepository().GetPending(ctx, ports.TopicOrderProcessing, 10)
	suite.Require().NoError(err)
	suite.Empty(pending, "Outbox message should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder()
	order2 := createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.IsEqual(testOrder))

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.IsEqual(testOrder))
}

// TestUnitOfWork_UnderwritingWorkflow tests a full pipeline pass persisted
// through the unit of work: validation, underwriting, and settlement with the
// payment announcement in the outbox.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UnderwritingWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testOrder := createTestOrder()
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	result := regularFraudResult()
	err = testOrder.MoveToValidate(result)
	suite.Require().NoError(err)

	reason, err := testOrder.MoveToPending(result)
	suite.Require().NoError(err)
	suite.Empty(reason)

	err = uow.OutboxRepository().Add(ctx, createPaymentMessage(testOrder))
	suite.Require().NoError(err)

	err = testOrder.MoveToApprove(
		order.PaymentConfirmation{Confirmed: true},
		order.SubscriptionAuthorization{Authorized: true},
	)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusApproved, retrievedOrder.Status())
	suite.NotNil(retrievedOrder.FinishedAt())
	suite.Len(retrievedOrder.History(), 4)

	pending, err := newUow.OutboxRepository().GetPending(ctx, ports.TopicOrderPaymentSubscription, 10)
	suite.Require().NoError(err)
	suite.Len(pending, 1)
}

// createTestOrder creates a valid order for testing purposes.
func createTestOrder() *order.Order {
	insuredAmount := decimal.RequireFromString("75000.00")
	testOrder, _ := order.NewOrder(
		"customer-1", "product-1", "AUTO", "WEB", "PIX",
		decimal.RequireFromString("42.90"), &insuredAmount, nil, nil,
	)
	return testOrder
}

func regularFraudResult() *fraud.Result {
	return &fraud.Result{Classification: "REGULAR"}
}

func createStatusMessage(o *order.Order) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:        kernel.NewTimeOrderedUUID(),
		Topic:     ports.TopicOrderProcessing,
		Payload:   []byte(`{"order_id":"` + o.ID().String() + `","status":"RECEIVED"}`),
		CreatedAt: time.Now().UTC(),
	}
}

func createPaymentMessage(o *order.Order) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:        kernel.NewTimeOrderedUUID(),
		Topic:     ports.TopicOrderPaymentSubscription,
		Payload:   []byte(`{"order_id":"` + o.ID().String() + `","status":"PENDING"}`),
		CreatedAt: time.Now().UTC(),
	}
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
