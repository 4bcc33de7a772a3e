package queries_test

import (
	"context"
	"testing"
	"time"

	"secureorder/internal/adapters/out/postgres/orderrepo"
	"secureorder/internal/core/application/usecases/queries"
	"secureorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrdersByCustomerQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersByCustomerQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersByCustomerQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersByCustomerQuery("customer-1")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TestHandle_FiltersByCustomer() {
	for range 3 {
		err := suite.orderRepo.Add(context.Background(), suite.newCustomerOrder("customer-1"))
		suite.Require().NoError(err)
	}
	err := suite.orderRepo.Add(context.Background(), suite.newCustomerOrder("customer-2"))
	suite.Require().NoError(err)

	query, err := queries.NewGetOrdersByCustomerQuery("customer-1")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)
	for _, view := range result {
		suite.Equal("customer-1", view.CustomerID)
	}
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TestHandle_OrdersSortedNewestFirst() {
	for range 3 {
		err := suite.orderRepo.Add(context.Background(), suite.newCustomerOrder("customer-1"))
		suite.Require().NoError(err)
	}

	query, err := queries.NewGetOrdersByCustomerQuery("customer-1")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	for i := range len(result) - 1 {
		suite.False(result[i].CreatedAt.Before(result[i+1].CreatedAt),
			"Orders should be sorted newest first")
	}
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersByCustomerQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersByCustomerQuery constructor")
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	err := suite.orderRepo.Add(context.Background(), suite.newCustomerOrder("customer-1"))
	suite.Require().NoError(err)

	query, err := queries.NewGetOrdersByCustomerQuery("customer-1")
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) newCustomerOrder(customerID string) *order.Order {
	insuredAmount := decimal.RequireFromString("75000.00")
	testOrder, err := order.NewOrder(
		customerID, "product-1", "AUTO", "WEB", "PIX",
		decimal.RequireFromString("42.90"), &insuredAmount, nil, nil,
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestGetOrdersByCustomerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersByCustomerQueryHandlerTestSuite))
}
