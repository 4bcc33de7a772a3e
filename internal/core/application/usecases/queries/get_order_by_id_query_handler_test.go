package queries_test

import (
	"context"
	"testing"
	"time"

	"secureorder/internal/adapters/out/postgres/orderrepo"
	"secureorder/internal/core/application/usecases/queries"
	"secureorder/internal/core/domain/model/fraud"
	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/domain/model/order"
	"secureorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderByIDQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderByIDQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrderByIDQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_ExistingOrder_MapsAllFields() {
	testOrder := seedOrder(suite.T())
	err := suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderByIDQuery(testOrder.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(view.ID))
	suite.Equal("customer-1", view.CustomerID)
	suite.Equal("product-1", view.ProductID)
	suite.Equal("LIFE", view.Category)
	suite.Equal("MOBILE", view.SalesChannel)
	suite.Equal("CREDIT_CARD", view.PaymentMethod)
	suite.True(testOrder.TotalMonthlyPremiumAmount().Equal(view.TotalMonthlyPremiumAmount))
	suite.Require().NotNil(view.InsuredAmount)
	suite.True(testOrder.InsuredAmount().Equal(*view.InsuredAmount))
	suite.Len(view.Coverages, 2)
	suite.True(view.Coverages["Roubo"].Equal(decimal.RequireFromString("100000.25")))
	suite.Equal([]string{"Guincho até 250km"}, view.Assistances)
	suite.Equal("RECEIVED", view.Status)
	suite.Nil(view.FinishedAt)
	suite.Require().Len(view.History, 1)
	suite.Equal("RECEIVED", view.History[0].Status)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_SettledOrder_ExposesFullHistory() {
	testOrder := seedOrder(suite.T())
	result := &fraud.Result{Classification: "REGULAR"}

	err := testOrder.MoveToValidate(result)
	suite.Require().NoError(err)
	reason, err := testOrder.MoveToPending(result)
	suite.Require().NoError(err)
	suite.Require().Empty(reason)
	err = testOrder.MoveToApprove(
		order.PaymentConfirmation{Confirmed: true},
		order.SubscriptionAuthorization{Authorized: true},
	)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderByIDQuery(testOrder.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("APPROVED", view.Status)
	suite.Require().NotNil(view.FinishedAt)
	suite.Require().Len(view.History, 4)
	suite.Equal("RECEIVED", view.History[0].Status)
	suite.Equal("VALIDATED", view.History[1].Status)
	suite.Equal("PENDING", view.History[2].Status)
	suite.Equal("APPROVED", view.History[3].Status)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderByIDQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderByIDQuery constructor")
}

func TestGetOrderByIDQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderByIDQueryHandlerTestSuite))
}

// seedOrder creates a valid order for read model tests.
func seedOrder(t *testing.T) *order.Order {
	t.Helper()

	insuredAmount := decimal.RequireFromString("275000.50")
	coverages := map[string]decimal.Decimal{
		"Roubo":       decimal.RequireFromString("100000.25"),
		"Perda Total": decimal.RequireFromString("100000.25"),
	}
	testOrder, err := order.NewOrder(
		"customer-1", "product-1", "LIFE", "MOBILE", "CREDIT_CARD",
		decimal.RequireFromString("75.25"), &insuredAmount,
		coverages, []string{"Guincho até 250km"},
	)
	if err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}
	return testOrder
}

// mockAggregateTracker is a no-op tracker for query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
