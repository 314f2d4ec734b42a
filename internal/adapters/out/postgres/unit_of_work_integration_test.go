package postgres_test

import (
	"context"
	"testing"
	"time"

	"canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/holidayrepo"
	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/core/domain/model/calendar"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&holidayrepo.HolidayDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, holidays RESTART IDENTITY").Error)

	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewItem(1, "Masala Dosa", kernel.NewMoneyFromPaise(4500), 1, "")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		7, false, []order.Item{item}, "",
		time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())

	// Visible outside the unit of work after commit.
	verifier := suite.factory.Create()
	retrieved, err := verifier.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, retrieved.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())

	verifier := suite.factory.Create()
	_, err := verifier.OrderRepository().Get(ctx, testOrder.ID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_DoesNotNest() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder()))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestHolidayRepository_AddWeekend_IsIdempotent() {
	ctx := context.Background()
	saturday := kernel.NewDate(2024, time.June, 8)

	weekend, err := calendar.NewWeekendHoliday(saturday)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	inserted, err := uow.HolidayRepository().AddWeekend(ctx, weekend)
	suite.Require().NoError(err)
	suite.True(inserted)
	suite.Require().NoError(uow.Commit(ctx))

	// The same date generated again is skipped, not duplicated.
	duplicate, err := calendar.NewWeekendHoliday(saturday)
	suite.Require().NoError(err)

	rerun := suite.factory.Create()
	suite.Require().NoError(rerun.Begin(ctx))
	inserted, err = rerun.HolidayRepository().AddWeekend(ctx, duplicate)
	suite.Require().NoError(err)
	suite.False(inserted)
	suite.Require().NoError(rerun.Commit(ctx))

	holidays, err := suite.factory.Create().HolidayRepository().GetByYears(ctx, []int{2024})
	suite.Require().NoError(err)
	suite.Require().Len(holidays, 1)
	suite.True(holidays[0].IsWeekend())
	suite.Equal(saturday, holidays[0].Date())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestHolidayRepository_Add_DuplicateDate_ReturnsConflict() {
	ctx := context.Background()
	date := kernel.NewDate(2024, time.August, 15)

	declared, err := calendar.NewHoliday(date, "Independence Day", "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.HolidayRepository().Add(ctx, declared))
	suite.Require().NoError(uow.Commit(ctx))

	duplicate, err := calendar.NewHoliday(date, "Independence Day", "declared twice")
	suite.Require().NoError(err)

	rerun := suite.factory.Create()
	suite.Require().NoError(rerun.Begin(ctx))
	err = rerun.HolidayRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(rerun.Rollback(ctx))

	holidays, err := suite.factory.Create().HolidayRepository().GetByYears(ctx, []int{2024})
	suite.Require().NoError(err)
	suite.Require().Len(holidays, 1)
}

func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
