package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "foodorders/internal/adapters/out/postgres"
	"foodorders/internal/adapters/out/postgres/dishlinerepo"
	"foodorders/internal/adapters/out/postgres/orderrepo"
	"foodorders/internal/core/domain/model/dishline"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &dishlinerepo.DishLineDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, dish_lines").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.DishLineRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.DishLineRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Multiple begin calls are safe.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderWithLinesCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	lines := createTestLines(testOrder.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.DishLineRepository().AddAll(ctx, lines)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.Equal(order.Created, retrieved.Status())
	suite.Equal(testOrder.TotalPriceCents(), retrieved.TotalPriceCents())
	suite.Equal(int64(1), retrieved.Version())

	retrievedLines, err := newUow.DishLineRepository().GetAllByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(retrievedLines, 2)
	for _, line := range retrievedLines {
		suite.True(line.OrderID().IsEqual(testOrder.ID()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Rollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	lines := createTestLines(testOrder.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.DishLineRepository().AddAll(ctx, lines)
	suite.Require().NoError(err)

	// Visible within the transaction.
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	retrievedLines, err := newUow.DishLineRepository().GetAllByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Empty(retrievedLines)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_LifecycleRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Pay and persist.
	err = testOrder.Pay()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Reload: version bumped, status advanced.
	reloaded, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Review, reloaded.Status())
	suite.Equal(int64(2), reloaded.Version())

	// Start cooking on the reloaded aggregate and verify the stamps survive
	// the next round trip.
	kitchen := order.KitchenContext{
		BranchID:      kernel.NewUUID(),
		BranchAddress: "Arbat st. 12",
		EmployeeID:    kernel.NewUUID(),
	}
	startedAt := time.Now().UTC().Truncate(time.Microsecond)
	err = reloaded.StartCooking(startedAt, kitchen)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, reloaded)
	suite.Require().NoError(err)

	final, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cooking, final.Status())
	suite.Equal(int64(3), final.Version())
	suite.Require().NotNil(final.StartCookingAt())
	suite.True(final.StartCookingAt().Equal(startedAt))
	suite.Require().NotNil(final.BranchID())
	suite.True(final.BranchID().IsEqual(kitchen.BranchID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SequentialUpdatesOnSameAggregate() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.Pay()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Equal(int64(2), testOrder.Version(), "update syncs the persisted version back")

	// A second update of the same loaded aggregate is not a conflict.
	kitchen := order.KitchenContext{
		BranchID:      kernel.NewUUID(),
		BranchAddress: "Arbat st. 12",
		EmployeeID:    kernel.NewUUID(),
	}
	err = testOrder.StartCooking(time.Now().UTC().Truncate(time.Microsecond), kitchen)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	final, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cooking, final.Status())
	suite.Equal(int64(3), final.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_VersionConflict() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Two writers load the same version.
	first, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = first.Pay()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, first)
	suite.Require().NoError(err)

	// The second writer is now stale.
	err = second.Cancel("changed my mind")
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)

	// The first writer's state won.
	final, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Review, final.Status())
	suite.Nil(final.RefusalReason())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UpdateMissingOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	ghost := createTestOrder()
	err := ghost.Pay()
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, ghost)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	// Without Begin the repositories auto-commit.
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

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

	// Each transaction only sees its own changes.
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err)

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

func (suite *UnitOfWorkIntegrationTestSuite) TestDishLineRepository_BatchFetch() {
	ctx := context.Background()
	uow := suite.factory.Create()

	order1 := createTestOrder()
	order2 := createTestOrder()
	err := uow.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	err = uow.DishLineRepository().AddAll(ctx, createTestLines(order1.ID()))
	suite.Require().NoError(err)
	err = uow.DishLineRepository().AddAll(ctx, createTestLines(order2.ID()))
	suite.Require().NoError(err)

	lines, err := uow.DishLineRepository().GetAllByOrderIDs(ctx, []kernel.UUID{order1.ID(), order2.ID()})
	suite.Require().NoError(err)
	suite.Len(lines, 4)

	// A missing id is simply absent from the result.
	lines, err = uow.DishLineRepository().GetAllByOrderIDs(ctx, []kernel.UUID{order1.ID(), kernel.NewUUID()})
	suite.Require().NoError(err)
	suite.Len(lines, 2)
}

// createTestOrder creates a valid order for testing purposes.
func createTestOrder() *order.Order {
	id := kernel.NewUUID()
	testOrder, _ := order.NewOrder(id, kernel.NewUUID(), "Tverskaya st. 1", 102000, time.Now().UTC())
	return testOrder
}

// createTestLines creates two valid dish lines belonging to the given order.
func createTestLines(orderID kernel.UUID) []*dishline.DishLine {
	line1, _ := dishline.NewDishLine(kernel.NewUUID(), orderID, kernel.NewUUID(), "Margherita", 2, 45000)
	line2, _ := dishline.NewDishLine(kernel.NewUUID(), orderID, kernel.NewUUID(), "Lemonade", 1, 12000)
	return []*dishline.DishLine{line1, line2}
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
