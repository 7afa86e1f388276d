package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/field-service-api/internal/models"
	"github.com/yukikurage/field-service-api/internal/repository"
	"github.com/yukikurage/field-service-api/internal/testutil"
	"gorm.io/gorm"
)

type WorkingOrderServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *WorkingOrderService
	company *models.Company
}

func (suite *WorkingOrderServiceTestSuite) SetupTest() {
	suite.db = testutil.SetupTestDB(suite.T())
	suite.service = NewWorkingOrderService(repository.NewWorkingOrderRepository(suite.db))
	suite.company = testutil.CreateCompany(suite.T(), suite.db, "Acme")
}

func (suite *WorkingOrderServiceTestSuite) TestCreateAndList() {
	order, err := suite.service.Create(context.Background(), suite.company.ID, CreateWorkingOrderInput{
		ProjectID: "project-1",
		ContactID: "contact-1",
		Title:     "  Spring maintenance ",
	})
	suite.Require().NoError(err)
	suite.Equal("Spring maintenance", order.Title)
	suite.True(order.IsActive)

	orders, err := suite.service.ListByProject(context.Background(), suite.company.ID, "project-1")
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(order.ID, orders[0].ID)
}

func (suite *WorkingOrderServiceTestSuite) TestCreate_Validation() {
	_, err := suite.service.Create(context.Background(), suite.company.ID, CreateWorkingOrderInput{ProjectID: "p", ContactID: "c"})
	suite.ErrorIs(err, ErrValidation)

	_, err = suite.service.Create(context.Background(), suite.company.ID, CreateWorkingOrderInput{ProjectID: "p", Title: "t"})
	suite.ErrorIs(err, ErrValidation)
}

func (suite *WorkingOrderServiceTestSuite) TestUpdate() {
	order := testutil.CreateWorkingOrder(suite.T(), suite.db, suite.company.ID, "project-1", "Old")
	title := "New"

	updated, err := suite.service.Update(context.Background(), suite.company.ID, order.ID, UpdateWorkingOrderInput{Title: &title})
	suite.Require().NoError(err)
	suite.Equal("New", updated.Title)
	suite.True(updated.IsActive)

	blank := " "
	_, err = suite.service.Update(context.Background(), suite.company.ID, order.ID, UpdateWorkingOrderInput{Title: &blank})
	suite.ErrorIs(err, ErrValidation)
}

func (suite *WorkingOrderServiceTestSuite) TestDelete_IsSoft() {
	order := testutil.CreateWorkingOrder(suite.T(), suite.db, suite.company.ID, "project-1", "Order")

	suite.Require().NoError(suite.service.Delete(context.Background(), suite.company.ID, order.ID))

	stored, err := suite.service.Get(context.Background(), suite.company.ID, order.ID)
	suite.Require().NoError(err)
	suite.False(stored.IsActive)

	orders, err := suite.service.ListByProject(context.Background(), suite.company.ID, "project-1")
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *WorkingOrderServiceTestSuite) TestGet_OtherCompany() {
	other := testutil.CreateCompany(suite.T(), suite.db, "Other")
	order := testutil.CreateWorkingOrder(suite.T(), suite.db, other.ID, "project-1", "Order")

	_, err := suite.service.Get(context.Background(), suite.company.ID, order.ID)
	suite.ErrorIs(err, ErrWorkingOrderNotFound)

	err = suite.service.Delete(context.Background(), suite.company.ID, order.ID)
	suite.ErrorIs(err, ErrWorkingOrderNotFound)
}

func TestWorkingOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkingOrderServiceTestSuite))
}
