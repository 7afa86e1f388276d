package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	apierrors "github.com/yukikurage/field-service-api/internal/errors"
	"github.com/yukikurage/field-service-api/internal/models"
	"github.com/yukikurage/field-service-api/internal/repository"
	"github.com/yukikurage/field-service-api/internal/services"
	"github.com/yukikurage/field-service-api/internal/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type JobOrderHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *JobOrderHandler
	company *models.Company
	user    *models.User
}

func (suite *JobOrderHandlerTestSuite) SetupTest() {
	suite.db = testutil.SetupTestDB(suite.T())
	service := services.NewJobOrderService(repository.NewTxManager(suite.db), zap.NewNop())
	suite.handler = NewJobOrderHandler(service)

	suite.company = testutil.CreateCompany(suite.T(), suite.db, "Acme")
	suite.user = testutil.CreateUser(suite.T(), suite.db, "dispatch@acme.test", "Dana", "")
	testutil.AddMember(suite.T(), suite.db, suite.company.ID, suite.user.ID, models.RoleOwner)
}

func jobOrderBody() map[string]any {
	return map[string]any{
		"case":         map[string]any{"id": "proj1", "customerId": "cust1"},
		"workingOrder": map[string]any{"isNew": true, "title": "Site visit"},
		"taskDetails": map[string]any{
			"isNew":        true,
			"title":        "Inspect roof",
			"category":     "Maintenance",
			"instructions": []string{"Check gutters", "Check shingles"},
		},
		"schedule": map[string]any{"enabled": false},
		"assignedResources": map[string]any{
			"teams":           []any{},
			"teamUsers":       []any{},
			"individualUsers": []any{map[string]any{"id": "u1", "email": "u1@x.com"}},
		},
	}
}

func (suite *JobOrderHandlerTestSuite) TestCreateJobOrder_Success() {
	c, w := newCompanyContext(suite.T(), http.MethodPost, "/api/companies/x/job-orders", jobOrderBody(), suite.user.ID, suite.company.ID)

	suite.handler.CreateJobOrder(c)

	suite.Require().Equal(http.StatusCreated, w.Code)

	var response struct {
		Success bool                    `json:"success"`
		Data    services.JobOrderResult `json:"data"`
	}
	decodeJSON(suite.T(), w, &response)
	suite.True(response.Success)
	suite.NotEmpty(response.Data.TaskID)
	suite.NotEmpty(response.Data.WorkingOrderID)
	suite.NotEmpty(response.Data.TaskDetailID)

	suite.Equal(int64(1), testutil.Count(suite.T(), suite.db, &models.TaskAssignment{}))
}

func (suite *JobOrderHandlerTestSuite) TestCreateJobOrder_ValidationError() {
	body := jobOrderBody()
	body["workingOrder"] = map[string]any{"isNew": false, "id": ""}

	c, w := newCompanyContext(suite.T(), http.MethodPost, "/api/companies/x/job-orders", body, suite.user.ID, suite.company.ID)

	suite.handler.CreateJobOrder(c)

	suite.Require().Equal(http.StatusBadRequest, w.Code)

	var response apierrors.APIError
	decodeJSON(suite.T(), w, &response)
	suite.Equal(apierrors.ErrCodeInvalidInput, response.Code)
	suite.Equal(map[string]any{"field": "workingOrder.id"}, response.Details)
	suite.Equal(int64(0), testutil.Count(suite.T(), suite.db, &models.Task{}))
}

func (suite *JobOrderHandlerTestSuite) TestCreateJobOrder_UnknownTaskDetail() {
	body := jobOrderBody()
	body["taskDetails"] = map[string]any{"isNew": false, "id": "missing"}

	c, w := newCompanyContext(suite.T(), http.MethodPost, "/api/companies/x/job-orders", body, suite.user.ID, suite.company.ID)

	suite.handler.CreateJobOrder(c)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(int64(0), testutil.Count(suite.T(), suite.db, &models.WorkingOrder{}))
}

func (suite *JobOrderHandlerTestSuite) TestCreateJobOrder_MalformedBody() {
	c, w := newCompanyContext(suite.T(), http.MethodPost, "/api/companies/x/job-orders", map[string]any{"case": "not an object"}, suite.user.ID, suite.company.ID)

	suite.handler.CreateJobOrder(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestJobOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JobOrderHandlerTestSuite))
}
