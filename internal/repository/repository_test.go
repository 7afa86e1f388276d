package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/field-service-api/internal/models"
	"github.com/yukikurage/field-service-api/internal/testutil"
	"gorm.io/gorm"
)

func TestTaskCategoryRepository_FindByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	company := testutil.CreateCompany(t, db, "Acme")
	other := testutil.CreateCompany(t, db, "Other")
	created := testutil.CreateCategory(t, db, company.ID, "Maintenance")
	testutil.CreateCategory(t, db, other.ID, "Inspection")

	repo := NewTaskCategoryRepository(db)

	found, err := repo.FindByName(ctx, company.ID, "Maintenance")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	// exact match only
	found, err = repo.FindByName(ctx, company.ID, "maintenance")
	require.NoError(t, err)
	assert.Nil(t, found)

	// tenant scoped
	found, err = repo.FindByName(ctx, company.ID, "Inspection")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestWorkingOrderRepository_ScopedAndActiveOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	company := testutil.CreateCompany(t, db, "Acme")
	other := testutil.CreateCompany(t, db, "Other")

	repo := NewWorkingOrderRepository(db)
	active := testutil.CreateWorkingOrder(t, db, company.ID, "project-1", "Active")
	inactive := testutil.CreateWorkingOrder(t, db, company.ID, "project-1", "Inactive")
	testutil.CreateWorkingOrder(t, db, company.ID, "project-2", "Other project")

	inactive.IsActive = false
	require.NoError(t, repo.Update(ctx, inactive))

	orders, err := repo.ListActiveByProject(ctx, company.ID, "project-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, active.ID, orders[0].ID)

	_, err = repo.FindByID(ctx, other.ID, active.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	reloaded, err := repo.FindByID(ctx, company.ID, inactive.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)
}

func TestTaskRepository_ListAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	company := testutil.CreateCompany(t, db, "Acme")
	other := testutil.CreateCompany(t, db, "Other")
	order := testutil.CreateWorkingOrder(t, db, company.ID, "project-1", "Order")
	detail := testutil.CreateTaskDetail(t, db, company.ID, order.ID, "Detail", "a", "b")

	repo := NewTaskRepository(db)
	first := testutil.CreateTask(t, db, company.ID, order.ID, detail.ID, "a", "b")
	testutil.CreateTask(t, db, company.ID, order.ID, detail.ID, "a")
	testutil.CreateTask(t, db, other.ID, order.ID, detail.ID)

	require.NoError(t, repo.CreateAssignments(ctx, []models.TaskAssignment{{
		TaskID:         first.ID,
		UserID:         "user-1",
		UserEmail:      "u1@x.com",
		AssignmentType: models.AssignmentTypeIndividual,
	}}))
	require.NoError(t, repo.CreateAssignments(ctx, nil))

	tasks, total, err := repo.List(ctx, TaskFilter{CompanyID: company.ID, Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, tasks, 1)

	assigned := "user-1"
	tasks, total, err = repo.List(ctx, TaskFilter{CompanyID: company.ID, AssignedUserID: &assigned})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tasks, 1)
	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Len(t, tasks[0].Assignments, 1)

	found, err := repo.FindByID(ctx, company.ID, first.ID, "Assignments")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, []string(found.Instructions))
	assert.Equal(t, []bool{false, false}, []bool(found.InstructionsCompleted))

	_, err = repo.FindByID(ctx, other.ID, first.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskRepository_Updates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	company := testutil.CreateCompany(t, db, "Acme")
	task := testutil.CreateTask(t, db, company.ID, "order-1", "detail-1", "a", "b")

	repo := NewTaskRepository(db)
	require.NoError(t, repo.UpdateStatus(ctx, task, models.TaskStatusInProgress))
	require.NoError(t, repo.UpdateInstructionsCompleted(ctx, task, []bool{true, false}))

	reloaded, err := repo.FindByID(ctx, company.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusInProgress, reloaded.Status)
	assert.Equal(t, []bool{true, false}, []bool(reloaded.InstructionsCompleted))
}

func TestTaskRepository_DuplicateAssignmentRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	company := testutil.CreateCompany(t, db, "Acme")
	task := testutil.CreateTask(t, db, company.ID, "order-1", "detail-1")

	repo := NewTaskRepository(db)
	assignment := models.TaskAssignment{
		TaskID:         task.ID,
		UserID:         "user-1",
		UserEmail:      "u1@x.com",
		AssignmentType: models.AssignmentTypeIndividual,
	}
	require.NoError(t, repo.CreateAssignments(ctx, []models.TaskAssignment{assignment}))
	assert.Error(t, repo.CreateAssignments(ctx, []models.TaskAssignment{assignment}))
}

func TestCompanyRepository_SearchMembers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	company := testutil.CreateCompany(t, db, "Acme")
	other := testutil.CreateCompany(t, db, "Other")

	alice := testutil.CreateUser(t, db, "alice@acme.com", "Alice", "Smith")
	bob := testutil.CreateUser(t, db, "bob@acme.com", "Bob", "Jones")
	carol := testutil.CreateUser(t, db, "carol@other.com", "Carol", "Smith")
	testutil.AddMember(t, db, company.ID, alice.ID, models.RoleOwner)
	testutil.AddMember(t, db, company.ID, bob.ID, models.RoleMember)
	testutil.AddMember(t, db, other.ID, carol.ID, models.RoleMember)

	repo := NewCompanyRepository(db)

	members, err := repo.SearchMembers(ctx, company.ID, "", 50)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "alice@acme.com", members[0].User.Email)
	assert.Equal(t, "bob@acme.com", members[1].User.Email)

	members, err = repo.SearchMembers(ctx, company.ID, "SMITH", 50)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, alice.ID, members[0].UserID)

	members, err = repo.SearchMembers(ctx, company.ID, "", 1)
	require.NoError(t, err)
	assert.Len(t, members, 1)

	memberships, err := repo.ListMembershipsByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, "Acme", memberships[0].Company.Name)
}

func TestUserRepository_CreateWithCompany(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := &models.User{Email: "owner@acme.com", PasswordHash: "x"}
	company := &models.Company{Name: "Acme"}
	member := &models.CompanyUser{Role: models.RoleOwner}
	require.NoError(t, repo.CreateWithCompany(ctx, user, company, member))

	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, company.ID)
	assert.Equal(t, company.ID, member.CompanyID)

	// duplicate email fails and leaves no second company behind
	err := repo.CreateWithCompany(ctx,
		&models.User{Email: "owner@acme.com", PasswordHash: "x"},
		&models.Company{Name: "Second"},
		&models.CompanyUser{Role: models.RoleOwner},
	)
	assert.ErrorIs(t, err, ErrCreateUser)
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Company{}))

	found, err := repo.FindByEmail(ctx, "owner@acme.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}
