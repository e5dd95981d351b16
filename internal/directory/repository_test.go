package directory

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDirectoryMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

var personRows = []string{"id", "name", "email", "role", "gym_id", "activity"}

func TestFindByID(t *testing.T) {
	repo, mock, closeDB := setupDirectoryMock(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, role, COALESCE(gym_id, '') AS gym_id, activity FROM people WHERE id = ?")).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(personRows).
			AddRow("s1", "Dana", "dana@example.com", "wellbeing_staff", "g1", "nutrition"))

	p, err := repo.FindByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, RoleWellbeingStaff, p.Role)
	assert.Equal(t, "nutrition", p.Activity)
	assert.True(t, p.Role.IsStaff())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NoRows(t *testing.T) {
	repo, mock, closeDB := setupDirectoryMock(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta("FROM people WHERE id = ?")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(personRows))

	_, err := repo.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFindByName(t *testing.T) {
	repo, mock, closeDB := setupDirectoryMock(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta("FROM people WHERE name = ? ORDER BY id LIMIT 1")).
		WithArgs("Alex").
		WillReturnRows(sqlmock.NewRows(personRows).
			AddRow("m1", "Alex", "alex@example.com", "member", "g1", ""))

	p, err := repo.FindByName(context.Background(), "Alex")
	require.NoError(t, err)
	assert.Equal(t, "m1", p.ID)
}

func TestListMembersByGym(t *testing.T) {
	repo, mock, closeDB := setupDirectoryMock(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta("FROM people WHERE gym_id = ? AND role = ? ORDER BY id")).
		WithArgs("g1", "member").
		WillReturnRows(sqlmock.NewRows(personRows).
			AddRow("m1", "Alex", "", "member", "g1", "").
			AddRow("m2", "Bo", "", "member", "g1", ""))

	people, err := repo.ListMembersByGym(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "m2", people[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGym(t *testing.T) {
	repo, mock, closeDB := setupDirectoryMock(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, location FROM gyms WHERE id = ?")).
		WithArgs("g1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location"}).AddRow("g1", "Downtown", "Main St"))

	g, err := repo.GetGym(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "Downtown", g.Name)
}

func TestImport(t *testing.T) {
	repo, mock, closeDB := setupDirectoryMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO gyms (id, name, location)")).
		WithArgs("g1", "Downtown", "Main St").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO people (id, name, email, role, gym_id, activity)")).
		WithArgs("m1", "Alex", "alex@example.com", "member", "g1", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO people (id, name, email, role, gym_id, activity)")).
		WithArgs("a1", "Root", "", "admin", nil, "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Import(context.Background(), &Seed{
		Gyms: []Gym{{ID: "g1", Name: "Downtown", Location: "Main St"}},
		People: []Person{
			{ID: "m1", Name: "Alex", Email: "alex@example.com", Role: RoleMember, GymID: "g1"},
			{ID: "a1", Name: "Root", Role: RoleAdmin},
		},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
