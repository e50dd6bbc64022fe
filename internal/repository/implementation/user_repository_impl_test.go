package implementation

import (
	"context"
	"testing"

	"caseflow-be/internal/repository/specification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestUserFindOneByEmail(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("jane@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "user_type"}).
			AddRow(userID, "jane@example.com", "Jane Doe", "legal_professional"))

	user, err := repo.FindOne(context.Background(), specification.ByEmail{Email: "jane@example.com"})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.Id)
	assert.Equal(t, "Jane Doe", user.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindOneMissingReturnsNil(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	user, err := repo.FindOne(context.Background(), specification.ByEmail{Email: "ghost@example.com"})

	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationFindAllUnreadScoped(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewNotificationRepository(gdb)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE user_id = \$1 AND is_read = \$2`).
		WithArgs(userID, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "title", "is_read"}).
			AddRow(uuid.New(), userID, "CASE_CREATED", "Case created", false))

	notifications, err := repo.FindAll(context.Background(),
		specification.UserOwnedBy{UserID: userID},
		specification.UnreadOnly{},
	)

	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Case created", notifications[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationCountUnread(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewNotificationRepository(gdb)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE user_id = \$1 AND is_read = \$2`).
		WithArgs(userID, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(),
		specification.UserOwnedBy{UserID: userID},
		specification.UnreadOnly{},
	)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
