package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedVetPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSavedVetPostgres(db)
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM saved_vets`).
			WithArgs("u1", "v1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		ok, err := repo.Exists(ctx, "u1", "v1")

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("create ignores duplicates", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO saved_vets (.+) ON CONFLICT \(user_id, vet_id\) DO NOTHING`).
			WithArgs("u1", "v1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Create(ctx, "u1", "v1"))
	})

	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM saved_vets WHERE user_id = (.+) AND vet_id = ?").
			WithArgs("u1", "v1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "u1", "v1"))
	})

	t.Run("list by user", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM saved_vets WHERE user_id = (.+) ORDER BY saved_at DESC").
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "vet_id", "saved_at"}).
				AddRow("s2", "u1", "v2", now).
				AddRow("s1", "u1", "v1", now.Add(-time.Hour)))

		items, err := repo.ListByUser(ctx, "u1")

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "v2", items[0].VetID)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
