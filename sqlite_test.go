package basalt

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Build produces plain statement text, so the exact-output tests pin the
// bytes; this test feeds the same statements to a real engine to confirm the
// shape is accepted SQL and selects the rows it claims to.
func TestBuild_AcceptedBySQLite(t *testing.T) {
	db := openPersonDB(t)
	defer db.Close()

	q := Must(New("Person")).Select("id", "age").Filter(Eq("name", String("Bill")))

	t.Run("projection with filter and order", func(t *testing.T) {
		rows, err := db.Query(q.Select("name").OrderBy("name").Build())
		require.NoError(t, err)
		defer rows.Close()

		require.True(t, rows.Next())
		var id, age int
		var name string
		require.NoError(t, rows.Scan(&id, &age, &name))
		assert.Equal(t, 1, id)
		assert.Equal(t, 30, age)
		assert.Equal(t, "Bill", name)
		assert.False(t, rows.Next())
		require.NoError(t, rows.Err())
	})

	t.Run("star projection", func(t *testing.T) {
		rows, err := db.Query(Must(New("Person")).Build())
		require.NoError(t, err)
		defer rows.Close()

		count := 0
		for rows.Next() {
			count++
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, 3, count)
	})

	t.Run("boolean keyword predicate", func(t *testing.T) {
		stmt := Must(New("Person")).Select("name").Filter(Eq("active", Bool(true))).OrderBy("name").Build()

		rows, err := db.Query(stmt)
		require.NoError(t, err)
		defer rows.Close()

		var names []string
		for rows.Next() {
			var name string
			require.NoError(t, rows.Scan(&name))
			names = append(names, name)
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, []string{"Ada", "Bill"}, names)
	})

	t.Run("descending order", func(t *testing.T) {
		stmt := Must(New("Person")).Select("age").OrderByDesc("age").Build()

		rows, err := db.Query(stmt)
		require.NoError(t, err)
		defer rows.Close()

		var ages []int
		for rows.Next() {
			var age int
			require.NoError(t, rows.Scan(&age))
			ages = append(ages, age)
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, []int{52, 40, 30}, ages)
	})
}

func openPersonDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	_, err = db.Exec(`CREATE TABLE Person (id INTEGER, age INTEGER, name TEXT, active BOOLEAN)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO Person (id, age, name, active) VALUES
		(1, 30, 'Bill', TRUE),
		(2, 40, 'Grace', FALSE),
		(3, 52, 'Ada', TRUE)`)
	require.NoError(t, err)

	return db
}
