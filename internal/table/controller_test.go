package table

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestController returns a controller over Alice (S001) and Bob (S002).
func newTestController(t *testing.T) *Controller {
	t.Helper()
	s := store.New()
	s.Append(model.Record{ID: "S001", Name: "Alice", Gender: "F", Age: "20", Province: "Zhejiang", Major: "Physics"})
	s.Append(model.Record{ID: "S002", Name: "Bob", Gender: "M", Age: "21", Province: "Hunan", Major: "Law"})
	return New(s, nil)
}

func rowIDs(c *Controller) []string {
	var out []string
	for i := 0; i < c.RowCount(); i++ {
		v, _ := c.Cell(i, model.ColumnID)
		out = append(out, v)
	}
	return out
}

func TestAddRow(t *testing.T) {
	c := newTestController(t)
	c.SetSelection(0, 1)

	row := c.AddRow()
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, c.RowCount())
	assert.Equal(t, []int{2}, c.Selection())
	assert.Equal(t, Cursor{Row: 2, Col: model.ColumnID}, c.Cursor())

	for _, col := range model.Columns() {
		v, err := c.Cell(row, col)
		require.NoError(t, err)
		assert.Empty(t, v)
	}
}

func TestDeleteSelected(t *testing.T) {
	t.Run("no selection fails", func(t *testing.T) {
		c := newTestController(t)
		err := c.DeleteSelected()
		assert.ErrorIs(t, err, ErrNoSelection)
		assert.Equal(t, 2, c.RowCount())
	})

	t.Run("deleting first row selects new last row", func(t *testing.T) {
		c := newTestController(t)
		c.SetSelection(0)

		require.NoError(t, c.DeleteSelected())
		assert.Equal(t, []string{"S002"}, rowIDs(c))
		assert.Equal(t, []int{0}, c.Selection())
		assert.Equal(t, Cursor{Row: 0, Col: model.ColumnID}, c.Cursor())
	})

	t.Run("multi-row delete", func(t *testing.T) {
		c := newTestController(t)
		for _, id := range []string{"S003", "S004", "S005"} {
			row := c.AddRow()
			require.NoError(t, c.SetCell(row, model.ColumnID, id))
		}
		c.SetSelection(1, 3, 4)

		require.NoError(t, c.DeleteSelected())
		assert.Equal(t, []string{"S001", "S003"}, rowIDs(c))
		assert.Equal(t, []int{1}, c.Selection())
	})

	t.Run("deleting everything clears selection", func(t *testing.T) {
		c := newTestController(t)
		c.SetSelection(0, 1)

		require.NoError(t, c.DeleteSelected())
		assert.Zero(t, c.RowCount())
		assert.Empty(t, c.Selection())
		assert.Equal(t, Cursor{}, c.Cursor())
		assert.ErrorIs(t, c.DeleteSelected(), ErrNoSelection)
	})
}

func TestSearchColumn(t *testing.T) {
	assert.Equal(t, model.ColumnID, SearchColumn("12345ab"))
	assert.Equal(t, model.ColumnName, SearchColumn("Li"))
	assert.Equal(t, model.ColumnName, SearchColumn("12345"))
	assert.Equal(t, model.ColumnID, SearchColumn("123456"))
	assert.Equal(t, model.ColumnName, SearchColumn("  12345  "))
	// characters, not bytes
	assert.Equal(t, model.ColumnName, SearchColumn("张三丰"))
	assert.Equal(t, model.ColumnID, SearchColumn("二〇二四年级"))
}

func TestFind(t *testing.T) {
	t.Run("id query matches case-insensitively", func(t *testing.T) {
		c := newTestController(t)
		require.NoError(t, c.SetCell(0, model.ColumnID, "S001-2024"))

		out, err := c.Find("s001-2")
		require.NoError(t, err)
		assert.True(t, out.Found)
		assert.Equal(t, 0, out.Row)
		assert.Equal(t, model.ColumnID, out.Column)
		assert.Equal(t, "S001-2024", out.Value)
		assert.Equal(t, []int{0}, c.Selection())
		assert.Equal(t, Cursor{Row: 0, Col: model.ColumnID}, c.Cursor())
	})

	t.Run("short query searches names", func(t *testing.T) {
		c := newTestController(t)

		out, err := c.Find("s001")
		require.NoError(t, err)
		// "s001" is four characters, so the name column is searched
		assert.False(t, out.Found)

		out, err = c.Find("BO")
		require.NoError(t, err)
		assert.True(t, out.Found)
		assert.Equal(t, 1, out.Row)
		assert.Equal(t, model.ColumnName, out.Column)
		assert.Equal(t, "Bob", out.Value)
		assert.Equal(t, Cursor{Row: 1, Col: model.ColumnName}, c.Cursor())
	})

	t.Run("first match wins", func(t *testing.T) {
		c := newTestController(t)
		row := c.AddRow()
		require.NoError(t, c.SetCell(row, model.ColumnName, "Alicia"))

		out, err := c.Find("ali")
		require.NoError(t, err)
		assert.Equal(t, 0, out.Row)
	})

	t.Run("no match keeps selection", func(t *testing.T) {
		c := newTestController(t)
		c.SetSelection(1)
		c.SetCursor(1, model.ColumnAge)

		out, err := c.Find("xyz")
		require.NoError(t, err)
		assert.False(t, out.Found)
		assert.Equal(t, []int{1}, c.Selection())
		assert.Equal(t, Cursor{Row: 1, Col: model.ColumnAge}, c.Cursor())
	})

	t.Run("blank query fails", func(t *testing.T) {
		c := newTestController(t)
		for _, q := range []string{"", "   ", "\t\n"} {
			_, err := c.Find(q)
			assert.ErrorIs(t, err, ErrEmptyQuery)
		}
	})

	t.Run("query is trimmed", func(t *testing.T) {
		c := newTestController(t)
		out, err := c.Find("  bob  ")
		require.NoError(t, err)
		assert.True(t, out.Found)
	})
}

func TestFindAll(t *testing.T) {
	c := newTestController(t)
	row := c.AddRow()
	require.NoError(t, c.SetCell(row, model.ColumnName, "Alicia"))

	out, err := c.FindAll("ALI")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].Row)
	assert.Equal(t, "Alicia", out[1].Value)
	assert.Equal(t, []int{0, 2}, c.Selection())
	assert.Equal(t, Cursor{Row: 0, Col: model.ColumnName}, c.Cursor())

	out, err = c.FindAll("nobody")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, []int{0, 2}, c.Selection())

	_, err = c.FindAll(" ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSelection(t *testing.T) {
	c := newTestController(t)

	c.SetSelection(1, 0, 1, 7, -3)
	assert.Equal(t, []int{0, 1}, c.Selection())
	assert.True(t, c.IsSelected(0))

	c.ToggleSelected(0)
	assert.Equal(t, []int{1}, c.Selection())
	c.ToggleSelected(0)
	assert.Equal(t, []int{0, 1}, c.Selection())
	c.ToggleSelected(9)
	assert.Equal(t, []int{0, 1}, c.Selection())

	got := c.Selection()
	got[0] = 99
	assert.Equal(t, []int{0, 1}, c.Selection())
}

func TestCursorMovement(t *testing.T) {
	c := newTestController(t)

	assert.False(t, c.MoveUp())
	assert.False(t, c.MoveLeft())

	assert.True(t, c.MoveDown())
	assert.False(t, c.MoveDown())
	assert.Equal(t, 1, c.Cursor().Row)

	for i := 0; i < model.FieldCount-1; i++ {
		assert.True(t, c.MoveRight())
	}
	assert.False(t, c.MoveRight())
	assert.Equal(t, model.ColumnMajor, c.Cursor().Col)

	assert.True(t, c.MoveUp())
	assert.True(t, c.MoveLeft())
	assert.Equal(t, Cursor{Row: 0, Col: model.ColumnProvince}, c.Cursor())

	// movement never touches the selection
	assert.Empty(t, c.Selection())
}

func TestCursorOnEmptyTable(t *testing.T) {
	c := New(store.New(), nil)
	assert.False(t, c.MoveDown())
	assert.False(t, c.MoveUp())
	assert.Equal(t, Cursor{}, c.Cursor())
}

func TestSetCursorClamps(t *testing.T) {
	c := newTestController(t)

	c.SetCursor(10, model.Column(10))
	assert.Equal(t, Cursor{Row: 1, Col: model.ColumnMajor}, c.Cursor())

	c.SetCursor(-1, model.Column(-1))
	assert.Equal(t, Cursor{Row: 0, Col: model.ColumnID}, c.Cursor())
}

func TestSaveAndLoadAll(t *testing.T) {
	t.Run("round trip resets selection and cursor", func(t *testing.T) {
		c := newTestController(t)
		path := filepath.Join(t.TempDir(), "data.txt")
		require.NoError(t, c.SaveAll(path))

		c.SetSelection(1)
		c.SetCursor(1, model.ColumnMajor)
		require.NoError(t, c.LoadAll(path))

		assert.Equal(t, []string{"S001", "S002"}, rowIDs(c))
		assert.Empty(t, c.Selection())
		assert.Equal(t, Cursor{}, c.Cursor())
	})

	t.Run("duplicate id save fails and file is unchanged", func(t *testing.T) {
		c := newTestController(t)
		path := filepath.Join(t.TempDir(), "data.txt")
		require.NoError(t, c.SaveAll(path))
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		require.NoError(t, c.SetCell(1, model.ColumnID, "S001"))
		err = c.SaveAll(path)
		var dup *store.DuplicateIDError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, 1, dup.Row)
		assert.Equal(t, 0, dup.Conflict)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("failed load changes nothing", func(t *testing.T) {
		c := newTestController(t)
		c.SetSelection(1)
		c.SetCursor(1, model.ColumnAge)

		err := c.LoadAll(filepath.Join(t.TempDir(), "missing.txt"))
		assert.ErrorIs(t, err, store.ErrSourceUnavailable)
		assert.Equal(t, []string{"S001", "S002"}, rowIDs(c))
		assert.Equal(t, []int{1}, c.Selection())
		assert.Equal(t, Cursor{Row: 1, Col: model.ColumnAge}, c.Cursor())
	})
}

func TestValidateDelegates(t *testing.T) {
	c := newTestController(t)
	assert.NoError(t, c.Validate())

	row := c.AddRow()
	var empty *store.EmptyIDError
	require.True(t, errors.As(c.Validate(), &empty))
	assert.Equal(t, row, empty.Row)
}

func TestHeaders(t *testing.T) {
	c := newTestController(t)
	assert.Equal(t, model.FieldCount, c.ColumnCount())
	assert.Equal(t, "Student ID", c.Headers()[0])
}
