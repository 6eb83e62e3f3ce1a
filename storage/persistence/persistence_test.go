package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kylycht/converter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT name, root_selector, currencies\s+FROM converter_widget`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "root_selector", "currencies"}).
			AddRow("main", "#root", "USD,EUR,RUB").
			AddRow("side", "#root2", " cny, rub ,, amd"))

	specs, err := New(db).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.WidgetSpec{
		{Name: "main", Root: "#root", Currencies: []string{"USD", "EUR", "RUB"}},
		{Name: "side", Root: "#root2", Currencies: []string{"CNY", "RUB", "AMD"}},
	}, specs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT name, root_selector, currencies`).WillReturnError(errors.New("connection refused"))

	specs, err := New(db).Load(context.Background())
	assert.EqualError(t, err, "connection refused")
	assert.Nil(t, specs)
}

func TestLoad_RowError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT name, root_selector, currencies`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "root_selector", "currencies"}).
			AddRow("main", "#root", "USD").
			RowError(0, errors.New("broken row")))

	_, err = New(db).Load(context.Background())
	assert.EqualError(t, err, "broken row")
}
