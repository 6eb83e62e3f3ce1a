package persistence

import (
	"context"
	"database/sql"
	"strings"

	"github.com/kylycht/converter/model"
	"github.com/kylycht/converter/storage"
)

type Persistence struct {
	dbConn *sql.DB
}

func New(dbConn *sql.DB) storage.Storage {
	return &Persistence{
		dbConn: dbConn,
	}
}

// Load implements storage.Storage.
// currencies column holds comma separated codes
func (p *Persistence) Load(ctx context.Context) ([]model.WidgetSpec, error) {
	loadQuery := `SELECT name, root_selector, currencies
				 FROM converter_widget
				 WHERE is_enabled=true
				 ORDER BY position`

	var specs []model.WidgetSpec

	rows, err := p.dbConn.QueryContext(ctx, loadQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			spec       model.WidgetSpec
			currencies string
		)

		if err := rows.Scan(&spec.Name, &spec.Root, &currencies); err != nil {
			return specs, err
		}

		for _, code := range strings.Split(currencies, ",") {
			code = strings.ToUpper(strings.TrimSpace(code))
			if code == "" {
				continue
			}
			spec.Currencies = append(spec.Currencies, code)
		}

		specs = append(specs, spec)
	}

	return specs, rows.Err()
}
