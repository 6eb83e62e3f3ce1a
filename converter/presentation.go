package converter

import "github.com/kylycht/converter/model"

// BuildRows projects the tracked set into select options
// and result rows, one of each per quote, in set order.
// Rows start visible and labeled with their bare code
func BuildRows(set model.TrackedSet) ([]model.Option, []model.Row) {
	options := make([]model.Option, 0, len(set))
	rows := make([]model.Row, 0, len(set))

	for _, q := range set {
		options = append(options, model.Option{Code: q.Code})
		rows = append(rows, model.Row{
			Code: q.Code,
			Rate: q.Rate,
			Text: q.Code,
		})
	}

	return options, rows
}
