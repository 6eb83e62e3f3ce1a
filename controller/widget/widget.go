package widget

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kylycht/converter/converter"
	"github.com/kylycht/converter/model"
	"github.com/kylycht/converter/page"
	"github.com/rs/zerolog/log"
)

func New(doc *page.Document, widgets []*converter.Converter) *Widget {
	w := &Widget{
		doc:     doc,
		widgets: widgets,
		byID:    make(map[string]*converter.Converter, len(widgets)),
	}

	for _, c := range widgets {
		w.byID[c.ID()] = c
	}

	return w
}

type Widget struct {
	doc     *page.Document                  // host page widgets are mounted into
	widgets []*converter.Converter          // mounted widgets in mount order
	byID    map[string]*converter.Converter // lookup by instance id
}

// Register attaches widget routes to router
func (w *Widget) Register(router fiber.Router) {
	router.Get("/", w.Page)
	router.Post("/widgets/:id", w.Event)
	router.Get("/api/widgets", w.List)
	router.Get("/api/widgets/:id", w.Get)
	router.Get("/api/widgets/:id/convert", w.Convert)
}

// Page renders host page with every mounted widget
func (w *Widget) Page(ctx *fiber.Ctx) error {
	ctx.Type("html", "utf-8")

	if err := w.doc.Render(ctx); err != nil {
		log.Error().Err(err).Msg("unable to render page")
		return err
	}

	return nil
}

// Event godoc
//
//	@Summary		Apply widget input
//	@Description	change typed amount and selected currency of a widget, the amount is applied even if the currency is rejected
//	@Tags			widgets
//	@Accept			x-www-form-urlencoded
//	@Param			id		path		string	true	"Widget ID"
//	@Param			amount	formData	string	false	"Typed amount" example(100)
//	@Param			from	formData	string	false	"Selected currency" example(BYN)
//	@Success		303
//	@Failure		400	{string}	string	"unknown currency: GBP"
//	@Failure		404	{string}	string	"unknown widget"
//	@Router			/widgets/{id} [post]
func (w *Widget) Event(ctx *fiber.Ctx) error {
	c, err := w.lookup(ctx)
	if err != nil {
		return err
	}

	// amount is kept even when the selection is rejected
	c.Input(ctx.FormValue("amount"))

	if from := ctx.FormValue("from"); from != "" {
		if err := c.Select(from); err != nil {
			return badRequest(err)
		}
	}

	log.Debug().Str("widget", c.Name()).Msg("input applied")

	return ctx.Redirect("/", fiber.StatusSeeOther)
}

// List godoc
//
//	@Summary		List widgets
//	@Tags			widgets
//	@Produce		json
//	@Success		200	{array}	converter.View
//	@Router			/api/widgets [get]
func (w *Widget) List(ctx *fiber.Ctx) error {
	views := make([]converter.View, 0, len(w.widgets))
	for _, c := range w.widgets {
		views = append(views, c.Snapshot())
	}

	return ctx.JSON(views)
}

// Get godoc
//
//	@Summary		Widget state
//	@Tags			widgets
//	@Produce		json
//	@Param			id	path		string	true	"Widget ID"
//	@Success		200	{object}	converter.View
//	@Failure		404	{string}	string	"unknown widget"
//	@Router			/api/widgets/{id} [get]
func (w *Widget) Get(ctx *fiber.Ctx) error {
	c, err := w.lookup(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(c.Snapshot())
}

// Convert godoc
//
//	@Summary		Convert amount
//	@Description	convert amount from given currency into every other tracked currency, widget state is kept
//	@Tags			widgets
//	@Produce		json
//	@Param			id		path	string	true	"Widget ID"
//	@Param			from	query	string	true	"From Currency" example(USD)
//	@Param			amount	query	string	false	"Amount" example(10)
//	@Success		200	{array}		model.Row
//	@Failure		400	{string}	string	"unknown currency: GBP"
//	@Failure		404	{string}	string	"unknown widget"
//	@Router			/api/widgets/{id}/convert [get]
func (w *Widget) Convert(ctx *fiber.Ctx) error {
	c, err := w.lookup(ctx)
	if err != nil {
		return err
	}

	rows, err := c.Convert(ctx.Query("from"), ctx.Query("amount"))
	if err != nil {
		return badRequest(err)
	}

	return ctx.JSON(visible(rows))
}

func (w *Widget) lookup(ctx *fiber.Ctx) (*converter.Converter, error) {
	c, ok := w.byID[ctx.Params("id")]
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "unknown widget")
	}

	return c, nil
}

func badRequest(err error) error {
	if errors.Is(err, converter.ErrUnknownCurrency) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return err
}

// visible drops the row of the selected currency
func visible(rows []model.Row) []model.Row {
	out := make([]model.Row, 0, len(rows))
	for _, r := range rows {
		if r.Hidden {
			continue
		}
		out = append(out, r)
	}

	return out
}
