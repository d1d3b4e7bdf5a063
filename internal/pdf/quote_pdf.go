// Package pdf renders persisted quotes into PDF documents using maroto/v2.
// Rendering is deterministic for a given quote, configuration and perspective,
// and never fails because a quote happens to be empty.
package pdf

import (
	"fmt"
	"strings"
	"time"

	"persianas-backend/internal/models"
	"persianas-backend/internal/pricing"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// RenderError wraps a fatal document generation failure. Business-data
// emptiness never produces one.
type RenderError struct{ Err error }

func (e *RenderError) Error() string { return "pdf render failed: " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

// PriceLookup returns the unit price a product carries today under the given
// perspective. It is consulted only when rendering the perspective a quote was
// NOT created with; the quote's own perspective always uses the stored
// snapshot. ok=false falls back to the snapshot so rendering keeps working for
// products that have since left the catalog.
type PriceLookup func(productID, clientType string) (price float64, ok bool)

// Document is one rendered PDF plus its suggested download filename.
type Document struct {
	Bytes    []byte
	Filename string
}

// Renderer turns quotes into documents. A nil Prices lookup disables
// cross-perspective re-pricing and always shows snapshot prices.
type Renderer struct {
	Prices PriceLookup
}

func NewRenderer(prices PriceLookup) *Renderer { return &Renderer{Prices: prices} }

// Render produces one PDF for the given perspective.
func (r *Renderer) Render(q *models.Quote, cfg models.BusinessConfig, perspective string) (Document, error) {
	data := r.buildData(q, cfg, perspective)
	raw, err := generate(data)
	if err != nil {
		return Document{}, &RenderError{Err: err}
	}
	return Document{Bytes: raw, Filename: Filename(q, "")}, nil
}

// RenderBoth produces the distributor and client documents for one quote in a
// single call. The perspective the quote was not created with is re-priced
// from the current catalog purely for display; the stored quote is untouched.
func (r *Renderer) RenderBoth(q *models.Quote, cfg models.BusinessConfig) (distributor, client Document, err error) {
	distData := r.buildData(q, cfg, models.ClientTypeDistributor)
	clientData := r.buildData(q, cfg, models.ClientTypeClient)

	rawDist, err := generate(distData)
	if err != nil {
		return Document{}, Document{}, &RenderError{Err: err}
	}
	rawClient, err := generate(clientData)
	if err != nil {
		return Document{}, Document{}, &RenderError{Err: err}
	}
	distributor = Document{Bytes: rawDist, Filename: Filename(q, models.ClientTypeDistributor)}
	client = Document{Bytes: rawClient, Filename: Filename(q, models.ClientTypeClient)}
	return distributor, client, nil
}

// Filename suggests a download name: cotizacion_<folio>.pdf, with a
// perspective suffix when rendering both variants.
func Filename(q *models.Quote, perspective string) string {
	suffix := ""
	switch perspective {
	case models.ClientTypeDistributor:
		suffix = "_distribuidor"
	case models.ClientTypeClient:
		suffix = "_cliente"
	}
	return fmt.Sprintf("cotizacion_%s%s.pdf", q.Folio(), suffix)
}

// pricedItem is a line item with the unit price resolved for the rendered
// perspective. For the quote's own perspective these are the stored values.
type pricedItem struct {
	models.QuoteItem
	DisplayUnitPrice float64
	DisplaySubtotal  float64
}

type docData struct {
	Business    models.BusinessConfig
	Folio       string
	Date        time.Time
	Perspective string
	ClientName  string
	ClientPhone string
	ClientEmail string
	Notes       string
	Items       []pricedItem
	Total       float64
}

func (r *Renderer) buildData(q *models.Quote, cfg models.BusinessConfig, perspective string) docData {
	items := make([]pricedItem, 0, len(q.Items))
	subtotals := make([]float64, 0, len(q.Items))
	for _, it := range q.Items {
		price := it.UnitPrice
		if perspective != q.ClientType && r.Prices != nil {
			if p, ok := r.Prices(it.ProductID, perspective); ok {
				price = p
			}
		}
		subtotal := it.SquareMeters*price + it.FasciaPrice + it.InstallationPrice
		items = append(items, pricedItem{QuoteItem: it, DisplayUnitPrice: price, DisplaySubtotal: subtotal})
		subtotals = append(subtotals, subtotal)
	}
	return docData{
		Business:    cfg,
		Folio:       strings.ToUpper(q.Folio()),
		Date:        q.CreatedAt,
		Perspective: perspective,
		ClientName:  q.ClientName,
		ClientPhone: q.ClientPhone,
		ClientEmail: q.ClientEmail,
		Notes:       q.Notes,
		Items:       items,
		Total:       pricing.Total(subtotals),
	}
}

func generate(data docData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	addLetterhead(m, data)
	addQuoteInfo(m, data)
	addTableHeader(m)
	for i, it := range data.Items {
		addItemRow(m, i+1, it)
	}
	addTotalRow(m, data)
	addNotes(m, data)
	addFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quote pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// addLetterhead renders the business identity block: optional logo, business
// name, document subtitle and contact line.
func addLetterhead(m core.Maroto, data docData) {
	if logo, ext, ok := decodeLogo(data.Business.LogoBase64); ok {
		m.AddRows(
			row.New(18).Add(
				col.New(3),
				image.NewFromBytesCol(6, logo, ext, props.Rect{Center: true, Percent: 90}),
				col.New(3),
			),
		)
	}
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(strings.ToUpper(data.Business.BusinessName), props.Text{
					Size:  20,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &props.Color{Red: 44, Green: 62, Blue: 80},
				}),
			),
		),
		row.New(7).Add(
			col.New(12).Add(
				text.New("Cotización de Persianas Enrollables", props.Text{
					Size:  11,
					Align: align.Center,
					Color: &props.Color{Red: 127, Green: 140, Blue: 141},
				}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Teléfono: %s  |  Email: %s", data.Business.Phone, data.Business.Email),
					props.Text{Size: 9, Align: align.Center},
				),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New("Dirección: "+data.Business.Address, props.Text{Size: 9, Align: align.Center}),
			),
		),
	)
	m.AddRows(row.New(6))
}

// addQuoteInfo renders folio, date, perspective and optional client metadata.
func addQuoteInfo(m core.Maroto, data docData) {
	label := "CLIENTE"
	if data.Perspective == models.ClientTypeDistributor {
		label = "DISTRIBUIDOR"
	}
	infoText := props.Text{Size: 9, Align: align.Left}
	lines := []string{
		"Folio: " + data.Folio,
		"Fecha: " + data.Date.Format("02/01/2006 15:04"),
		"Tipo de Cliente: " + label,
	}
	if data.ClientName != "" {
		lines = append(lines, "Cliente: "+data.ClientName)
	}
	if data.ClientPhone != "" {
		lines = append(lines, "Teléfono: "+data.ClientPhone)
	}
	if data.ClientEmail != "" {
		lines = append(lines, "Email: "+data.ClientEmail)
	}
	for _, line := range lines {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New(line, infoText)),
			),
		)
	}
	m.AddRows(row.New(6))
}

func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 52, Green: 152, Blue: 219}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Producto", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Color", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Medidas", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("M²", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Cadena", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Fascia", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Extras", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Subtotal", headerText)).WithStyle(&headerCell),
		),
	)
}

func addItemRow(m core.Maroto, index int, it pricedItem) {
	cellBg := &props.Color{Red: 236, Green: 240, Blue: 241}
	cell := props.Cell{BackgroundColor: cellBg}
	base := props.Text{Size: 8, Align: align.Center}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right

	color := it.Color
	if color == "" {
		color = "-"
	}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", index), base)).WithStyle(&cell),
			col.New(3).Add(text.New(truncate(it.ProductName, 22), left)).WithStyle(&cell),
			col.New(1).Add(text.New(truncate(color, 10), base)).WithStyle(&cell),
			col.New(2).Add(text.New(fmt.Sprintf("%.2f x %.2f m", it.Width, it.Height), base)).WithStyle(&cell),
			col.New(1).Add(text.New(fmt.Sprintf("%.2f", pricing.Round2(it.SquareMeters)), base)).WithStyle(&cell),
			col.New(1).Add(text.New(abbreviateChain(it.ChainOrientation), base)).WithStyle(&cell),
			col.New(1).Add(text.New(fasciaLabel(it.FasciaType, it.FasciaColor), base)).WithStyle(&cell),
			col.New(1).Add(text.New(extrasLabel(it.FasciaPrice, it.InstallationPrice), base)).WithStyle(&cell),
			col.New(1).Add(text.New(formatMoney(it.DisplaySubtotal), right)).WithStyle(&cell),
		),
	)
}

func addTotalRow(m core.Maroto, data docData) {
	totalBg := &props.Color{Red: 44, Green: 62, Blue: 80}
	totalCell := props.Cell{BackgroundColor: totalBg}
	totalText := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	m.AddRows(
		row.New(10).Add(
			col.New(9).Add(text.New("TOTAL:", totalText)).WithStyle(&totalCell),
			col.New(3).Add(text.New(formatMoney(data.Total), totalText)).WithStyle(&totalCell),
		),
	)
}

func addNotes(m core.Maroto, data docData) {
	if data.Notes == "" {
		return
	}
	m.AddRows(
		row.New(6),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Notas: "+data.Notes, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 127, Green: 140, Blue: 141},
				}),
			),
		),
	)
}

func addFooter(m core.Maroto) {
	footer := props.Text{
		Size:  8,
		Align: align.Center,
		Color: &props.Color{Red: 149, Green: 165, Blue: 166},
	}
	m.AddRows(
		row.New(10),
		row.New(4).Add(col.New(12).Add(text.New("Esta cotización tiene una vigencia de 15 días.", footer))),
		row.New(4).Add(col.New(12).Add(text.New("Precios sujetos a cambio sin previo aviso.", footer))),
		row.New(4).Add(col.New(12).Add(text.New("¡Gracias por su preferencia!", footer))),
	)
}
