// Package pdf implementa la generación del albarán de empaque (packing slip)
// de un pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: CargoHub + Ref. pedido  │  N° Pedido + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ORIGEN: Bodega + dirección                                 │
//	│  DESTINO: Cliente + dirección de entrega                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Código | Descripción | Peso unit. | Peso     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Líneas / Unidades / Peso total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la referencia + nota de muelle              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cargohub-api/internal/application/usecase"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.PackingSlipGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.PackingSlipGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePackingSlip genera el PDF del albarán y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePackingSlip(_ context.Context, data *usecase.PackingSlipData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Albarán de empaque", true).
		WithAuthor("CargoHub", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(origenRow(data.Warehouse))
	m.AddRows(destinoRow(data.ShipTo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(data.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data.Lines))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data.Order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca + referencia (izq) y N° de pedido + fechas (der).
func headerRow(order *entity.Order) core.Row {
	numPedido := fmt.Sprintf("Pedido #%d", order.ID)
	fecha := order.OrderDate.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("CargoHub", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ref: "+nonEmpty(order.Reference, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ALBARÁN DE EMPAQUE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(numPedido, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// origenRow: datos de la bodega de origen.
func origenRow(w *entity.Warehouse) core.Row {
	name, detail := "—", "—"
	if w != nil {
		name = fmt.Sprintf("%s (%s)", w.Name, w.Code)
		detail = fmt.Sprintf("%s, %s, %s", nonEmpty(w.Address, "—"), nonEmpty(w.City, "—"), nonEmpty(w.Country, "—"))
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ORIGEN: "+name, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(detail, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// destinoRow: cliente destinatario y dirección de entrega.
func destinoRow(c *entity.Client) core.Row {
	name, detail := "—", "—"
	if c != nil {
		name = c.Name
		detail = fmt.Sprintf("%s, %s, %s   |   Contacto: %s",
			nonEmpty(c.Address, "—"), nonEmpty(c.City, "—"), nonEmpty(c.Country, "—"),
			nonEmpty(c.ContactName, "—"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DESTINO / ENTREGAR A", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Código", 2, align.Left),
		h("Descripción del artículo", 5, align.Left),
		h("Peso unit.", 2, align.Right),
		h("Peso línea", 2, align.Right),
	)
}

// tableLineRows: una fila por línea del pedido.
func tableLineRows(lines []usecase.PackingSlipLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		lineWeight := l.UnitWeightKg.Mul(decimal.NewFromInt(l.Amount))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Amount),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.ItemCode, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				nonEmpty(l.Description, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.UnitWeightKg.StringFixed(2)+" kg",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				lineWeight.StringFixed(2)+" kg",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(lines []usecase.PackingSlipLine) core.Row {
	var units int64
	weight := decimal.Zero
	for _, l := range lines {
		units += l.Amount
		weight = weight.Add(l.UnitWeightKg.Mul(decimal.NewFromInt(l.Amount)))
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Líneas:"),
			label("Unidades:"),
			grandLabel("PESO TOTAL:"),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", len(lines))),
			value(fmt.Sprintf("%d", units)),
			grandValue(weight.StringFixed(2)+" kg"),
		),
		col.New(2),
	)
}

// footerRow: código QR con el pedido para escanear en muelle + nota.
func footerRow(order *entity.Order) core.Row {
	qrData := fmt.Sprintf("cargohub:order:%d:%s", order.ID, order.Reference)
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(qrData, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código QR en el muelle para\nconfirmar el empaque de este pedido.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Verifique cantidades y códigos\nantes de sellar el paquete.", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 22,
				Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
