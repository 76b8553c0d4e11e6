// Package report turns a submitted shift report into the ordered layout
// blocks of the daily production PDF. Assembly is pure and never fails:
// missing or malformed fields drop their section or fall back to a
// placeholder instead of aborting the document.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/de-tools/shift-report/pkg/models/domain"
)

const (
	titleText        = "Controle Diário da Britagem / Moagem"
	noReasonLabel    = "Sem motivo"
	sectionGap       = 12
	defaultEffective = "00:00"
)

// Column widths (points) mirror the layout the front end prints.
var (
	infoWidths      = []float64{130, 350}
	siloWidths      = []float64{230, 100, 100}
	stoppageWidths  = []float64{70, 70, 150, 60, 110}
	breakdownWidths = []float64{200, 70, 70}
	summaryWidths   = []float64{120, 140, 160, 100}
	checklistWidths = []float64{200, 100, 200}
)

// Assemble builds the full block sequence for one shift report. The section
// order is fixed; sections whose source data is empty are omitted entirely.
func Assemble(rep domain.ShiftReport) []domain.Block {
	blocks := []domain.Block{
		domain.Title{Text: titleText},
		domain.Spacer{Height: sectionGap},
	}

	blocks = appendInfo(blocks, rep)
	blocks = appendSilos(blocks, rep.Silos)
	blocks = appendStoppages(blocks, rep.Stoppages)
	blocks = appendBreakdown(blocks, rep.Stoppages)
	blocks = appendSummary(blocks, rep)
	blocks = appendObservations(blocks, rep)
	blocks = appendChecklist(blocks, rep.Checklist)

	return blocks
}

func appendInfo(blocks []domain.Block, rep domain.ShiftReport) []domain.Block {
	fields := []struct {
		label string
		value string
	}{
		{"Operador(es)", rep.Operator},
		{"Visto", rep.SignOff},
		{"HP", rep.SupervisorCode.String()},
		{"Turno", rep.Shift},
		{"Data", rep.Date},
		{"Horas Extras", rep.Overtime.String()},
	}

	var rows [][2]string
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		value := f.value
		if f.label == "Data" {
			value = formatDate(value)
		}
		rows = append(rows, [2]string{f.label, value})
	}
	if len(rows) == 0 {
		return blocks
	}
	return append(blocks,
		domain.KeyValueTable{Rows: rows, Widths: infoWidths},
		domain.Spacer{Height: sectionGap},
	)
}

// formatDate rewrites an ISO-8601 date as dd/mm/yyyy. Anything that does not
// parse passes through verbatim.
func formatDate(value string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return value
}

func appendSilos(blocks []domain.Block, silos []domain.SiloEntry) []domain.Block {
	if len(silos) == 0 {
		return blocks
	}
	rows := make([][]string, 0, len(silos))
	for _, s := range silos {
		rows = append(rows, []string{s.Name, s.Stock.String(), s.HoursWorked.String()})
	}
	return append(blocks,
		domain.Paragraph{Text: "Estoque de Produto", Style: domain.StyleHeading},
		domain.DataTable{
			Header: []string{"Silo", "Estoque (t)", "Horas Trabalhadas"},
			Rows:   rows,
			Widths: siloWidths,
		},
		domain.Spacer{Height: sectionGap},
	)
}

func appendStoppages(blocks []domain.Block, stoppages []domain.StoppageEvent) []domain.Block {
	if len(stoppages) == 0 {
		return blocks
	}
	rows := make([][]string, 0, len(stoppages))
	for _, p := range stoppages {
		rows = append(rows, []string{p.Start, p.End, p.Reason, p.Duration, p.Note})
	}
	return append(blocks,
		domain.Paragraph{Text: "Paradas Operacionais", Style: domain.StyleHeading},
		domain.DataTable{
			Header: []string{"Início", "Fim", "Motivo", "Duração", "Observação"},
			Rows:   rows,
			Widths: stoppageWidths,
		},
		domain.Spacer{Height: sectionGap},
	)
}

// reasonTotal accumulates stoppage minutes per reason, in first-seen order.
type reasonTotal struct {
	reason  string
	minutes int
}

func stoppageBreakdown(stoppages []domain.StoppageEvent) (groups []reasonTotal, totalMinutes int) {
	index := make(map[string]int)
	for _, p := range stoppages {
		minutes := minutesOrZero(p.Duration)
		totalMinutes += minutes

		reason := p.Reason
		if reason == "" {
			reason = noReasonLabel
		}
		if i, seen := index[reason]; seen {
			groups[i].minutes += minutes
		} else {
			index[reason] = len(groups)
			groups = append(groups, reasonTotal{reason: reason, minutes: minutes})
		}
	}
	return groups, totalMinutes
}

func appendBreakdown(blocks []domain.Block, stoppages []domain.StoppageEvent) []domain.Block {
	if len(stoppages) == 0 {
		return blocks
	}
	groups, total := stoppageBreakdown(stoppages)
	if total <= 0 {
		return blocks
	}
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		pct := float64(g.minutes) / float64(total) * 100
		rows = append(rows, []string{g.reason, formatHHMM(g.minutes), fmt.Sprintf("%.2f%%", pct)})
	}
	return append(blocks,
		domain.Paragraph{Text: "Distribuição de Paradas", Style: domain.StyleHeading},
		domain.DataTable{
			Header: []string{"Motivo", "Tempo", "%"},
			Rows:   rows,
			Widths: breakdownWidths,
		},
		domain.Spacer{Height: sectionGap},
	)
}

func appendSummary(blocks []domain.Block, rep domain.ShiftReport) []domain.Block {
	effective := rep.EffectiveTime
	if effective == "" {
		effective = defaultEffective
	}

	production := rep.Tonnage.String()
	if production == "" {
		production = rep.ProductionTotal.String()
	}

	count := len(rep.Stoppages)
	if rep.StoppageSummary.TotalStoppages != nil {
		count = *rep.StoppageSummary.TotalStoppages
	}

	var totalTime string
	if rep.StoppageSummary.TotalTime != nil {
		totalTime = *rep.StoppageSummary.TotalTime
	} else {
		total := 0
		for _, p := range rep.Stoppages {
			total += minutesOrZero(p.Duration)
		}
		totalTime = formatHHMM(total)
	}

	rate := rep.HourlyRate.String()
	if rate == "" && production != "" {
		rate = deriveRate(production, effective)
	}

	productionCell := production
	if productionCell == "" {
		productionCell = "-"
	}
	rateCell := rate
	if rateCell == "" {
		rateCell = "-"
	}

	return append(blocks,
		domain.Paragraph{Text: "Resumo Operacional", Style: domain.StyleHeading},
		domain.DataTable{
			Header: []string{"Tempo Efetivo", "Produção Total (t)", "Total de Paradas (Tempo)", "Produção/Hora"},
			Rows: [][]string{{
				effective,
				productionCell,
				fmt.Sprintf("%d (%s)", count, totalTime),
				rateCell,
			}},
			Widths: summaryWidths,
		},
		domain.Spacer{Height: sectionGap},
	)
}

// deriveRate computes tonnes per hour from the production total and the
// effective "HH:MM" run time. Any conversion failure or a zero-hour shift
// yields "0.00".
func deriveRate(production, effective string) string {
	total, err := strconv.ParseFloat(production, 64)
	if err != nil {
		return "0.00"
	}
	minutes, ok := parseHHMM(effective)
	if !ok || minutes <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", total/(float64(minutes)/60))
}

func appendObservations(blocks []domain.Block, rep domain.ShiftReport) []domain.Block {
	text := rep.Observations
	if text == "" {
		text = rep.ObservationsAlt
	}
	if text == "" {
		return blocks
	}
	return append(blocks,
		domain.Paragraph{Text: "Observações / Atuações no Processo", Style: domain.StyleHeading},
		domain.Paragraph{Text: text, Style: domain.StyleBody},
		domain.Spacer{Height: sectionGap},
	)
}

func appendChecklist(blocks []domain.Block, items []domain.ChecklistItem) []domain.Block {
	if len(items) == 0 {
		return blocks
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Equipment, item.Status, item.Note})
	}
	return append(blocks,
		domain.Paragraph{Text: "Checklist de Equipamentos", Style: domain.StyleHeading},
		domain.DataTable{
			Header: []string{"Equipamento", "Situação", "Observação"},
			Rows:   rows,
			Widths: checklistWidths,
		},
		domain.Spacer{Height: sectionGap},
	)
}
