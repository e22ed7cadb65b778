package analysis

import (
	"math"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// FinanceSplit is the fraction of invoiced sales attributed to financing;
// the remainder is cash. It is a business constant applied uniformly, not
// derived from record data.
//
// TODO(driveline-112): replace with the per-market split once the finance
// feed lands.
const FinanceSplit = 0.7

// StageCount is one stage of a funnel.
type StageCount struct {
	Name        model.FunnelStage `json:"name"`
	Value       int               `json:"value"`
	Description string            `json:"description"`
}

// InvoiceSplit is the fixed-ratio breakdown of the terminal invoice stage.
type InvoiceSplit struct {
	Financed int `json:"financed"`
	Cash     int `json:"cash"`
}

// SourceFunnel is one lead source's funnel rollup.
type SourceFunnel struct {
	Source string       `json:"source"`
	Stages []StageCount `json:"stages"`
	Split  InvoiceSplit `json:"split"`
}

// Funnel is the full sales-funnel aggregate: overall stage counts plus a
// per-source breakdown over the fixed lead-source list.
type Funnel struct {
	Overall []StageCount   `json:"overall"`
	Sources []SourceFunnel `json:"sources"`
}

var stageDescriptions = map[model.FunnelStage]string{
	model.StageRequest:   "Test drive requested",
	model.StageBooked:    "Appointment booked",
	model.StageCompleted: "Test drive completed",
	model.StageOrder:     "Order placed",
	model.StageInvoice:   "Invoice issued",
}

// SalesFunnel rolls the filtered records up into funnel stage counts. Each
// record contributes to every stage at or before its FunnelStage, so counts
// are non-increasing down the stage order. Every source in the fixed lead
// source list gets a row, pre-initialized to zero, so sources absent from the
// filtered set still render as empty funnels.
func SalesFunnel(records []model.TestDriveRecord) Funnel {
	overall := make([]int, len(model.FunnelStages))
	perSource := make(map[string][]int, len(model.LeadSources))
	for _, src := range model.LeadSources {
		perSource[src] = make([]int, len(model.FunnelStages))
	}

	for _, r := range records {
		reached := model.StageIndex(r.FunnelStage)
		if reached < 0 {
			continue
		}
		counts, known := perSource[r.Channel]
		for i := 0; i <= reached; i++ {
			overall[i]++
			if known {
				counts[i]++
			}
		}
	}

	f := Funnel{
		Overall: stageCounts(overall),
		Sources: make([]SourceFunnel, 0, len(model.LeadSources)),
	}
	for _, src := range model.LeadSources {
		counts := perSource[src]
		f.Sources = append(f.Sources, SourceFunnel{
			Source: src,
			Stages: stageCounts(counts),
			Split:  splitInvoices(counts[len(counts)-1]),
		})
	}
	return f
}

func stageCounts(counts []int) []StageCount {
	out := make([]StageCount, len(model.FunnelStages))
	for i, stage := range model.FunnelStages {
		out[i] = StageCount{
			Name:        stage,
			Value:       counts[i],
			Description: stageDescriptions[stage],
		}
	}
	return out
}

// splitInvoices applies the fixed finance/cash ratio to the invoice count.
// Financed takes the rounded share; cash takes the remainder so the parts
// always sum to the whole.
func splitInvoices(invoices int) InvoiceSplit {
	financed := int(math.Round(float64(invoices) * FinanceSplit))
	return InvoiceSplit{Financed: financed, Cash: invoices - financed}
}
