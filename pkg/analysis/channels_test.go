package analysis_test

import (
	"testing"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/model"
	"github.com/vanderheijden86/driveline/pkg/testutil"
)

func TestChannelPerformanceRows(t *testing.T) {
	var records []model.TestDriveRecord
	// Instagram: 3 leads, 2 completed, 1 sale.
	records = append(records,
		testutil.NewRecord(testutil.WithChannel("Instagram"), testutil.Converted()),
		testutil.NewRecord(testutil.WithChannel("Instagram")),
		testutil.NewRecord(testutil.WithChannel("Instagram"), testutil.NotCompleted()),
	)
	// Referral: 1 lead, 1 completed, 0 sales.
	records = append(records, testutil.NewRecord(testutil.WithChannel("Referral")))

	got := analysis.ChannelPerformanceRows(records)
	if len(got) != 2 {
		t.Fatalf("Got %d rows, want 2 (absent sources omitted)", len(got))
	}
	insta := got[0]
	if insta.Source != "Instagram" {
		t.Fatalf("First row = %s, want Instagram (most leads)", insta.Source)
	}
	if insta.Leads != 3 || insta.TestDrives != 2 {
		t.Errorf("Instagram = %d leads / %d drives, want 3/2", insta.Leads, insta.TestDrives)
	}
	if insta.Conversion != 50.0 {
		t.Errorf("Instagram conversion = %v, want 50.0 (sales over drives)", insta.Conversion)
	}
	if got[1].Conversion != 0 {
		t.Errorf("Referral conversion = %v, want 0", got[1].Conversion)
	}
}

func TestChannelPerformanceRows_Empty(t *testing.T) {
	if got := analysis.ChannelPerformanceRows(nil); len(got) != 0 {
		t.Errorf("Empty input should yield no rows, got %d", len(got))
	}
}

func TestSummary(t *testing.T) {
	var records []model.TestDriveRecord
	records = append(records,
		testutil.NewRecord(testutil.Converted()),
		testutil.NewRecord(),
		testutil.NewRecord(testutil.WithModel("ES300"), testutil.WithShowroom("Corniche")),
		testutil.NewRecord(testutil.NotCompleted()),
	)

	s := analysis.Summary(records)
	if s.TotalLeads != 4 || s.TestDrives != 3 || s.Sales != 1 {
		t.Errorf("Totals = %d/%d/%d, want 4/3/1", s.TotalLeads, s.TestDrives, s.Sales)
	}
	if s.CompletionRate != 75.0 {
		t.Errorf("CompletionRate = %v, want 75.0", s.CompletionRate)
	}
	if s.ConversionRate != 33.3 {
		t.Errorf("ConversionRate = %v, want 33.3 (sales over drives)", s.ConversionRate)
	}
	if s.ActiveModels != 2 || s.ActiveShowrooms != 2 {
		t.Errorf("Active = %d models / %d showrooms, want 2/2", s.ActiveModels, s.ActiveShowrooms)
	}
}

func TestSummary_Empty(t *testing.T) {
	s := analysis.Summary(nil)
	if s.TotalLeads != 0 || s.CompletionRate != 0 || s.ConversionRate != 0 {
		t.Errorf("Empty summary should be all zeros, got %+v", s)
	}
}
