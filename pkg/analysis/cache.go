package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"
	"sync"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// ComputeDataHash generates a deterministic hash of the record set. Store
// order is part of the identity: FilterRecords preserves input order, so two
// stores with the same rows in a different order are different inputs.
func ComputeDataHash(records []model.TestDriveRecord) string {
	if len(records) == 0 {
		return "empty"
	}

	h := sha256.New()
	for _, r := range records {
		writeString(h, r.Date)
		writeString(h, r.Model)
		writeString(h, string(r.ModelType))
		writeString(h, r.Showroom)
		writeString(h, r.Channel)
		writeString(h, r.SalesConsultant)
		writeBool(h, r.Completed)
		writeBool(h, r.ConvertedToSale)
		writeString(h, string(r.Occurrence))
		writeString(h, string(r.FunnelStage))
		writeInt(h, r.CustomerAge)
		writeString(h, string(r.CustomerGender))
		writeInt(h, r.DurationMinutes)
		writeInt(h, r.TimeToTestDriveDays)
		h.Write([]byte{1}) // record separator
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// ComputeFilterHash generates a structural hash of the filter value, so
// memoization keys on filter content rather than pointer identity.
func ComputeFilterHash(f model.GlobalFilters) string {
	if f.IsZero() {
		return "unfiltered"
	}
	h := sha256.New()
	writeString(h, f.StartDate)
	writeString(h, f.EndDate)
	writeString(h, f.Model)
	writeString(h, f.Showroom)
	writeString(h, f.Channel)
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func writeString(w io.Writer, v string) {
	_, _ = io.WriteString(w, v)
	_, _ = w.Write([]byte{0})
}

func writeInt(w io.Writer, v int) {
	_, _ = io.WriteString(w, strconv.Itoa(v))
	_, _ = w.Write([]byte{0})
}

func writeBool(w io.Writer, v bool) {
	if v {
		_, _ = w.Write([]byte{'t', 0})
		return
	}
	_, _ = w.Write([]byte{'f', 0})
}

// Memo owns the record store and serves every aggregate through a cache
// keyed by "aggregate|dataHash|filterHash". Repeated calls with an unchanged
// store and equal filters return the identical cached value; replacing the
// store invalidates everything. Thread-safe: the file watcher swaps the
// store from its own goroutine while the UI reads.
type Memo struct {
	mu       sync.RWMutex
	records  []model.TestDriveRecord
	dataHash string
	entries  map[string]any
	hits     int
	misses   int
}

// NewMemo creates a Memo over the given record store.
func NewMemo(records []model.TestDriveRecord) *Memo {
	return &Memo{
		records:  records,
		dataHash: ComputeDataHash(records),
		entries:  make(map[string]any),
	}
}

// SetRecords replaces the record store wholesale and drops every cached
// aggregate. There is no partial invalidation: the store is the only input
// that can change at runtime.
func (m *Memo) SetRecords(records []model.TestDriveRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = records
	m.dataHash = ComputeDataHash(records)
	m.entries = make(map[string]any)
}

// Records returns the current record store. Callers must treat it as
// read-only.
func (m *Memo) Records() []model.TestDriveRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.records
}

// DataHash returns the hash of the current record store.
func (m *Memo) DataHash() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dataHash
}

// Stats returns cache hit/miss counters for debugging.
func (m *Memo) Stats() (hits, misses int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hits, m.misses
}

// memoize returns the cached value for (name, filters) or computes, caches,
// and returns it. The compute function runs over the filtered record set,
// which is itself memoized.
func memoize[T any](m *Memo, name string, f model.GlobalFilters, compute func([]model.TestDriveRecord) T) T {
	key := name + "|" + m.DataHash() + "|" + ComputeFilterHash(f)

	m.mu.RLock()
	cached, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		m.mu.Lock()
		m.hits++
		m.mu.Unlock()
		return cached.(T)
	}

	result := compute(m.Filtered(f))

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another goroutine may have filled the entry meanwhile; keep the first
	// value so callers observing identity semantics see one object.
	if cached, ok := m.entries[key]; ok {
		m.hits++
		return cached.(T)
	}
	m.misses++
	m.entries[key] = result
	return result
}

// Filtered returns the memoized filtered subsequence for f.
func (m *Memo) Filtered(f model.GlobalFilters) []model.TestDriveRecord {
	key := "filtered|" + m.DataHash() + "|" + ComputeFilterHash(f)

	m.mu.RLock()
	cached, ok := m.entries[key]
	records := m.records
	m.mu.RUnlock()
	if ok {
		return cached.([]model.TestDriveRecord)
	}

	result := FilterRecords(records, f)

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.entries[key]; ok {
		return cached.([]model.TestDriveRecord)
	}
	m.entries[key] = result
	return result
}

// Memoized aggregate accessors, one per dashboard view.

func (m *Memo) Summary(f model.GlobalFilters) SummaryStats {
	return memoize(m, "summary", f, Summary)
}

func (m *Memo) Completion(f model.GlobalFilters) CompletionStats {
	return memoize(m, "completion", f, Completion)
}

func (m *Memo) Occurrence(f model.GlobalFilters) OccurrenceBreakdown {
	return memoize(m, "occurrence", f, Occurrence)
}

func (m *Memo) TestDrivesByDate(f model.GlobalFilters) []DatePoint {
	return memoize(m, "by_date", f, TestDrivesByDate)
}

func (m *Memo) TestDrivesByMonth(f model.GlobalFilters) []MonthPoint {
	return memoize(m, "by_month", f, TestDrivesByMonth)
}

func (m *Memo) WeekdayProfile(f model.GlobalFilters) []WeekdayCount {
	return memoize(m, "weekday", f, WeekdayProfile)
}

func (m *Memo) PopularModels(f model.GlobalFilters) []ModelCount {
	return memoize(m, "popular_models", f, PopularModels)
}

func (m *Memo) DurationByModel(f model.GlobalFilters) []ModelDuration {
	return memoize(m, "duration_by_model", f, DurationByModel)
}

func (m *Memo) ChannelPerformance(f model.GlobalFilters) []ChannelPerformance {
	return memoize(m, "channel_performance", f, ChannelPerformanceRows)
}

func (m *Memo) AgeDistribution(f model.GlobalFilters) []AgeGroupCount {
	return memoize(m, "age_distribution", f, AgeDistribution)
}

func (m *Memo) GenderDistribution(f model.GlobalFilters) []GenderCount {
	return memoize(m, "gender_distribution", f, GenderDistribution)
}

func (m *Memo) ShowroomLeaderboard(f model.GlobalFilters) []ShowroomStanding {
	return memoize(m, "showroom_leaderboard", f, ShowroomLeaderboard)
}

func (m *Memo) ConsultantLeaderboard(f model.GlobalFilters) []ConsultantStanding {
	return memoize(m, "consultant_leaderboard", f, ConsultantLeaderboard)
}

func (m *Memo) TimeToTestDrive(f model.GlobalFilters) []ShowroomTiming {
	return memoize(m, "time_to_test_drive", f, TimeToTestDrive)
}

func (m *Memo) SalesFunnel(f model.GlobalFilters) Funnel {
	return memoize(m, "sales_funnel", f, SalesFunnel)
}
