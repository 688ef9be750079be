package store

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Op names a store operation for status tracking
type Op string

const (
	OpFetchPortfolios         Op = "fetchPortfolios"
	OpCreatePortfolio         Op = "createPortfolio"
	OpFetchPositions          Op = "fetchPositions"
	OpFetchPositionsForDate   Op = "fetchPositionsForDate"
	OpRecalculatePositions    Op = "recalculatePositions"
	OpFetchPortfolioSummary   Op = "fetchPortfolioSummary"
	OpFetchPortfolioStats     Op = "fetchPortfolioStats"
	OpFetchPerformanceMetrics Op = "fetchPerformanceMetrics"
	OpFetchPerformanceHistory Op = "fetchPerformanceHistory"
	OpFetchMonthlyReturns     Op = "fetchMonthlyReturns"
	OpFetchAssetAllocation    Op = "fetchAssetAllocation"
	OpFetchTransactions       Op = "fetchTransactions"
	OpCreateTransaction       Op = "createTransaction"
	OpImportTransactions      Op = "importTransactions"
	OpFetchAssets             Op = "fetchAssets"
	OpCreateAsset             Op = "createAsset"
	OpUpdateAsset             Op = "updateAsset"
	OpDeleteAsset             Op = "deleteAsset"
	OpFetchCurrencies         Op = "fetchCurrencies"
	OpFetchExchangeRates      Op = "fetchExchangeRates"
	OpFetchSettings           Op = "fetchSettings"
	OpFetchSetting            Op = "fetchSetting"
	OpSaveSetting             Op = "saveSetting"
)

// OpStatus is the loading/error state of one operation
type OpStatus struct {
	Loading   bool      `json:"loading"`
	Err       string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type opState struct {
	inflight  int
	err       string
	updatedAt time.Time
}

// opRun tracks a single invocation of an operation
type opRun struct {
	s     *Store
	op    Op
	start time.Time
}

// begin marks op as in flight. The caller must defer end().
func (s *Store) begin(op Op) *opRun {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	st := s.opStateLocked(op)
	st.inflight++
	st.updatedAt = s.now()
	s.inflight++
	return &opRun{s: s, op: op, start: time.Now()}
}

// fail records err against the operation and as the store's last error
func (r *opRun) fail(err error) {
	msg := err.Error()
	log.Warnf("%s failed: %s", r.op, msg)

	r.s.statusMu.Lock()
	defer r.s.statusMu.Unlock()
	st := r.s.opStateLocked(r.op)
	st.err = msg
	st.updatedAt = r.s.now()
	r.s.lastErr = msg
}

// succeed clears the operation's own error; the store's last error is left untouched
func (r *opRun) succeed() {
	r.s.statusMu.Lock()
	defer r.s.statusMu.Unlock()
	st := r.s.opStateLocked(r.op)
	st.err = ""
	st.updatedAt = r.s.now()
}

// end marks the invocation done, whatever its outcome
func (r *opRun) end() {
	r.s.statusMu.Lock()
	st := r.s.opStateLocked(r.op)
	st.inflight--
	r.s.inflight--
	r.s.statusMu.Unlock()

	trackTime(string(r.op), r.start)
}

func (s *Store) opStateLocked(op Op) *opState {
	st, ok := s.status[op]
	if !ok {
		st = &opState{}
		s.status[op] = st
	}
	return st
}

// Loading reports whether any operation is in flight
func (s *Store) Loading() bool {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	return s.inflight > 0
}

// Err returns the message of the most recent failure, or "" when none was recorded
func (s *Store) Err() string {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	return s.lastErr
}

// SetError overwrites the store's last error message
func (s *Store) SetError(msg string) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.lastErr = msg
}

// ClearError resets the store's last error message
func (s *Store) ClearError() {
	s.SetError("")
}

// Status returns the state of one operation. Operations never run report the zero OpStatus.
func (s *Store) Status(op Op) OpStatus {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	st, ok := s.status[op]
	if !ok {
		return OpStatus{}
	}
	return OpStatus{Loading: st.inflight > 0, Err: st.err, UpdatedAt: st.updatedAt}
}

// Statuses returns the state of every operation run so far
func (s *Store) Statuses() map[Op]OpStatus {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	out := make(map[Op]OpStatus, len(s.status))
	for op, st := range s.status {
		out[op] = OpStatus{Loading: st.inflight > 0, Err: st.err, UpdatedAt: st.updatedAt}
	}
	return out
}

func trackTime(funcName string, start time.Time) {
	elapsed := time.Since(start)
	log.Debugf("%s took %d ms", funcName, elapsed.Milliseconds())
}
