// Package metrics counts mutation outcomes and load issues with
// VictoriaMetrics counters and dumps them in the Prometheus text format.
package metrics

import (
	"fmt"
	vm "github.com/VictoriaMetrics/metrics"
	"github.com/ValentinKolb/dRec/lib/store"
	"github.com/ValentinKolb/dRec/lib/store/filestore"
	"io"
)

func mutationCounter(tool, op string, code store.RetCode) *vm.Counter {
	return vm.GetOrCreateCounter(fmt.Sprintf(`drec_mutations_total{tool=%q,op=%q,outcome=%q}`, tool, op, code.String()))
}

func loadIssueCounter(tool string) *vm.Counter {
	return vm.GetOrCreateCounter(fmt.Sprintf(`drec_load_issues_total{tool=%q}`, tool))
}

// Observe counts the outcome of a mutation and returns err unchanged, so it
// can wrap the return statement of an operation.
func Observe(tool, op string, err error) error {
	mutationCounter(tool, op, store.CodeOf(err)).Inc()
	return err
}

// Mutations returns how often op of tool ended with the given outcome
func Mutations(tool, op string, code store.RetCode) uint64 {
	return mutationCounter(tool, op, code).Get()
}

// AddLoadIssues counts store lines that were skipped or coerced while loading
func AddLoadIssues(tool string, n int) {
	if n > 0 {
		loadIssueCounter(tool).Add(n)
	}
}

// LoadIssues returns the number of load issues counted for tool
func LoadIssues(tool string) uint64 {
	return loadIssueCounter(tool).Get()
}

// WritePrometheus writes all counters in the Prometheus text format
func WritePrometheus(w io.Writer) {
	vm.WritePrometheus(w, false)
}

// WriteFile overwrites path with the Prometheus text dump
func WriteFile(path string) error {
	return filestore.Write(path, func(w io.Writer) error {
		WritePrometheus(w)
		return nil
	})
}
