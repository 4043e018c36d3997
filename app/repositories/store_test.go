package repositories_test

import (
	"context"

	"github.com/launchbase/launchbase/pkg/database"
)

// recordedCall captures one statement handed to the store.
type recordedCall struct {
	kind string // "select" | "get" | "count" | "exec"
	sql  string
	args []interface{}
}

// fakeStore records every statement and plays back canned results, so
// repository tests can assert on the exact SQL and bound values without a
// database.
type fakeStore struct {
	calls []recordedCall

	countResult int64
	countErr    error
	getErr      error
	selectErr   error
	execRows    int64
	execErr     error
}

var _ database.Store = (*fakeStore)(nil)

func (s *fakeStore) record(kind, sql string, args []interface{}) {
	s.calls = append(s.calls, recordedCall{kind: kind, sql: sql, args: args})
}

func (s *fakeStore) Select(_ context.Context, _ interface{}, sql string, args ...interface{}) error {
	s.record("select", sql, args)
	return s.selectErr
}

func (s *fakeStore) Get(_ context.Context, _ interface{}, sql string, args ...interface{}) error {
	s.record("get", sql, args)
	return s.getErr
}

func (s *fakeStore) Count(_ context.Context, sql string, args ...interface{}) (int64, error) {
	s.record("count", sql, args)
	return s.countResult, s.countErr
}

func (s *fakeStore) Exec(_ context.Context, sql string, args ...interface{}) (int64, error) {
	s.record("exec", sql, args)
	return s.execRows, s.execErr
}

// last returns the most recent call of the given kind.
func (s *fakeStore) last(kind string) (recordedCall, bool) {
	for i := len(s.calls) - 1; i >= 0; i-- {
		if s.calls[i].kind == kind {
			return s.calls[i], true
		}
	}
	return recordedCall{}, false
}
