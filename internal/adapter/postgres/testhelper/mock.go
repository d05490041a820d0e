package testhelper

import (
	"testing"

	"github.com/pashagolub/pgxmock/v3"
)

// NewMockPool returns a pgxmock pool that fails the test if any expectation
// is left unmet at cleanup.
func NewMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("testhelper: create pgxmock pool: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("testhelper: unmet sql expectations: %v", err)
		}
		mock.Close()
	})

	return mock
}

// AnyArgs returns n pgxmock.AnyArg matchers for WithArgs.
func AnyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}
