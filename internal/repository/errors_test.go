package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "serialization failure", err: &pq.Error{Code: codeSerializationFailure}, want: domain.ErrConflict},
		{name: "deadlock", err: &pq.Error{Code: codeDeadlockDetected}, want: domain.ErrConflict},
		{name: "field deleted concurrently", err: &pq.Error{Code: codeForeignKeyViolation}, want: domain.ErrConflict},
		{name: "unique violation", err: &pq.Error{Code: codeUniqueViolation}, want: domain.ErrConflict},
		{name: "syntax error", err: &pq.Error{Code: "42601"}, want: domain.ErrPersistence},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: domain.ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("op", tt.err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
