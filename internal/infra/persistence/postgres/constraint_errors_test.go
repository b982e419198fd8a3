package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm duplicated key", errors.Wrap(gorm.ErrDuplicatedKey, "create failed"), true},
		{"pq duplicate key message", errors.New(`pq: duplicate key value violates unique constraint "idx_customers_phone"`), true},
		{"sqlstate code", errors.New("ERROR: some failure (SQLSTATE 23505)"), true},
		{"unrelated error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.New(`insert violates foreign key constraint "fk_customers_business" (SQLSTATE 23503)`)))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("connection refused")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "phone" violates not-null constraint`)))
	assert.True(t, isNotNullConstraintViolation(errors.New("ERROR: failure (SQLSTATE 23502)")))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}
