package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResourceAdjustAvailableClamps(t *testing.T) {
	r := NewResource("id", "Don Quijote", "Cervantes", "novel", "", 3)

	r.AdjustAvailable(-1)
	assert.Equal(t, 2, r.Available)

	r.AdjustAvailable(-5)
	assert.Equal(t, 0, r.Available)

	r.AdjustAvailable(10)
	assert.Equal(t, 3, r.Available)
}

func TestNewResourceMinimumOneCopy(t *testing.T) {
	r := NewResource("id", "Atlas", "", "", "", 0)
	assert.Equal(t, 1, r.TotalCopies)
	assert.Equal(t, 1, r.Available)
}

func TestLoanReturnable(t *testing.T) {
	due := time.Now().AddDate(0, 0, 7)
	l := NewLoan("id", "p", "r", "Ana", "Atlas", time.Now(), &due, "")

	assert.Equal(t, LoanStatusActive, l.Status)
	assert.True(t, l.Returnable())

	l.Status = LoanStatusOverdue
	assert.True(t, l.Returnable())

	l.Status = LoanStatusReturned
	assert.False(t, l.Returnable())

	l.Status = LoanStatusLost
	assert.False(t, l.Returnable())
}
