package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCodeKind(t *testing.T) {
	tests := []struct {
		code string
		kind CodeKind
		ok   bool
	}{
		{code: "123", kind: CodeKindVisit, ok: true},
		{code: "000", kind: CodeKindVisit, ok: true},
		{code: "12345", kind: CodeKindReferral, ok: true},
		{code: "", ok: false},
		{code: "12", ok: false},
		{code: "1234", ok: false},
		{code: "123456", ok: false},
		{code: "12a", ok: false},
		{code: " 123", ok: false},
		{code: "-12", ok: false},
		{code: "１２３", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			kind, ok := ParseCodeKind(tt.code)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestCodeKind(t *testing.T) {
	assert.Equal(t, 3, CodeKindVisit.Digits())
	assert.Equal(t, 5, CodeKindReferral.Digits())
	assert.False(t, CodeKind("4d").IsValid())
	assert.Equal(t, "Por comer", CodeKindVisit.Description())
	assert.Equal(t, "Por referir amigo", CodeKindReferral.Description())
}

func TestPointsPolicy(t *testing.T) {
	policy := PointsPolicy{PointsPerVisit: 50, PointsPerReferral: 350, MinimumRedeem: 6000}

	assert.Equal(t, 50, policy.Award(CodeKindVisit))
	assert.Equal(t, 350, policy.Award(CodeKindReferral))

	assert.False(t, policy.Eligible(5999))
	assert.True(t, policy.Eligible(6000))
	assert.True(t, policy.Eligible(6001))

	progress := map[int]int{0: 0, -5: 0, 50: 1, 3000: 50, 5999: 100, 6000: 100, 9000: 100}
	for balance, expected := range progress {
		assert.Equal(t, expected, policy.Progress(balance), "balance %d", balance)
	}
}

func TestStatementPeriod_Duration(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, PeriodWeek.Duration())
	assert.Equal(t, 30*24*time.Hour, PeriodMonth.Duration())
}
