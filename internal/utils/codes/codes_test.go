package codes_test

import (
	"testing"

	"github.com/gstnote/gstnote_backend/internal/utils/codes"
	"github.com/stretchr/testify/assert"
)

func TestNextCode_EmptyScopeStartsAtOne(t *testing.T) {
	assert.Equal(t, "VDR001", codes.NextCode("VDR", ""))
	assert.Equal(t, "DBN001", codes.NextCode("DBN", ""))
}

func TestNextCode_Increments(t *testing.T) {
	assert.Equal(t, "VDR043", codes.NextCode("VDR", "VDR042"))
	assert.Equal(t, "USR002", codes.NextCode("USR", "USR001"))
}

func TestNextCode_SharedSequenceAcrossPrefixes(t *testing.T) {
	// Note numbers form one global sequence: a debit note created after
	// credit note CRN004 becomes DBN005.
	assert.Equal(t, "DBN005", codes.NextCode("DBN", "CRN004"))
	assert.Equal(t, "CRN008", codes.NextCode("CRN", "DBN007"))
}

func TestNextCode_CorruptSuffixTreatedAsZero(t *testing.T) {
	assert.Equal(t, "VDR001", codes.NextCode("VDR", "VDRxyz"))
	assert.Equal(t, "VDR001", codes.NextCode("VDR", "VD"))
}

func TestNextCode_WidensPastThreeDigits(t *testing.T) {
	assert.Equal(t, "DBN1000", codes.NextCode("DBN", "DBN999"))
	assert.Equal(t, "DBN1001", codes.NextCode("DBN", "DBN1000"))
}

func TestSuffixOf(t *testing.T) {
	assert.Equal(t, int64(42), codes.SuffixOf("VDR042"))
	assert.Equal(t, int64(0), codes.SuffixOf(""))
	assert.Equal(t, int64(0), codes.SuffixOf("VDRabc"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "ITM007", codes.Format("ITM", 7))
	assert.Equal(t, "ITM1234", codes.Format("ITM", 1234))
}
