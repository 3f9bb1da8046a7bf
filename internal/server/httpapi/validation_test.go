package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "pads one decimal", in: "7.5", want: "7.50"},
		{name: "keeps two decimals", in: "7.25", want: "7.25"},
		{name: "integer", in: "12", want: "12.00"},
		{name: "zero", in: "0", want: "0.00"},
		{name: "trailing zeros", in: "8.500", want: "8.50"},
		{name: "max", in: "999.99", want: "999.99"},
		{name: "too large", in: "1000", wantErr: true},
		{name: "too precise", in: "7.255", wantErr: true},
		{name: "negative", in: "-1", wantErr: true},
		{name: "not a number", in: "abc", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeRate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_SchemeCreate(t *testing.T) {
	valid := schemeCreateRequest{
		Name:         "FD Plus",
		Type:         "deposit",
		Description:  "d",
		InterestRate: "7.5",
		Tenure:       "1 year",
	}
	require.NoError(t, validate.Struct(valid))
	assert.Equal(t, "7.50", valid.input().InterestRate)

	badType := valid
	badType.Type = "savings"
	err := validate.Struct(badType)
	require.Error(t, err)
	assert.Equal(t, "type: oneof", validationMessage(err))

	badRate := valid
	badRate.InterestRate = "seven"
	err = validate.Struct(badRate)
	require.Error(t, err)
	assert.Equal(t, "interestRate: decimal52", validationMessage(err))
}

func TestValidate_UpdateRequestsAllowEmpty(t *testing.T) {
	assert.NoError(t, validate.Struct(schemeUpdateRequest{}))
	assert.NoError(t, validate.Struct(branchUpdateRequest{}))
	assert.NoError(t, validate.Struct(settingUpdateRequest{}))

	bad := "x"
	assert.Error(t, validate.Struct(schemeUpdateRequest{InterestRate: &bad}))
	assert.Error(t, validate.Struct(branchUpdateRequest{Email: &bad}))
}

func TestValidate_DocumentFileSize(t *testing.T) {
	zero := int64(0)
	neg := int64(-1)

	assert.NoError(t, validate.Struct(documentCreateRequest{Name: "n", FileName: "f.pdf", FileSize: &zero}))
	assert.Error(t, validate.Struct(documentCreateRequest{Name: "n", FileName: "f.pdf", FileSize: &neg}))
	assert.Error(t, validate.Struct(documentCreateRequest{Name: "n", FileName: "f.pdf"}))
}

func TestDecimal52Registered(t *testing.T) {
	require.NotPanics(t, func() {
		assert.NoError(t, validate.Var("7.5", "decimal52"))
		assert.Error(t, validate.Var("7.555", "decimal52"))
	})
}
