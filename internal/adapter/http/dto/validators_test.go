package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := EntryRequest{
		Currency:      "  tokens  ",
		ParticipantID: " 6f1c1d1e-0000-4000-8000-000000000001 ",
		Amount:        5,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "tokens", req.Currency)
	assert.Equal(t, "6f1c1d1e-0000-4000-8000-000000000001", req.ParticipantID)
	assert.Equal(t, int64(5), req.Amount)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := EntryRequest{Currency: "<b>gems</b>"}
	SanitizeStruct(&req)

	assert.Equal(t, "&lt;b&gt;gems&lt;/b&gt;", req.Currency)
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	winner := "  abc  "
	rec := DrawRecordResponse{Winner: &winner}
	SanitizeStruct(&rec)

	assert.Equal(t, "abc", *rec.Winner)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	rec := DrawRecordResponse{Currency: "coins"}
	SanitizeStruct(&rec)
	assert.Nil(t, rec.Winner)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

func TestCurrencyID_Valid(t *testing.T) {
	for _, tc := range []string{"tokens", "Gems", "poke_coins", "Poke Coins", "coins2"} {
		assert.True(t, currencyIDRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestCurrencyID_Invalid(t *testing.T) {
	for _, tc := range []string{"", "tok;ens", "gems<script>", "coins\n", "a-b", "abcdefghijklmnopqrstuvwxyz0123456789"} {
		assert.False(t, currencyIDRe.MatchString(tc), "expected invalid: %q", tc)
	}
}

func TestEntryRequest_Binding(t *testing.T) {
	valid := EntryRequest{Currency: "tokens", ParticipantID: "6f1c1d1e-0000-4000-8000-000000000001", Amount: 10}
	assert.NoError(t, binding.Validator.ValidateStruct(&valid))

	badUUID := valid
	badUUID.ParticipantID = "steve"
	assert.Error(t, binding.Validator.ValidateStruct(&badUUID))

	badAmount := valid
	badAmount.Amount = -1
	assert.Error(t, binding.Validator.ValidateStruct(&badAmount))

	badCurrency := valid
	badCurrency.Currency = "tok/ens"
	assert.Error(t, binding.Validator.ValidateStruct(&badCurrency))
}
