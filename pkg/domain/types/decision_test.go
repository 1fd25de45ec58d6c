package types_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/buyops-dev/creative-relay/pkg/domain/types"
)

func TestParseDecision(t *testing.T) {
	t.Run("round-trips approve", func(t *testing.T) {
		id := types.NewCreativeID()
		value := types.NewDecision(types.DecisionApprove, id).Value()

		parsed := types.ParseDecision(value)
		gt.Bool(t, parsed.Known()).True()
		gt.Value(t, parsed.Action).Equal(types.DecisionApprove)
		gt.Value(t, parsed.CreativeID).Equal(id)
		gt.Value(t, parsed.Status()).Equal(types.CreativeStatusApproved)
	})

	t.Run("round-trips reject", func(t *testing.T) {
		id := types.NewCreativeID()
		value := types.NewDecision(types.DecisionReject, id).Value()

		parsed := types.ParseDecision(value)
		gt.Bool(t, parsed.Known()).True()
		gt.Value(t, parsed.Action).Equal(types.DecisionReject)
		gt.Value(t, parsed.CreativeID).Equal(id)
		gt.Value(t, parsed.Status()).Equal(types.CreativeStatusRejected)
	})

	t.Run("splits on the first underscore only", func(t *testing.T) {
		parsed := types.ParseDecision("approve_abc")
		gt.Value(t, parsed.CreativeID.String()).Equal("abc")

		// Anything after the first underscore belongs to the ID
		parsed = types.ParseDecision("reject_abc_def")
		gt.Value(t, parsed.CreativeID.String()).Equal("abc_def")
	})

	t.Run("unknown action parses to the unknown variant", func(t *testing.T) {
		for _, raw := range []string{"promote_abc", "approveabc", "", "_abc", "APPROVE_abc"} {
			parsed := types.ParseDecision(raw)
			gt.Bool(t, parsed.Known()).False()
			gt.Value(t, parsed.Raw).Equal(raw)
			gt.Value(t, parsed.Status()).Equal(types.CreativeStatusPending)
		}
	})
}

func TestCreativeID(t *testing.T) {
	t.Run("generated IDs never contain underscore", func(t *testing.T) {
		for range 100 {
			id := types.NewCreativeID()
			gt.NoError(t, id.Validate())
			gt.Bool(t, strings.Contains(id.String(), "_")).False()
		}
	})

	t.Run("rejects invalid IDs", func(t *testing.T) {
		gt.Value(t, types.CreativeID("").Validate()).NotNil()
		gt.Value(t, types.CreativeID("has_underscore").Validate()).NotNil()
	})
}
