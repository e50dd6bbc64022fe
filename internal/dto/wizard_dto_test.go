package dto_test

import (
	"testing"

	"caseflow-be/internal/dto"
	"caseflow-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
)

func TestJumpToStepRequestAcceptsAnyStep(t *testing.T) {
	// Out-of-range steps, zero included, are no-opped downstream rather
	// than rejected at the request layer.
	for _, step := range []int{0, -3, 1, 7} {
		assert.NoError(t, serverutils.ValidateRequest(dto.JumpToStepRequest{Step: step}))
	}
}
