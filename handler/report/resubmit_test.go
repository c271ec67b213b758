package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nudelsuppe42/bte-games-extractor/handler/report"
)

func Test_IsResubmit_matches_case_insensitive_substring(t *testing.T) {
	assert.True(t, report.IsResubmit("resubmit #5"))
	assert.True(t, report.IsResubmit("please RESUBMIT this one"))
	assert.True(t, report.IsResubmit("[Resubmit] #5 45.0 0.0"))
	assert.False(t, report.IsResubmit("#5 45.0 0.0"))
}

func Test_StripResubmit_removes_token_and_brackets(t *testing.T) {
	assert.Equal(t, "#5 45.0 0.0", report.StripResubmit("[Resubmit] #5 45.0 0.0"))
	assert.Equal(t, "#5 fixed the roof", report.StripResubmit("resubmit #5 [fixed the roof]"))
	assert.Equal(t, "#5", report.StripResubmit("RESUBMIT #5"))
}
