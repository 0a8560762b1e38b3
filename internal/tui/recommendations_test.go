package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dm/pragati/internal/model"
)

func TestCategoryLabel(t *testing.T) {
	cases := []struct {
		cat  model.RecommendationCategory
		want string
	}{
		{model.CategoryGeneral, "General Wellness"},
		{model.CategoryCardiovascular, "Heart & Circulation"},
		{model.CategoryRespiratory, "Breathing"},
		{model.CategoryBody, "Body"},
		{model.CategoryFollowUp, "Follow-up"},
		{model.RecommendationCategory(99), "Other"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, categoryLabel(tc.cat))
	}
}

func TestSeverityBadge(t *testing.T) {
	assert.Equal(t, "[URGENT]", stripANSI(severityBadge(model.SeverityCritical)))
	assert.Equal(t, "[CHECK] ", stripANSI(severityBadge(model.SeverityWarning)))
	assert.Equal(t, "[TIP]   ", stripANSI(severityBadge(model.SeverityNormal)))
}

func TestWrapText(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		maxWidth  int
		wantLines int
	}{
		{"fits in one line", "hello world", 20, 1},
		{"exactly max", "hello", 5, 1},
		{"needs wrapping", "one two three four five", 12, 3},
		{"zero width returns as-is", "hello world", 0, 1},
		{"single long word", "superlongword", 5, 1},
		{"empty string", "", 10, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := wrapText(tc.text, tc.maxWidth)
			assert.Len(t, strings.Split(result, "\n"), tc.wantLines, "got: %q", result)
		})
	}
}

func TestWrapText_LinesRespectMaxWidth(t *testing.T) {
	text := "Measured 88 %. Low oxygen saturation can cause fatigue and shortness of breath. Consider a check-up."
	for i, line := range strings.Split(wrapText(text, 30), "\n") {
		assert.LessOrEqual(t, len(line), 30, "line %d exceeds max width: %q", i, line)
	}
}

func TestBuildRecommendationLines_Empty(t *testing.T) {
	lines := buildRecommendationLines(nil, 80)
	out := stripANSI(strings.Join(lines, "\n"))
	assert.Contains(t, out, "Recommendations")
	assert.Contains(t, out, "Nothing to add")
}

func TestBuildRecommendationLines_GroupsByCategory(t *testing.T) {
	recs := []model.Recommendation{
		{Severity: model.SeverityCritical, Category: model.CategoryRespiratory, Title: "Oxygen Level is critical", Detail: "Measured 88 %."},
		{Severity: model.SeverityNormal, Category: model.CategoryGeneral, Title: "Stay hydrated"},
		{Severity: model.SeverityWarning, Category: model.CategoryCardiovascular, Title: "Heart Rate is concerning"},
	}
	out := stripANSI(strings.Join(buildRecommendationLines(recs, 80), "\n"))

	heart := strings.Index(out, "Heart & Circulation")
	breath := strings.Index(out, "Breathing")
	general := strings.Index(out, "General Wellness")
	assert.True(t, heart >= 0 && breath > heart && general > breath, "groups follow categoryOrder:\n%s", out)

	assert.Contains(t, out, "[URGENT] Oxygen Level is critical")
	assert.Contains(t, out, "    Measured 88 %.")
	assert.Contains(t, out, "[TIP]    Stay hydrated")
	assert.NotContains(t, out, "Follow-up", "empty groups are skipped")
}
