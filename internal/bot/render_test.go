package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ojas-1234/company-fitness-bot/internal/model"
)

func TestParseCompleteCallback(t *testing.T) {
	tests := []struct {
		data   string
		wantID int64
		wantOK bool
	}{
		{"complete_42", 42, true},
		{"complete_1", 1, true},
		{"complete_", 0, false},
		{"complete_abc", 0, false},
		{"complete_-3", 0, false},
		{"complete_0", 0, false},
		{"not_complete", 0, false},
		{"daily", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		id, ok := parseCompleteCallback(tt.data)
		assert.Equal(t, tt.wantOK, ok, "data %q", tt.data)
		assert.Equal(t, tt.wantID, id, "data %q", tt.data)
	}
}

func TestCompleteCallbackDataRoundTrip(t *testing.T) {
	data := completeCallbackData(137)
	assert.Equal(t, "complete_137", data)

	id, ok := parseCompleteCallback(data)
	assert.True(t, ok)
	assert.Equal(t, int64(137), id)
}

func TestFrequencyLabel(t *testing.T) {
	assert.Equal(t, "Daily", frequencyLabel(model.FrequencyDaily))
	assert.Equal(t, "Weekly", frequencyLabel(model.FrequencyWeekly))
}

func TestStartTextFallsBackWithoutName(t *testing.T) {
	assert.Contains(t, startText("Company Fitness Bot", "Jess"), "Hi Jess!")
	assert.Contains(t, startText("Company Fitness Bot", ""), "Hi there!")
}

func strptr(s string) *string { return &s }

func TestFormatLeaderboard(t *testing.T) {
	rows := []model.LeaderboardRow{
		{UserID: 1, DisplayName: strptr("Alice"), Completions: 12},
		{UserID: 2, Handle: strptr("bob_k"), Completions: 9},
		{UserID: 3, DisplayName: strptr("Carol"), Completions: 7},
		{UserID: 4, Completions: 0},
	}

	text := formatLeaderboard(rows, 30)

	assert.Contains(t, text, "🏆 *Monthly Leaderboard* (Last 30 days)")
	assert.Contains(t, text, "🥇 Alice: 12 completions")
	assert.Contains(t, text, "🥈 bob\\_k: 9 completions")
	assert.Contains(t, text, "🥉 Carol: 7 completions")
	assert.Contains(t, text, "👤 Unknown: 0 completions")
}

func TestFormatLeaderboardEscapesNames(t *testing.T) {
	rows := []model.LeaderboardRow{
		{UserID: 1, DisplayName: strptr("*bold* [name]"), Completions: 1},
	}

	text := formatLeaderboard(rows, 7)

	assert.Contains(t, text, "(Last 7 days)")
	assert.Contains(t, text, `\*bold\* \[name]`)
}
