package archive

import (
	"testing"

	"github.com/riskibarqy/match-analyst/internal/domain/match"
)

func TestGroupRecords_KeepsFirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	records := []match.Record{
		{Season: "2023", League: "br.1", HomeTeam: "A"},
		{Season: "2024", League: "br.1", HomeTeam: "B"},
		{Season: "2023", League: "br.1", HomeTeam: "C"},
		{Season: "2023", League: "en.1", HomeTeam: "D"},
	}

	groups := GroupRecords(records)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Season != "2023" || groups[0].League != "br.1" || len(groups[0].Records) != 2 {
		t.Fatalf("unexpected first group %+v", groups[0])
	}
	if groups[0].Records[1].HomeTeam != "C" {
		t.Fatalf("expected records to keep load order inside a group")
	}
	if groups[1].Season != "2024" || groups[2].League != "en.1" {
		t.Fatalf("unexpected group order %+v", groups)
	}
}

func TestGroupRecords_KeysOnLeagueFile(t *testing.T) {
	t.Parallel()

	records := []match.Record{
		{Season: "2024", League: "Serie A", LeagueFile: "br.1", HomeTeam: "A"},
		{Season: "2024", League: "Serie A", LeagueFile: "it.1", HomeTeam: "B"},
		{Season: "2024", League: "Serie A", LeagueFile: "br.1", HomeTeam: "C"},
	}

	groups := GroupRecords(records)
	if len(groups) != 2 {
		t.Fatalf("files sharing a display name must stay separate, got %+v", groups)
	}
	if groups[0].FileKey() != "br.1" || len(groups[0].Records) != 2 {
		t.Fatalf("unexpected first group %+v", groups[0])
	}
	if groups[1].FileKey() != "it.1" || groups[1].League != "Serie A" {
		t.Fatalf("unexpected second group %+v", groups[1])
	}
}

func TestGroupRecords_Empty(t *testing.T) {
	t.Parallel()

	if got := GroupRecords(nil); len(got) != 0 {
		t.Fatalf("expected no groups, got %+v", got)
	}
}
