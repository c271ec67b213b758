package export

import (
	"strconv"

	"github.com/Nudelsuppe42/bte-games-extractor/model"
)

// SnapshotHeader is the fixed column set of the CSV snapshot. The review
// columns (reviewer, complexity, quality) stay blank; reviewers fill them
// in the sheet.
var SnapshotHeader = []string{
	"team", "id", "round", "lat", "lng", "user", "reviewer",
	"size", "road", "field", "complexity", "quality", "hindrances", "trial", "2x",
}

// flagCell renders a boolean flag column: "y" when set, blank when not.
func flagCell(b bool) string {
	if b {
		return "y"
	}
	return ""
}

// sizeCell is "n" for a normal-size plot, blank when the plot is a road or
// field (those are sized by the reviewer).
func sizeCell(sub model.Submission) string {
	if sub.Road || sub.Field {
		return ""
	}
	return "n"
}

// csvRow builds one snapshot row.
func csvRow(round int, sub model.Submission) []string {
	return []string{
		sub.Team,
		strconv.FormatInt(sub.ID, 10),
		strconv.Itoa(round),
		sub.Lat,
		sub.Lng,
		sub.UserID,
		"", // reviewer
		sizeCell(sub),
		flagCell(sub.Road),
		flagCell(sub.Field),
		"", // complexity
		"", // quality
		"n",
		flagCell(sub.Trial),
		"n",
	}
}

// sheetRow builds one spreadsheet row. Same columns as the snapshot minus
// the team, which the target sheet already implies.
func sheetRow(round int, sub model.Submission) []interface{} {
	return []interface{}{
		strconv.FormatInt(sub.ID, 10),
		strconv.Itoa(round),
		sub.Lat,
		sub.Lng,
		sub.UserID,
		"", // reviewer
		sizeCell(sub),
		flagCell(sub.Road),
		flagCell(sub.Field),
		"", // complexity
		"", // quality
		"n",
		flagCell(sub.Trial),
		"n",
	}
}
