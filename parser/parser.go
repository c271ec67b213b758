// Package parser turns raw report messages into structured submission
// inputs. A report names one plot id (or a range of ids), a coordinate
// pair and optional modifier markers, for example:
//
//	#101 48.8584, 2.2945 road
//	#100-110 48.85 2.29
//	:one::zero::one: 48.8584 2.2945 [trial]
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Nudelsuppe42/bte-games-extractor/model"
	"github.com/Nudelsuppe42/bte-games-extractor/validate"
)

var (
	// Modifier markers, bare or bracketed, case-insensitive.
	modifierRe = regexp.MustCompile(`(?i)\[?\b(trial|road|field|area)\b\]?`)

	// Range form: optional '#', start id, optional '-end', optional comma,
	// remainder. The dash binds tightly to the id so that a negative
	// latitude after a single id is not read as a range end.
	rangeRe = regexp.MustCompile(`(?s)^\s*#?(\d+)(?:-(\d+))?\s*,?\s*(.*)$`)

	// Short-code form: one or more :code: tokens as the id portion.
	shortCodeRe = regexp.MustCompile(`(?s)^\s*((?::[A-Za-z0-9_~+]+:\s*)+),?\s*(.*)$`)
	codeTokenRe = regexp.MustCompile(`:([A-Za-z0-9_~+]+):`)

	// A signed decimal pair separated by a comma and/or whitespace.
	coordRe = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*[,\s]\s*(-?\d+(?:\.\d+)?)`)

	digitRe = regexp.MustCompile(`^\d+$`)
)

var codeDigits = map[string]string{
	"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
	"keycap_ten": "10",
}

const usageGuidance = "Expected format: `#<id> <latitude> <longitude>` with optional `road`, `field`/`area` or `trial` markers, e.g. `#101 48.8584, 2.2945 road`. Ranges like `#100-110` are supported as well."

// Parse turns one message into a SubmissionInput or exactly one tagged
// error, never partial output. Grammar variants are tried in fixed order:
// range form first, then the short-code form.
func Parse(text, userID, team string) (*model.SubmissionInput, *model.ReportError) {
	trial, road, field := false, false, false
	for _, m := range modifierRe.FindAllStringSubmatch(text, -1) {
		switch strings.ToLower(m[1]) {
		case "trial":
			trial = true
		case "road":
			road = true
		case "field", "area":
			field = true
		}
	}
	// Replace with a space so id and coordinate tokens stay separated.
	text = modifierRe.ReplaceAllString(text, " ")

	var ids []int64
	var rest string

	if m := rangeRe.FindStringSubmatch(text); m != nil {
		start, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			if m[2] != "" {
				return nil, invalidIDRange(m[1], m[2])
			}
			return nil, invalidID(m[1])
		}
		end := start
		if m[2] != "" {
			end, err = strconv.ParseInt(m[2], 10, 64)
			if err != nil || end < start {
				return nil, invalidIDRange(m[1], m[2])
			}
		}
		ids = expandRange(start, end)
		rest = m[3]
	} else if m := shortCodeRe.FindStringSubmatch(text); m != nil {
		id, perr := parseShortCodes(m[1])
		if perr != nil {
			return nil, perr
		}
		ids = []int64{id}
		rest = m[2]
	} else {
		return nil, &model.ReportError{
			Code:     model.ErrInvalidFormat,
			Detail:   "no plot id found",
			Guidance: "Could not find a plot id in your report. " + usageGuidance,
		}
	}

	c := coordRe.FindStringSubmatch(rest)
	if c == nil {
		return nil, &model.ReportError{
			Code:     model.ErrInvalidCoordinates,
			Detail:   "no coordinate pair found",
			Guidance: "Could not find coordinates in your report. Send latitude and longitude as decimal numbers separated by a comma or a space. " + usageGuidance,
		}
	}

	return &model.SubmissionInput{
		UserID: userID,
		Team:   team,
		IDs:    ids,
		Lat:    c[1],
		Lng:    c[2],
		Trial:  trial,
		Road:   road,
		Field:  field,
	}, nil
}

// expandRange lists start..end inclusive, capped just above the batch
// limit; the sequence validator rejects oversized batches on length alone,
// so expanding further would only waste memory.
func expandRange(start, end int64) []int64 {
	n := end - start + 1
	if n > validate.MaxBatchSize+1 {
		n = validate.MaxBatchSize + 1
	}
	ids := make([]int64, 0, n)
	for i := int64(0); i < n; i++ {
		ids = append(ids, start+i)
	}
	return ids
}

// parseShortCodes maps a run of :code: tokens to a plot id. Digit words and
// literal digit runs concatenate; anything else is not a parseable id.
func parseShortCodes(raw string) (int64, *model.ReportError) {
	var digits strings.Builder
	for _, m := range codeTokenRe.FindAllStringSubmatch(raw, -1) {
		name := strings.ToLower(m[1])
		if d, ok := codeDigits[name]; ok {
			digits.WriteString(d)
		} else if digitRe.MatchString(name) {
			digits.WriteString(name)
		} else {
			return 0, invalidID(m[0])
		}
	}
	id, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, invalidID(raw)
	}
	return id, nil
}

func invalidID(token string) *model.ReportError {
	return &model.ReportError{
		Code:     model.ErrInvalidID,
		Detail:   fmt.Sprintf("plot id %q is not a number", strings.TrimSpace(token)),
		Guidance: "The plot id could not be read as a number. " + usageGuidance,
	}
}

func invalidIDRange(start, end string) *model.ReportError {
	return &model.ReportError{
		Code:     model.ErrInvalidIDRange,
		Detail:   fmt.Sprintf("invalid plot id range %s-%s", start, end),
		Guidance: "Invalid plot id range: both ends must be numbers and the end must not be smaller than the start. " + usageGuidance,
	}
}
