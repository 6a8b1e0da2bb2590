package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/richmd/pkg/mdstream"
	"github.com/yaklabco/richmd/pkg/richtext"
)

// parseMentions parses --mention flag values of the form "start-end"
// or "start-end:self", where start and end are byte offsets into the
// Markdown source. Mentions must be ascending and non-overlapping.
func parseMentions(values []string) ([]richtext.Mention, error) {
	if len(values) == 0 {
		return nil, nil
	}

	mentions := make([]richtext.Mention, 0, len(values))
	for _, value := range values {
		mention, err := parseMention(value)
		if err != nil {
			return nil, err
		}
		mentions = append(mentions, mention)
	}

	for i := 1; i < len(mentions); i++ {
		if mentions[i].Range.Start < mentions[i-1].Range.End {
			return nil, fmt.Errorf("mentions must be sorted and non-overlapping: %q overlaps %q",
				values[i], values[i-1])
		}
	}

	return mentions, nil
}

func parseMention(value string) (richtext.Mention, error) {
	spec := value
	isSelf := false
	if suffix, ok := strings.CutSuffix(spec, ":self"); ok {
		spec = suffix
		isSelf = true
	}

	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok {
		return richtext.Mention{}, fmt.Errorf("invalid mention %q: expected start-end[:self]", value)
	}

	start, err := strconv.Atoi(startStr)
	if err != nil {
		return richtext.Mention{}, fmt.Errorf("invalid mention start in %q: %w", value, err)
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return richtext.Mention{}, fmt.Errorf("invalid mention end in %q: %w", value, err)
	}

	if start < 0 || end <= start {
		return richtext.Mention{}, fmt.Errorf("invalid mention %q: end must be greater than start", value)
	}

	return richtext.Mention{
		Range:  mdstream.Range{Start: start, End: end},
		IsSelf: isSelf,
	}, nil
}
