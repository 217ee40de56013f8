package insight

import (
	"regexp"
	"sort"
	"strings"
)

// Pattern-based entity recognition. Multi-word capitalized spans cover
// organizations and people, the remaining patterns cover dates and monetary
// amounts.
var (
	reProperSpan = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)+\b`)
	reOrgSuffix  = regexp.MustCompile(`\b[A-Z][a-zA-Z]+\s+(?:Inc|Corp|Ltd|LLC|GmbH|AG|Co)\.?(?:\s|$|[,.;:])`)
	reISODate    = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	reSlashDate  = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	reMonthDate  = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:,\s*\d{4})?\b`)
	reCurrency   = regexp.MustCompile(`[$€£¥]\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:million|billion|trillion))?`)
	reAmount     = regexp.MustCompile(`\b\d[\d,]*(?:\.\d+)?\s?(?:million|billion|trillion)?\s?(?:dollars|euros|pounds|yuan)\b`)
)

var entityPatterns = []*regexp.Regexp{
	reProperSpan,
	reOrgSuffix,
	reISODate,
	reSlashDate,
	reMonthDate,
	reCurrency,
	reAmount,
}

// extractEntities returns the unique entity mentions in a span, sorted for
// stable output.
func extractEntities(text string) []string {
	seen := map[string]struct{}{}
	for _, re := range entityPatterns {
		for _, match := range re.FindAllString(text, -1) {
			entity := strings.TrimRight(strings.TrimSpace(match), ",.;:")
			if entity == "" {
				continue
			}
			seen[entity] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	entities := make([]string, 0, len(seen))
	for entity := range seen {
		entities = append(entities, entity)
	}
	sort.Strings(entities)
	return entities
}
