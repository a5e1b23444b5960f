package topics

import (
	"fmt"
	"strings"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	"github.com/kaarlekaarle/commons-web/internal/web/modules/proposals"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	webtemplates "github.com/kaarlekaarle/commons-web/internal/web/templates"
)

func (h handlers) now() time.Time {
	if h.nowFunc != nil {
		return h.nowFunc()
	}
	return time.Now()
}

func (h handlers) itemsView(slug string, items []commons.PollSummary, hasMore bool, page int, loc webtemplates.Localizer) webtemplates.TopicItemsView {
	view := webtemplates.TopicItemsView{
		RegionID: itemsRegionID,
		Cards:    h.summaryCards(items, loc),
	}
	if hasMore {
		view.LoadMoreURL = fmt.Sprintf("%s?page=%d", routepath.AppTopicItems(slug), page+1)
	}
	return view
}

func (h handlers) summaryCards(items []commons.PollSummary, loc webtemplates.Localizer) []webtemplates.PollCardView {
	if len(items) == 0 {
		return nil
	}
	cards := make([]webtemplates.PollCardView, 0, len(items))
	for _, item := range items {
		itemID := strings.TrimSpace(item.ID)
		if itemID == "" {
			continue
		}
		cards = append(cards, webtemplates.PollCardView{
			URL:          routepath.AppProposal(itemID),
			Title:        item.Title,
			TypeLabel:    proposals.DecisionTypeLabel(item.DecisionType, loc),
			TypeClass:    proposals.DecisionTypeClass(item.DecisionType),
			CreatedLabel: summaryTimeLabel(item.CreatedAt, h.now(), loc),
			Labels:       proposals.LabelChipViews(item.Labels),
		})
	}
	return cards
}

func topicChips(labels []commons.Label) []webtemplates.LabelChipView {
	return proposals.LabelChipViews(labels)
}

// summaryTimeLabel renders a relative time for summary timestamps, tolerating
// the malformed values the merge layer also tolerates.
func summaryTimeLabel(raw string, now time.Time, loc webtemplates.Localizer) string {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return webtemplates.RelativeTimeLabel(parsed, now, loc)
}

func humanizeSlug(slug string) string {
	slug = strings.TrimSpace(slug)
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, word := range words {
		runes := []rune(word)
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
